// Package names holds the month and weekday name tables used by the cron expression parser.
//
// Two weekday numbering conventions live here and are kept apart on purpose: ReplaceWeekdays substitutes names
// with cron field codes, where Sunday is 1 and Saturday is 7; WeekdayIndex and WeekdayName convert between
// names and 0-indexed weekdays, where Sunday is 0 and Saturday is 6 (matching time.Weekday).
package names

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zalgonoise/x/errs"
)

const (
	errDomain = errs.Domain("cronparser/names")

	ErrInvalid = errs.Kind("invalid")

	ErrMonthName    = errs.Entity("month name")
	ErrMonthNumber  = errs.Entity("month number")
	ErrWeekdayName  = errs.Entity("day of week name")
	ErrWeekdayIndex = errs.Entity("day of week index")
)

var (
	ErrInvalidMonthName    = errs.WithDomain(errDomain, ErrInvalid, ErrMonthName)
	ErrInvalidMonthNumber  = errs.WithDomain(errDomain, ErrInvalid, ErrMonthNumber)
	ErrInvalidWeekdayName  = errs.WithDomain(errDomain, ErrInvalid, ErrWeekdayName)
	ErrInvalidWeekdayIndex = errs.WithDomain(errDomain, ErrInvalid, ErrWeekdayIndex)
)

//nolint:gochecknoglobals // immutable name tables
var (
	monthsList = []string{
		0:  "",
		1:  "JAN",
		2:  "FEB",
		3:  "MAR",
		4:  "APR",
		5:  "MAY",
		6:  "JUN",
		7:  "JUL",
		8:  "AUG",
		9:  "SEP",
		10: "OCT",
		11: "NOV",
		12: "DEC",
	}

	weekdaysList = []string{
		0: "SUN",
		1: "MON",
		2: "TUE",
		3: "WED",
		4: "THU",
		5: "FRI",
		6: "SAT",
	}
)

// ReplaceMonths lowercases the input field and replaces every month abbreviation in it (`jan` through `dec`) with
// its month number (1 through 12). Names are matched as substrings, in calendar order.
func ReplaceMonths(field string) string {
	field = strings.ToLower(field)

	for i := 1; i < len(monthsList); i++ {
		field = strings.ReplaceAll(field, strings.ToLower(monthsList[i]), strconv.Itoa(i))
	}

	return field
}

// ReplaceWeekdays lowercases the input field and replaces every weekday abbreviation in it (`sun` through `sat`)
// with its cron field code, from 1 (Sunday) to 7 (Saturday). Names are matched as substrings, starting on Sunday.
func ReplaceWeekdays(field string) string {
	field = strings.ToLower(field)

	for i := range weekdaysList {
		field = strings.ReplaceAll(field, strings.ToLower(weekdaysList[i]), strconv.Itoa(i+1))
	}

	return field
}

// MonthNumber converts a (case-insensitive) three-letter month name into its number, from 1 to 12.
func MonthNumber(name string) (int, error) {
	name = strings.ToUpper(name)

	for i := 1; i < len(monthsList); i++ {
		if monthsList[i] == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMonthName, name)
}

// MonthName converts a month number, from 1 to 12, into its upper-case three-letter name.
func MonthName(month int) (string, error) {
	if month < 1 || month >= len(monthsList) {
		return "", fmt.Errorf("%w: %d", ErrInvalidMonthNumber, month)
	}

	return monthsList[month], nil
}

// WeekdayIndex converts a (case-insensitive) three-letter weekday name into its 0-indexed weekday, where
// Sunday is 0 and Saturday is 6.
//
// This is not the numbering used in cron fields; see ReplaceWeekdays.
func WeekdayIndex(name string) (int, error) {
	name = strings.ToUpper(name)

	for i := range weekdaysList {
		if weekdaysList[i] == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %q", ErrInvalidWeekdayName, name)
}

// WeekdayName converts a 0-indexed weekday, where Sunday is 0 and Saturday is 6, into its upper-case three-letter
// name.
func WeekdayName(index int) (string, error) {
	if index < 0 || index >= len(weekdaysList) {
		return "", fmt.Errorf("%w: %d", ErrInvalidWeekdayIndex, index)
	}

	return weekdaysList[index], nil
}
