package names

import (
	"errors"
	"testing"

	"github.com/zalgonoise/x/is"
)

func TestReplaceMonths(t *testing.T) {
	for _, testcase := range []struct {
		name  string
		input string
		wants string
	}{
		{name: "Success/NoNames", input: "1-5,*/2", wants: "1-5,*/2"},
		{name: "Success/Single", input: "jan", wants: "1"},
		{name: "Success/UpperCase", input: "DEC", wants: "12"},
		{name: "Success/MixedCase", input: "jAn-Jun", wants: "1-6"},
		{name: "Success/List", input: "jan,feb,mar,apr,may,jun,jul,aug,sep,oct,nov,dec", wants: "1,2,3,4,5,6,7,8,9,10,11,12"},
		{name: "Success/Interval", input: "mar/3", wants: "3/3"},
		{name: "Success/Substring", input: "xjanx", wants: "x1x"},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			is.Equal(t, testcase.wants, ReplaceMonths(testcase.input))
		})
	}
}

func TestReplaceWeekdays(t *testing.T) {
	for _, testcase := range []struct {
		name  string
		input string
		wants string
	}{
		{name: "Success/NoNames", input: "1-5", wants: "1-5"},
		{name: "Success/Sunday", input: "sun", wants: "1"},
		{name: "Success/Saturday", input: "SAT", wants: "7"},
		{name: "Success/Range", input: "mon-fri", wants: "2-6"},
		{name: "Success/List", input: "sun,Mon,TUE,wED,thU,FrI,sAt", wants: "1,2,3,4,5,6,7"},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			is.Equal(t, testcase.wants, ReplaceWeekdays(testcase.input))
		})
	}
}

func TestMonths(t *testing.T) {
	for i, name := range []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"} {
		n, err := MonthNumber(name)
		is.Empty(t, err)
		is.Equal(t, i+1, n)

		s, err := MonthName(i + 1)
		is.Empty(t, err)
		is.Equal(t, name, s)
	}

	n, err := MonthNumber("feb")
	is.Empty(t, err)
	is.Equal(t, 2, n)

	_, err = MonthNumber("february")
	is.True(t, errors.Is(err, ErrInvalidMonthName))

	_, err = MonthName(0)
	is.True(t, errors.Is(err, ErrInvalidMonthNumber))

	_, err = MonthName(13)
	is.True(t, errors.Is(err, ErrInvalidMonthNumber))
}

func TestWeekdays(t *testing.T) {
	for i, name := range []string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"} {
		idx, err := WeekdayIndex(name)
		is.Empty(t, err)
		is.Equal(t, i, idx)

		s, err := WeekdayName(i)
		is.Empty(t, err)
		is.Equal(t, name, s)
	}

	idx, err := WeekdayIndex("sun")
	is.Empty(t, err)
	is.Equal(t, 0, idx)

	// the cron field code for Sunday is 1, while its index is 0
	is.Equal(t, "1", ReplaceWeekdays("sun"))

	_, err = WeekdayIndex("sunday")
	is.True(t, errors.Is(err, ErrInvalidWeekdayName))

	_, err = WeekdayName(-1)
	is.True(t, errors.Is(err, ErrInvalidWeekdayIndex))

	_, err = WeekdayName(7)
	is.True(t, errors.Is(err, ErrInvalidWeekdayIndex))
}
