// Package display renders a schedule.Schedule for humans (a table of expanded values, one row per field) or
// machines (JSON).
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TobiAdeniyi/cron-expression-parser/schedule"
)

const rowFormat = "%-14s %s\n"

//nolint:gochecknoglobals // immutable row labels
var labels = [...]string{
	schedule.Minute:     "Minute",
	schedule.Hour:       "Hour",
	schedule.DayOfMonth: "Day of Month",
	schedule.Month:      "Month",
	schedule.DayOfWeek:  "Day of Week",
}

// Table writes the input schedule.Schedule to w, with a row per time field holding its space-separated values and a
// final row for the command. Labels are padded to a 14-character column.
func Table(w io.Writer, s schedule.Schedule) error {
	for _, unit := range schedule.Units() {
		if _, err := fmt.Fprintf(w, rowFormat, labels[unit], join(s.Field(unit))); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, rowFormat, "Command", s.Command())

	return err
}

// JSON writes the input schedule.Schedule to w as an indented JSON object.
func JSON(w io.Writer, s schedule.Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}

func join(values []int) string {
	parts := make([]string, 0, len(values))

	for i := range values {
		parts = append(parts, strconv.Itoa(values[i]))
	}

	return strings.Join(parts, " ")
}
