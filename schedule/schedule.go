package schedule

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/TobiAdeniyi/cron-expression-parser/cronerr"
)

// Schedule is the parsed and canonical form of a cron expression: the values matched by each of the five time
// fields, and the command to run.
//
// A Schedule can only be created with New, which sorts and deduplicates every field and validates it against its
// bounds. Its fields are not exported and its accessors return copies, so a Schedule does not change once created.
type Schedule struct {
	minute     []int
	hour       []int
	dayOfMonth []int
	month      []int
	dayOfWeek  []int
	command    string
}

// New creates a Schedule from the expanded time fields and the command, returning a cronerr.ErrInvariantViolation
// error if any field is empty, holds more values than its Unit's cardinality, or holds values out of its Unit's
// bounds, or if the command is empty.
//
// The input slices are copied, sorted and deduplicated; they are never modified.
func New(minute, hour, dayOfMonth, month, dayOfWeek []int, command string) (Schedule, error) {
	fields := [...][]int{
		Minute:     canonical(minute),
		Hour:       canonical(hour),
		DayOfMonth: canonical(dayOfMonth),
		Month:      canonical(month),
		DayOfWeek:  canonical(dayOfWeek),
	}

	for _, unit := range Units() {
		if err := validate(unit, fields[unit]); err != nil {
			return Schedule{}, err
		}
	}

	if command == "" {
		return Schedule{}, cronerr.Invariant(cronerr.ReasonEmptyCommand, "command", command, "command must be nonempty")
	}

	return Schedule{
		minute:     fields[Minute],
		hour:       fields[Hour],
		dayOfMonth: fields[DayOfMonth],
		month:      fields[Month],
		dayOfWeek:  fields[DayOfWeek],
		command:    command,
	}, nil
}

func canonical(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)

	return slices.Compact(out)
}

func validate(unit Unit, values []int) error {
	switch {
	case len(values) == 0:
		return cronerr.Invariant(cronerr.ReasonEmpty, unit.String(), "", "all fields must be nonempty")
	case len(values) > unit.Cardinality():
		return cronerr.Invariant(cronerr.ReasonCardinality, unit.String(), fmt.Sprint(values), fmt.Sprintf(
			"field must be bounded by a valid maximum length of %d", unit.Cardinality(),
		))
	}

	// values are sorted: checking the edges is enough
	if values[0] < unit.Min() || values[len(values)-1] > unit.Max() {
		return cronerr.Invariant(cronerr.ReasonOutOfBounds, unit.String(), fmt.Sprint(values), fmt.Sprintf(
			"values must be within min: %d; max: %d", unit.Min(), unit.Max(),
		))
	}

	return nil
}

// Minute returns the minutes matched by the Schedule, from 0 to 59.
func (s Schedule) Minute() []int { return slices.Clone(s.minute) }

// Hour returns the hours matched by the Schedule, from 0 to 23.
func (s Schedule) Hour() []int { return slices.Clone(s.hour) }

// DayOfMonth returns the days of the month matched by the Schedule, from 1 to 31.
func (s Schedule) DayOfMonth() []int { return slices.Clone(s.dayOfMonth) }

// Month returns the months matched by the Schedule, from 1 to 12.
func (s Schedule) Month() []int { return slices.Clone(s.month) }

// DayOfWeek returns the days of the week matched by the Schedule, from 1 (Sunday) to 7 (Saturday).
func (s Schedule) DayOfWeek() []int { return slices.Clone(s.dayOfWeek) }

// Command returns the command of the Schedule, verbatim.
func (s Schedule) Command() string { return s.command }

// Field returns the values matched by the Schedule in the input Unit, or nil for an unknown Unit.
func (s Schedule) Field(unit Unit) []int {
	switch unit {
	case Minute:
		return s.Minute()
	case Hour:
		return s.Hour()
	case DayOfMonth:
		return s.DayOfMonth()
	case Month:
		return s.Month()
	case DayOfWeek:
		return s.DayOfWeek()
	default:
		return nil
	}
}

type jsonSchedule struct {
	Minute     []int  `json:"minute"`
	Hour       []int  `json:"hour"`
	DayOfMonth []int  `json:"day_of_month"`
	Month      []int  `json:"month"`
	DayOfWeek  []int  `json:"day_of_week"`
	Command    string `json:"command"`
}

// MarshalJSON implements the json.Marshaler interface.
func (s Schedule) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSchedule{
		Minute:     s.minute,
		Hour:       s.hour,
		DayOfMonth: s.dayOfMonth,
		Month:      s.month,
		DayOfWeek:  s.dayOfWeek,
		Command:    s.command,
	})
}
