package cronparser

import (
	"context"
	"fmt"
	"strings"

	"github.com/zalgonoise/cfg"

	"github.com/TobiAdeniyi/cron-expression-parser/cronerr"
	"github.com/TobiAdeniyi/cron-expression-parser/names"
	"github.com/TobiAdeniyi/cron-expression-parser/schedule"
	"github.com/TobiAdeniyi/cron-expression-parser/schedule/cronlex"
)

const (
	numTokens = 6
	usage     = "Example: `*/15 0 1,15 * 1-5 /usr/bin/find`"

	commandField = "command"
)

// Parser describes the capabilities of a cron expression parser.
//
// Implementations of Parser must be safe for concurrent use, and must not retain any state between calls: the same
// input always yields the same schedule.Schedule or error.
type Parser interface {
	// Parse consumes the input cron expression and returns its schedule.Schedule, or an error if the expression is
	// invalid.
	Parse(ctx context.Context, cron string) (schedule.Schedule, error)
}

type parser struct{}

// Parse consumes the input cron expression and returns its schedule.Schedule, or an error if the expression is
// invalid.
func (parser) Parse(_ context.Context, cron string) (schedule.Schedule, error) {
	return Parse(cron)
}

// New creates a Parser with the input cfg.Option(s).
//
// The returned Parser is decorated with logs, metrics and traces if configured with the WithLogger (or
// WithLogHandler), WithMetrics and WithTrace options, respectively.
func New(options ...cfg.Option[*Config]) Parser {
	config := cfg.Set(defaultConfig(), options...)

	var p Parser = parser{}

	p = AddMetrics(p, config.metrics)
	p = AddLogs(p, config.handler)
	p = AddTraces(p, config.tracer)

	return p
}

// Parse consumes the input cron expression and returns its schedule.Schedule, or an error if the expression is
// invalid.
//
// The expression is composed of exactly six fields separated by a single space: minute, hour, day of the month,
// month, day of the week and command. The time fields are case-insensitive and support month and weekday names;
// the command is kept verbatim.
//
// The returned error wraps cronerr.ErrFormat for malformed input, or cronerr.ErrUnsupportedFeature for the `W`, `L`
// and `#` modifiers. The first invalid field aborts the parse.
func Parse(cron string) (schedule.Schedule, error) {
	tokens := strings.Split(cron, " ")
	if len(tokens) != numTokens {
		return schedule.Schedule{}, cronerr.Format(cronerr.ReasonFieldCount, "", cron, fmt.Sprintf(
			"invalid cron string format: expected %d fields, got %d in %q. %s", numTokens, len(tokens), cron, usage,
		))
	}

	// raw holds the lowercased tokens, reported in errors; fields holds them after name substitution
	var raw [numTokens - 1]string
	for i := range raw {
		raw[i] = strings.ToLower(tokens[i])
	}

	fields := raw
	fields[schedule.Month] = names.ReplaceMonths(raw[schedule.Month])
	command := tokens[len(tokens)-1]

	if err := validateTime(schedule.Minute, raw[schedule.Minute], raw[schedule.Minute],
		schedule.Minute.Min(), schedule.Minute.Max()); err != nil {
		return schedule.Schedule{}, err
	}

	if err := validateTime(schedule.Hour, raw[schedule.Hour], raw[schedule.Hour],
		schedule.Hour.Min(), schedule.Hour.Max()); err != nil {
		return schedule.Schedule{}, err
	}

	// the month syntax is checked against the day-of-month bounds; expansion narrows it down to 1-12
	if err := validateTime(schedule.Month, fields[schedule.Month], raw[schedule.Month],
		schedule.DayOfMonth.Min(), schedule.DayOfMonth.Max()); err != nil {
		return schedule.Schedule{}, err
	}

	if err := validateDays(raw[schedule.DayOfMonth], raw[schedule.DayOfWeek]); err != nil {
		return schedule.Schedule{}, err
	}

	if strings.ContainsAny(raw[schedule.DayOfMonth], "wl") {
		return schedule.Schedule{}, cronerr.Unsupported(schedule.DayOfMonth.String(), raw[schedule.DayOfMonth],
			"`W` and `L` are not yet supported for day_of_month")
	}

	fields[schedule.DayOfWeek] = names.ReplaceWeekdays(raw[schedule.DayOfWeek])

	if strings.ContainsAny(fields[schedule.DayOfWeek], "l#") {
		return schedule.Schedule{}, cronerr.Unsupported(schedule.DayOfWeek.String(), raw[schedule.DayOfWeek],
			"`L` and `#` are not yet supported for day_of_week")
	}

	var values [len(fields)][]int

	for _, unit := range schedule.Units() {
		v, err := expand(unit, fields[unit], raw[unit])
		if err != nil {
			return schedule.Schedule{}, err
		}

		values[unit] = v
	}

	if command == "" {
		return schedule.Schedule{}, cronerr.Format(cronerr.ReasonEmptyCommand, commandField, command,
			"command must be nonempty")
	}

	return schedule.New(
		values[schedule.Minute],
		values[schedule.Hour],
		values[schedule.DayOfMonth],
		values[schedule.Month],
		values[schedule.DayOfWeek],
		command,
	)
}

// validateTime checks the syntax of field, reporting rawField in the returned error.
func validateTime(unit schedule.Unit, field, rawField string, minimum, maximum int) error {
	if strings.Contains(field, "?") {
		return cronerr.Format(cronerr.ReasonQuestionMark, unit.String(), rawField,
			fmt.Sprintf("`?` is not allowed in the %s field", unit))
	}

	if !cronlex.ValidateSyntax(field, minimum, maximum) {
		return cronerr.Format(cronerr.ReasonSyntax, unit.String(), rawField,
			fmt.Sprintf("expected digits and `*/,-` symbols, with values within min: %d; max: %d", minimum, maximum))
	}

	return nil
}

func validateDays(dayOfMonth, dayOfWeek string) error {
	switch {
	case dayOfMonth == "?" && dayOfWeek == "?":
		return cronerr.Format(cronerr.ReasonBothQuestionMarks, schedule.DayOfMonth.String(), dayOfMonth,
			"Day of the Month and Day of the Week fields can not be `?` at the same time")
	case strings.Contains(dayOfMonth, "?") && dayOfMonth != "?":
		return cronerr.Format(cronerr.ReasonMixedQuestionMark, schedule.DayOfMonth.String(), dayOfMonth,
			"day of month field is not a valid value: `?` must be used on its own")
	case strings.Contains(dayOfWeek, "?") && dayOfWeek != "?":
		return cronerr.Format(cronerr.ReasonMixedQuestionMark, schedule.DayOfWeek.String(), dayOfWeek,
			"day of week field is not a valid value: `?` must be used on its own")
	default:
		return nil
	}
}

// expand resolves the values of a time field, bounds-checking the single values that cronlex.Expand lets through.
// Errors report rawField, the field as written before name substitution.
func expand(unit schedule.Unit, field, rawField string) ([]int, error) {
	values, err := cronlex.Expand(field, unit.Min(), unit.Max())
	if err != nil {
		return nil, cronerr.WithField(err, unit.String(), rawField)
	}

	for _, v := range values {
		if v < unit.Min() || v > unit.Max() {
			return nil, cronerr.Format(cronerr.ReasonOutOfBounds, unit.String(), rawField,
				fmt.Sprintf("value %d out of bounds: min: %d; max: %d", v, unit.Min(), unit.Max()))
		}
	}

	return values, nil
}

// NoOp returns a no-op Parser.
func NoOp() Parser {
	return noOpParser{}
}

type noOpParser struct{}

// Parse consumes the input cron expression and returns its schedule.Schedule, or an error if the expression is
// invalid.
//
// This is a no-op call and it always returns a zero schedule.Schedule and a nil error.
func (noOpParser) Parse(context.Context, string) (schedule.Schedule, error) {
	return schedule.Schedule{}, nil
}
