package cronerr

import (
	"errors"
	"fmt"

	"github.com/zalgonoise/x/errs"
)

const (
	errDomain = errs.Domain("cronparser")

	ErrMalformed   = errs.Kind("malformed")
	ErrUnsupported = errs.Kind("unsupported")
	ErrViolated    = errs.Kind("violated")

	ErrExpression = errs.Entity("cron expression")
	ErrFeature    = errs.Entity("cron feature")
	ErrInvariant  = errs.Entity("schedule invariant")
)

var (
	// ErrFormat marks malformed input: wrong field count, bad field syntax, out-of-bounds values,
	// invalid range or interval ordering, or a misplaced `?`.
	ErrFormat = errs.WithDomain(errDomain, ErrMalformed, ErrExpression)
	// ErrUnsupportedFeature marks a recognized cron modifier that is not implemented (`W`, `L`, `#`).
	ErrUnsupportedFeature = errs.WithDomain(errDomain, ErrUnsupported, ErrFeature)
	// ErrInvariantViolation marks a schedule that cannot be built from its (already expanded) fields.
	ErrInvariantViolation = errs.WithDomain(errDomain, ErrViolated, ErrInvariant)
)

// Reason is a structured code describing why an input was rejected.
type Reason uint8

const (
	ReasonUnknown Reason = iota
	ReasonFieldCount
	ReasonQuestionMark
	ReasonSyntax
	ReasonBothQuestionMarks
	ReasonMixedQuestionMark
	ReasonModifier
	ReasonMalformedItem
	ReasonRange
	ReasonInterval
	ReasonOutOfBounds
	ReasonEmpty
	ReasonCardinality
	ReasonEmptyCommand
)

//nolint:gochecknoglobals // immutable array used in the fmt.Stringer implementation
var reasonStrings = [...]string{
	"unknown",
	"field-count",
	"question-mark",
	"syntax",
	"both-question-marks",
	"mixed-question-mark",
	"modifier",
	"malformed-item",
	"range",
	"interval",
	"out-of-bounds",
	"empty",
	"cardinality",
	"empty-command",
}

// String implements the fmt.Stringer interface.
func (r Reason) String() string {
	if int(r) >= len(reasonStrings) {
		return reasonStrings[ReasonUnknown]
	}

	return reasonStrings[r]
}

// Error is the error type returned by the parser components. It carries the kind of failure (one of
// ErrFormat, ErrUnsupportedFeature or ErrInvariantViolation), a Reason code and the offending field.
//
// Callers discriminate errors with errors.Is against the kind sentinels, and with errors.As to reach the Reason,
// Field and Value of the failure.
type Error struct {
	Kind   error
	Reason Reason
	Field  string
	Value  string
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	case e.Detail == "":
		return fmt.Sprintf("%v: invalid %s field: %q", e.Kind, e.Field, e.Value)
	default:
		return fmt.Sprintf("%v: invalid %s field: %q: %s", e.Kind, e.Field, e.Value, e.Detail)
	}
}

// Unwrap returns the kind sentinel of the error.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Format creates an ErrFormat Error for the input field and its raw value.
func Format(reason Reason, field, value, detail string) error {
	return &Error{
		Kind:   ErrFormat,
		Reason: reason,
		Field:  field,
		Value:  value,
		Detail: detail,
	}
}

// Unsupported creates an ErrUnsupportedFeature Error for the input field and its raw value.
func Unsupported(field, value, detail string) error {
	return &Error{
		Kind:   ErrUnsupportedFeature,
		Reason: ReasonModifier,
		Field:  field,
		Value:  value,
		Detail: detail,
	}
}

// Invariant creates an ErrInvariantViolation Error for the input field and its raw value.
func Invariant(reason Reason, field, value, detail string) error {
	return &Error{
		Kind:   ErrInvariantViolation,
		Reason: reason,
		Field:  field,
		Value:  value,
		Detail: detail,
	}
}

// ReasonOf returns the Reason code of the input error, or ReasonUnknown if it does not wrap an *Error.
func ReasonOf(err error) Reason {
	var e *Error
	if !errors.As(err, &e) {
		return ReasonUnknown
	}

	return e.Reason
}

// WithField returns a copy of the input error with its Field and Value replaced, if it wraps an *Error. Otherwise,
// the input error is returned as-is.
func WithField(err error, field, value string) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}

	tagged := *e
	tagged.Field = field
	tagged.Value = value

	return &tagged
}
