package cronlex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zalgonoise/x/is"

	"github.com/TobiAdeniyi/cron-expression-parser/cronerr"
)

func fullRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}

	return out
}

func TestExpand(t *testing.T) {
	for _, testcase := range []struct {
		name    string
		input   string
		minimum int
		maximum int
		wants   []int
		err     error
		reason  cronerr.Reason
	}{
		{
			name:    "Success/Wildcard/Star",
			input:   "*",
			maximum: 59,
			wants:   fullRange(0, 59),
		},
		{
			name:    "Success/Wildcard/QuestionMark",
			input:   "?",
			maximum: 59,
			wants:   fullRange(0, 59),
		},
		{
			name:    "Success/Wildcard/DayOfMonthBounds",
			input:   "*",
			minimum: 1,
			maximum: 31,
			wants:   fullRange(1, 31),
		},
		{
			name:    "Success/Single",
			input:   "5",
			maximum: 59,
			wants:   []int{5},
		},
		{
			name:    "Success/Single/UpperBound",
			input:   "23",
			maximum: 23,
			wants:   []int{23},
		},
		{
			name:    "Success/Single/NotBoundsChecked",
			input:   "75",
			maximum: 59,
			wants:   []int{75},
		},
		{
			name:    "Success/Range",
			input:   "1-5",
			maximum: 59,
			wants:   []int{1, 2, 3, 4, 5},
		},
		{
			name:    "Success/Range/Other",
			input:   "10-15",
			maximum: 59,
			wants:   []int{10, 11, 12, 13, 14, 15},
		},
		{
			name:    "Success/Range/SingleValue",
			input:   "7-7",
			minimum: 1,
			maximum: 7,
			wants:   []int{7},
		},
		{
			name:    "Success/Interval/Star",
			input:   "*/15",
			maximum: 59,
			wants:   []int{0, 15, 30, 45},
		},
		{
			name:    "Success/Interval/StarUsesMinimum",
			input:   "*/10",
			minimum: 1,
			maximum: 31,
			wants:   []int{1, 11, 21, 31},
		},
		{
			name:    "Success/Interval/Start",
			input:   "5/10",
			maximum: 59,
			wants:   []int{5, 15, 25, 35, 45, 55},
		},
		{
			name:    "Success/Interval/StepLargerThanRange",
			input:   "0/64",
			maximum: 59,
			wants:   []int{0},
		},
		{
			name:    "Success/List",
			input:   "1,15",
			minimum: 1,
			maximum: 31,
			wants:   []int{1, 15},
		},
		{
			name:    "Success/List/Mixed",
			input:   "0-3,5,7,*/20",
			maximum: 59,
			wants:   []int{0, 1, 2, 3, 5, 7, 0, 20, 40},
		},
		{
			name:    "Success/List/DuplicatesKept",
			input:   "5,5,1-5",
			maximum: 59,
			wants:   []int{5, 5, 1, 2, 3, 4, 5},
		},
		{
			name:    "Success/List/WildcardFirst",
			input:   "*,1-5",
			maximum: 59,
			wants:   fullRange(0, 59),
		},
		{
			name:    "Success/List/WildcardLast",
			input:   "1-5,*",
			maximum: 59,
			wants:   fullRange(0, 59),
		},
		{
			name:    "Success/List/WildcardIgnoresFollowingItems",
			input:   "*,garbage",
			maximum: 59,
			wants:   fullRange(0, 59),
		},
		{
			name:    "Fail/Empty",
			input:   "",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonEmpty,
		},
		{
			name:    "Fail/Letters",
			input:   "invalid",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/DoubleRange",
			input:   "1-5-10",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/DanglingInterval",
			input:   "*/",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/LeadingSlash",
			input:   "/5",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/DanglingRange",
			input:   "5-",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/NulByte",
			input:   "1\x00abc",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/TrailingNulByte",
			input:   "1-5\x00",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/RangeWithStep",
			input:   "1-5/2",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/StarRange",
			input:   "*-5",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/QuestionMarkInterval",
			input:   "?/5",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/AdjacentOperands",
			input:   "*5",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/MixedQuestionMark",
			input:   "1?",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/InvalidCharacter",
			input:   "1#2",
			minimum: 1,
			maximum: 7,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/EmptyItem",
			input:   "1,,2",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/TrailingComma",
			input:   "1,",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/LeadingComma",
			input:   ",1",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
		{
			name:    "Fail/Range/Reversed",
			input:   "5-1",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonRange,
		},
		{
			name:    "Fail/Range/BelowMinimum",
			input:   "0-5",
			minimum: 1,
			maximum: 31,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonRange,
		},
		{
			name:    "Fail/Range/AboveMaximum",
			input:   "0-60",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonRange,
		},
		{
			name:    "Fail/Interval/ZeroStep",
			input:   "5/0",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonInterval,
		},
		{
			name:    "Fail/Interval/StartAboveMaximum",
			input:   "60/5",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonInterval,
		},
		{
			name:    "Fail/Interval/StartBelowMinimum",
			input:   "0/5",
			minimum: 1,
			maximum: 12,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonInterval,
		},
		{
			name:    "Fail/ErrorBeforeWildcard",
			input:   "garbage,*",
			maximum: 59,
			err:     cronerr.ErrFormat,
			reason:  cronerr.ReasonMalformedItem,
		},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			values, err := Expand(testcase.input, testcase.minimum, testcase.maximum)
			if testcase.err != nil {
				is.True(t, errors.Is(err, testcase.err))
				is.Equal(t, testcase.reason, cronerr.ReasonOf(err))
				is.True(t, values == nil)

				return
			}

			is.Empty(t, err)
			require.Equal(t, testcase.wants, values)
		})
	}
}

func TestExpandErrorMessage(t *testing.T) {
	_, err := Expand("1-5,1x", 0, 59)
	require.Error(t, err)
	require.Contains(t, err.Error(), `"1x"`)
	require.Contains(t, err.Error(), `"1-5,1x"`)
}

func FuzzExpand(f *testing.F) {
	for _, seed := range []string{
		"*", "?", "5", "1-5", "*/15", "5/10", "1,15", "0-3,5,7", "*,1-5", "1-5,*",
		"invalid", "1-5-10", "*/", "/5", "5-", ",", "1,,2", "0/0", "99999999999999999999", "1#2", "1w",
		"1\x00abc", "\x00",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		values, err := Expand(s, 0, 59)
		if err != nil {
			if !errors.Is(err, cronerr.ErrFormat) {
				t.Errorf("unexpected error: %v -- input: %q", err, s)
			}

			return
		}

		if len(values) == 0 {
			t.Errorf("empty result without error -- input: %q", s)
		}
	})
}
