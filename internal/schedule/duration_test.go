package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationToSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected int
	}{
		{"minutes and seconds", "3:45", 225},
		{"single digit minutes", "0:30", 30},
		{"hours minutes seconds", "1:02:30", 3750},
		{"two digit hours", "12:00:00", 43200},
		{"bare integer string", "225", 225},
		{"bare float string", "225.5", 226},
		{"int value", 225, 225},
		{"int64 value", int64(90), 90},
		{"float64 seconds", 225.4, 225},
		{"excel fractional day", 0.0026, 225},
		{"fractional day one minute", 0.0007, 60},
		{"fractional day string", "0.0026", 225},
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"whitespace", "   ", 0},
		{"garbage", "three minutes", 0},
		{"negative number", "-45", 0},
		{"negative float64", -45.0, 0},
		{"seconds over 59 parsed as written", "1:99", 159},
		{"triple digit minutes rejected", "100:00", 0},
		{"trailing text rejected", "3:45 remix", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDurationToSeconds(tt.input))
		})
	}
}

// Any non-negative input must come back non-negative; the parser never
// reports an error, it reports zero.
func TestParseDurationToSecondsIsTotal(t *testing.T) {
	inputs := []interface{}{
		"", "::", ":", "a:bc", "1:2", "99:99:99", "NaN", "Inf",
		nil, -1, -0.5, 0, 0.99999, 1.0, struct{}{}, []string{"3:45"},
	}
	for _, in := range inputs {
		got := ParseDurationToSeconds(in)
		assert.GreaterOrEqual(t, got, 0, "input %v", in)
	}
}

// FormatDurationDisplay and ParseDurationToSeconds round-trip for every
// value the display format can express.
func TestDurationRoundTrip(t *testing.T) {
	for seconds := 1; seconds < 3600; seconds += 7 {
		display := FormatDurationDisplay(seconds)
		assert.Equal(t, seconds, ParseDurationToSeconds(display), "display %q", display)
	}
}

func TestFormatDurationDisplay(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{225, "3:45"},
		{30, "0:30"},
		{60, "1:00"},
		{3599, "59:59"},
		{0, "-"},
		{-10, "-"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.seconds), func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDurationDisplay(tt.seconds))
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{45, "0:45"},
		{225, "3:45"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3750, "1:02:30"},
		{7322, "2:02:02"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTime(tt.seconds))
		})
	}
}
