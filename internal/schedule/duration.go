package schedule

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Track run times arrive in whatever shape the library import left them in:
// "3:45", "1:02:30", "225", "225.5", or an Excel fractional-day value like
// 0.0026. Everything funnels through ParseDurationToSeconds, which never
// fails; a value it cannot read counts as zero so one bad field can't sink a
// whole schedule.

const secondsPerDay = 86400

var (
	minSecPattern     = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	hourMinSecPattern = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	numberPattern     = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// ParseDurationToSeconds converts a free-form duration value to whole
// seconds. Accepts strings and numeric types; anything unreadable maps to 0.
func ParseDurationToSeconds(value interface{}) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return numericSeconds(float64(v))
	case int64:
		return numericSeconds(float64(v))
	case float32:
		return numericSeconds(float64(v))
	case float64:
		return numericSeconds(v)
	case string:
		return parseDurationString(v)
	default:
		return parseDurationString(fmt.Sprintf("%v", value))
	}
}

func parseDurationString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch {
	case minSecPattern.MatchString(s):
		parts := strings.Split(s, ":")
		m, _ := strconv.Atoi(parts[0])
		sec, _ := strconv.Atoi(parts[1])
		return m*60 + sec
	case hourMinSecPattern.MatchString(s):
		parts := strings.Split(s, ":")
		h, _ := strconv.Atoi(parts[0])
		m, _ := strconv.Atoi(parts[1])
		sec, _ := strconv.Atoi(parts[2])
		return h*3600 + m*60 + sec
	case numberPattern.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return numericSeconds(f)
	default:
		return 0
	}
}

// numericSeconds applies the spreadsheet rule: values strictly between 0 and
// 1 are fractions of a day, everything else is already seconds.
func numericSeconds(v float64) int {
	if v > 0 && v < 1 {
		return int(math.Round(v * secondsPerDay))
	}
	sec := int(math.Round(v))
	if sec < 0 {
		return 0
	}
	return sec
}

// FormatDurationDisplay renders an item duration as "M:SS". Zero or negative
// means "no duration" and renders as the "-" sentinel.
func FormatDurationDisplay(seconds int) string {
	if seconds <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatTime renders a schedule clock position: "H:MM:SS" once the show is
// an hour in, "M:SS" before that.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, (seconds%3600)/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
