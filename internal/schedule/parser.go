package schedule

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/airlog-fm/showrunner-api/internal/models"
)

const (
	fallbackSelectionSize = 10
	fallbackReason        = "Selected from available library"
	fallbackTitle         = "Library Mix"
	fallbackNotes         = "Automatic selection from the station library; the model response could not be used."
)

// ParseModelOutput extracts and normalizes the model's JSON payload. It is
// total: any failure (no JSON, invalid JSON, wrong shape) resolves to the
// deterministic first-N-candidates fallback, never an error. This is the
// pipeline's availability guarantee.
func ParseModelOutput(text string, candidates []models.Track) NormalizedSelection {
	payload, ok := extractJSON(text)
	if !ok {
		log.Printf("⚠️  Schedule parser: no JSON object in model output (%d chars), using fallback", len(text))
		return FallbackSelection(candidates)
	}

	sel, err := decodeSelection(payload)
	if err != nil {
		log.Printf("⚠️  Schedule parser: %v, using fallback", err)
		return FallbackSelection(candidates)
	}

	return sel
}

// extractJSON slices from the first '{' to the last '}' of the text. Models
// routinely wrap the payload in prose or markdown fences; a greedy brace
// match is enough to peel both off.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// rawSelection tolerates the field-level sloppiness models produce: numeric
// ids, numeric durations, missing optional fields.
type rawSelection struct {
	Title         string     `json:"title"`
	SelectedSongs []rawSong  `json:"selectedSongs"`
	Breaks        []rawBreak `json:"breaks"`
	Notes         string     `json:"notes"`
}

type rawSong struct {
	ID       json.RawMessage `json:"id"`
	Title    string          `json:"title"`
	Artist   string          `json:"artist"`
	Duration json.RawMessage `json:"duration"`
	Reason   string          `json:"reason"`
}

type rawBreak struct {
	AfterTrack json.RawMessage `json:"afterTrack"`
	Duration   json.RawMessage `json:"duration"`
	Type       string          `json:"type"`
	Notes      string          `json:"notes"`
}

func decodeSelection(payload string) (NormalizedSelection, error) {
	var raw rawSelection
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return NormalizedSelection{}, fmt.Errorf("invalid JSON in model output: %w", err)
	}

	if len(raw.SelectedSongs) == 0 {
		return NormalizedSelection{}, fmt.Errorf("model output has no selectedSongs")
	}

	sel := NormalizedSelection{
		Title: raw.Title,
		Notes: raw.Notes,
	}
	if sel.Title == "" {
		sel.Title = "Generated Schedule"
	}

	for _, rs := range raw.SelectedSongs {
		id := coerceString(rs.ID)
		if id == "" {
			// An entry without an id can't map to anything; skip it rather
			// than failing the whole selection.
			continue
		}
		sel.SelectedSongs = append(sel.SelectedSongs, SelectedSong{
			ID:       id,
			Title:    rs.Title,
			Artist:   rs.Artist,
			Duration: coerceString(rs.Duration),
			Reason:   rs.Reason,
		})
	}

	if len(sel.SelectedSongs) == 0 {
		return NormalizedSelection{}, fmt.Errorf("model output selectedSongs had no usable entries")
	}

	for _, rb := range raw.Breaks {
		after, ok := coerceInt(rb.AfterTrack)
		if !ok {
			continue
		}
		sel.Breaks = append(sel.Breaks, BreakSpec{
			AfterTrack: after,
			Duration:   coerceString(rb.Duration),
			Type:       orBreakType(rb.Type),
			Notes:      rb.Notes,
		})
	}

	return sel, nil
}

// FallbackSelection synthesizes a selection from the first ten candidates in
// catalog order. Used whenever the model call fails, times out, or returns
// unusable output.
func FallbackSelection(candidates []models.Track) NormalizedSelection {
	limit := fallbackSelectionSize
	if len(candidates) < limit {
		limit = len(candidates)
	}

	sel := NormalizedSelection{
		Title:    fallbackTitle,
		Notes:    fallbackNotes,
		Breaks:   nil,
		Degraded: true,
	}

	for _, t := range candidates[:limit] {
		sel.SelectedSongs = append(sel.SelectedSongs, SelectedSong{
			ID:       strconv.FormatUint(uint64(t.ID), 10),
			Title:    t.Title,
			Artist:   t.Artist,
			Duration: t.Runs,
			Reason:   fallbackReason,
		})
	}

	return sel
}

// coerceString reads a JSON value that should be a string but may be a
// number (models echo numeric track ids and durations unquoted).
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if f == math.Trunc(f) {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

// coerceInt reads a JSON value as an integer, accepting quoted numbers
func coerceInt(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil {
			return n, true
		}
	}
	return 0, false
}

func orBreakType(t string) string {
	if t == "" {
		return "Break"
	}
	return t
}
