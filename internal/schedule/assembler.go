package schedule

import "fmt"

// Assemble walks the normalized selection in order and lays every item onto
// a running clock starting at 0:00. Songs keep their selection order; a
// break fires immediately after the song at its 1-based AfterTrack position.
// Deterministic, single pass, no I/O.
//
// Edge policy, kept exactly as the product behaves:
//   - a break whose AfterTrack exceeds the song count never fires (the scan
//     is keyed on song position, so it is silently dropped)
//   - several breaks naming the same position all fire, in breaks-list order
//   - an unparsable duration occupies zero timeline width
func Assemble(sel NormalizedSelection) *Generated {
	currentTime := 0
	items := make([]Item, 0, len(sel.SelectedSongs)+len(sel.Breaks))

	for i, song := range sel.SelectedSongs {
		position := i + 1
		durationSeconds := ParseDurationToSeconds(song.Duration)

		items = append(items, Item{
			ID:              song.ID,
			Title:           song.Title,
			Artist:          song.Artist,
			Duration:        FormatDurationDisplay(durationSeconds),
			DurationSeconds: durationSeconds,
			StartTime:       FormatTime(currentTime),
			EndTime:         FormatTime(currentTime + durationSeconds),
			Kind:            KindSong,
			Notes:           song.Reason,
		})
		currentTime += durationSeconds

		for _, brk := range sel.Breaks {
			if brk.AfterTrack != position {
				continue
			}
			breakSeconds := ParseDurationToSeconds(brk.Duration)
			items = append(items, Item{
				ID:              fmt.Sprintf("break_%d", position),
				Title:           brk.Type,
				Artist:          "",
				Duration:        FormatDurationDisplay(breakSeconds),
				DurationSeconds: breakSeconds,
				StartTime:       FormatTime(currentTime),
				EndTime:         FormatTime(currentTime + breakSeconds),
				Kind:            KindBreak,
				Notes:           brk.Notes,
			})
			currentTime += breakSeconds
		}
	}

	return &Generated{
		Title:                sel.Title,
		TotalDuration:        FormatTime(currentTime),
		TotalDurationSeconds: currentTime,
		Items:                items,
		Breaks:               sel.Breaks,
		Notes:                sel.Notes,
		Degraded:             sel.Degraded,
	}
}
