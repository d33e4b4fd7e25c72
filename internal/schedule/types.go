package schedule

// Request is a single schedule-generation request as it leaves the
// dashboard's chat box. Instructions is the user's literal message; the
// hints are optional context fields from the generation form.
type Request struct {
	Instructions string
	DurationHint string
	GenreHint    string
	EnergyHint   string
}

// SelectedSong is one track the model picked, normalized from its JSON
// output. ID echoes a candidate track id; the pipeline trusts it best-effort
// rather than re-validating against the catalog.
type SelectedSong struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
	Reason   string `json:"reason"`
}

// BreakSpec is a break the model asked for. AfterTrack is the 1-based
// position in the selected-songs list the break follows.
type BreakSpec struct {
	AfterTrack int    `json:"afterTrack"`
	Duration   string `json:"duration"`
	Type       string `json:"type"`
	Notes      string `json:"notes"`
}

// NormalizedSelection is the parsed, model-or-fallback-derived song/break
// list prior to timeline assembly.
type NormalizedSelection struct {
	Title         string         `json:"title"`
	SelectedSongs []SelectedSong `json:"selectedSongs"`
	Breaks        []BreakSpec    `json:"breaks"`
	Notes         string         `json:"notes"`

	// Degraded marks a selection produced by the deterministic fallback
	// instead of a usable model response.
	Degraded bool `json:"-"`
}

// Item kinds
const (
	KindSong         = "song"
	KindBreak        = "break"
	KindInterstitial = "interstitial"
)

// Item is one timed entry of an assembled schedule.
type Item struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	Duration        string `json:"duration"` // "M:SS" display form
	DurationSeconds int    `json:"durationSeconds"`
	StartTime       string `json:"startTime"` // offset from show start
	EndTime         string `json:"endTime"`
	Kind            string `json:"type"`
	Notes           string `json:"notes,omitempty"`
}

// Generated is a fully assembled broadcast schedule. It is built once per
// generation request and never mutated by the pipeline afterwards.
type Generated struct {
	Title                string      `json:"title"`
	TotalDuration        string      `json:"totalDuration"`
	TotalDurationSeconds int         `json:"totalDurationSeconds"`
	Items                []Item      `json:"items"`
	Breaks               []BreakSpec `json:"breaks"`
	Notes                string      `json:"notes,omitempty"`
	Degraded             bool        `json:"degraded,omitempty"`
}
