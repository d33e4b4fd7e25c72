package schedule

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/airlog-fm/showrunner-api/internal/config"
	"github.com/airlog-fm/showrunner-api/internal/models"
)

// maxPromptCandidates bounds how much of the library gets embedded in the
// system prompt regardless of how many candidates were fetched.
const maxPromptCandidates = 100

// PromptBuilder assembles the system and user prompts for schedule
// generation. Pure string construction; no retries or prompt repair here.
type PromptBuilder struct {
	defaults config.HintDefaults
}

func NewPromptBuilder(defaults config.HintDefaults) *PromptBuilder {
	return &PromptBuilder{defaults: defaults}
}

// promptTrack is the compact candidate projection embedded in the prompt
type promptTrack struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
	Category string `json:"category,omitempty"`
	Year     string `json:"year,omitempty"`
}

// BuildPrompts returns (systemPrompt, userPrompt) for one generation call.
// At most the first 100 candidates are serialized into the system prompt.
func (b *PromptBuilder) BuildPrompts(req Request, candidates []models.Track) (string, string) {
	limited := candidates
	if len(limited) > maxPromptCandidates {
		limited = limited[:maxPromptCandidates]
	}

	tracks := make([]promptTrack, 0, len(limited))
	for _, t := range limited {
		tracks = append(tracks, promptTrack{
			ID:       strconv.FormatUint(uint64(t.ID), 10),
			Title:    t.Title,
			Artist:   t.Artist,
			Duration: t.Runs,
			Category: t.Category,
			Year:     t.Year,
		})
	}

	catalogJSON, err := json.Marshal(tracks)
	if err != nil {
		catalogJSON = []byte("[]")
	}

	systemPrompt := fmt.Sprintf(`You are a radio programming assistant that builds broadcast schedules.

Available tracks from the station library:
%s

Select tracks ONLY from the available tracks above, using their exact "id" values.

Respond with a single JSON object in exactly this shape:
{
  "title": "name for the show",
  "selectedSongs": [
    {"id": "track id", "title": "...", "artist": "...", "duration": "M:SS", "reason": "why this track"}
  ],
  "breaks": [
    {"afterTrack": 1, "duration": "M:SS", "type": "Station ID", "notes": "..."}
  ],
  "notes": "overall programming notes"
}

"afterTrack" is the 1-based position of the song the break should follow.
Order selectedSongs in broadcast order. Do not include any text outside the JSON object.`, string(catalogJSON))

	userPrompt := fmt.Sprintf(`Build a broadcast schedule for this request: %s

Target duration: %s
Genre: %s
Energy: %s`,
		req.Instructions,
		orDefault(req.DurationHint, b.defaults.Duration),
		orDefault(req.GenreHint, b.defaults.Genre),
		orDefault(req.EnergyHint, b.defaults.Energy),
	)

	return systemPrompt, userPrompt
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
