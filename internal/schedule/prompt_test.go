package schedule

import (
	"fmt"
	"strings"
	"testing"

	"github.com/airlog-fm/showrunner-api/internal/config"
	"github.com/airlog-fm/showrunner-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func testDefaults() config.HintDefaults {
	return config.HintDefaults{
		Duration: "not specified",
		Genre:    "Any",
		Energy:   "Mixed",
	}
}

func makeTracks(n int) []models.Track {
	tracks := make([]models.Track, n)
	for i := range tracks {
		tracks[i] = models.Track{
			ID:     uint(i + 1),
			Title:  fmt.Sprintf("Track %d", i+1),
			Artist: fmt.Sprintf("Artist %d", i+1),
			Runs:   "3:00",
		}
	}
	return tracks
}

func TestBuildPromptsEmbedsCandidates(t *testing.T) {
	b := NewPromptBuilder(testDefaults())
	system, user := b.BuildPrompts(Request{Instructions: "a chill evening show"}, makeTracks(3))

	assert.Contains(t, system, `"Track 1"`)
	assert.Contains(t, system, `"Track 3"`)
	assert.Contains(t, system, "selectedSongs")
	assert.Contains(t, system, "afterTrack")
	assert.Contains(t, user, "a chill evening show")
}

func TestBuildPromptsCapsCandidates(t *testing.T) {
	b := NewPromptBuilder(testDefaults())
	system, _ := b.BuildPrompts(Request{Instructions: "anything"}, makeTracks(250))

	assert.Contains(t, system, `"Track 100"`)
	assert.NotContains(t, system, `"Track 101"`)
}

func TestBuildPromptsHintDefaults(t *testing.T) {
	b := NewPromptBuilder(testDefaults())

	_, user := b.BuildPrompts(Request{Instructions: "anything"}, nil)
	assert.Contains(t, user, "Target duration: not specified")
	assert.Contains(t, user, "Genre: Any")
	assert.Contains(t, user, "Energy: Mixed")

	_, user = b.BuildPrompts(Request{
		Instructions: "anything",
		DurationHint: "2 hours",
		GenreHint:    "Jazz",
		EnergyHint:   "High",
	}, nil)
	assert.Contains(t, user, "Target duration: 2 hours")
	assert.Contains(t, user, "Genre: Jazz")
	assert.Contains(t, user, "Energy: High")
}

func TestBuildPromptsEmptyCatalog(t *testing.T) {
	b := NewPromptBuilder(testDefaults())
	system, _ := b.BuildPrompts(Request{Instructions: "anything"}, nil)

	// With no candidates the catalog section is an empty array, not absent
	assert.True(t, strings.Contains(system, "[]"))
}
