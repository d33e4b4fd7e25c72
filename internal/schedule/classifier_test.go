package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSchedulingRequest(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected bool
	}{
		{"schedule keyword", "build me a schedule for tonight", true},
		{"playlist keyword", "make a playlist of 80s hits", true},
		{"show keyword", "I need a morning show", true},
		{"hour keyword", "give me one hour of jazz", true},
		{"interstitial keyword", "add an interstitial between songs", true},
		{"uppercase", "BUILD ME A SCHEDULE", true},
		{"mixed case", "Make a PlayList please", true},
		{"keyword inside word", "showcase the new singles", true},
		{"general question", "what genres do we have?", false},
		{"greeting", "hi there", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSchedulingRequest(tt.message))
		})
	}
}
