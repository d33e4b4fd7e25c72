package schedule

import "strings"

// schedulingKeywords gates which chat messages get routed into the
// generation pipeline. Substring matching is deliberately loose: a general
// question containing "show" gets classified as scheduling, which the
// product accepts as a recall-over-precision trade-off.
var schedulingKeywords = []string{
	"schedule",
	"playlist",
	"show",
	"hour",
	"interstitial",
}

// IsSchedulingRequest reports whether a chat message looks like a request
// to build a schedule. Case-insensitive, pure, no I/O.
func IsSchedulingRequest(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range schedulingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
