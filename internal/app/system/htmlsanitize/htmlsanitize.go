// Package htmlsanitize strips unsafe HTML from user-authored text before it
// is stored: course descriptions, lesson summaries, and profile bios.
//
// The policy allows common formatting (paragraphs, emphasis, lists, links)
// and removes scripts, event handlers, and javascript: URLs.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with disallowed HTML removed. Plain text passes
// through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
