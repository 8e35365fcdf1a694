// Package sanitize cleans raw model output before it reaches the caller.
package sanitize

import (
	"regexp"
	"strings"
)

// Channel selects the sanitization rules. The initial reading keeps its
// markdown; chat replies are flattened to plain prose.
type Channel string

const (
	ChannelReading Channel = "reading"
	ChannelChat    Channel = "chat"
)

var (
	// Reasoning models leak their thinking between these tags.
	thinkRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

	headingRe  = regexp.MustCompile(`#{1,6} ?`)
	emphasisRe = regexp.MustCompile(`\*{1,2}([^*]+)\*{1,2}`)
	bulletRe   = regexp.MustCompile(`(?m)^[-•]\s+`)
)

// Clean strips thinking artifacts from raw model output and, for the chat
// channel, markdown formatting as well.
func Clean(raw string, ch Channel) string {
	text := thinkRe.ReplaceAllString(raw, "")
	if ch == ChannelChat {
		text = headingRe.ReplaceAllString(text, "")
		text = emphasisRe.ReplaceAllString(text, "$1")
		text = bulletRe.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}
