// Package renderer defines the rendering interface shared by the terminal and
// Ebiten front ends, and the message markup both of them understand.
package renderer

import (
	"regexp"

	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// A function variable keeps go vet's non-constant format string check quiet,
// since translation keys are looked up dynamically from markup.
var dynamicGet = gotext.Get

// markupRegex matches FUNCTION{content}
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// Segment is a run of message text with a single style
type Segment struct {
	Text  string
	Style TextStyle
}

// ParseMarkup splits a message with markup (QUEST{}, ITEM{}, ROOM{}, ACTION{},
// SPEAKER{}, SUBTLE{}, GT{}) into styled segments. GT{} content is translated;
// unknown functions are kept as plain text.
func ParseMarkup(msg string) []Segment {
	var segments []Segment
	lastIndex := 0

	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, Segment{Text: msg[lastIndex:match[0]], Style: StyleNormal})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		var style TextStyle
		switch function {
		case "QUEST":
			style = StyleQuest
		case "ITEM":
			style = StyleItem
		case "ROOM":
			style = StyleLandmark
			content = dynamicGet(content)
		case "ACTION":
			style = StyleAction
		case "SPEAKER":
			style = StyleSpeaker
		case "SUBTLE":
			style = StyleSubtle
		case "GT":
			content = dynamicGet(content)
			style = StyleNormal
		default:
			content = msg[match[0]:match[1]]
			style = StyleNormal
		}

		segments = append(segments, Segment{Text: content, Style: style})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, Segment{Text: msg[lastIndex:], Style: StyleNormal})
	}
	if len(segments) == 0 {
		segments = append(segments, Segment{Text: msg, Style: StyleNormal})
	}
	return segments
}

// PlainText strips markup from a message, keeping the (translated) content
func PlainText(msg string) string {
	var out []byte
	for _, seg := range ParseMarkup(msg) {
		out = append(out, seg.Text...)
	}
	return string(out)
}
