// Package markdown extracts named sections from model card READMEs.
//
// This is not a Markdown parser: only lines starting with '#' are treated as
// headings and sections do not nest.
package markdown

import (
	"regexp"
	"strings"
)

// emojiRe matches the pictographic ranges that model cards like to decorate
// headings with ("## 🤖 Model Description").
var emojiRe = regexp.MustCompile("[" +
	`\x{1F600}-\x{1F64F}` + // emoticons
	`\x{1F300}-\x{1F5FF}` + // symbols & pictographs
	`\x{1F680}-\x{1F6FF}` + // transport & map
	`\x{1F700}-\x{1F77F}` + // alchemical
	`\x{1F780}-\x{1F7FF}` + // geometric shapes extended
	`\x{1F800}-\x{1F8FF}` + // supplemental arrows-c
	`\x{1F900}-\x{1F9FF}` + // supplemental symbols & pictographs
	`\x{1FA00}-\x{1FA6F}` + // chess symbols
	`\x{1FA70}-\x{1FAFF}` + // symbols & pictographs extended-a
	`\x{2700}-\x{27BF}` + // dingbats
	`\x{1F1E0}-\x{1F1FF}` + // flags
	"]+")

// StripEmoji removes emoji and pictographic characters from s.
func StripEmoji(s string) string {
	return emojiRe.ReplaceAllString(s, "")
}

// HeadingTitle normalizes a heading line for comparison: leading '#' and
// spaces removed, lower-cased, emoji stripped. ok is false when line is not
// a heading.
func HeadingTitle(line string) (title string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	t := strings.TrimLeft(line, "# ")
	t = strings.ToLower(t)
	t = StripEmoji(t)
	return strings.TrimSpace(t), true
}

type scanState int

const (
	scanning scanState = iota
	capturing
)

// ExtractSection returns the body of the first section whose heading title
// is one of titles (compared after HeadingTitle normalization).
//
// Capture starts at the matching heading and ends at the next heading or at
// the last line of the document. The recorded span then loses its first line
// (the heading) and its last line (the line that ended the capture, which is
// the document's final line when no further heading follows). The remaining
// lines are trimmed and concatenated without a separator.
//
// ok is false when no heading matches, the document is empty, or the
// resulting body is empty.
func ExtractSection(text string, titles []string) (body string, ok bool) {
	if text == "" || len(titles) == 0 {
		return "", false
	}
	want := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		want[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	lines := splitLines(text)
	last := len(lines) - 1

	state := scanning
	var span []string
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		title, isHeading := HeadingTitle(line)

		switch state {
		case capturing:
			span = append(span, line)
			if isHeading || i == last {
				return joinSpan(span)
			}
		case scanning:
			if !isHeading {
				continue
			}
			if _, match := want[title]; match {
				state = capturing
				span = append(span, line)
			}
		}
	}
	return "", false
}

// joinSpan drops the heading and the terminating line from span.
func joinSpan(span []string) (string, bool) {
	if len(span) <= 2 {
		return "", false
	}
	body := strings.Join(span[1:len(span)-1], "")
	if body == "" {
		return "", false
	}
	return body, true
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
