package util

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// StripTags reduces editor HTML to plain text: all tags removed,
// entities decoded. Block-level breaks already present as newlines in
// the source survive; tags themselves contribute nothing.
func StripTags(htmlContent string) string {
	// Quill emits <p>...</p> blocks with no newlines between them;
	// turn block ends and <br> into newlines before stripping.
	replacer := strings.NewReplacer(
		"</p>", "\n",
		"</P>", "\n",
		"<br>", "\n",
		"<br/>", "\n",
		"<br />", "\n",
	)
	text := stripPolicy.Sanitize(replacer.Replace(htmlContent))
	return strings.TrimRight(html.UnescapeString(text), "\n")
}

// WrapLines word-wraps text to at most width characters per line.
// Width counts runes, not bytes, so accented text wraps at the same
// column as plain ASCII. Blank source lines are preserved; a word longer
// than width is hard-cut on a rune boundary.
func WrapLines(text string, width int) []string {
	if width <= 0 {
		width = 90
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		var cur []rune
		for _, word := range words {
			w := []rune(word)
			for len(w) > width {
				if len(cur) > 0 {
					out = append(out, string(cur))
					cur = nil
				}
				out = append(out, string(w[:width]))
				w = w[width:]
			}
			switch {
			case len(cur) == 0:
				cur = w
			case len(cur)+1+len(w) <= width:
				cur = append(cur, ' ')
				cur = append(cur, w...)
			default:
				out = append(out, string(cur))
				cur = w
			}
		}
		if len(cur) > 0 {
			out = append(out, string(cur))
		}
	}
	return out
}
