package htmltext

// Package htmltext flattens the HTML bodies the notifications endpoint
// serves into plain text for terminal display.

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip removes markup from s, returning the text content with whitespace
// collapsed. Script and style contents are dropped. Input that is not HTML
// comes back unchanged apart from whitespace normalization.
func Strip(s string) string {
	if s == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return collapseWhitespace(b.String())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "script", "style":
				skipDepth++
			case "br", "p", "div", "li":
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
