package pipeline

import (
	"regexp"
	"strings"
)

// URL prefixes recognized by the line filters. Image lines do not accept mailto.
var (
	linkLinePattern  = regexp.MustCompile(`^( *)\[(.)\] ((?:file|ftp|http|mailto|\.|/).*)$`)
	imageLinePattern = regexp.MustCompile(`^( *)((?:file|ftp|http|\.|/).*\.(?:gif|jpeg|jpg|png))$`)
)

// LineFilter rewrites a single line. It must return the line unchanged
// when it does not recognize its shape.
type LineFilter func(line string) string

// Linkify rewrites lines shaped like "[X] URL" into anchors.
//
//	  [1] http://example.com
//
// becomes
//
//	  [1] <a href="http://example.com">http://example.com</a>
func Linkify(text string) string {
	return ApplyLines(text, linkifyLine)
}

// URLToImage rewrites lines consisting of a single image URL into <img> tags.
func URLToImage(text string) string {
	return ApplyLines(text, imageLine)
}

// ApplyLines runs filter on every line of text. Lines are split on '\n' and
// joined back with '\n', so the line structure is preserved exactly.
func ApplyLines(text string, filter LineFilter) string {
	if text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = filter(line)
	}
	return strings.Join(lines, "\n")
}

func linkifyLine(line string) string {
	m := linkLinePattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	indent, tag, url := m[1], m[2], m[3]
	return indent + "[" + tag + `] <a href="` + url + `">` + url + "</a>"
}

func imageLine(line string) string {
	m := imageLinePattern.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	indent, url := m[1], m[2]
	return indent + `<img src="` + url + `">`
}
