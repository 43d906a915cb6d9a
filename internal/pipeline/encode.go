package pipeline

import "github.com/yuin/goldmark/util"

// EncodeEntities escapes the four HTML-reserved characters: & < > ".
// The ampersand is handled in the same pass as the others, so entities
// introduced by the escape are never escaped again. Apostrophes and every
// other byte pass through unchanged.
func EncodeEntities(text string) string {
	if text == "" {
		return text
	}
	return string(util.EscapeHTML([]byte(text)))
}
