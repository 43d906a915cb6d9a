package txt2html

import "github.com/alnah/go-txt2html/internal/pipeline"

// LinkifyHook rewrites lines of the form "<spaces>[X] URL" into
// "<spaces>[X] <a href="URL">URL</a>". URL must start with file, ftp, http,
// mailto, "." or "/". Other lines are unchanged.
func LinkifyHook(text string) (string, error) {
	return pipeline.Linkify(text), nil
}

// ImageHook rewrites lines of the form "<spaces>URL" into
// "<spaces><img src="URL">" when URL starts with file, ftp, http, "." or "/"
// and ends in .gif, .jpeg, .jpg or .png. Other lines are unchanged.
func ImageHook(text string) (string, error) {
	return pipeline.URLToImage(text), nil
}

// EncodeEntities escapes &, <, > and " in text.
func EncodeEntities(text string) string {
	return pipeline.EncodeEntities(text)
}
