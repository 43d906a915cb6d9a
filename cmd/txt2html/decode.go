package main

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/alnah/go-txt2html/internal/hints"
)

// resolveEncoding looks up a WHATWG encoding label ("utf-8", "latin1",
// "windows-1252", ...).
func resolveEncoding(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q%s", ErrUnsupportedEncoding, label, hints.ForEncoding())
	}
	return enc, nil
}

// decodeReader returns r decoded to UTF-8. UTF-8 sources pass through
// byte for byte.
func decodeReader(r io.Reader, enc encoding.Encoding) io.Reader {
	if r == nil || enc == nil || enc == unicode.UTF8 {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}
