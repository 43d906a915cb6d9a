// Package txt2html converts plain text into a minimal HTML document.
//
// # Quick Start
//
// Create a converter and write a document for a text file:
//
//	conv := txt2html.NewConverter()
//
//	f, err := os.Open("notes.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	err = conv.Convert(os.Stdout, txt2html.Input{Source: f, Name: f.Name()})
//
// Without hooks the output is exactly:
//
//	<!DOCTYPE html>
//	<title>notes.txt</title>
//	<pre>...encoded text...</pre>
//
// The title and body are entity-encoded: &, <, > and " become &amp;, &lt;,
// &gt; and &quot;. Nothing else is altered.
//
// # Hooks
//
// Hooks are text transforms registered per Stage before conversion:
//
//	reg := txt2html.NewRegistry()
//	reg.Register(txt2html.StagePre, txt2html.LinkifyHook, txt2html.ImageHook)
//	reg.Register(txt2html.StageAfterPre, func(s string) (string, error) {
//	    return s + "<hr>", nil
//	})
//	conv := txt2html.NewConverter(txt2html.WithRegistry(reg))
//
// Stages run in a fixed order: title, after_title, before_pre, pre,
// after_pre. The title and pre stages receive the encoded title and body;
// the others start from empty text. A stage whose final text is empty emits
// nothing.
//
// # Line Filters
//
// LinkifyHook turns lines like "  [1] http://example.com" into anchors and
// ImageHook turns lines holding a single .gif, .jpeg, .jpg or .png URL into
// <img> tags. They are ordinary hooks and run only when registered.
//
// # Command Line
//
// The txt2html command in cmd/txt2html wraps the library with YAML
// configuration, named hooks (filters, styles, snippets, shell commands),
// directory batch conversion and a skip-if-unchanged check based on file
// modification times.
package txt2html
