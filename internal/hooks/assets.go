package hooks

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/alnah/go-txt2html"
)

// snippetData is the template data of snippets.
type snippetData struct {
	Date    string
	Version string
}

func (c *Catalog) styleHook(name string) (txt2html.Hook, error) {
	css, err := c.assets.LoadStyle(name)
	if err != nil {
		return nil, fmt.Errorf("hook %s%s: %w", prefixStyle, name, err)
	}
	if css != "" && css[len(css)-1] != '\n' {
		css += "\n"
	}
	block := "<style>\n" + css + "</style>"
	return func(text string) (string, error) {
		return appendBlock(text, block), nil
	}, nil
}

func (c *Catalog) snippetHook(name string) (txt2html.Hook, error) {
	src, err := c.assets.LoadSnippet(name)
	if err != nil {
		return nil, fmt.Errorf("hook %s%s: %w", prefixSnippet, name, err)
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSnippetRender, name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, c.data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSnippetRender, name, err)
	}
	block := buf.String()
	return func(text string) (string, error) {
		return appendBlock(text, block), nil
	}, nil
}
