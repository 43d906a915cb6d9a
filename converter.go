package txt2html

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alnah/go-txt2html/internal/pipeline"
)

// Input is one text-to-HTML conversion request.
type Input struct {
	// Source provides the body text. A nil Source converts an empty body.
	Source io.Reader

	// Name is the source file name. Its base name is the default title.
	Name string

	// Title overrides the title derived from Name when non-empty.
	Title string
}

// ResolvedTitle returns the title used for the document: the explicit
// Title if set, else the base name of Name, else "".
func (in Input) ResolvedTitle() string {
	if in.Title != "" {
		return in.Title
	}
	if in.Name == "" {
		return ""
	}
	return filepath.Base(in.Name)
}

// Option configures a Converter.
type Option func(*Converter)

// WithRegistry sets the hooks run at each stage. The registry is copied.
func WithRegistry(r *Registry) Option {
	return func(c *Converter) {
		c.registry = r.Clone()
	}
}

// Converter turns plain text into a minimal HTML document.
//
// A Converter only holds read-only state after NewConverter returns and is
// safe for concurrent use, provided its hooks are.
type Converter struct {
	registry  *Registry
	assembler *pipeline.Assembler
}

// NewConverter creates a Converter. Without options no hooks run and the
// output is exactly:
//
//	<!DOCTYPE html>
//	<title>T</title>
//	<pre>B</pre>
func NewConverter(opts ...Option) *Converter {
	c := &Converter{registry: NewRegistry()}
	for _, opt := range opts {
		opt(c)
	}
	c.assembler = pipeline.NewAssembler(toStageHooks(c.registry))
	return c
}

// Convert reads the whole source, then writes the document to w.
// Read failures wrap ErrReadSource. Hook errors are returned unchanged.
func (c *Converter) Convert(w io.Writer, input Input) error {
	var body []byte
	if input.Source != nil {
		var err error
		body, err = io.ReadAll(input.Source)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadSource, err)
		}
	}

	return c.assembler.Assemble(w, pipeline.Document{
		Title: input.ResolvedTitle(),
		Body:  string(body),
	})
}

// ConvertString converts body with the given title and returns the document.
func (c *Converter) ConvertString(title, body string) (string, error) {
	var buf bytes.Buffer
	err := c.assembler.Assemble(&buf, pipeline.Document{Title: title, Body: body})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Registry returns a copy of the hooks the converter runs.
func (c *Converter) Registry() *Registry {
	return c.registry.Clone()
}

// toStageHooks converts the public registry to internal pipeline.StageHooks.
func toStageHooks(r *Registry) pipeline.StageHooks {
	return pipeline.StageHooks{
		Title:      toTransforms(r.Hooks(StageTitle)),
		AfterTitle: toTransforms(r.Hooks(StageAfterTitle)),
		BeforePre:  toTransforms(r.Hooks(StageBeforePre)),
		Pre:        toTransforms(r.Hooks(StagePre)),
		AfterPre:   toTransforms(r.Hooks(StageAfterPre)),
	}
}

func toTransforms(hooks []Hook) []pipeline.Transform {
	if len(hooks) == 0 {
		return nil
	}
	out := make([]pipeline.Transform, len(hooks))
	for i, h := range hooks {
		out[i] = pipeline.Transform(h)
	}
	return out
}
