package pipeline

import (
	"bufio"
	"io"
)

// Fixed document fragments.
const (
	doctype    = "<!DOCTYPE html>\n"
	titleOpen  = "<title>"
	titleClose = "</title>\n"
	preOpen    = "<pre>"
	preClose   = "</pre>\n"
)

// StageHooks holds the transform chain for each assembly stage.
// A nil chain passes its stage input through unchanged.
type StageHooks struct {
	Title      []Transform
	AfterTitle []Transform
	BeforePre  []Transform
	Pre        []Transform
	AfterPre   []Transform
}

// Document is the input of one assembly run.
type Document struct {
	Title string // raw title text, encoded by the assembler
	Body  string // raw body text, encoded by the assembler
}

// Assembler writes the HTML skeleton interleaved with stage output.
// It holds no mutable state and may be shared between goroutines.
type Assembler struct {
	Hooks StageHooks
}

// NewAssembler creates an Assembler running the given stage hooks.
func NewAssembler(hooks StageHooks) *Assembler {
	return &Assembler{Hooks: hooks}
}

// Assemble writes the complete document for doc to w.
//
// Stage order is fixed:
//
//	<!DOCTYPE html>
//	<title>{title stage}</title>
//	{after_title stage}
//	{before_pre stage}
//	<pre>{pre stage}</pre>
//	{after_pre stage}
//
// Each stage completes before the next starts. Output is buffered and
// flushed once at the end; a stage error aborts before the flush.
func (a *Assembler) Assemble(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	if err := a.assemble(bw, doc); err != nil {
		return err
	}
	return bw.Flush()
}

func (a *Assembler) assemble(w *bufio.Writer, doc Document) error {
	// bufio.Writer keeps the first write error and reports it on Flush,
	// so the literal fragments below don't need individual checks.
	_, _ = w.WriteString(doctype)

	_, _ = w.WriteString(titleOpen)
	if err := RunStage(w, a.Hooks.Title, EncodeEntities(doc.Title), false); err != nil {
		return err
	}
	_, _ = w.WriteString(titleClose)

	if err := RunStage(w, a.Hooks.AfterTitle, "", true); err != nil {
		return err
	}
	if err := RunStage(w, a.Hooks.BeforePre, "", true); err != nil {
		return err
	}

	_, _ = w.WriteString(preOpen)
	if err := RunStage(w, a.Hooks.Pre, EncodeEntities(doc.Body), false); err != nil {
		return err
	}
	_, _ = w.WriteString(preClose)

	return RunStage(w, a.Hooks.AfterPre, "", false)
}
