package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// hookFlags holds hook selection flags.
type hookFlags struct {
	refs    []string // "stage=name", repeatable
	noHooks bool     // ignore hooks from config
	linkify bool     // shortcut for --hook pre=linkify
	images  bool     // shortcut for --hook pre=url2img
	style   string   // shortcut for --hook after_title=style:NAME
	date    string   // date exposed to snippets
}

// syncFlags holds incremental conversion flags.
type syncFlags struct {
	force     bool
	copyOther bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	workers  int
	title    string
	encoding string
	hooks    hookFlags
	sync     syncFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addHookFlags adds hook flags to a FlagSet.
func addHookFlags(fs *flag.FlagSet, f *hookFlags) {
	fs.StringArrayVar(&f.refs, "hook", nil, "add hook: stage=name (repeatable)")
	fs.BoolVar(&f.noHooks, "no-hooks", false, "ignore hooks from config")
	fs.BoolVar(&f.linkify, "linkify", false, "turn \"[X] URL\" lines into links")
	fs.BoolVar(&f.images, "images", false, "turn image URL lines into <img> tags")
	fs.StringVar(&f.style, "style", "", "embed a style in the document head")
	fs.StringVar(&f.date, "date", "", "date for snippets (\"auto\", \"auto:FORMAT\", or literal)")
}

// addSyncFlags adds incremental conversion flags to a FlagSet.
func addSyncFlags(fs *flag.FlagSet, f *syncFlags) {
	fs.BoolVarP(&f.force, "force", "f", false, "convert even when output is up to date")
	fs.BoolVar(&f.copyOther, "copy-other", false, "copy non-text files in directory mode")
}

// parseConvertFlags parses convert command flags and returns positional args.
// Errors and usage go to w.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.title, "title", "t", "", "document title (default: input file name)")
	fs.StringVar(&f.encoding, "encoding", "", "source encoding (default: utf-8)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addHookFlags(fs, &f.hooks)
	addSyncFlags(fs, &f.sync)

	fs.Usage = func() { printConvertUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
