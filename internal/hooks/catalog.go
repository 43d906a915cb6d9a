package hooks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/assets"
)

// Builtin hook names.
const (
	NameLinkify = "linkify"
	NameURL2Img = "url2img"
)

// Reference prefixes for asset hooks.
const (
	prefixStyle   = "style:"
	prefixSnippet = "snippet:"
)

// DefaultShell runs command hooks.
const DefaultShell = "sh"

// Options configures a Catalog.
type Options struct {
	Assets         assets.Loader     // nil = embedded assets only
	Commands       map[string]string // command hook name -> shell command
	CommandTimeout time.Duration     // 0 = no timeout
	Shell          string            // empty = DefaultShell
	Date           string            // exposed to snippets as .Date
	Version        string            // exposed to snippets as .Version
}

// Catalog resolves hook references.
type Catalog struct {
	assets   assets.Loader
	commands map[string]string
	timeout  time.Duration
	shell    string
	data     snippetData
}

// NewCatalog creates a Catalog from opts.
func NewCatalog(opts Options) *Catalog {
	c := &Catalog{
		assets:   opts.Assets,
		commands: make(map[string]string, len(opts.Commands)),
		timeout:  opts.CommandTimeout,
		shell:    opts.Shell,
		data:     snippetData{Date: opts.Date, Version: opts.Version},
	}
	if c.assets == nil {
		c.assets = assets.NewEmbeddedLoader()
	}
	if c.shell == "" {
		c.shell = DefaultShell
	}
	for name, cmd := range opts.Commands {
		c.commands[name] = cmd
	}
	return c
}

// Resolve returns the hook named by ref.
// Asset hooks load and render their asset here, so a missing style or a
// broken snippet fails before any conversion starts.
// ctx bounds command hooks for the lifetime of the returned hook.
func (c *Catalog) Resolve(ctx context.Context, ref string) (txt2html.Hook, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidHookRef)
	}

	if kind, name, ok := strings.Cut(ref, ":"); ok {
		switch kind + ":" {
		case prefixStyle:
			return c.styleHook(name)
		case prefixSnippet:
			return c.snippetHook(name)
		default:
			return nil, fmt.Errorf("%w: %q (prefix must be style: or snippet:)", ErrInvalidHookRef, ref)
		}
	}

	switch ref {
	case NameLinkify:
		return txt2html.LinkifyHook, nil
	case NameURL2Img:
		return txt2html.ImageHook, nil
	}

	if command, ok := c.commands[ref]; ok {
		return c.commandHook(ctx, ref, command), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHook, ref)
}

// Registry resolves the references of every stage into a new Registry.
// refs is keyed by stage name; hooks keep their listed order.
// Returns txt2html.ErrUnknownStage for an unknown key.
func (c *Catalog) Registry(ctx context.Context, refs map[string][]string) (*txt2html.Registry, error) {
	keys := make([]string, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := txt2html.ParseStage(k); err != nil {
			return nil, err
		}
	}

	reg := txt2html.NewRegistry()
	for _, stage := range txt2html.Stages() {
		for _, ref := range refs[string(stage)] {
			hook, err := c.Resolve(ctx, ref)
			if err != nil {
				return nil, fmt.Errorf("stage %s: %w", stage, err)
			}
			if err := reg.Register(stage, hook); err != nil {
				return nil, err
			}
		}
	}
	return reg, nil
}

// Available lists every reference this catalog resolves: builtins,
// embedded styles and snippets, then configured commands.
func (c *Catalog) Available() []string {
	names := []string{NameLinkify, NameURL2Img}
	for _, s := range assets.Names(assets.KindStyle) {
		names = append(names, prefixStyle+s)
	}
	for _, s := range assets.Names(assets.KindSnippet) {
		names = append(names, prefixSnippet+s)
	}

	commands := make([]string, 0, len(c.commands))
	for name := range c.commands {
		commands = append(commands, name)
	}
	sort.Strings(commands)
	return append(names, commands...)
}

// appendBlock appends block to text on a line of its own.
// The trailing newline of block is dropped: the assembler adds line breaks
// after the stages that need them.
func appendBlock(text, block string) string {
	block = strings.TrimSuffix(block, "\n")
	if block == "" {
		return text
	}
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text + block
}
