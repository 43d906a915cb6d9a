package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/fileutil"
	"github.com/alnah/go-txt2html/internal/hooks"
	"github.com/alnah/go-txt2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxTitleLength     = 200  // document.title
	MaxPathLength      = 4096 // directories and asset paths
	MaxHookRefLength   = 100  // "style:plain", "snippet:footer", command names
	MaxCommandLength   = 2048 // shell command line
	MaxHooksPerStage   = 32
	MaxExtensionLength = 16 // ".txt", ".html"
	MaxEncodingLength  = 40 // "windows-1252", "iso-8859-15"
	MaxDateLength      = 60 // "auto:MMMM D, YYYY"
)

// Default values.
const (
	DefaultInputExtension  = ".txt"
	DefaultOutputExtension = ".html"
	DefaultEncoding        = "utf-8"
	DefaultCommandTimeout  = 10 * time.Second
)

// appName is the directory name used under the user config directory.
const appName = "txt2html"

// Config holds all configuration for document generation.
type Config struct {
	Input          InputConfig       `yaml:"input"`
	Output         OutputConfig      `yaml:"output"`
	Document       DocumentConfig    `yaml:"document"`
	Assets         AssetsConfig      `yaml:"assets"`
	Sync           SyncConfig        `yaml:"sync"`
	Hooks          HooksConfig       `yaml:"hooks"`
	Commands       map[string]string `yaml:"commands"`       // command hook name -> shell command
	CommandTimeout string            `yaml:"commandTimeout"` // Go duration, "" = default, "0" = none
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir"` // Default input (empty = must specify)
	Extensions []string `yaml:"extensions"` // Converted in directory mode (empty = .txt)
	Encoding   string   `yaml:"encoding"`   // Source charset (empty = utf-8)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = next to source)
	Extension  string `yaml:"extension"`  // Output extension (empty = .html)
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Title string `yaml:"title"` // Title override (empty = source base name)
	Date  string `yaml:"date"`  // Date for snippets: literal, "auto" or "auto:FORMAT"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = embedded assets only
}

// SyncConfig controls incremental conversion.
type SyncConfig struct {
	Force         bool  `yaml:"force"`         // Convert even when output is up to date
	CopyOther     bool  `yaml:"copyOther"`     // Copy non-text files in directory mode
	PreserveTimes *bool `yaml:"preserveTimes"` // Set output mtime to source mtime (nil = true)
}

// HooksConfig lists hook references per stage, in execution order.
type HooksConfig struct {
	Title      []string `yaml:"title"`
	AfterTitle []string `yaml:"after_title"`
	BeforePre  []string `yaml:"before_pre"`
	Pre        []string `yaml:"pre"`
	AfterPre   []string `yaml:"after_pre"`
}

// ByStage returns the hook references keyed by stage name.
func (h HooksConfig) ByStage() map[string][]string {
	return map[string][]string{
		"title":       h.Title,
		"after_title": h.AfterTitle,
		"before_pre":  h.BeforePre,
		"pre":         h.Pre,
		"after_pre":   h.AfterPre,
	}
}

// Append adds references to the named stage.
// Returns ErrInvalidConfig for an unknown stage name.
func (h *HooksConfig) Append(stage string, refs ...string) error {
	switch stage {
	case "title":
		h.Title = append(h.Title, refs...)
	case "after_title":
		h.AfterTitle = append(h.AfterTitle, refs...)
	case "before_pre":
		h.BeforePre = append(h.BeforePre, refs...)
	case "pre":
		h.Pre = append(h.Pre, refs...)
	case "after_pre":
		h.AfterPre = append(h.AfterPre, refs...)
	default:
		return fmt.Errorf("%w: unknown hook stage %q", ErrInvalidConfig, stage)
	}
	return nil
}

// Len returns the number of hook references across stages.
func (h HooksConfig) Len() int {
	return len(h.Title) + len(h.AfterTitle) + len(h.BeforePre) + len(h.Pre) + len(h.AfterPre)
}

// InputExtensions returns the configured extensions or the default.
func (c *Config) InputExtensions() []string {
	if len(c.Input.Extensions) == 0 {
		return []string{DefaultInputExtension}
	}
	return c.Input.Extensions
}

// OutputExtension returns the configured output extension or the default.
func (c *Config) OutputExtension() string {
	if c.Output.Extension == "" {
		return DefaultOutputExtension
	}
	return c.Output.Extension
}

// InputEncoding returns the configured source charset or the default.
func (c *Config) InputEncoding() string {
	if c.Input.Encoding == "" {
		return DefaultEncoding
	}
	return c.Input.Encoding
}

// PreserveTimes reports whether output mtimes follow source mtimes.
func (c *Config) PreserveTimes() bool {
	return c.Sync.PreserveTimes == nil || *c.Sync.PreserveTimes
}

// CommandTimeoutDuration returns the command hook timeout.
// Zero means no timeout. Call Validate first: invalid values yield the default.
func (c *Config) CommandTimeoutDuration() time.Duration {
	if c.CommandTimeout == "" {
		return DefaultCommandTimeout
	}
	d, err := time.ParseDuration(c.CommandTimeout)
	if err != nil {
		return DefaultCommandTimeout
	}
	return d
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	for i, ext := range c.Input.Extensions {
		if err := validateExtension(fmt.Sprintf("input.extensions[%d]", i), ext); err != nil {
			return err
		}
	}
	if err := validateFieldLength("input.encoding", c.Input.Encoding, MaxEncodingLength); err != nil {
		return err
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if c.Output.Extension != "" {
		if err := validateExtension("output.extension", c.Output.Extension); err != nil {
			return err
		}
	}

	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.date", c.Document.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	byStage := c.Hooks.ByStage()
	for _, stage := range txt2html.Stages() {
		refs := byStage[string(stage)]
		if len(refs) > MaxHooksPerStage {
			return fmt.Errorf("%w: hooks.%s: %d hooks (max %d)", ErrInvalidConfig, stage, len(refs), MaxHooksPerStage)
		}
		for i, ref := range refs {
			field := fmt.Sprintf("hooks.%s[%d]", stage, i)
			if strings.TrimSpace(ref) == "" {
				return fmt.Errorf("%w: %s: empty hook reference", ErrInvalidConfig, field)
			}
			if err := validateFieldLength(field, ref, MaxHookRefLength); err != nil {
				return err
			}
		}
	}

	names := make([]string, 0, len(c.Commands))
	for name := range c.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := c.Commands[name]
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, ": \t") {
			return fmt.Errorf("%w: commands: invalid name %q", ErrInvalidConfig, name)
		}
		if name == hooks.NameLinkify || name == hooks.NameURL2Img {
			return fmt.Errorf("%w: commands.%s: name is reserved for the builtin hook", ErrInvalidConfig, name)
		}
		if err := validateFieldLength("commands."+name, name, MaxHookRefLength); err != nil {
			return err
		}
		if strings.TrimSpace(cmd) == "" {
			return fmt.Errorf("%w: commands.%s: empty command", ErrInvalidConfig, name)
		}
		if err := validateFieldLength("commands."+name, cmd, MaxCommandLength); err != nil {
			return err
		}
	}

	if c.CommandTimeout != "" {
		d, err := time.ParseDuration(c.CommandTimeout)
		if err != nil {
			return fmt.Errorf("%w: commandTimeout: %v", ErrInvalidConfig, err)
		}
		if d < 0 {
			return fmt.Errorf("%w: commandTimeout: must be >= 0, got %s", ErrInvalidConfig, d)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateExtension checks that ext looks like ".txt".
func validateExtension(fieldName, ext string) error {
	if err := validateFieldLength(fieldName, ext, MaxExtensionLength); err != nil {
		return err
	}
	if len(ext) < 2 || ext[0] != '.' || strings.ContainsAny(ext[1:], "./\\\x00") {
		return fmt.Errorf("%w: %s: %q must look like \".txt\"", ErrInvalidConfig, fieldName, ext)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: no hooks, defaults everywhere.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: ""},
		Assets: AssetsConfig{BasePath: ""},
		Sync:   SyncConfig{Force: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
// Tries extensions .yaml then .yml, in the current directory, then in the
// user config directory (e.g. ~/.config/txt2html/).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
