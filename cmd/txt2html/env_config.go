package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-txt2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // TXT2HTML_CONFIG: config file name or path
	InputDir   string // TXT2HTML_INPUT_DIR: default input directory
	OutputDir  string // TXT2HTML_OUTPUT_DIR: default output directory
	Title      string // TXT2HTML_TITLE: document title
	Encoding   string // TXT2HTML_ENCODING: source encoding
	Style      string // TXT2HTML_STYLE: style added after the title
	Date       string // TXT2HTML_DATE: date for snippets
	Workers    int    // TXT2HTML_WORKERS: parallel workers
}

// knownEnvVars lists valid TXT2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TXT2HTML_CONFIG":     true,
	"TXT2HTML_INPUT_DIR":  true,
	"TXT2HTML_OUTPUT_DIR": true,
	"TXT2HTML_TITLE":      true,
	"TXT2HTML_ENCODING":   true,
	"TXT2HTML_STYLE":      true,
	"TXT2HTML_DATE":       true,
	"TXT2HTML_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TXT2HTML_CONFIG"),
		InputDir:   os.Getenv("TXT2HTML_INPUT_DIR"),
		OutputDir:  os.Getenv("TXT2HTML_OUTPUT_DIR"),
		Title:      os.Getenv("TXT2HTML_TITLE"),
		Encoding:   os.Getenv("TXT2HTML_ENCODING"),
		Style:      os.Getenv("TXT2HTML_STYLE"),
		Date:       os.Getenv("TXT2HTML_DATE"),
	}

	// Invalid values are ignored, like an unset variable.
	if workers := os.Getenv("TXT2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized TXT2HTML_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "TXT2HTML_") {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) error {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Title != "" && cfg.Document.Title == "" {
		cfg.Document.Title = env.Title
	}
	if env.Encoding != "" && cfg.Input.Encoding == "" {
		cfg.Input.Encoding = env.Encoding
	}
	if env.Date != "" && cfg.Document.Date == "" {
		cfg.Document.Date = env.Date
	}
	if env.Style != "" && len(cfg.Hooks.AfterTitle) == 0 {
		return cfg.Hooks.Append("after_title", styleRef(env.Style))
	}
	return nil
}
