package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Hooks.Len() != 0 {
		t.Errorf("Hooks.Len() = %d, want 0", cfg.Hooks.Len())
	}
	if diff := cmp.Diff([]string{".txt"}, cfg.InputExtensions()); diff != "" {
		t.Errorf("InputExtensions() mismatch (-want +got):\n%s", diff)
	}
	if cfg.OutputExtension() != ".html" {
		t.Errorf("OutputExtension() = %q, want .html", cfg.OutputExtension())
	}
	if cfg.InputEncoding() != "utf-8" {
		t.Errorf("InputEncoding() = %q, want utf-8", cfg.InputEncoding())
	}
	if !cfg.PreserveTimes() {
		t.Error("PreserveTimes() = false, want true by default")
	}
	if cfg.CommandTimeoutDuration() != DefaultCommandTimeout {
		t.Errorf("CommandTimeoutDuration() = %v, want %v", cfg.CommandTimeoutDuration(), DefaultCommandTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "1234567890", 10); err != nil {
		t.Errorf("value at limit: unexpected error %v", err)
	}
	err := validateFieldLength("test.field", "12345678901", 10)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("error = %v, want ErrFieldTooLong", err)
	}
	if !strings.Contains(err.Error(), "test.field") {
		t.Errorf("error %q should contain field name", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name: "hooks and commands",
			modify: func(c *Config) {
				c.Hooks.Pre = []string{"linkify", "wc"}
				c.Commands = map[string]string{"wc": "wc -l"}
			},
		},
		{
			name:    "empty hook reference",
			modify:  func(c *Config) { c.Hooks.AfterPre = []string{"  "} },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "hook reference too long",
			modify:  func(c *Config) { c.Hooks.Title = []string{strings.Repeat("x", MaxHookRefLength+1)} },
			wantErr: ErrFieldTooLong,
		},
		{
			name: "too many hooks",
			modify: func(c *Config) {
				for i := 0; i <= MaxHooksPerStage; i++ {
					c.Hooks.Pre = append(c.Hooks.Pre, "linkify")
				}
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "command name with colon",
			modify:  func(c *Config) { c.Commands = map[string]string{"a:b": "true"} },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "command shadows linkify",
			modify:  func(c *Config) { c.Commands = map[string]string{"linkify": "my-linker"} },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "command shadows url2img",
			modify:  func(c *Config) { c.Commands = map[string]string{"url2img": "my-images"} },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "empty command",
			modify:  func(c *Config) { c.Commands = map[string]string{"noop": " "} },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad extension",
			modify:  func(c *Config) { c.Input.Extensions = []string{"txt"} },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "bad output extension",
			modify:  func(c *Config) { c.Output.Extension = "./html" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "title too long",
			modify:  func(c *Config) { c.Document.Title = strings.Repeat("t", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unparsable timeout",
			modify:  func(c *Config) { c.CommandTimeout = "ten seconds" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "negative timeout",
			modify:  func(c *Config) { c.CommandTimeout = "-1s" },
			wantErr: ErrInvalidConfig,
		},
		{
			name:   "zero timeout",
			modify: func(c *Config) { c.CommandTimeout = "0" },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateReportsFirstFieldInOrder(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Hooks.AfterPre = []string{" "}
	cfg.Hooks.Pre = []string{" "}
	cfg.Hooks.Title = []string{" "}

	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "hooks.title[0]") {
			t.Fatalf("run %d: Validate() = %v, want hooks.title[0] reported", i, err)
		}
	}

	cfg = DefaultConfig()
	cfg.Commands = map[string]string{"zeta": " ", "alpha": " ", "mid": " "}
	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "commands.alpha") {
			t.Fatalf("run %d: Validate() = %v, want commands.alpha reported", i, err)
		}
	}
}

func TestHooksConfig_Append(t *testing.T) {
	t.Parallel()

	var h HooksConfig
	if err := h.Append("pre", "linkify", "url2img"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := h.Append("after_title", "style:plain"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := h.Append("body", "x"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Append unknown stage error = %v, want ErrInvalidConfig", err)
	}

	want := map[string][]string{
		"title":       nil,
		"after_title": {"style:plain"},
		"before_pre":  nil,
		"pre":         {"linkify", "url2img"},
		"after_pre":   nil,
	}
	if diff := cmp.Diff(want, h.ByStage()); diff != "" {
		t.Errorf("ByStage() mismatch (-want +got):\n%s", diff)
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
}

func TestConfig_CommandTimeoutDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "", want: DefaultCommandTimeout},
		{value: "0", want: 0},
		{value: "2m", want: 2 * time.Minute},
		{value: "garbage", want: DefaultCommandTimeout},
	}
	for _, tt := range tests {
		cfg := &Config{CommandTimeout: tt.value}
		if got := cfg.CommandTimeoutDuration(); got != tt.want {
			t.Errorf("CommandTimeoutDuration(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestConfig_PreserveTimes(t *testing.T) {
	t.Parallel()

	off := false
	cfg := &Config{Sync: SyncConfig{PreserveTimes: &off}}
	if cfg.PreserveTimes() {
		t.Error("PreserveTimes() = true with explicit false")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "site.yaml")
		content := `
input:
  defaultDir: ./text
  extensions: [".txt", ".text"]
  encoding: windows-1252
output:
  defaultDir: ./html
document:
  title: Archive
  date: auto:long
sync:
  force: true
  preserveTimes: false
hooks:
  after_title: ["style:plain"]
  pre: [linkify, url2img]
  after_pre: [stamp]
commands:
  stamp: "echo generated"
commandTimeout: 5s
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}

		if cfg.Input.DefaultDir != "./text" || cfg.Output.DefaultDir != "./html" {
			t.Errorf("dirs = %q, %q", cfg.Input.DefaultDir, cfg.Output.DefaultDir)
		}
		if diff := cmp.Diff([]string{".txt", ".text"}, cfg.InputExtensions()); diff != "" {
			t.Errorf("extensions mismatch (-want +got):\n%s", diff)
		}
		if cfg.InputEncoding() != "windows-1252" {
			t.Errorf("encoding = %q", cfg.InputEncoding())
		}
		if cfg.Document.Title != "Archive" || cfg.Document.Date != "auto:long" {
			t.Errorf("document = %+v", cfg.Document)
		}
		if !cfg.Sync.Force || cfg.PreserveTimes() {
			t.Errorf("sync = %+v", cfg.Sync)
		}
		if diff := cmp.Diff([]string{"linkify", "url2img"}, cfg.Hooks.Pre); diff != "" {
			t.Errorf("pre hooks mismatch (-want +got):\n%s", diff)
		}
		if cfg.Commands["stamp"] != "echo generated" {
			t.Errorf("commands = %v", cfg.Commands)
		}
		if cfg.CommandTimeoutDuration() != 5*time.Second {
			t.Errorf("timeout = %v", cfg.CommandTimeoutDuration())
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("hooks:\n  body: [linkify]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Fatalf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "invalid.yaml")
		if err := os.WriteFile(path, []byte("commandTimeout: soon\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("missing config name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("no-such-config-name-xyz")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Fatalf("error = %v, want ErrEmptyConfigName", err)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("site")
	if len(paths) < 2 {
		t.Fatalf("SearchPaths returned %v", paths)
	}
	if paths[0] != "site.yaml" || paths[1] != "site.yml" {
		t.Errorf("local candidates = %v, want site.yaml then site.yml", paths[:2])
	}
	for _, p := range paths[2:] {
		if !strings.Contains(p, filepath.Join("txt2html", "site.")) {
			t.Errorf("user candidate %q not under txt2html config dir", p)
		}
	}
}
