package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/assets"
	"github.com/alnah/go-txt2html/internal/config"
	"github.com/alnah/go-txt2html/internal/dateutil"
	"github.com/alnah/go-txt2html/internal/fileutil"
	"github.com/alnah/go-txt2html/internal/hints"
	"github.com/alnah/go-txt2html/internal/hooks"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput             = errors.New("no input specified")
	ErrNoFiles             = errors.New("no text files found")
	ErrReadSource          = errors.New("failed to read source file")
	ErrWriteOutput         = errors.New("failed to write output file")
	ErrInvalidWorkerCount  = errors.New("invalid worker count")
	ErrInvalidExtension    = errors.New("invalid input extension")
	ErrInvalidHookFlag     = errors.New("invalid --hook value")
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)

// stdinArg selects standard input as the source.
const stdinArg = "-"

// stdinTitle is the default title of a document read from stdin.
const stdinTitle = "stdin"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	if err := applyEnvConfig(envCfg, cfg); err != nil {
		return err
	}
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Resolve "auto" date once for entire batch
	date, err := dateutil.Resolve(cfg.Document.Date, env.Now())
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}

	enc, err := resolveEncoding(cfg.InputEncoding())
	if err != nil {
		return err
	}

	converter, err := buildConverter(ctx, cfg, date)
	if err != nil {
		return err
	}

	params := &conversionParams{
		converter:     converter,
		encoding:      enc,
		title:         cfg.Document.Title,
		outputExt:     cfg.OutputExtension(),
		force:         cfg.Sync.Force,
		preserveTimes: cfg.PreserveTimes(),
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	if inputPath == stdinArg {
		return convertStdin(ctx, flags.output, params, env)
	}

	files, err := discoverFiles(discoveryOptions{
		inputPath:  inputPath,
		outputDir:  resolveOutputDir(flags.output, cfg),
		extensions: cfg.InputExtensions(),
		outputExt:  params.outputExt,
		copyOther:  cfg.Sync.CopyOther,
	})
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s (extensions: %s)", ErrNoFiles, inputPath, strings.Join(cfg.InputExtensions(), ", "))
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := txt2html.ResolvePoolSize(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}

	results := convertBatch(ctx, poolSize, files, params)

	failedCount := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return newBatchError(results, failedCount)
	}
	return nil
}

// loadConfig loads the config named by the flag, else by TXT2HTML_CONFIG.
// Without either, defaults apply.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		hint := ""
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			hint = hints.ForConfigNotFound(config.SearchPaths(name))
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// --no-hooks clears configured hooks before flag hooks are added.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	if flags.title != "" {
		cfg.Document.Title = flags.title
	}
	if flags.encoding != "" {
		cfg.Input.Encoding = flags.encoding
	}
	if flags.hooks.date != "" {
		cfg.Document.Date = flags.hooks.date
	}
	if flags.sync.force {
		cfg.Sync.Force = true
	}
	if flags.sync.copyOther {
		cfg.Sync.CopyOther = true
	}

	if flags.hooks.noHooks {
		cfg.Hooks = config.HooksConfig{}
	}
	if flags.hooks.style != "" {
		if err := cfg.Hooks.Append(string(txt2html.StageAfterTitle), styleRef(flags.hooks.style)); err != nil {
			return err
		}
	}
	if flags.hooks.linkify {
		if err := cfg.Hooks.Append(string(txt2html.StagePre), hooks.NameLinkify); err != nil {
			return err
		}
	}
	if flags.hooks.images {
		if err := cfg.Hooks.Append(string(txt2html.StagePre), hooks.NameURL2Img); err != nil {
			return err
		}
	}
	for _, value := range flags.hooks.refs {
		stage, ref, err := parseHookFlag(value)
		if err != nil {
			return err
		}
		if err := cfg.Hooks.Append(string(stage), ref); err != nil {
			return err
		}
	}
	return nil
}

// parseHookFlag splits a --hook value of the form "stage=name".
func parseHookFlag(value string) (txt2html.Stage, string, error) {
	stageName, ref, ok := strings.Cut(value, "=")
	stageName = strings.TrimSpace(stageName)
	ref = strings.TrimSpace(ref)
	if !ok || stageName == "" || ref == "" {
		return "", "", fmt.Errorf("%w: %q (want stage=name)", ErrInvalidHookFlag, value)
	}
	stage, err := txt2html.ParseStage(stageName)
	if err != nil {
		return "", "", fmt.Errorf("--hook %s: %w%s", value, err, hints.ForUnknownStage(stageNames()))
	}
	return stage, ref, nil
}

// styleRef returns the hook reference of a style.
func styleRef(name string) string {
	return "style:" + name
}

func stageNames() []string {
	stages := txt2html.Stages()
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.String()
	}
	return names
}

// buildConverter resolves configured hooks into a Converter.
func buildConverter(ctx context.Context, cfg *config.Config, date string) (*txt2html.Converter, error) {
	loader, err := assets.NewResolver(cfg.Assets.BasePath)
	if err != nil {
		return nil, fmt.Errorf("loading assets: %w", err)
	}

	catalog := hooks.NewCatalog(hooks.Options{
		Assets:         loader,
		Commands:       cfg.Commands,
		CommandTimeout: cfg.CommandTimeoutDuration(),
		Date:           date,
		Version:        Version,
	})

	registry, err := catalog.Registry(ctx, cfg.Hooks.ByStage())
	if err != nil {
		return nil, fmt.Errorf("resolving hooks: %w%s", err, hookHint(err, catalog))
	}
	return txt2html.NewConverter(txt2html.WithRegistry(registry)), nil
}

// hookHint returns the hint matching a hook resolution error.
func hookHint(err error, catalog *hooks.Catalog) string {
	switch {
	case errors.Is(err, hooks.ErrUnknownHook):
		return hints.ForUnknownHook(catalog.Available())
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.Names(assets.KindStyle))
	case errors.Is(err, assets.ErrSnippetNotFound):
		return hints.ForSnippetNotFound(assets.Names(assets.KindSnippet))
	case errors.Is(err, txt2html.ErrUnknownStage):
		return hints.ForUnknownStage(stageNames())
	}
	return ""
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// convertStdin converts standard input to stdout, or to output when set.
// An existing directory as output receives "stdin" plus the output extension.
func convertStdin(ctx context.Context, output string, params *conversionParams, env *Environment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := params.title
	if title == "" {
		title = stdinTitle
	}

	var buf bytes.Buffer
	err := params.converter.Convert(&buf, txt2html.Input{
		Source: decodeReader(env.Stdin, params.encoding),
		Title:  title,
	})
	if err != nil {
		return fmt.Errorf("converting stdin: %w%s", err, runtimeHookHint(err))
	}

	if output == "" {
		if _, err := env.Stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if fileutil.DirExists(output) {
		output = filepath.Join(output, stdinTitle+params.outputExt)
	}
	if err := fileutil.WriteFileAtomic(output, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrWriteOutput, output, err, hints.ForOutputDirectory())
	}
	return nil
}

// runtimeHookHint returns the hint for a hook that failed during conversion.
func runtimeHookHint(err error) string {
	switch {
	case errors.Is(err, hooks.ErrHookTimeout):
		return hints.ForHookTimeout()
	case errors.Is(err, hooks.ErrHookCommand):
		return hints.ForHookCommand()
	}
	return ""
}
