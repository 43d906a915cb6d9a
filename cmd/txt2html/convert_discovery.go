package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/fileutil"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Copy       bool // copied as is instead of converted
}

// discoveryOptions controls discoverFiles.
type discoveryOptions struct {
	inputPath  string
	outputDir  string   // empty = next to each source
	extensions []string // converted in directory mode
	outputExt  string
	copyOther  bool // copy non-matching files into outputDir
}

// discoverFiles lists the files to convert or copy.
//
// A file input is converted whatever its extension, unless it already has
// the output extension. A directory is walked; files with a matching
// extension are converted into the mirrored tree under outputDir. The
// output directory itself is never walked.
func discoverFiles(opts discoveryOptions) ([]FileToConvert, error) {
	info, err := os.Stat(opts.inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if strings.EqualFold(filepath.Ext(opts.inputPath), opts.outputExt) {
			return nil, fmt.Errorf("%w: %s already has the output extension %s", ErrInvalidExtension, opts.inputPath, opts.outputExt)
		}
		outPath := resolveOutputPath(opts.inputPath, opts.outputDir, "", opts.outputExt)
		return []FileToConvert{{InputPath: opts.inputPath, OutputPath: outPath}}, nil
	}

	skipDir := ""
	if opts.outputDir != "" {
		if abs, err := filepath.Abs(opts.outputDir); err == nil {
			skipDir = abs
		}
	}
	// Copying next to the source would copy a file onto itself.
	copyOther := opts.copyOther && opts.outputDir != ""

	var files []FileToConvert
	err = filepath.WalkDir(opts.inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if skipDir != "" && path != opts.inputPath {
				if abs, err := filepath.Abs(path); err == nil && abs == skipDir {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if hasExtension(path, opts.extensions) {
			outPath := resolveOutputPath(path, opts.outputDir, opts.inputPath, opts.outputExt)
			files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
			return nil
		}
		if copyOther {
			outPath := mirrorPath(path, opts.outputDir, opts.inputPath, filepath.Base(path))
			files = append(files, FileToConvert{InputPath: path, OutputPath: outPath, Copy: true})
		}
		return nil
	})

	return files, err
}

// hasExtension reports whether path ends in one of exts, ignoring case.
func hasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// resolveOutputPath determines the HTML output path for a source file.
func resolveOutputPath(inputPath, outputDir, baseInputDir, outputExt string) string {
	name := fileutil.ReplaceExt(filepath.Base(inputPath), outputExt)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	// A single file may name its output file directly.
	if baseInputDir == "" && strings.EqualFold(filepath.Ext(outputDir), outputExt) && !fileutil.DirExists(outputDir) {
		return outputDir
	}

	return mirrorPath(inputPath, outputDir, baseInputDir, name)
}

// mirrorPath places name under outputDir at the position inputPath has
// relative to baseInputDir.
func mirrorPath(inputPath, outputDir, baseInputDir, name string) string {
	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}
	return filepath.Join(outputDir, name)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > txt2html.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, txt2html.MaxPoolSize)
	}
	return nil
}
