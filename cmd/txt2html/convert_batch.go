package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/text/encoding"

	"github.com/alnah/go-txt2html"
	"github.com/alnah/go-txt2html/internal/fileutil"
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	converter     *txt2html.Converter
	encoding      encoding.Encoding
	title         string // overrides the file name title when set
	outputExt     string
	force         bool
	preserveTimes bool
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
	Skipped    bool // output already up to date
	Copied     bool // copied instead of converted
}

// convertBatch processes files concurrently on poolSize workers.
// Results keep the order of files.
func convertBatch(ctx context.Context, poolSize int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := poolSize
	if concurrency > len(files) {
		concurrency = len(files)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Err:        ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
// Nothing is written when conversion fails.
func convertFile(f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
		Copied:     f.Copy,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if !params.force && fileutil.IsUpToDate(f.InputPath, f.OutputPath) {
		result.Skipped = true
		return finish(nil)
	}

	if f.Copy {
		if err := fileutil.CopyFile(f.InputPath, f.OutputPath); err != nil {
			return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
		return finish(nil)
	}

	src, err := os.Open(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %w", ErrReadSource, err))
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return finish(fmt.Errorf("%w: %w", ErrReadSource, err))
	}

	var buf bytes.Buffer
	err = params.converter.Convert(&buf, txt2html.Input{
		Source: decodeReader(src, params.encoding),
		Name:   f.InputPath,
		Title:  params.title,
	})
	if err != nil {
		return finish(err)
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, buf.Bytes()); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	if params.preserveTimes {
		if err := fileutil.SyncModTime(f.OutputPath, info.ModTime()); err != nil {
			return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
	}

	return finish(nil)
}

// ResultSummary holds the count of succeeded, skipped and failed conversions.
type ResultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies conversion outcomes. Skipped files are not counted
// as succeeded.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Returns the number of failures.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		switch {
		case r.Skipped:
			if verbose {
				fmt.Fprintf(env.Stdout, "Skipped %s (up to date)\n", r.InputPath)
			}
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		case r.Copied:
			fmt.Fprintf(env.Stdout, "Copied %s\n", r.OutputPath)
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		if summary.Skipped > 0 {
			fmt.Fprintf(env.Stdout, "\n%d succeeded, %d skipped, %d failed\n", summary.Succeeded, summary.Skipped, summary.Failed)
		} else {
			fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
		}
	}

	return summary.Failed
}

// batchError reports failed conversions. It unwraps to the first failure
// so exitCodeFor can classify the batch.
type batchError struct {
	failed int
	total  int
	first  error
}

func newBatchError(results []ConversionResult, failed int) error {
	e := &batchError{failed: failed, total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			e.first = r.Err
			break
		}
	}
	return e
}

func (e *batchError) Error() string {
	msg := fmt.Sprintf("%d of %d conversion(s) failed", e.failed, e.total)
	if errors.Is(e.first, context.Canceled) {
		msg += " (interrupted)"
	}
	return msg + runtimeHookHint(e.first)
}

func (e *batchError) Unwrap() error {
	return e.first
}
