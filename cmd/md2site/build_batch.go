package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// PageGenerator is the interface for the page generation service.
type PageGenerator interface {
	Generate(ctx context.Context, input md2site.Input) (*md2site.Page, error)
}

// Compile-time interface implementation check.
var _ PageGenerator = (*md2site.Generator)(nil)

// BuildResult holds the outcome of a single page.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Bytes      int
	Skipped    bool // Draft excluded from the build
	Err        error
	Duration   time.Duration
}

// buildBatch generates files concurrently with a fixed number of workers.
// A failing page does not stop the others.
func buildBatch(ctx context.Context, gen PageGenerator, files []PageFile, workers int) []BuildResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]BuildResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = BuildResult{InputPath: files[idx].InputPath, Err: err}
					continue
				}
				results[idx] = buildPage(ctx, gen, files[idx])
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

// buildPage reads, generates and writes a single page.
func buildPage(ctx context.Context, gen PageGenerator, f PageFile) BuildResult {
	start := time.Now()
	result := BuildResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) BuildResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	page, err := gen.Generate(ctx, md2site.Input{
		Markdown: string(content),
		Source:   f.InputPath,
	})
	if err != nil {
		return finish(err)
	}
	if page.Skipped() {
		result.Skipped = true
		return finish(nil)
	}

	if err := fileutil.WriteFile(f.OutputPath, []byte(page.HTML)); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWritePage, err))
	}

	result.Title = page.Title
	result.Bytes = len(page.HTML)
	return finish(nil)
}

// ResultSummary holds the count of built, skipped and failed pages.
type ResultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
	Bytes     uint64
}

// countResults tallies page outcomes.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
			summary.Bytes += uint64(r.Bytes)
		}
	}
	return summary
}

// printResults outputs one line per page and returns the failure count.
// Failures are always printed, to Stderr.
func printResults(results []BuildResult, quiet bool, env *Environment) int {
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
		case quiet:
		case r.Skipped:
			fmt.Fprintf(env.Stdout, "Skipped draft %s\n", r.InputPath)
		default:
			fmt.Fprintf(env.Stdout, "Created %s (%s)\n", r.OutputPath, humanize.Bytes(uint64(r.Bytes)))
		}
	}
	return countResults(results).Failed
}

// printSummary outputs the totals line of a build.
func printSummary(results []BuildResult, elapsed time.Duration, env *Environment) {
	s := countResults(results)
	fmt.Fprintf(env.Stdout, "\n%s page(s) built (%s), %d skipped, %d failed in %v\n",
		humanize.Comma(int64(s.Succeeded)), humanize.Bytes(s.Bytes), s.Skipped, s.Failed,
		elapsed.Round(time.Millisecond))
}
