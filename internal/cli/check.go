package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/nauticalab/paramfile/internal/params"
	"github.com/nauticalab/paramfile/internal/schema"
)

// CheckOptions holds configuration for the check command
type CheckOptions struct {
	SchemaPath string
	Verbose    bool
	Out        io.Writer
}

// checkJob is one parameter file to check; index keeps output in input order
type checkJob struct {
	index int
	file  string
}

type indexedResult struct {
	index  int
	result CheckResult
}

// CheckResult is the outcome of checking one parameter file
type CheckResult struct {
	File     string
	Unknown  []params.UnknownParameter
	Unset    []string
	Err      error
	Duration time.Duration
}

// CheckRun loads every file against the schema and reports unknown and
// unset parameters. It returns an error if any file failed to load.
func CheckRun(files []string, opts CheckOptions) ([]CheckResult, error) {
	p := newPrinter(opts.Out)

	s, err := schema.Load(opts.SchemaPath)
	if err != nil {
		return nil, err
	}

	if len(files) == 1 {
		p.info("Checking parameter file: %s", files[0])
	} else {
		p.info("Checking %d parameter files against %s", len(files), opts.SchemaPath)
	}

	results := runChecks(s, files)

	failures := 0
	for i, result := range results {
		if len(files) > 1 {
			p.plain("[%d/%d] %s (%.1fs)", i+1, len(files), result.File, result.Duration.Seconds())
		}
		printCheckResult(p, s, result, opts.Verbose)
		if result.Err != nil {
			failures++
		}
	}

	if failures > 0 {
		return results, fmt.Errorf("%d of %d parameter files failed to load", failures, len(files))
	}
	return results, nil
}

// runChecks checks files concurrently. Each file gets its own store, so
// workers share only the read-only schema.
func runChecks(s *schema.Schema, files []string) []CheckResult {
	numWorkers := 4
	if len(files) < numWorkers {
		numWorkers = len(files)
	}

	jobs := make(chan checkJob, len(files))
	done := make(chan indexedResult, len(files))

	for i := 0; i < numWorkers; i++ {
		go func() {
			for job := range jobs {
				done <- indexedResult{index: job.index, result: checkFile(s, job.file)}
			}
		}()
	}

	for i, file := range files {
		jobs <- checkJob{index: i, file: file}
	}
	close(jobs)

	results := make([]CheckResult, len(files))
	for range files {
		r := <-done
		results[r.index] = r.result
	}
	return results
}

// checkFile loads a single parameter file into a fresh store
func checkFile(s *schema.Schema, file string) CheckResult {
	start := time.Now()
	result := CheckResult{File: file}

	store, err := s.NewStore(params.WithUnknownHandler(func(p params.UnknownParameter) {
		result.Unknown = append(result.Unknown, p)
	}))
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := store.LoadFromFile(file); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	for _, p := range store.Snapshot() {
		if !p.Set {
			result.Unset = append(result.Unset, p.Name)
		}
	}
	result.Duration = time.Since(start)
	return result
}

// printCheckResult prints one file's result in a user-friendly format
func printCheckResult(p *printer, s *schema.Schema, result CheckResult, verbose bool) {
	for _, u := range result.Unknown {
		p.warn("Unknown parameter %q in line %d of %s will be ignored", u.Name, u.Line, u.Source)
	}

	if result.Err != nil {
		p.fail("%v", result.Err)
		return
	}

	for _, name := range result.Unset {
		if desc := s.Description(name); desc != "" && verbose {
			p.warn("Parameter %q has no value (%s)", name, desc)
		} else {
			p.warn("Parameter %q has no value", name)
		}
	}

	if len(result.Unknown) == 0 && len(result.Unset) == 0 {
		p.ok("%s is valid!", result.File)
	} else {
		p.ok("%s is valid (%d warnings)", result.File, len(result.Unknown)+len(result.Unset))
	}
}
