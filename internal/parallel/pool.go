// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel maps extraction over batches of documents. The engine is
// pure and stateless, so documents are embarrassingly parallel: one job per
// file, a fixed pool of workers, no shared state beyond the job queue.
package parallel

import (
	"runtime"
	"sync"

	"shamai-scan/internal/core"
	"shamai-scan/internal/detector"
	"shamai-scan/internal/normalizer"
	"shamai-scan/internal/preprocessors"
)

// Job identifies one document to process.
type Job struct {
	ID   string
	Path string
}

// Result is the outcome for one job. Err covers preprocessing failures
// only; extraction itself never fails.
type Result struct {
	Job        Job
	Extraction *detector.DocumentExtraction
	// TermValue is the value resolved for the batch's search term.
	TermValue *detector.ExtractedValue
	// TermValueFromFallback is true when TermValue came from the
	// full-document search rather than a located section.
	TermValueFromFallback bool
	Err                   error
}

// ProgressFunc is called after each completed job.
type ProgressFunc func(done, total int)

// Pool processes document batches with a fixed number of workers.
type Pool struct {
	engine  *core.Engine
	chain   *preprocessors.Chain
	workers int
}

// NewPool creates a pool. workers <= 0 means one per CPU.
func NewPool(engine *core.Engine, chain *preprocessors.Chain, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{engine: engine, chain: chain, workers: workers}
}

// Process runs all jobs and returns results in job order. term may be
// empty; progress may be nil.
func (p *Pool) Process(jobs []Job, term string, progress ProgressFunc) []Result {
	results := make([]Result, len(jobs))
	indexes := make(chan int)

	var done int
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = p.processOne(jobs[i], term)
				if progress != nil {
					mu.Lock()
					done++
					progress(done, len(jobs))
					mu.Unlock()
				}
			}
		}()
	}

	for i := range jobs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}

func (p *Pool) processOne(job Job, term string) Result {
	content, err := p.chain.Process(job.Path)
	if err != nil {
		return Result{Job: job, Err: err}
	}

	ext := p.engine.Extract(job.ID, content.Text)
	res := Result{Job: job, Extraction: ext}

	if term != "" {
		doc := normalizer.Normalize(content.Text)
		res.TermValue, res.TermValueFromFallback = p.engine.ResolveTerm(ext, doc, term)
	}
	return res
}
