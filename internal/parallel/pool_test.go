// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shamai-scan/internal/core"
	"shamai-scan/internal/preprocessors"
)

const decisionTemplate = "הכרעת שמאי מכריע מספר %d בעניין היטל השבחה שנערכה לבקשת הצדדים להליך.\n" +
	"1. טענות המבקש:\n" +
	"שמאי המבקש העריך את השווי בסך %d ש\"ח בלבד והציג נימוקים רבים לעמדתו.\n" +
	"2. דיון והכרעה:\n" +
	"מצאתי כי יש להעמיד את מקדם הדחייה על 0.85 בנסיבות העניין."

func writeDecisions(t *testing.T, n int) ([]Job, string) {
	t.Helper()
	dir := t.TempDir()
	jobs := make([]Job, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("dec-%03d", i)
		path := filepath.Join(dir, id+".txt")
		body := fmt.Sprintf(decisionTemplate, i, 1000000+i*50000)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		jobs = append(jobs, Job{ID: id, Path: path})
	}
	return jobs, dir
}

func TestPoolProcess(t *testing.T) {
	jobs, _ := writeDecisions(t, 8)
	pool := NewPool(core.New(nil), preprocessors.DefaultChain(), 3)

	var calls int
	results := pool.Process(jobs, "", func(done, total int) {
		calls++
		assert.Equal(t, 8, total)
	})

	require.Len(t, results, len(jobs))
	assert.Equal(t, 8, calls)

	for i, r := range results {
		// Results come back in job order regardless of which worker ran them.
		assert.Equal(t, jobs[i].ID, r.Job.ID)
		require.NoError(t, r.Err)
		require.NotNil(t, r.Extraction)
		assert.Equal(t, jobs[i].ID, r.Extraction.ID)
		require.NotNil(t, r.Extraction.PartyA, "party A missing for %s", r.Job.ID)
		require.NotNil(t, r.Extraction.Ruling, "ruling missing for %s", r.Job.ID)
	}
}

func TestPoolResolvesTerm(t *testing.T) {
	jobs, _ := writeDecisions(t, 2)
	pool := NewPool(core.New(nil), preprocessors.DefaultChain(), 0) // one worker per CPU

	results := pool.Process(jobs, "מקדם דחייה", nil)
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.NotNil(t, r.TermValue, "term unresolved for %s", r.Job.ID)
		assert.Equal(t, 0.85, r.TermValue.Numeric)
		assert.False(t, r.TermValueFromFallback)
	}
}

func TestPoolReportsErrors(t *testing.T) {
	jobs, dir := writeDecisions(t, 1)
	jobs = append(jobs,
		Job{ID: "missing", Path: filepath.Join(dir, "missing.txt")},
		Job{ID: "unsupported", Path: filepath.Join(dir, "image.png")},
	)

	pool := NewPool(core.New(nil), preprocessors.DefaultChain(), 2)
	results := pool.Process(jobs, "", nil)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Error(t, results[2].Err)
	assert.Nil(t, results[2].Extraction)
}
