// Package bench executes the prompt battery against a chat-completion
// endpoint, one request at a time, and aggregates the results.
//
// The loop is strictly sequential: a single in-flight HTTP call at any
// moment, so per-item latency is never skewed by contention. Cancellation is
// cooperative and observed only between items; an in-flight call always runs
// to completion.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/mothbench/mothbench/pkg/catalog"
)

// Status classifies the outcome of one test item.
type Status string

const (
	StatusOK             Status = "success"
	StatusHTTPError      Status = "http_error"
	StatusTransportError Status = "transport_error"

	// StatusSkipped marks items never attempted because the run was
	// cancelled. Skipped items are not recorded in a Summary; the label
	// exists for display layers enumerating the remainder of the battery.
	StatusSkipped Status = "skipped_cancelled"
)

// ErrNoSuccess is returned when no item in the run succeeded; no summary or
// grade is produced in that case.
var ErrNoSuccess = errors.New("no test item succeeded")

// Result records the outcome of one attempted test item. Elapsed and Quality
// are nil unless the item succeeded.
type Result struct {
	Category catalog.Category `json:"category"`
	Name     string           `json:"name"`
	Question string           `json:"question"`
	Answer   string           `json:"answer"`

	Elapsed *time.Duration `json:"elapsed,omitempty"`
	Quality *int           `json:"quality,omitempty"`

	Status   Status `json:"status"`
	HTTPCode int    `json:"http_code,omitempty"` // set for StatusHTTPError
	ErrKind  string `json:"err_kind,omitempty"`  // set for StatusTransportError
}

// Succeeded reports whether the item completed with a usable answer.
func (r Result) Succeeded() bool { return r.Status == StatusOK }

// Summary aggregates one full or partially-cancelled run. Total counts items
// actually attempted; items skipped by cancellation are not included.
type Summary struct {
	Grade      string   `json:"grade"`
	AvgSeconds float64  `json:"avg_seconds"`
	AvgQuality float64  `json:"avg_quality"`
	Success    int      `json:"success"`
	Total      int      `json:"total"`
	Results    []Result `json:"results"`
}

// Scorer grades an answer for a named test. Satisfied by *score.Scorer.
type Scorer interface {
	Score(testName, answer string) int
}

// ProgressFunc is invoked after every attempted item with its position in
// the battery and the finished result. It runs on the benchmark goroutine.
type ProgressFunc func(index, total int, res Result)

// Runner drives the battery against one endpoint.
type Runner struct {
	cfg    Config
	scorer Scorer
	client *client

	// OnProgress, when set, receives every result as it completes.
	OnProgress ProgressFunc
}

// New creates a Runner. The config is normalized; invalid numeric values
// fall back to defaults.
func New(cfg Config, scorer Scorer) *Runner {
	cfg.Normalize()
	return &Runner{
		cfg:    cfg,
		scorer: scorer,
		client: newClient(cfg),
	}
}

// Execute runs the battery in order and returns the aggregated summary.
//
// The context is checked at the top of each iteration only: cancelling
// mid-call lets the call finish before the loop stops, and items never
// attempted produce no Result. Individual item failures are recorded and do
// not abort the run; no retries are performed. If zero items succeed,
// ErrNoSuccess is returned and no summary is produced.
func (r *Runner) Execute(ctx context.Context, items []catalog.TestItem) (*Summary, error) {
	if len(items) == 0 {
		return nil, errors.New("empty test catalog")
	}

	results := make([]Result, 0, len(items))
	for i, item := range items {
		if ctx.Err() != nil {
			slog.Info("run cancelled", "attempted", len(results), "total", len(items))
			break
		}
		res := r.runItem(ctx, item)
		results = append(results, res)
		if r.OnProgress != nil {
			r.OnProgress(i, len(items), res)
		}
	}

	return buildSummary(results)
}

func (r *Runner) runItem(ctx context.Context, item catalog.TestItem) Result {
	res := Result{
		Category: item.Category,
		Name:     item.Name,
		Question: item.Question,
	}

	// Run cancellation must never interrupt the in-flight call; only the
	// request timeouts bound it.
	callCtx := context.WithoutCancel(ctx)

	answer, elapsed, err := r.client.complete(callCtx, r.cfg.SystemPrompt, item.Question, r.cfg.MaxTokens)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) {
			res.Status = StatusHTTPError
			res.HTTPCode = se.Code
			res.Answer = fmt.Sprintf("HTTP error %d", se.Code)
			slog.Warn("test item failed", "test", item.Name, "http_code", se.Code)
		} else {
			kind := errKind(err)
			res.Status = StatusTransportError
			res.ErrKind = kind
			res.Answer = fmt.Sprintf("transport error (%s): %v", kind, err)
			slog.Warn("test item failed", "test", item.Name, "kind", kind, "error", err)
		}
		return res
	}

	quality := r.scorer.Score(item.Name, answer)
	res.Status = StatusOK
	res.Answer = answer
	res.Elapsed = &elapsed
	res.Quality = &quality
	return res
}

// buildSummary aggregates attempted results. Averages are computed over
// successful items only; quality is rounded to one decimal.
func buildSummary(results []Result) (*Summary, error) {
	var elapsedSum float64
	var success int
	var qualitySum, qualityN int

	for _, res := range results {
		if res.Succeeded() {
			elapsedSum += res.Elapsed.Seconds()
			success++
		}
		if res.Quality != nil {
			qualitySum += *res.Quality
			qualityN++
		}
	}

	if success == 0 {
		return nil, ErrNoSuccess
	}

	avg := elapsedSum / float64(success)
	avgQuality := 0.0
	if qualityN > 0 {
		avgQuality = math.Round(float64(qualitySum)/float64(qualityN)*10) / 10
	}

	return &Summary{
		Grade:      gradeFor(avg),
		AvgSeconds: avg,
		AvgQuality: avgQuality,
		Success:    success,
		Total:      len(results),
		Results:    results,
	}, nil
}

// gradeFor maps mean latency to a letter grade. Boundaries are exact:
// an average of exactly 5.0 grades "A", not "S".
func gradeFor(avgSeconds float64) string {
	switch {
	case avgSeconds < 5:
		return "S"
	case avgSeconds < 10:
		return "A"
	case avgSeconds < 18:
		return "B"
	default:
		return "C"
	}
}
