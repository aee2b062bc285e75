package bench

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mothbench/mothbench/pkg/catalog"
)

type stubScorer struct {
	fn func(name, answer string) int
}

func (s stubScorer) Score(name, answer string) int {
	if s.fn != nil {
		return s.fn(name, answer)
	}
	return 7
}

func testItems(n int) []catalog.TestItem {
	items := make([]catalog.TestItem, n)
	for i := range items {
		items[i] = catalog.TestItem{
			Category: catalog.CatLogic,
			Name:     fmt.Sprintf("Test %d", i),
			Question: fmt.Sprintf("question %d", i),
		}
	}
	return items
}

// chatHandler answers with the given content, or a 500 when content is "".
func chatHandler(t *testing.T, answers map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		question := req.Messages[len(req.Messages)-1].Content
		answer, ok := answers[question]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%q}}]}`, answer)
	}
}

func TestExecute_SuccessAndHTTPError(t *testing.T) {
	srv := httptest.NewServer(chatHandler(t, map[string]string{
		"question 0": "a fine answer",
	}))
	defer srv.Close()

	r := New(Config{BaseURL: srv.URL}, stubScorer{})
	sum, err := r.Execute(context.Background(), testItems(2))
	if err != nil {
		t.Fatal(err)
	}

	if sum.Success != 1 || sum.Total != 2 {
		t.Fatalf("expected 1/2, got %d/%d", sum.Success, sum.Total)
	}
	if sum.Grade != "S" {
		t.Fatalf("expected grade S for a local round-trip, got %s", sum.Grade)
	}
	if sum.AvgQuality != 7.0 {
		t.Fatalf("expected avg quality 7.0, got %.1f", sum.AvgQuality)
	}

	ok := sum.Results[0]
	if !ok.Succeeded() || ok.Answer != "a fine answer" {
		t.Fatalf("unexpected first result: %+v", ok)
	}
	if ok.Elapsed == nil || ok.Quality == nil || *ok.Quality != 7 {
		t.Fatalf("success result must carry elapsed and quality: %+v", ok)
	}

	failed := sum.Results[1]
	if failed.Status != StatusHTTPError || failed.HTTPCode != 500 {
		t.Fatalf("unexpected second result: %+v", failed)
	}
	if failed.Elapsed != nil || failed.Quality != nil {
		t.Fatalf("failed result must have nil elapsed and quality: %+v", failed)
	}
}

func TestExecute_RequestShape(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	}))
	defer srv.Close()

	r := New(Config{BaseURL: srv.URL + "/", MaxTokens: 256, SystemPrompt: "be brief"}, stubScorer{})
	if _, err := r.Execute(context.Background(), testItems(1)); err != nil {
		t.Fatal(err)
	}

	if got.MaxTokens != 256 {
		t.Fatalf("expected max_tokens 256, got %d", got.MaxTokens)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[0].Content != "be brief" {
		t.Fatalf("expected leading system message, got %+v", got.Messages)
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != "question 0" {
		t.Fatalf("unexpected user message: %+v", got.Messages[1])
	}
}

func TestExecute_NoSystemMessage(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	}))
	defer srv.Close()

	// An empty system prompt means no system message at all.
	r := New(Config{BaseURL: srv.URL}, stubScorer{})
	if _, err := r.Execute(context.Background(), testItems(1)); err != nil {
		t.Fatal(err)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" {
		t.Fatalf("expected single user message, got %+v", got.Messages)
	}
}

func TestExecute_PlaceholderAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`) // 200 with no choices
	}))
	defer srv.Close()

	scored := ""
	r := New(Config{BaseURL: srv.URL}, stubScorer{fn: func(name, answer string) int {
		scored = answer
		return 3
	}})
	sum, err := r.Execute(context.Background(), testItems(1))
	if err != nil {
		t.Fatal(err)
	}

	res := sum.Results[0]
	if !res.Succeeded() || res.Answer != PlaceholderAnswer {
		t.Fatalf("expected successful placeholder result, got %+v", res)
	}
	// Quality scoring still runs against the placeholder.
	if scored != PlaceholderAnswer || res.Quality == nil || *res.Quality != 3 {
		t.Fatalf("expected placeholder to be scored, got %q / %+v", scored, res.Quality)
	}
}

func TestExecute_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // port is now refused

	r := New(Config{BaseURL: url}, stubScorer{})
	_, err := r.Execute(context.Background(), testItems(1))
	if !errors.Is(err, ErrNoSuccess) {
		t.Fatalf("expected ErrNoSuccess, got %v", err)
	}
}

func TestExecute_TransportErrorRecorded(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	r := New(Config{BaseURL: deadURL}, stubScorer{})
	var recorded Result
	r.OnProgress = func(i, total int, res Result) { recorded = res }
	_, _ = r.Execute(context.Background(), testItems(1))

	if recorded.Status != StatusTransportError {
		t.Fatalf("expected transport_error, got %+v", recorded)
	}
	if recorded.ErrKind == "" {
		t.Fatal("expected an error kind label")
	}
	if recorded.Elapsed != nil || recorded.Quality != nil {
		t.Fatalf("transport failure must have nil elapsed and quality: %+v", recorded)
	}
}

func TestExecute_CancellationBetweenItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	r := New(Config{BaseURL: srv.URL}, stubScorer{})
	r.OnProgress = func(i, total int, res Result) {
		if i == 0 {
			cancel() // requested after item 0 completes, before item 1 starts
		}
	}

	sum, err := r.Execute(ctx, testItems(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.Results) != 1 {
		t.Fatalf("expected exactly 1 result after cancellation, got %d", len(sum.Results))
	}
	if sum.Total != 1 || sum.Success != 1 {
		t.Fatalf("summary must cover attempted items only: %+v", sum)
	}
}

func TestExecute_EmptyCatalog(t *testing.T) {
	r := New(DefaultConfig(), stubScorer{})
	if _, err := r.Execute(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestGradeFor_BoundaryExact(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{4.999, "S"},
		{5.0, "A"},
		{9.999, "A"},
		{10.0, "B"},
		{17.999, "B"},
		{18.0, "C"},
		{60.0, "C"},
	}
	for _, tt := range tests {
		if got := gradeFor(tt.avg); got != tt.want {
			t.Errorf("gradeFor(%v) = %s, want %s", tt.avg, got, tt.want)
		}
	}
}

func TestBuildSummary_QualityRounding(t *testing.T) {
	mk := func(q int, d time.Duration) Result {
		return Result{Status: StatusOK, Elapsed: &d, Quality: &q}
	}
	sum, err := buildSummary([]Result{
		mk(7, 2*time.Second),
		mk(7, 2*time.Second),
		mk(8, 2*time.Second),
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum.AvgQuality != 7.3 {
		t.Fatalf("expected 7.3, got %v", sum.AvgQuality)
	}
	if sum.AvgSeconds != 2.0 || sum.Grade != "S" {
		t.Fatalf("unexpected latency aggregation: %+v", sum)
	}
}

func TestBuildSummary_NoSuccess(t *testing.T) {
	_, err := buildSummary([]Result{{Status: StatusHTTPError, HTTPCode: 503}})
	if !errors.Is(err, ErrNoSuccess) {
		t.Fatalf("expected ErrNoSuccess, got %v", err)
	}
}

func TestConfig_Normalize(t *testing.T) {
	cfg := Config{BaseURL: "http://host/v1/ ", MaxTokens: -3}
	cfg.Normalize()
	if cfg.BaseURL != "http://host/v1" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.MaxTokens != 512 {
		t.Fatalf("expected fallback 512, got %d", cfg.MaxTokens)
	}
	if cfg.ConnectTimeout != 5*time.Second || cfg.ReadTimeout != 45*time.Second {
		t.Fatalf("expected default timeouts, got %v / %v", cfg.ConnectTimeout, cfg.ReadTimeout)
	}
}
