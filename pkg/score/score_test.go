package score

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScore_EmptyAnswer(t *testing.T) {
	s := Default()
	for _, name := range []string{"Moth & Flame", "totally unknown"} {
		if got := s.Score(name, ""); got != 0 {
			t.Errorf("Score(%q, \"\") = %d, want 0", name, got)
		}
		if got := s.Score(name, "   \n\t"); got != 0 {
			t.Errorf("Score(%q, whitespace) = %d, want 0", name, got)
		}
	}
}

func TestScore_UnknownName(t *testing.T) {
	s := Default()
	if got := s.Score("no such test", "any non-empty answer"); got != 5 {
		t.Fatalf("expected neutral 5 for unknown name, got %d", got)
	}
}

func TestScore_Deterministic(t *testing.T) {
	s := Default()
	answer := "The moth never reaches the flame, a Zeno-style infinite halving."
	first := s.Score("Moth & Flame", answer)
	for i := 0; i < 5; i++ {
		if got := s.Score("Moth & Flame", answer); got != first {
			t.Fatalf("score changed across calls: %d != %d", got, first)
		}
	}
}

func TestScore_KeywordArithmetic(t *testing.T) {
	s := New(map[string]Rubric{
		"t": {Correct: []string{"alpha", "beta"}, Wrong: []string{"gamma"}},
	})

	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"base only", "nothing matches", 5},
		{"one correct", "alpha here", 6},
		{"two correct", "alpha and beta", 7},
		{"one wrong", "gamma only", 3},
		{"mixed", "alpha beta gamma", 5},
		{"case insensitive", "ALPHA and BeTa", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score("t", tt.answer); got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScore_ClampHigh(t *testing.T) {
	many := make([]string, 20)
	for i := range many {
		many[i] = string(rune('a' + i))
	}
	s := New(map[string]Rubric{"t": {Correct: many}})
	answer := strings.Join(many, " ")
	if got := s.Score("t", answer); got != 10 {
		t.Fatalf("expected clamp to 10, got %d", got)
	}
}

func TestScore_ClampLow(t *testing.T) {
	s := New(map[string]Rubric{
		"t": {Wrong: []string{"bad1", "bad2", "bad3", "bad4"}},
	})
	if got := s.Score("t", "bad1 bad2 bad3 bad4"); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}

// Overlapping keywords are counted independently: containment only, no
// word boundaries.
func TestScore_OverlappingKeywords(t *testing.T) {
	s := New(map[string]Rubric{
		"t": {Correct: []string{"log", "logic"}},
	})
	if got := s.Score("t", "pure logic"); got != 7 {
		t.Fatalf("expected both substrings to count (7), got %d", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load("/nonexistent/rubrics.yaml")
	if err == nil {
		t.Fatal("expected informational error for missing file")
	}
	// Falls back to built-ins.
	if !s.Has("Moth & Flame") {
		t.Fatal("expected built-in rubrics after fallback")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubrics.yaml")
	if err := os.WriteFile(path, []byte("{{{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err == nil {
		t.Fatal("expected informational error for corrupt file")
	}
	if !s.Has("Gravity") {
		t.Fatal("expected built-in rubrics after fallback")
	}
}

func TestLoad_Override(t *testing.T) {
	content := `
Custom Test:
  correct: ["yes"]
  wrong: ["no"]
`
	path := filepath.Join(t.TempDir(), "rubrics.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Score("Custom Test", "yes indeed"); got != 6 {
		t.Fatalf("expected 6 from override rubric, got %d", got)
	}
	// Override replaces the built-in set entirely.
	if s.Has("Moth & Flame") {
		t.Fatal("built-ins should not leak into an override set")
	}
}
