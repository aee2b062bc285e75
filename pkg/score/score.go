// Package score grades answer text against per-question keyword rubrics.
//
// The scoring model is deliberately simple and auditable: start from a
// neutral base of 5, add 1 for every "correct" keyword found in the answer,
// subtract 2 for every "wrong" keyword, clamp to [0, 10]. Matching is
// case-insensitive substring containment with no tokenization, so
// overlapping keywords are counted independently.
package score

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	baseScore = 5
	minScore  = 0
	maxScore  = 10
)

// Rubric holds the keyword lists for one test name.
type Rubric struct {
	Correct []string `yaml:"correct"`
	Wrong   []string `yaml:"wrong"`
}

// Scorer maps test names to rubrics. It is immutable after construction
// and safe for concurrent use.
type Scorer struct {
	rubrics map[string]Rubric
}

// New creates a Scorer from an explicit rubric set.
func New(rubrics map[string]Rubric) *Scorer {
	m := make(map[string]Rubric, len(rubrics))
	for k, v := range rubrics {
		m[k] = v
	}
	return &Scorer{rubrics: m}
}

// Default returns a Scorer with the built-in rubric set.
func Default() *Scorer {
	return New(builtinRubrics)
}

// Load reads a rubric override file (YAML map of test name to rubric) and
// returns a Scorer for it. A missing or unparsable file falls back to the
// built-in rubrics; the error is informational only.
func Load(path string) (*Scorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read rubrics %s: %w", path, err)
	}
	var rubrics map[string]Rubric
	if err := yaml.Unmarshal(data, &rubrics); err != nil {
		return Default(), fmt.Errorf("parse rubrics %s: %w", path, err)
	}
	if len(rubrics) == 0 {
		return Default(), nil
	}
	return New(rubrics), nil
}

// Score grades an answer for the named test.
//
// An empty answer scores 0 regardless of the test name. A test without a
// rubric scores the neutral base. The function is pure: no state is carried
// across calls.
func (s *Scorer) Score(testName, answer string) int {
	if strings.TrimSpace(answer) == "" {
		return 0
	}
	rubric, ok := s.rubrics[testName]
	if !ok {
		return baseScore
	}

	lower := strings.ToLower(answer)
	result := baseScore
	for _, kw := range rubric.Correct {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			result++
		}
	}
	for _, kw := range rubric.Wrong {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			result -= 2
		}
	}

	if result < minScore {
		return minScore
	}
	if result > maxScore {
		return maxScore
	}
	return result
}

// Has reports whether a rubric is defined for the given test name.
func (s *Scorer) Has(testName string) bool {
	_, ok := s.rubrics[testName]
	return ok
}
