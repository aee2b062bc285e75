// Package refs loads the reference latency leaderboard.
//
// References are community-contributed averages read from a benchmarks.json
// file next to the program. They exist purely for leaderboard comparison in
// the scorecard: absence or invalid content silently falls back to a small
// built-in list, and no failure is ever surfaced to the caller.
package refs

import (
	"encoding/json"
	"math"
	"os"
	"sort"
)

// LocalName labels the leaderboard row for the run being reported.
const LocalName = "Local endpoint (this run)"

// DefaultFile is the reference file name looked up next to the program.
const DefaultFile = "benchmarks.json"

// missingSentinel sorts entries without a latency value last.
const missingSentinel = 9999

// Entry is one leaderboard row. AvgSeconds is nil when the source row did
// not carry a value; such rows rank last.
type Entry struct {
	Name       string   `json:"name"`
	AvgSeconds *float64 `json:"avg_seconds"`
}

// Seconds returns the entry's latency, or the sorting sentinel when absent.
func (e Entry) Seconds() float64 {
	if e.AvgSeconds == nil {
		return missingSentinel
	}
	return *e.AvgSeconds
}

func secs(v float64) *float64 { return &v }

func defaults() []Entry {
	return []Entry{
		{Name: "GPT-4o (ref)", AvgSeconds: secs(4.2)},
		{Name: "Claude 3.5 Sonnet (ref)", AvgSeconds: secs(5.8)},
		{Name: "Llama 3 70B (ref)", AvgSeconds: secs(8.5)},
	}
}

// Load reads reference entries from path, appends the local run with its
// average rounded to two decimals, and returns the list sorted ascending by
// latency. A missing or unparsable file yields the built-in defaults.
func Load(path string, localAvgSeconds float64) []Entry {
	entries := readFile(path)
	if len(entries) == 0 {
		entries = defaults()
	}

	entries = append(entries, Entry{
		Name:       LocalName,
		AvgSeconds: secs(math.Round(localAvgSeconds*100) / 100),
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Seconds() < entries[j].Seconds()
	})
	return entries
}

func readFile(path string) []Entry {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}
