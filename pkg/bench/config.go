package bench

import (
	"strings"
	"time"
)

// DefaultSystemPrompt is sent as the system message unless overridden.
const DefaultSystemPrompt = "You are a precise assistant being benchmarked with " +
	"moth-themed logic, math, code and reasoning tasks. " +
	"Answer clearly and concisely, show reasoning for logic/math, " +
	"and return valid code where requested."

// Config holds the runner configuration for one benchmark run.
type Config struct {
	// BaseURL is the endpoint base; requests go to <BaseURL>/chat/completions.
	BaseURL string `yaml:"base_url" json:"base_url"`

	MaxTokens    int    `yaml:"max_tokens" json:"max_tokens"`
	SystemPrompt string `yaml:"system_prompt" json:"system_prompt"`

	// ConnectTimeout bounds connection establishment; ReadTimeout bounds the
	// whole request so a stalled endpoint cannot hang the run.
	ConnectTimeout time.Duration `yaml:"connect_timeout" json:"connect_timeout"`
	ReadTimeout    time.Duration `yaml:"read_timeout" json:"read_timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://127.0.0.1:8081/v1",
		MaxTokens:      512,
		SystemPrompt:   DefaultSystemPrompt,
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    45 * time.Second,
	}
}

// Normalize repairs invalid values in place. Bad numeric input falls back to
// defaults rather than failing the run.
func (c *Config) Normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.MaxTokens <= 0 {
		c.MaxTokens = 512
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 5 * time.Second
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 45 * time.Second
	}
}
