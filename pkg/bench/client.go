package bench

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"
)

// PlaceholderAnswer substitutes the answer text when a 200 response does not
// carry the expected envelope. The item still counts as a success.
const PlaceholderAnswer = "(no answer returned)"

type chatRequest struct {
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// statusError reports a non-200 response from the endpoint.
type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("endpoint returned HTTP %d", e.Code)
}

// client issues chat-completion calls against an OpenAI-compatible endpoint.
type client struct {
	http *http.Client
	base string
}

func newClient(cfg Config) *client {
	return &client{
		base: cfg.BaseURL,
		http: &http.Client{
			// Overall bound: a stalled read cannot hang the run.
			Timeout: cfg.ReadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.ConnectTimeout,
				}).DialContext,
				TLSHandshakeTimeout: cfg.ConnectTimeout,
			},
		},
	}
}

// complete posts one question and returns the answer text plus the wall-clock
// time of the HTTP exchange (request through body read, excluding payload
// construction). A 200 response with a malformed body yields the placeholder
// answer and no error.
func (c *client) complete(ctx context.Context, system, question string, maxTokens int) (string, time.Duration, error) {
	messages := make([]chatMessage, 0, 2)
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: question})

	body, err := json.Marshal(chatRequest{Messages: messages, MaxTokens: maxTokens})
	if err != nil {
		return "", 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return "", 0, err
	}

	if resp.StatusCode != http.StatusOK {
		return "", 0, &statusError{Code: resp.StatusCode}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil || len(parsed.Choices) == 0 {
		return PlaceholderAnswer, elapsed, nil
	}
	return parsed.Choices[0].Message.Content, elapsed, nil
}

// errKind labels a transport-level failure for the result record.
func errKind(err error) string {
	var dnsErr *net.DNSError
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.As(err, &dnsErr):
		return "dns"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "connection_refused"
	case errors.Is(err, syscall.ECONNRESET):
		return "connection_reset"
	default:
		return "network"
	}
}
