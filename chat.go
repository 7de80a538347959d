package groq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bitop-dev/groq/internal/httpx"
)

// CreateChatCompletion issues a single chat completion request and decodes the
// provider's response. Failures are returned as *Error.
func (c *Client) CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletion, error) {
	if c.cfg.APIKey == "" {
		return nil, &Error{Code: "config_error", Message: "API key is required"}
	}
	if req.Model == "" {
		return nil, &Error{Code: "request_error", Message: "model is required"}
	}
	if len(req.Messages) == 0 {
		return nil, &Error{Code: "request_error", Message: "at least one message is required"}
	}
	for _, t := range req.Tools {
		if err := validateTool(t); err != nil {
			return nil, &Error{Code: "request_error", Message: err.Error(), Cause: err}
		}
	}

	ctx, cancel := applyTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Code: "marshal_error", Message: err.Error(), Cause: err}
	}

	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"

	h := make(http.Header)
	h.Set("Authorization", "Bearer "+c.cfg.APIKey)

	c.log.Debug().
		Str("model", req.Model).
		Int("messages", len(req.Messages)).
		Int("tools", len(req.Tools)).
		Msg("chat completion request")

	resp, err := httpx.Post(ctx, c.cfg.HTTPClient, u, body, h, httpx.RetryPolicy{
		MaxRetries: c.cfg.MaxRetries,
		MinBackoff: c.cfg.MinBackoff,
		MaxBackoff: c.cfg.MaxBackoff,
		Logger:     c.log,
	})
	if err != nil {
		code, retryable := classifyNetworkErr(err)
		return nil, &Error{Code: code, Message: err.Error(), Retryable: retryable, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeErrorResponse(resp)
	}

	var out ChatCompletion
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &Error{Code: "decode_error", Message: err.Error(), Cause: err}
	}
	if len(out.Choices) == 0 {
		return nil, &Error{Code: "invalid_response", Message: "response has no choices"}
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Str("finish_reason", out.Choices[0].FinishReason).
		Int("total_tokens", out.TotalTokens()).
		Msg("chat completion response")

	return &out, nil
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

func decodeErrorResponse(resp *http.Response) *Error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var er errorResponse
	if json.Unmarshal(b, &er) == nil && er.Error.Message != "" {
		return &Error{
			Code:      stringifyCode(er.Error.Code, er.Error.Type),
			Status:    resp.StatusCode,
			Message:   er.Error.Message,
			Retryable: shouldRetryStatus(resp.StatusCode),
		}
	}
	return &Error{
		Code:      "http_error",
		Status:    resp.StatusCode,
		Message:   strings.TrimSpace(string(b)),
		Retryable: shouldRetryStatus(resp.StatusCode),
	}
}

func shouldRetryStatus(status int) bool {
	return status == http.StatusRequestTimeout ||
		status == http.StatusConflict ||
		status == http.StatusTooManyRequests ||
		(status >= 500 && status <= 599)
}

func stringifyCode(code any, fallback string) string {
	if v, ok := code.(string); ok && v != "" {
		return v
	}
	if fallback != "" {
		return fallback
	}
	return "unknown"
}

func classifyNetworkErr(err error) (code string, retryable bool) {
	if err == nil {
		return "network_error", false
	}
	if errors.Is(err, context.Canceled) {
		return "canceled", false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout", true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout", true
	}
	return "network_error", true
}

func applyTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
