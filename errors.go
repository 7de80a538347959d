package groq

import (
	"context"
	"errors"
	"net/http"
)

type Error struct {
	Code      string
	Status    int
	Message   string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return "groq: " + e.Message
	}
	return "groq: error"
}

func (e *Error) Unwrap() error { return e.Cause }

func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden || e.Code == "invalid_api_key")
}

func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == http.StatusTooManyRequests || e.Code == "rate_limited")
}

// IsMCPDependencyFailed reports whether the provider failed because a remote
// MCP server it depends on was unreachable or errored (HTTP 424).
func IsMCPDependencyFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusFailedDependency
}

func IsTimeout(err error) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == "timeout" {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func IsCanceled(err error) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == "canceled" {
		return true
	}
	return errors.Is(err, context.Canceled)
}
