package lastvote

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrorCategory buckets transport failures for logging. Classification
// never changes behavior: every failure takes the same degradation path
// regardless of category.
type ErrorCategory string

const (
	ErrorRateLimit       ErrorCategory = "rate_limit"
	ErrorTimeout         ErrorCategory = "timeout"
	ErrorNetwork         ErrorCategory = "network"
	ErrorInvalidResponse ErrorCategory = "invalid_response"
	ErrorUnknown         ErrorCategory = "unknown"
)

// ErrInvalidResponse marks a reply that arrived but could not be used,
// for example an empty body or unparseable JSON.
var ErrInvalidResponse = errors.New("invalid response")

// ClassifyError maps a transport failure to its logging category.
func ClassifyError(err error) ErrorCategory {
	if err == nil {
		return ErrorUnknown
	}

	if errors.Is(err, ErrInvalidResponse) {
		return ErrorInvalidResponse
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrorTimeout
		}
		return ErrorNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "429"), strings.Contains(msg, "quota"):
		return ErrorRateLimit
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return ErrorTimeout
	case strings.Contains(msg, "connection"), strings.Contains(msg, "no such host"), strings.Contains(msg, "refused"):
		return ErrorNetwork
	}
	return ErrorUnknown
}
