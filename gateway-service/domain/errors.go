package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Validation failures, detected locally before any remote call is issued.
var (
	// ErrMissingIdentity means the request had no X-User-Name header
	ErrMissingIdentity = errors.New("X-User-Name header is required")
	// ErrInvalidRequest means a required request field is missing or empty
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRentalLimitExceeded means the user already holds as many active
	// rentals as their star rating allows
	ErrRentalLimitExceeded = errors.New("rental limit exceeded")
)

// Upstream failure classes. A timeout and a connection failure are distinct
// conditions and are never coerced into a fabricated empty success.
var (
	ErrUpstreamTimeout     = errors.New("upstream request timed out")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)

// UpstreamError carries a downstream non-2xx status and body so the gateway
// can surface them unchanged.
type UpstreamError struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// NewInvalidRequest wraps ErrInvalidRequest naming the offending field
func NewInvalidRequest(field string) error {
	return errors.Wrapf(ErrInvalidRequest, "%s is required", field)
}
