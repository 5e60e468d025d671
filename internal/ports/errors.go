package ports

import (
	"errors"
	"fmt"
)

var (
	ErrStoreUnavailable = errors.New("engagement store is not configured")
	ErrInvalidAction    = errors.New("invalid like action")
	ErrEmptyAssetName   = errors.New("empty asset name")
)

// UpstreamError is a non-2xx answer from the repository listing API.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream listing failed: http %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("upstream listing failed: http %d", e.Status)
}

// ConnectivityError means the listing API could not be reached at all.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return "upstream unreachable: " + e.Err.Error()
}

func (e *ConnectivityError) Unwrap() error { return e.Err }
