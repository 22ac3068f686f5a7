package model

import "errors"

var (
	ErrValidation         = errors.New("validation error")        // 400
	ErrSessionNotFound    = errors.New("session not found")       // 404
	ErrProductNotFound    = errors.New("product not found")       // 404
	ErrInvalidTransition  = errors.New("invalid view transition") // 409
	ErrPageOutOfRange     = errors.New("page out of range")       // 400
	ErrNetworkFailure     = errors.New("network failure")         // 502
	ErrMalformedResponse  = errors.New("malformed response")      // 502
	ErrStaleRequest       = errors.New("stale request")
	ErrCacheMiss          = errors.New("cache miss")
	ErrServiceUnavailable = errors.New("service unavailable") // 503
)
