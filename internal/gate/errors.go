package gate

import "errors"

var (
	// ErrExchangeFailed wraps every issuer failure returned by [Gate.Exchange].
	ErrExchangeFailed = errors.New("token exchange failed")
	// ErrEmptySignedToken is reported when the issuer returns no token and no error.
	ErrEmptySignedToken = errors.New("issuer returned an empty token")

	ErrNilIssuer       = errors.New("gate: token issuer is nil")
	ErrNilLogger       = errors.New("gate: logger is nil")
	ErrNilMetrics      = errors.New("gate: metrics is nil")
	ErrNilTracer       = errors.New("gate: tracer is nil")
	ErrNegativeTimeout = errors.New("gate: exchange timeout is negative")
	ErrEmptyHeader     = errors.New("gate: header name is empty")
)
