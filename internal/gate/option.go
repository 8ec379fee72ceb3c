package gate

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-bot-host/internal/logger"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a [Gate].
type Option func(*Gate) error

// WithLogger sets the logger used when the request context carries none.
func WithLogger(l *logger.Logger) Option {
	return func(g *Gate) error {
		if l == nil {
			return ErrNilLogger
		}
		g.logger = l
		return nil
	}
}

// WithMetrics installs an exchange observer.
func WithMetrics(m Metrics) Option {
	return func(g *Gate) error {
		if m == nil {
			return ErrNilMetrics
		}
		g.metrics = m
		return nil
	}
}

// WithTracer sets the tracer that opens a span around every issuer call.
func WithTracer(t trace.Tracer) Option {
	return func(g *Gate) error {
		if t == nil {
			return ErrNilTracer
		}
		g.tracer = t
		return nil
	}
}

// WithExchangeTimeout bounds a single issuer call. Zero disables the bound;
// the request context still applies.
func WithExchangeTimeout(d time.Duration) Option {
	return func(g *Gate) error {
		if d < 0 {
			return ErrNegativeTimeout
		}
		g.timeout = d
		return nil
	}
}

// WithHeader changes the inspected header. Defaults to Authorization.
func WithHeader(name string) Option {
	return func(g *Gate) error {
		if name == "" {
			return ErrEmptyHeader
		}
		g.header = http.CanonicalHeaderKey(name)
		return nil
	}
}
