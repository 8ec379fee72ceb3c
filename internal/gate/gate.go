// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/service"
	"github.com/MKhiriev/go-bot-host/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/MKhiriev/go-bot-host/internal/gate"

// Exchange outcomes reported to [Metrics].
const (
	OutcomeUnmatched           = "unmatched"
	OutcomeExchanged           = "exchanged"
	OutcomeInvalidCredential   = "invalid_credential"
	OutcomeIssuerMisconfigured = "issuer_misconfigured"
	OutcomeError               = "error"
)

// TokenIssuer mints a signed bearer token for an opaque credential.
type TokenIssuer interface {
	Issue(ctx context.Context, opaqueToken string) (models.Token, error)
}

// Metrics observes finished exchanges.
type Metrics interface {
	ObserveExchange(outcome string, duration time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) ObserveExchange(string, time.Duration) {}

// Gate is the token exchange gate. It holds no per-request state and is safe
// for concurrent use.
type Gate struct {
	issuer  TokenIssuer
	header  string
	timeout time.Duration

	logger  *logger.Logger
	metrics Metrics
	tracer  trace.Tracer
}

// New returns a Gate that exchanges credentials through issuer.
func New(issuer TokenIssuer, opts ...Option) (*Gate, error) {
	if issuer == nil {
		return nil, ErrNilIssuer
	}

	g := &Gate{
		issuer:  issuer,
		header:  "Authorization",
		logger:  logger.Nop(),
		metrics: nopMetrics{},
		tracer:  otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Header returns the name of the header the gate inspects.
func (g *Gate) Header() string {
	return g.header
}

// Exchange computes the final value of the header in one step.
//
//   - header without a candidate credential: (header, nil), the issuer is not called;
//   - issuer success: ("Bearer <signed>", nil);
//   - issuer failure: (candidate, err), err wraps ErrExchangeFailed and the
//     issuer error.
func (g *Gate) Exchange(ctx context.Context, header string) (string, error) {
	candidate, ok := CandidateToken(header)
	if !ok {
		g.metrics.ObserveExchange(OutcomeUnmatched, 0)
		return header, nil
	}

	ctx, span := g.tracer.Start(ctx, "gate.Exchange", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	token, err := g.issuer.Issue(ctx, candidate)
	if err == nil && token.SignedString == "" {
		err = ErrEmptySignedToken
	}
	duration := time.Since(start)

	outcome := classify(err)
	g.metrics.ObserveExchange(outcome, duration)
	span.SetAttributes(attribute.String("gate.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		g.logFailure(ctx, outcome, err)
		return candidate, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}

	return BearerPrefix + token.SignedString, nil
}

// Middleware runs [Gate.Exchange] on every request and always calls next.
// The header is rewritten on a clone of the request. A failed exchange is
// stored in the clone's context.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(g.header)

		value, err := g.Exchange(r.Context(), header)
		if err == nil && value == header {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		if err != nil {
			ctx = ContextWithExchangeError(ctx, err)
		}

		exchanged := r.Clone(ctx)
		exchanged.Header.Set(g.header, value)
		next.ServeHTTP(w, exchanged)
	})
}

func classify(err error) string {
	switch {
	case err == nil:
		return OutcomeExchanged
	case errors.Is(err, service.ErrInvalidCredential):
		return OutcomeInvalidCredential
	case errors.Is(err, service.ErrIssuerMisconfigured):
		return OutcomeIssuerMisconfigured
	default:
		return OutcomeError
	}
}

func (g *Gate) logFailure(ctx context.Context, outcome string, err error) {
	log := logger.FromContextOr(ctx, g.logger)

	switch outcome {
	case OutcomeInvalidCredential:
		log.Warn().Err(err).Str("outcome", outcome).Msg("opaque credential rejected")
	default:
		log.Error().Err(err).Str("outcome", outcome).Msg("token exchange failed")
	}
}
