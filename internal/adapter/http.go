// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/service"
	"github.com/MKhiriev/go-bot-host/internal/validators"
	"github.com/MKhiriev/go-bot-host/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenPath             = "/api/token"
	defaultRequestTimeout = 10 * time.Second
)

type httpIssuerAdapter struct {
	client    *resty.Client
	validator validators.Validator
	logger    *logger.Logger
}

// NewHTTPIssuerAdapter constructs a [service.TokenIssuer] that delegates the
// exchange to another host over HTTP (POST {IssuerURL}/api/token).
// It normalises and validates cfg.IssuerURL and bounds every call with
// cfg.ExchangeTimeout, or 10s when that is zero.
//
// Returns an error if cfg.IssuerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPIssuerAdapter(cfg config.App, logger *logger.Logger) (service.TokenIssuer, error) {
	baseURL, err := normalizeBaseURL(cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid issuer url: %w", err)
	}

	timeout := cfg.ExchangeTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpIssuerAdapter{
		client:    client,
		validator: validators.NewCredentialValidator(),
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyIssuerURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Issue implements [service.TokenIssuer]. Rejections of the remote host
// (400, 401, 403) are reported as [service.ErrInvalidCredential] and a 503 as
// [service.ErrIssuerMisconfigured]. Malformed credentials are rejected
// without a round trip.
func (h *httpIssuerAdapter) Issue(ctx context.Context, opaqueToken string) (models.Token, error) {
	request := models.TokenRequest{Token: opaqueToken}
	if err := h.validator.Validate(ctx, request); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", service.ErrInvalidCredential, err)
	}

	var tokenResponse models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&tokenResponse).
		Post(tokenPath)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrIssuerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContextOr(ctx, h.logger).Debug().
			Int("status", resp.StatusCode()).
			Msg("remote issuer rejected the exchange")
		return models.Token{}, err
	}

	return parseIssuedToken(tokenResponse)
}

// parseIssuedToken reads the claims of a token signed by the remote host.
// The signature is not checked here: the token is verified by whoever
// consumes it downstream.
func parseIssuedToken(response models.TokenResponse) (models.Token, error) {
	if response.AccessToken == "" {
		return models.Token{}, fmt.Errorf("%w: empty access token", ErrMalformedIssuedToken)
	}
	if response.TokenType != "" && !strings.EqualFold(response.TokenType, models.TokenTypeBearer) {
		return models.Token{}, fmt.Errorf("%w: token type %q", ErrMalformedIssuedToken, response.TokenType)
	}

	claims := models.TokenClaims{}
	token, _, err := jwt.NewParser().ParseUnverified(response.AccessToken, &claims)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrMalformedIssuedToken, err)
	}

	return models.Token{Token: token, TokenClaims: claims, SignedString: response.AccessToken}, nil
}
