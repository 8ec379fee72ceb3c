// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-bot-host/internal/app"
	"github.com/MKhiriev/go-bot-host/internal/gate"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/service"
	"github.com/MKhiriev/go-bot-host/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// publicMethodPrefixes lists services callable without a bearer token.
var publicMethodPrefixes = []string{
	"/grpc.health.v1.Health/",
}

func (h *Handler) authUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	authCtx, err := h.authenticate(ctx, info.FullMethod)
	if err != nil {
		return nil, err
	}
	return handler(authCtx, req)
}

func (h *Handler) authStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	authCtx, err := h.authenticate(ss.Context(), info.FullMethod)
	if err != nil {
		return err
	}
	return handler(srv, &wrappedServerStream{ServerStream: ss, ctx: authCtx})
}

// authenticate validates the bearer token of the call and stores the
// principal in the returned context under [utils.PrincipalCtxKey].
func (h *Handler) authenticate(ctx context.Context, method string) (context.Context, error) {
	if isPublicMethod(method) {
		return ctx, nil
	}

	log := logger.FromContextOr(ctx, h.logger).With().Str("method", method).Logger()

	if exchangeErr := gate.ExchangeError(ctx); exchangeErr != nil {
		log.Warn().Err(exchangeErr).Msg("call carries an unexchanged credential")
		return nil, exchangeFailureStatus(exchangeErr)
	}

	md, _ := metadata.FromIncomingContext(ctx)
	header := firstValue(md, h.credentialKey())
	if header == "" {
		return nil, status.Error(codes.Unauthenticated, app.MsgMissingCredentials)
	}

	tokenString, err := utils.ParseBearerToken(header)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, app.MsgNotBearerToken)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing token")
		switch {
		case errors.Is(err, service.ErrIssuerMisconfigured):
			return nil, status.Error(codes.Unavailable, app.MsgIssuerUnavailable)
		case errors.Is(err, service.ErrTokenIsExpired):
			return nil, status.Error(codes.Unauthenticated, service.ErrTokenIsExpired.Error())
		default:
			return nil, status.Error(codes.Unauthenticated, app.MsgInvalidToken)
		}
	}

	principal, err := token.Principal()
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, app.MsgInvalidToken)
	}

	return context.WithValue(ctx, utils.PrincipalCtxKey, principal), nil
}

func exchangeFailureStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredential):
		return status.Error(codes.Unauthenticated, app.MsgInvalidCredential)
	case errors.Is(err, service.ErrIssuerMisconfigured), errors.Is(err, service.ErrCredentialLookupFailed):
		return status.Error(codes.Unavailable, app.MsgIssuerUnavailable)
	default:
		return status.Error(codes.Unauthenticated, app.MsgExchangeFailed)
	}
}

func isPublicMethod(method string) bool {
	for _, prefix := range publicMethodPrefixes {
		if strings.HasPrefix(method, prefix) {
			return true
		}
	}
	return false
}
