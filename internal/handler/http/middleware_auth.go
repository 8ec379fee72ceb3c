package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bot-host/internal/gate"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/service"
	"github.com/MKhiriev/go-bot-host/internal/utils"
)

const defaultCredentialHeader = "Authorization"

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It reads the credential header, "Authorization" unless the gate was built
// with [gate.WithHeader], as left by the token exchange gate,
// validates the bearer token via [service.AuthService.ParseToken] and, on
// success, stores the principal in the request context under
// [utils.PrincipalCtxKey].
//
// Requests are rejected with 401 Unauthorized when:
//   - the header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]),
//     which includes the bare credential left by a failed exchange;
//   - the token is expired ([service.ErrTokenIsExpired]) or otherwise invalid.
//
// When the gate recorded a failed exchange for the request, the body names
// its reason instead of the header error.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		if exchangeErr := gate.ExchangeError(ctx); exchangeErr != nil {
			reason := exchangeFailureReason(exchangeErr)
			log.Warn().Err(exchangeErr).Str("reason", reason).Msg("request carries an unexchanged credential")
			unauthorized(w, reason)
			return
		}

		authHeader := r.Header.Get(h.credentialHeader())
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w, ErrInvalidAuthorizationHeader.Error())
			return
		}

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				unauthorized(w, service.ErrTokenIsExpired.Error())
			case errors.Is(err, service.ErrIssuerMisconfigured):
				log.Error().Err(err).Msg("token verification is misconfigured")
				unauthorized(w, reasonIssuerUnavailable)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				unauthorized(w, http.StatusText(http.StatusUnauthorized))
			}
			return
		}

		principal, err := token.Principal()
		if err != nil {
			log.Err(err).Msg("token carries no principal")
			unauthorized(w, http.StatusText(http.StatusUnauthorized))
			return
		}

		// downstream handlers read the principal without re-parsing the token
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// exchangeFailureReason names the failure recorded by the gate.
func exchangeFailureReason(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredential):
		return reasonInvalidCredential
	case errors.Is(err, service.ErrIssuerMisconfigured), errors.Is(err, service.ErrCredentialLookupFailed):
		return reasonIssuerUnavailable
	default:
		return reasonExchangeFailed
	}
}

func unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("WWW-Authenticate", fmt.Sprintf(`Bearer error="invalid_token", error_description=%q`, reason))
	utils.WriteError(w, reason, http.StatusUnauthorized)
}
