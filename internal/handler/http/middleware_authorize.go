package http

import (
	"net/http"

	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/utils"
)

// requireRole rejects principals lacking role with 403. It must be mounted
// after auth.
func (h *Handler) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				log.Err(ErrNoPrincipal).Send()
				unauthorized(w, ErrNoPrincipal.Error())
				return
			}

			if !principal.HasRole(role) {
				log.Warn().Str("subject", principal.Subject).Str("required_role", role).Msg("access denied")
				utils.WriteError(w, ErrForbidden.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
