package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/utils"
	"github.com/MKhiriev/go-bot-host/models"
)

// exchangeToken is the explicit form of the gate: it exchanges the opaque
// credential in the body for a bearer token. Remote gates call it through
// the HTTP issuer adapter.
func (h *Handler) exchangeToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.exchangeToken").Msg("Invalid JSON was passed")
		utils.WriteError(w, reasonInvalidBody, http.StatusBadRequest)
		return
	}

	token, err := h.services.TokenIssuer.Issue(r.Context(), request.Token)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Str("func", "*Handler.exchangeToken").Msg("token exchange failed")
		} else {
			log.Warn().Err(err).Str("func", "*Handler.exchangeToken").Msg("token exchange rejected")
		}
		utils.WriteError(w, messageFromError(err), status)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
		ExpiresIn:   int64(token.ExpiresIn(time.Now()).Seconds()),
	}, http.StatusOK)
}
