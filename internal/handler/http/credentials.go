package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/utils"
	"github.com/MKhiriev/go-bot-host/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) mintCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.mintCredential").Msg("Invalid JSON was passed")
		utils.WriteError(w, reasonInvalidBody, http.StatusBadRequest)
		return
	}

	issued, err := h.services.CredentialService.Mint(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.mintCredential").Msg("error minting credential")
		utils.WriteError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, issued, http.StatusCreated)
}

func (h *Handler) revokeCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	err := h.services.CredentialService.Revoke(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.revokeCredential").Msg("error revoking credential")
		status := statusFromError(err)
		if status == http.StatusUnauthorized {
			// an unknown credential is not an authentication failure of the caller
			status = http.StatusNotFound
		}
		utils.WriteError(w, messageFromError(err), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
