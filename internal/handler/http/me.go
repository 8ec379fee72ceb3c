package http

import (
	"net/http"

	"github.com/MKhiriev/go-bot-host/internal/utils"
)

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		unauthorized(w, ErrNoPrincipal.Error())
		return
	}

	utils.WriteJSON(w, principal, http.StatusOK)
}
