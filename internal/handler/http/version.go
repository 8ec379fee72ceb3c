package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-bot-host/internal/utils"
)

const defaultInfoEndpoint = "/api/info"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) getAPIInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAPIInfo(r.Context()), http.StatusOK)
}

// infoEndpoint is the path the API metadata is served on.
func (h *Handler) infoEndpoint() string {
	if endpoint := h.services.AppInfoService.GetAPIInfo(context.Background()).Endpoint; endpoint != "" {
		return endpoint
	}
	return defaultInfoEndpoint
}
