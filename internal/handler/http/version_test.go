package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/service"
	"github.com/MKhiriev/go-bot-host/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAppInfo(svc service.AppInfoService) *Handler {
	return NewHandler(&service.Services{AppInfoService: svc}, nil, nil, config.Server{}, logger.Nop())
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h := newHandlerWithAppInfo(stubAppInfo{version: "1.2.3"})

	rec := httptest.NewRecorder()
	h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	h := newHandlerWithAppInfo(stubAppInfo{version: "3.0.0"})

	rec := do(h.Init(), http.MethodGet, "/api/version/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.0.0", rec.Body.String())
}

func TestGetAPIInfo(t *testing.T) {
	info := models.APIInfo{Title: "go-bot-host", Version: "2.0.0", Endpoint: "/docs/info", SecurityScheme: "Bearer"}
	h := newHandlerWithAppInfo(stubAppInfo{info: info})
	router := h.Init()

	rec := do(router, http.MethodGet, "/docs/info", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.APIInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, info, got)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/info", "", "").Code)
}

func TestInfoEndpoint_Default(t *testing.T) {
	h := newHandlerWithAppInfo(stubAppInfo{})
	assert.Equal(t, "/api/info", h.infoEndpoint())
}
