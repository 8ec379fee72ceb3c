package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/gate"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/mock"
	"github.com/MKhiriev/go-bot-host/internal/service"
	"github.com/MKhiriev/go-bot-host/internal/utils"
	"github.com/MKhiriev/go-bot-host/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testOpaque = "abcdefghijklmnopqrstuvwxyz123456"

// stubAppInfo implements service.AppInfoService.
type stubAppInfo struct {
	version string
	info    models.APIInfo
}

func (s stubAppInfo) GetAppVersion(context.Context) string      { return s.version }
func (s stubAppInfo) GetAPIInfo(context.Context) models.APIInfo { return s.info }

// testDeps bundles the mocks behind a test Handler.
type testDeps struct {
	issuer      *mock.MockTokenIssuer
	auth        *mock.MockAuthService
	credentials *mock.MockCredentialService
}

func newTestHandler(t *testing.T, cfg config.Server) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		issuer:      mock.NewMockTokenIssuer(ctrl),
		auth:        mock.NewMockAuthService(ctrl),
		credentials: mock.NewMockCredentialService(ctrl),
	}

	services := &service.Services{
		TokenIssuer:       deps.issuer,
		AuthService:       deps.auth,
		CredentialService: deps.credentials,
		AppInfoService: stubAppInfo{
			version: "1.0.0",
			info:    models.APIInfo{Title: "go-bot-host", Version: "1.0.0", Endpoint: "/api/info", SecurityScheme: "Bearer"},
		},
	}

	g, err := gate.New(deps.issuer, gate.WithLogger(logger.Nop()))
	require.NoError(t, err)

	return NewHandler(services, g, nil, cfg, logger.Nop()), deps
}

// withPrincipal returns r carrying an authenticated principal.
func withPrincipal(r *http.Request, subject, role string) *http.Request {
	ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, models.Principal{Subject: subject, Role: role})
	return r.WithContext(ctx)
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func parsedToken(subject, role string) models.Token {
	token := models.Token{}
	token.Subject = subject
	token.Role = role
	return token
}

func do(router http.Handler, method, target, authorization string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
