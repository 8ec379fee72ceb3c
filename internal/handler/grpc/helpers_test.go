package grpc

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bot-host/internal/gate"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/mock"
	"github.com/MKhiriev/go-bot-host/internal/service"
	"github.com/MKhiriev/go-bot-host/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/metadata"
)

const testOpaque = "abcdefghijklmnopqrstuvwxyz123456"

type testDeps struct {
	issuer *mock.MockTokenIssuer
	auth   *mock.MockAuthService
}

func newTestHandler(t *testing.T) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		issuer: mock.NewMockTokenIssuer(ctrl),
		auth:   mock.NewMockAuthService(ctrl),
	}

	g, err := gate.New(deps.issuer, gate.WithLogger(logger.Nop()))
	require.NoError(t, err)

	services := &service.Services{TokenIssuer: deps.issuer, AuthService: deps.auth}
	return NewHandler(services, g, logger.Nop()), deps
}

func incoming(authorization string) context.Context {
	md := metadata.MD{}
	if authorization != "" {
		md.Set(authorizationKey, authorization)
	}
	return metadata.NewIncomingContext(context.Background(), md)
}

func signedToken(subject, role, signed string) models.Token {
	token := models.Token{SignedString: signed}
	token.Subject = subject
	token.Role = role
	return token
}
