package grpc

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-bot-host/internal/gate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// authorizationKey is the default metadata key carrying credentials. gRPC
// metadata keys are lower case.
const authorizationKey = "authorization"

// credentialKey follows the header configured on the gate.
func (h *Handler) credentialKey() string {
	if h.gate == nil {
		return authorizationKey
	}
	return strings.ToLower(h.gate.Header())
}

// Public methods never read the credential, so the issuer is not called
// for them.
func (h *Handler) exchangeUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublicMethod(info.FullMethod) {
		return handler(ctx, req)
	}
	return handler(h.exchange(ctx), req)
}

func (h *Handler) exchangeStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if isPublicMethod(info.FullMethod) {
		return handler(srv, ss)
	}

	ctx := h.exchange(ss.Context())
	if ctx == ss.Context() {
		return handler(srv, ss)
	}
	return handler(srv, &wrappedServerStream{ServerStream: ss, ctx: ctx})
}

// exchange runs the gate over the authorization metadata and returns the
// context the call continues with. The incoming metadata is copied, never
// modified in place.
func (h *Handler) exchange(ctx context.Context) context.Context {
	if h.gate == nil {
		return ctx
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}

	key := h.credentialKey()
	header := firstValue(md, key)
	value, err := h.gate.Exchange(ctx, header)
	if err == nil && value == header {
		return ctx
	}

	md = md.Copy()
	md.Set(key, value)
	ctx = metadata.NewIncomingContext(ctx, md)
	if err != nil {
		ctx = gate.ContextWithExchangeError(ctx, err)
	}

	return ctx
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// wrappedServerStream overrides the context of a grpc.ServerStream.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
