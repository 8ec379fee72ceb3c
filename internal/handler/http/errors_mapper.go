package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bot-host/internal/adapter"
	"github.com/MKhiriev/go-bot-host/internal/service"
	"github.com/MKhiriev/go-bot-host/internal/store"
)

// errorStatuses is ordered: the first matching entry wins, so more specific
// errors come first.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredential, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrIssuerMisconfigured, http.StatusServiceUnavailable},
	{service.ErrCredentialLookupFailed, http.StatusServiceUnavailable},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},

	{adapter.ErrIssuerUnreachable, http.StatusBadGateway},
	{adapter.ErrUnexpectedResponse, http.StatusBadGateway},
	{adapter.ErrMalformedIssuedToken, http.StatusBadGateway},

	{store.ErrCredentialAlreadyExists, http.StatusConflict},
	{store.ErrCredentialNotFound, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text shown to clients for err. Server side
// failures are not described.
func messageFromError(err error) string {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		if status == http.StatusServiceUnavailable {
			return reasonIssuerUnavailable
		}
		return http.StatusText(status)
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.err.Error()
		}
	}
	return http.StatusText(status)
}
