package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bot-host/internal/service"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError translates a non-2xx answer of the remote issuer into the
// issuer error contract.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", service.ErrInvalidCredential, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: remote: %s", service.ErrIssuerMisconfigured, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}
}
