package adapter

import "errors"

var (
	ErrEmptyIssuerURL       = errors.New("issuer url is empty")
	ErrIssuerUnreachable    = errors.New("remote issuer is unreachable")
	ErrUnexpectedResponse   = errors.New("unexpected response from remote issuer")
	ErrMalformedIssuedToken = errors.New("remote issuer returned a malformed token")
)
