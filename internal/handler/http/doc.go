// Package http implements the HTTP transport layer of the host.
//
// Every request passes through a fixed pipeline of named stages (see
// pipeline.go). The token exchange gate is the last global stage, so it sees
// requests after CORS and static files were handled and before any route
// applies authentication.
package http
