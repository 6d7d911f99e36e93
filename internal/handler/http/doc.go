// Package http implements the REST transport of the holocron server.
//
// It wires the chi router, the JSON handlers for users, catalog entities and
// favorites, and the middleware chain (panic recovery, trailing-slash
// stripping, request timeout, tracing, access logging, compression and
// acting-user injection) in front of the service layer.
package http
