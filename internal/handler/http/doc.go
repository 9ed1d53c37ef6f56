// Package http implements the HTTP transport layer of the application.
//
// It exposes named routes, server-rendered page handlers, and middleware.
// Cross-cutting concerns such as session resolution, the login gate, request
// tracing, access logging, metrics, and response compression are handled in
// this package before requests are delegated to the service layer.
package http
