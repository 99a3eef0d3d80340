// Package server holds the HTTP server configuration: listen port, API key
// and the upload body limit enforced by Fiber.
package server
