// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Service information and health checks
//   - Stadium metadata
//   - API documentation (Swagger UI, ReDoc, OpenAPI document)
//   - Prometheus metrics
package http
