// Package http provides HTTP handlers for the agent REST API.
//
// This package implements all endpoints using the Gin framework. The
// handlers validate and decode requests, invoke the pure domain components,
// and render their results as JSON; the domain packages never see the wire.
//
// Endpoints:
//   - Liveness: / and /health
//   - Interpretation: /interpret
//   - Wireframing: /specify-wireframe
//
// Example Usage:
//
//	handlers := http.NewHandlers(extractor, synthesizer, metrics)
//	router.POST("/interpret", handlers.Interpret)
package http
