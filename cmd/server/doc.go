// Package main is the entry point for the agent API server.
//
// The server exposes a small REST API that interprets free-text prompts
// into UI intents and expands intents into wireframe specifications.
//
// The server provides:
//   - POST /interpret: prompt to intents
//   - POST /specify-wireframe: intents to wireframe spec
//   - GET / and /health: liveness
//   - GET /metrics: Prometheus exposition
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
