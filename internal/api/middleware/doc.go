// Package middleware provides HTTP middleware for the agent API.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing with configurable origins
//   - BearerAuth: Optional static API key gate for the POST endpoints
//   - RateLimit: Per-IP token bucket rate limiting
//   - RequestID: ULID request tagging for log correlation
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RequestID())
//	api := router.Group("", middleware.BearerAuth(cfg.Auth.APIKey))
package middleware
