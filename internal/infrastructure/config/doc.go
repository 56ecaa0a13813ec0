// Package config provides environment-based configuration (12-factor).
//
// All settings load from environment variables with sensible defaults, so
// the server runs with zero configuration in development. Notable knobs:
//   - PORT, HOST: listen address
//   - API_KEY: enables the bearer gate on the POST endpoints when set
//   - CORS_ORIGINS: comma-separated allowed origins (default *)
//   - VOCAB_PATH: YAML keyword table override for intent extraction
//   - LOG_LEVEL, LOG_DEV: logging behavior
//   - RATE_LIMIT_*: per-IP rate limiting
package config
