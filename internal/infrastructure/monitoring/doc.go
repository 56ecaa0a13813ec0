/*
Package monitoring provides Prometheus metrics collection.

# Overview

Metrics cover the HTTP surface (request counts and latency) and the domain
(intents by type, wireframes and their components). Each Metrics value owns
a private registry exposed through Handler, so parallel test servers never
trip duplicate-registration panics.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
