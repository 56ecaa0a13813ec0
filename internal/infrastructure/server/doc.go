// Package server wires configuration, middleware, domain components and
// routes into a runnable HTTP server.
//
// The domain packages stay pure: this is where the extractor and
// synthesizer get constructed and bound to their endpoints.
package server
