// Package types provides shared wire-level data structures.
//
// These are the request bodies accepted by the HTTP layer. Validation of
// presence happens here via gin binding tags; semantic validation (trimmed
// non-empty prompt) happens in the handlers before the core runs.
//
// Request Types:
//   - PromptRequest: prompt interpretation
//   - WireframeRequest, WireframeIntent: wireframe synthesis
package types
