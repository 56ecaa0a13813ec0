// Package intent provides keyword-based extraction of UI intents from
// free-text prompts.
//
// Extraction scores a prompt against a fixed vocabulary of intent types,
// each backed by an ordered list of synonym phrases. Word-bounded matches
// score higher than bare substring matches, and prompts that match nothing
// fall back to a single low-confidence "unknown" intent.
//
// Key Components:
//   - Vocabulary: Ordered intent type to synonym phrase table
//   - Extractor: Prompt to scored intent list transformation
//   - YAML vocabulary overrides for deployment-time tuning
//
// Scores are heuristics, not probabilities: they are never normalized
// across intent types, and consumers must not treat them as calibrated.
//
// Example:
//
//	ex := intent.NewExtractor(intent.DefaultVocabulary())
//	intents := ex.Extract("Show me a login form")
package intent
