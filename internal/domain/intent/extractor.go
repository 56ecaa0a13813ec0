package intent

import (
	"math"
	"regexp"
	"strings"
)

const (
	// scoreExact is assigned when a synonym appears bounded by word
	// boundaries; scoreSubstring when it only appears inside a longer word.
	scoreExact     = 1.0
	scoreSubstring = 0.8

	// unknownConfidence is the score of the fallback intent.
	unknownConfidence = 0.1
)

// Intent is a typed classification extracted from a prompt. Value is unused
// by extraction but kept on the wire for forward compatibility.
type Intent struct {
	Type       Type        `json:"type"`
	Value      interface{} `json:"value"`
	Confidence *float64    `json:"confidence,omitempty"`
}

type synonym struct {
	text string
	word *regexp.Regexp
}

type compiledEntry struct {
	typ      Type
	synonyms []synonym
}

// Extractor maps free-text prompts onto a vocabulary of intent types.
// It is immutable after construction and safe for concurrent use.
type Extractor struct {
	entries []compiledEntry
}

// NewExtractor compiles the vocabulary into an extractor. Word-boundary
// patterns are compiled once here rather than per request.
func NewExtractor(vocab Vocabulary) *Extractor {
	entries := make([]compiledEntry, 0, len(vocab))
	for _, entry := range vocab {
		synonyms := make([]synonym, 0, len(entry.Synonyms))
		for _, text := range entry.Synonyms {
			lowered := strings.ToLower(text)
			synonyms = append(synonyms, synonym{
				text: lowered,
				word: regexp.MustCompile(`\b` + regexp.QuoteMeta(lowered) + `\b`),
			})
		}
		entries = append(entries, compiledEntry{typ: entry.Type, synonyms: synonyms})
	}
	return &Extractor{entries: entries}
}

// Extract scores the prompt against every vocabulary entry and returns one
// intent per matching type, in vocabulary order. Scores are independent per
// type; prompts containing several keywords yield several intents. A prompt
// matching nothing yields the single "unknown" fallback, so the result is
// never empty.
//
// The caller owns the precondition that prompt is non-empty after trimming.
func (e *Extractor) Extract(prompt string) []Intent {
	lowered := strings.ToLower(prompt)

	intents := make([]Intent, 0, len(e.entries))
	for _, entry := range e.entries {
		score := entry.score(lowered)
		if score > 0 {
			intents = append(intents, Intent{Type: entry.typ, Confidence: confidence(score)})
		}
	}

	if len(intents) == 0 {
		return []Intent{{Type: TypeUnknown, Confidence: confidence(unknownConfidence)}}
	}
	return intents
}

// VocabularySize returns the number of intent types the extractor knows.
func (e *Extractor) VocabularySize() int {
	return len(e.entries)
}

// score checks synonyms in declared order; the first one found in the prompt
// decides the score, word-bounded occurrences trumping bare substrings.
func (c compiledEntry) score(prompt string) float64 {
	for _, syn := range c.synonyms {
		if syn.word.MatchString(prompt) {
			return scoreExact
		}
		if strings.Contains(prompt, syn.text) {
			return scoreSubstring
		}
	}
	return 0
}

// confidence rounds a score to two decimal places.
func confidence(score float64) *float64 {
	rounded := math.Round(score*100) / 100
	return &rounded
}
