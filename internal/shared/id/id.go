// Package id provides centralized ID generation for the backend.
//
// Two kinds of identifiers exist side by side:
//   - Request IDs: prefixed ULIDs (req_*), lexicographically sortable, used
//     to correlate log lines and responses.
//   - Node IDs: short random hex suffixes (wf-*, row-*, col-*) for layout
//     tree nodes whose identity carries no semantic meaning.
//
// Node generation sits behind the NodeGenerator interface so synthesis can
// be made deterministic in tests by injecting a sequential generator.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestID identifies an API request.
type RequestID string

// RequestPrefix marks request IDs in logs and headers.
const RequestPrefix = "req"

func (id RequestID) String() string { return string(id) }

// Generator generates ULIDs with optional prefixes.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex // Protects entropy reader
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a ULID generator with cryptographically secure entropy.
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Useful for testing with deterministic entropy.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID.
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string.
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string.
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewRequestID generates a new request ID.
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// IsValid checks if an ID string is a valid ULID.
func IsValid(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}

// NodeGenerator produces ids for layout tree nodes.
type NodeGenerator interface {
	// Generate returns a fresh id of the form "<prefix>-<suffix>".
	Generate(prefix string) string
}

// nodeSuffixBytes yields six hex characters per id.
const nodeSuffixBytes = 3

type randomNodes struct{}

// RandomNodes returns the production node generator: short random hex
// suffixes from crypto/rand.
func RandomNodes() NodeGenerator { return randomNodes{} }

func (randomNodes) Generate(prefix string) string {
	buf := make([]byte, nodeSuffixBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms; a timestamp
		// suffix keeps requests serviceable rather than panicking if it does.
		return fmt.Sprintf("%s-%06x", prefix, time.Now().UnixNano()&0xffffff)
	}
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(buf))
}

type sequentialNodes struct {
	mu sync.Mutex
	n  int
}

// SequentialNodes returns a deterministic node generator for tests.
func SequentialNodes() NodeGenerator { return &sequentialNodes{} }

func (g *sequentialNodes) Generate(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.n++
	return fmt.Sprintf("%s-%06d", prefix, g.n)
}
