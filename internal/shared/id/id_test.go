package id

import (
	"regexp"
	"strings"
	"sync"
	"testing"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	if id1.String() == id2.String() {
		t.Error("Generated IDs should be unique")
	}
}

func TestGenerateString(t *testing.T) {
	gen := NewGenerator()

	id := gen.GenerateString()

	if len(id) != 26 {
		t.Errorf("ULID should be 26 characters, got %d", len(id))
	}
}

func TestNewRequestID(t *testing.T) {
	rid := NewRequestID()

	if !strings.HasPrefix(rid.String(), "req_") {
		t.Errorf("RequestID should start with 'req_', got: %s", rid)
	}

	parts := strings.Split(rid.String(), "_")
	if len(parts) != 2 || !IsValid(parts[1]) {
		t.Errorf("ULID part should be valid: %s", rid)
	}
}

func TestIsValid(t *testing.T) {
	gen := NewGenerator()

	validID := gen.GenerateString()
	if !IsValid(validID) {
		t.Error("Generated ULID should be valid")
	}

	invalidIDs := []string{
		"",
		"invalid",
		"1234567890",
		"zzzzzzzzzzzzzzzzzzzzzzzzzzz", // Invalid characters
	}

	for _, id := range invalidIDs {
		if IsValid(id) {
			t.Errorf("ID should be invalid: %s", id)
		}
	}
}

func TestRandomNodes(t *testing.T) {
	gen := RandomNodes()

	pattern := regexp.MustCompile(`^wf-[0-9a-f]{6}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Generate("wf")
		if !pattern.MatchString(id) {
			t.Fatalf("node id should match wf-<6 hex chars>, got %q", id)
		}
		seen[id] = true
	}

	// 100 draws from a 24-bit space should essentially never all collide
	if len(seen) < 2 {
		t.Error("random node ids should vary")
	}
}

func TestSequentialNodes(t *testing.T) {
	gen := SequentialNodes()

	if got := gen.Generate("row"); got != "row-000001" {
		t.Errorf("expected row-000001, got %q", got)
	}
	if got := gen.Generate("col"); got != "col-000002" {
		t.Errorf("expected col-000002, got %q", got)
	}
}

func TestSequentialNodesConcurrent(t *testing.T) {
	gen := SequentialNodes()

	var wg sync.WaitGroup
	ids := make(chan string, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- gen.Generate("n")
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
