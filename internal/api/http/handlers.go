package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/uxforge/agent-api/internal/domain/intent"
	"github.com/uxforge/agent-api/internal/domain/wireframe"
	"github.com/uxforge/agent-api/internal/infrastructure/monitoring"
	"github.com/uxforge/agent-api/internal/shared/types"
)

// Service identity reported by the liveness endpoint.
const (
	serviceName    = "ai-agent"
	serviceVersion = "1.0.0"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	extractor   *intent.Extractor
	synthesizer *wireframe.Synthesizer
	metrics     *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(extractor *intent.Extractor, synthesizer *wireframe.Synthesizer, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		extractor:   extractor,
		synthesizer: synthesizer,
		metrics:     metrics,
	}
}

// Root handles the liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// Health handles the detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"extractor":   gin.H{"vocabulary_size": h.extractor.VocabularySize()},
		"synthesizer": gin.H{"rules": wireframe.RuleCount},
	})
}

// Interpret extracts intents from a free-text prompt
func (h *Handlers) Interpret(c *gin.Context) {
	var req types.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The core owns no precondition checks; empty prompts stop here
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt cannot be empty"})
		return
	}

	intents := h.extractor.Extract(prompt)

	if h.metrics != nil {
		for _, in := range intents {
			h.metrics.RecordIntent(string(in.Type))
		}
	}

	c.JSON(http.StatusOK, gin.H{"intents": intents})
}

// SpecifyWireframe expands a list of intents into a wireframe specification
func (h *Handlers) SpecifyWireframe(c *gin.Context) {
	var req types.WireframeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intents := make([]intent.Intent, 0, len(req.Intents))
	for _, in := range req.Intents {
		intents = append(intents, intent.Intent{Type: intent.Type(in.Type), Value: in.Value})
	}

	spec := h.synthesizer.Synthesize(intents)

	if h.metrics != nil {
		componentTypes := make([]string, 0, len(spec.Components))
		for _, comp := range spec.Components {
			componentTypes = append(componentTypes, string(comp.Type))
		}
		h.metrics.RecordWireframe(componentTypes...)
	}

	c.JSON(http.StatusOK, gin.H{"wireframe_spec": spec})
}
