package types

// PromptRequest is the body of POST /interpret.
type PromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// WireframeIntent carries one intent on the wire. Synthesis only consults
// Type; Value is accepted for compatibility and ignored.
type WireframeIntent struct {
	Type  string      `json:"type" binding:"required"`
	Value interface{} `json:"value,omitempty"`
}

// WireframeRequest is the body of POST /specify-wireframe. The intents field
// must be present; an empty list is valid and produces the fallback layout.
type WireframeRequest struct {
	Intents []WireframeIntent `json:"intents" binding:"required,dive"`
}
