package agent

import (
	"context"
	"encoding/json"

	"github.com/apex-assurance/claims-backend/internal/claims"
)

// Image is one user-supplied photo attached to a turn, already encoded.
type Image struct {
	Base64    string `json:"base64"`
	MediaType string `json:"media_type"`
}

// ToolCall is a single tool invocation requested by the model.
type ToolCall struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// Completion is one model reply. ToolCalls empty means the model
// produced a final text answer for the user.
type Completion struct {
	Text      string     `json:"text"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Turn is one entry of a session transcript. Role is one of "user",
// "assistant" or "tool"; tool turns carry the serialized tool result
// in Text and reference the originating call via ToolCallID.
type Turn struct {
	Role       string     `json:"role"`
	Text       string     `json:"text"`
	Images     []Image    `json:"images,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// Completer produces the next model reply for a transcript. Implemented
// by OpenAICompatCompleter for real model backends and MockCompleter
// for offline development.
type Completer interface {
	Complete(ctx context.Context, system string, tools []claims.ToolDefinition, history []Turn) (Completion, error)
}
