package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/apex-assurance/claims-backend/internal/claims"
)

// RateLimitError reports an HTTP 429 from the model backend, carrying
// the retry delay when the provider supplies one.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (r RateLimitError) Error() string {
	if r.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", r.RetryAfter)
	}
	return "rate limited"
}

// OpenAICompatCompleter talks to any /chat/completions endpoint that
// speaks the OpenAI wire format with function tools.
type OpenAICompatCompleter struct {
	BaseURL   string
	Model     string
	APIKey    string
	MaxTokens int
}

type wireMessage struct {
	Role       string         `json:"role"`
	Content    any            `json:"content"`
	ToolCalls  []wireToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

type wireToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

func (o OpenAICompatCompleter) Complete(ctx context.Context, system string, tools []claims.ToolDefinition, history []Turn) (Completion, error) {
	if strings.TrimSpace(o.BaseURL) == "" {
		return Completion{}, fmt.Errorf("LLM_BASE_URL is not set")
	}
	if strings.TrimSpace(o.Model) == "" {
		return Completion{}, fmt.Errorf("LLM_MODEL is not set")
	}

	messages := []wireMessage{{Role: "system", Content: system}}
	for _, t := range history {
		messages = append(messages, toWire(t))
	}

	wireTools := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		wireTools = append(wireTools, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        t.Name,
				"description": t.Description,
				"parameters":  t.InputSchema,
			},
		})
	}

	payload := struct {
		Model     string           `json:"model"`
		MaxTokens int              `json:"max_tokens,omitempty"`
		Messages  []wireMessage    `json:"messages"`
		Tools     []map[string]any `json:"tools,omitempty"`
	}{
		Model:     o.Model,
		MaxTokens: o.MaxTokens,
		Messages:  messages,
		Tools:     wireTools,
	}

	b, _ := json.Marshal(payload)
	url := strings.TrimRight(o.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return Completion{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(o.APIKey) != "" {
		req.Header.Set("Authorization", "Bearer "+o.APIKey)
	}

	timeout := 45 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Completion{}, fmt.Errorf("model request timed out")
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return Completion{}, fmt.Errorf("model request timed out")
		}
		return Completion{}, fmt.Errorf("model request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if resp.StatusCode == http.StatusTooManyRequests {
			if d := extractRetryAfter(errBody); d > 0 {
				return Completion{}, RateLimitError{RetryAfter: d}
			}
			return Completion{}, RateLimitError{}
		}
		return Completion{}, fmt.Errorf("model http error: %s: %v", resp.Status, errBody)
	}

	var res struct {
		Choices []struct {
			Message struct {
				Content   string         `json:"content"`
				ToolCalls []wireToolCall `json:"tool_calls"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Completion{}, err
	}
	if len(res.Choices) == 0 {
		return Completion{}, fmt.Errorf("empty model response")
	}

	msg := res.Choices[0].Message
	out := Completion{Text: msg.Content}
	for _, tc := range msg.ToolCalls {
		args := tc.Function.Arguments
		if strings.TrimSpace(args) == "" {
			args = "{}"
		}
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: json.RawMessage(args),
		})
	}
	return out, nil
}

// toWire maps a transcript turn onto the OpenAI message shape. Images
// go before the text so the model sees the photos the user is
// describing.
func toWire(t Turn) wireMessage {
	switch t.Role {
	case "tool":
		return wireMessage{Role: "tool", Content: t.Text, ToolCallID: t.ToolCallID}

	case "assistant":
		m := wireMessage{Role: "assistant", Content: t.Text}
		for _, call := range t.ToolCalls {
			var wc wireToolCall
			wc.ID = call.ID
			wc.Type = "function"
			wc.Function.Name = call.Name
			wc.Function.Arguments = string(call.Args)
			m.ToolCalls = append(m.ToolCalls, wc)
		}
		return m

	default:
		if len(t.Images) == 0 {
			return wireMessage{Role: "user", Content: t.Text}
		}
		parts := make([]map[string]any, 0, len(t.Images)+1)
		for _, img := range t.Images {
			mediaType := img.MediaType
			if mediaType == "" {
				mediaType = "image/jpeg"
			}
			parts = append(parts, map[string]any{
				"type": "image_url",
				"image_url": map[string]any{
					"url": fmt.Sprintf("data:%s;base64,%s", mediaType, img.Base64),
				},
			})
		}
		parts = append(parts, map[string]any{"type": "text", "text": t.Text})
		return wireMessage{Role: "user", Content: parts}
	}
}

func extractRetryAfter(errBody map[string]any) time.Duration {
	errObj, ok := errBody["error"].(map[string]any)
	if !ok {
		return 0
	}
	details, ok := errObj["details"].([]any)
	if !ok {
		return 0
	}
	for _, d := range details {
		m, ok := d.(map[string]any)
		if !ok {
			continue
		}
		if t, ok := m["@type"].(string); ok && strings.Contains(t, "RetryInfo") {
			if s, ok := m["retryDelay"].(string); ok {
				if dur, err := time.ParseDuration(s); err == nil {
					return dur
				}
			}
		}
	}
	return 0
}
