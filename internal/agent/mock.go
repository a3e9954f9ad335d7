package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/apex-assurance/claims-backend/internal/claims"
	"github.com/apex-assurance/claims-backend/internal/utils"
)

// MockCompleter is a deterministic stand-in for a model backend used in
// local development and tests. It looks up any policy number it spots
// in the user's message, otherwise answers with a canned reply seeded
// by the message hash.
type MockCompleter struct {
	ModelVersion string
}

var mockReplies = []string{
	"Thanks for reaching out to Apex Auto Assurance. Could you share your policy number so I can pull up your coverage?",
	"I'm sorry to hear about the incident. Can you tell me when and where it happened?",
	"Got it. Do you have photos of the damage, and was a police report filed?",
	"Understood. Could you estimate the damage amount and describe what happened?",
}

func (m MockCompleter) Complete(ctx context.Context, system string, tools []claims.ToolDefinition, history []Turn) (Completion, error) {
	if len(history) == 0 {
		return Completion{Text: mockReplies[0]}, nil
	}

	last := history[len(history)-1]
	if last.Role == "tool" {
		return Completion{Text: fmt.Sprintf("Here is what I found: %s", last.Text)}, nil
	}

	entities := claims.ExtractEntities(last.Text)
	if len(entities.PolicyNumbers) > 0 {
		args, _ := json.Marshal(map[string]string{"policy_number": entities.PolicyNumbers[0]})
		return Completion{
			ToolCalls: []ToolCall{{
				ID:   fmt.Sprintf("mock-%d", utils.HashStringToUint64(last.Text)%1000),
				Name: claims.ToolLookupClientByPolicy,
				Args: args,
			}},
		}, nil
	}

	h := utils.HashStringToUint64(last.Text)
	return Completion{Text: mockReplies[h%uint64(len(mockReplies))]}, nil
}
