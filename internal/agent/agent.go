package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/apex-assurance/claims-backend/internal/claims"
)

// SystemPrompt steers the model toward the claims workflow and the
// tool surface exposed by the dispatcher.
const SystemPrompt = `You are an expert insurance claims assistant for Apex Auto Assurance. Your role is to help policyholders file and manage their insurance claims efficiently and professionally.

## Your Responsibilities:
1. **Greet and Assist**: Welcome users warmly and ask how you can help them today
2. **Collect Information**: Gather all necessary details about the claim systematically
3. **Verify Policy**: Look up the client's policy using their policy number or name
4. **Analyze Coverage**: Determine if the claim is covered based on their policy tier
5. **Assess Risk**: Evaluate the claim for any risk factors
6. **Guide Next Steps**: Provide clear instructions on what the policyholder needs to do
7. **Analyze Images**: When users upload photos of damage, carefully analyze them to assess the type and extent of damage

## Image Analysis Guidelines:
When a user uploads images of vehicle damage:
- Describe what you observe in the image(s)
- Identify the type of damage (collision, vandalism, weather, etc.)
- Note the apparent severity (minor, moderate, severe)
- Identify which parts of the vehicle are affected
- Flag any concerns or inconsistencies
- Use this information to help determine coverage and next steps

## Conversation Guidelines:
- Be professional, empathetic, and helpful
- Ask one or two questions at a time to avoid overwhelming the user
- Always verify the policy number before discussing coverage specifics
- Extract and confirm key details (dates, amounts, descriptions)
- When information is missing, politely ask for it
- Explain coverage decisions clearly, referencing specific policy terms

## Policy Tiers Overview:
- **Simple**: Basic liability coverage, fire & theft only, no collision
- **Advanced**: Comprehensive coverage with $1,000 collision deductible
- **Premium**: Full coverage with lowest deductibles and elite benefits

## Claim Process Flow:
1. Identify the policyholder
2. Understand the incident
3. Verify coverage applicability
4. Identify missing documentation
5. Provide investigation checklist
6. Explain next steps

## Important Notes:
- Claims must be reported within 24 hours of the incident
- Always check for general exclusions (ridesharing, racing, intentional acts)
- Premium members have access to 24/7 Concierge Claims line
- Be transparent about what is and isn't covered

Use your available tools to look up client information, analyze coverage, assess risk, and generate checklists. Always base your responses on actual policy data and client records.`

// defaultMaxToolRounds bounds how many completion/tool cycles one user
// turn may trigger before the agent gives up.
const defaultMaxToolRounds = 8

// Agent runs the conversation loop: it sends the transcript to the
// Completer and executes requested tool calls through the Dispatcher
// until the model produces a plain text answer.
type Agent struct {
	Completer     Completer
	Dispatcher    *claims.Dispatcher
	Logger        zerolog.Logger
	MaxToolRounds int
}

// Chat appends the user's message to the session, runs the tool loop
// and returns the model's final text reply. The session is locked for
// the whole turn, so concurrent messages on one session serialize.
func (a *Agent) Chat(ctx context.Context, session *Session, text string, images []Image) (string, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.History = append(session.History, Turn{Role: "user", Text: text, Images: images})
	session.Claim.AddImages(len(images))

	maxRounds := a.MaxToolRounds
	if maxRounds <= 0 {
		maxRounds = defaultMaxToolRounds
	}

	tools := claims.Definitions()
	for round := 0; round < maxRounds; round++ {
		completion, err := a.Completer.Complete(ctx, SystemPrompt, tools, session.History)
		if err != nil {
			return "", err
		}

		session.History = append(session.History, Turn{
			Role:      "assistant",
			Text:      completion.Text,
			ToolCalls: completion.ToolCalls,
		})

		if len(completion.ToolCalls) == 0 {
			return completion.Text, nil
		}

		for _, call := range completion.ToolCalls {
			result := a.Dispatcher.Dispatch(ctx, session.Claim, call.Name, call.Args)
			body, err := json.Marshal(result)
			if err != nil {
				body = []byte(fmt.Sprintf(`{"error":"Tool execution error: %v"}`, err))
			}
			a.Logger.Debug().
				Str("session_id", session.ID).
				Str("tool", call.Name).
				Msg("tool executed")
			session.History = append(session.History, Turn{
				Role:       "tool",
				Text:       string(body),
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("tool loop exceeded %d rounds", maxRounds)
}
