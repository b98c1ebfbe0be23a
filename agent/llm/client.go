package llm

import (
	"context"
	"errors"
	"strings"

	openaisdk "github.com/openai/openai-go"
	"github.com/rs/zerolog/log"

	contractx "github.com/nattawoot/maitre/agent/contract"
)

// Fallback is returned in place of model output whenever the completion
// service cannot be reached. The agent loop always receives a string and
// never has to special-case a completion failure mid-turn.
const Fallback = "I'm having trouble connecting right now."

// Client wraps exactly one chat-completion round trip against a fixed model
// with a fixed token ceiling. It is fail-soft: transport and service errors
// are logged for operators and absorbed into Fallback, never propagated.
type Client struct {
	api       *openaisdk.Client
	model     string
	maxTokens int64
}

var _ contractx.Completer = (*Client)(nil)

func New(api *openaisdk.Client, model string, maxTokens int) (*Client, error) {
	if api == nil {
		return nil, errors.New("openai client is required")
	}
	modelName := strings.TrimSpace(model)
	if modelName == "" {
		return nil, errors.New("model name is required")
	}
	if maxTokens <= 0 {
		maxTokens = 500
	}
	return &Client{
		api:       api,
		model:     modelName,
		maxTokens: int64(maxTokens),
	}, nil
}

func (c *Client) Complete(ctx context.Context, turns []contractx.Turn, temperature float64) string {
	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, turn := range turns {
		switch turn.Role {
		case contractx.RoleSystem:
			messages = append(messages, openaisdk.SystemMessage(turn.Content))
		case contractx.RoleAssistant:
			messages = append(messages, openaisdk.AssistantMessage(turn.Content))
		default:
			messages = append(messages, openaisdk.UserMessage(turn.Content))
		}
	}

	resp, err := c.api.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(c.model),
		Messages:    messages,
		Temperature: openaisdk.Float(temperature),
		MaxTokens:   openaisdk.Int(c.maxTokens),
	})
	if err != nil {
		log.Error().Err(err).Str("model", c.model).Msg("completion request failed")
		return Fallback
	}
	if len(resp.Choices) == 0 {
		log.Error().Str("model", c.model).Msg("completion returned no choices")
		return Fallback
	}
	return resp.Choices[0].Message.Content
}
