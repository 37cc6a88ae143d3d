package llm

import (
	"context"
	"encoding/json"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"

	"rapport/internal/contract"
)

const defaultModel = "gpt-4o-mini"

// OpenAI talks to an OpenAI-compatible chat completion endpoint. The client
// is constructed once from configuration and injected; there is no ambient
// global handle.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	if model == "" {
		model = defaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAI{client: &client, model: model}
}

func (o *OpenAI) Name() string  { return "openai" }
func (o *OpenAI) Model() string { return o.model }

func (o *OpenAI) ProcessInteraction(ctx context.Context, text string) (contract.IntentResult, error) {
	raw, err := o.complete(ctx, interactionSystemPrompt, text, 2000)
	if err != nil {
		return contract.IntentResult{}, err
	}
	return contract.DecodeIntentResult(raw)
}

func (o *OpenAI) ResolveReminderResponse(ctx context.Context, text string, rc contract.ReminderContext) (contract.ReminderResolution, error) {
	contextJSON, err := json.Marshal(rc)
	if err != nil {
		return contract.ReminderResolution{}, err
	}
	user := "Context: " + string(contextJSON) + "\n\nUser response: " + text
	raw, err := o.complete(ctx, reminderSystemPrompt, user, 500)
	if err != nil {
		return contract.ReminderResolution{}, err
	}
	return contract.DecodeReminderResolution(raw)
}

func (o *OpenAI) complete(ctx context.Context, system, user string, maxTokens int64) (string, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: param.NewOpt(0.1),
		MaxTokens:   param.NewOpt(maxTokens),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}
	return completion.Choices[0].Message.Content, nil
}
