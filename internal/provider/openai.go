package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	defaultChatTimeout     = 30 * time.Second
	defaultChatTemperature = 0.3
)

// OpenAI calls the OpenAI Chat Completions API for all three capabilities.
type OpenAI struct {
	model      openai.ChatModel
	client     *openai.Client
	maxContent int
}

// NewOpenAI builds a provider against api.openai.com. With an empty API key
// the provider constructs fine but reports itself unavailable.
func NewOpenAI(apiKey string, model openai.ChatModel, maxContent int) *OpenAI {
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	p := &OpenAI{model: model, maxContent: maxContent}
	if apiKey != "" {
		cli := openai.NewClient(option.WithAPIKey(apiKey))
		p.client = &cli
	}
	return p
}

func (p *OpenAI) Name() string { return "openai" }

func (p *OpenAI) Available() bool { return p != nil && p.client != nil }

func (p *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	return chat(ctx, p.client, p.model,
		"You are an expert at summarizing documents. Create a concise, informative summary that captures the key points, main objectives, achievements, and important details. Keep the summary under 200 words.",
		"Please provide a comprehensive summary of the following document:\n\n"+clip(text, p.maxContent),
	)
}

func (p *OpenAI) Tag(ctx context.Context, text string) ([]string, error) {
	content, err := chat(ctx, p.client, p.model,
		"You are an expert at categorizing documents. Analyze the document and generate 3-5 relevant tags. Return only the tags as a comma-separated list, no additional text.",
		"Analyze this document and provide 3-5 relevant tags:\n\n"+clip(text, p.maxContent),
	)
	if err != nil {
		return nil, err
	}
	return parseTagList(content), nil
}

func (p *OpenAI) Answer(ctx context.Context, text, question string) (string, error) {
	return chat(ctx, p.client, p.model,
		"You are a helpful assistant that answers questions about documents. Answer concisely based only on the provided document content. If the document doesn't contain the information, say so clearly.",
		fmt.Sprintf("Document Content:\n%s\n\nQuestion: %s", clip(text, p.maxContent), question),
	)
}

// chat issues a single bounded chat completion and returns the first choice.
// Shared by the OpenAI and local providers.
func chat(ctx context.Context, client *openai.Client, model openai.ChatModel, system, user string) (string, error) {
	if client == nil {
		return "", fmt.Errorf("nil chat client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()

	resp, err := client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       model,
		Messages:    buildMessages(system, user),
		Temperature: openai.Float(defaultChatTemperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}

// parseTagList splits a comma-separated model response into clean tags.
func parseTagList(content string) []string {
	var tags []string
	for _, t := range strings.Split(content, ",") {
		t = strings.TrimSpace(strings.Trim(strings.TrimSpace(t), "."))
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// clip bounds the content submitted to a remote model.
func clip(text string, max int) string {
	if max <= 0 {
		return text
	}
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max])
}
