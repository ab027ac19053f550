package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Local talks to a locally hosted OpenAI-compatible inference server
// (llama.cpp, Ollama and similar). The client is constructed on first use;
// sync.Once keeps that safe under concurrent first calls.
type Local struct {
	baseURL    string
	model      openai.ChatModel
	maxContent int

	once   sync.Once
	client *openai.Client
}

func NewLocal(baseURL, model string, maxContent int) *Local {
	return &Local{baseURL: baseURL, model: openai.ChatModel(model), maxContent: maxContent}
}

func (p *Local) Name() string { return "local" }

func (p *Local) Available() bool { return p != nil && p.baseURL != "" }

func (p *Local) cli() *openai.Client {
	p.once.Do(func() {
		c := openai.NewClient(
			option.WithBaseURL(p.baseURL),
			// Compatible servers require a bearer token even when unused.
			option.WithAPIKey("local"),
		)
		p.client = &c
	})
	return p.client
}

func (p *Local) Summarize(ctx context.Context, text string) (string, error) {
	return chat(ctx, p.cli(), p.model,
		"Summarize the following document in a short paragraph. Mention key achievements, features and current status when present.",
		clip(text, p.maxContent),
	)
}

func (p *Local) Tag(ctx context.Context, text string) ([]string, error) {
	content, err := chat(ctx, p.cli(), p.model,
		"Generate 3-5 short category tags for the following document. Return only the tags as a comma-separated list.",
		clip(text, p.maxContent),
	)
	if err != nil {
		return nil, err
	}
	return parseTagList(content), nil
}

func (p *Local) Answer(ctx context.Context, text, question string) (string, error) {
	return chat(ctx, p.cli(), p.model,
		"Answer the question using only the provided document content.",
		fmt.Sprintf("Document Content:\n%s\n\nQuestion: %s", clip(text, p.maxContent), question),
	)
}
