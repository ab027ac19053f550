package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"doc-insight/internal/analyze"
)

const (
	defaultHFBaseURL = "https://api-inference.huggingface.co"
	hfRequestTimeout = 30 * time.Second
	// The hosted inference endpoints reject long inputs; the original
	// models were trained on roughly this window anyway.
	hfContextLimit = 1000
)

// HFAPI calls hosted inference endpoints: a summarization model and an
// extractive question-answering model. Requests are rate limited so chained
// full-analysis calls don't hit the free-tier throttle.
type HFAPI struct {
	apiKey       string
	baseURL      string
	summaryModel string
	qaModel      string
	hc           *http.Client
	limiter      *rate.Limiter
}

func NewHFAPI(apiKey, baseURL, summaryModel, qaModel string) *HFAPI {
	if baseURL == "" {
		baseURL = defaultHFBaseURL
	}
	if summaryModel == "" {
		summaryModel = "facebook/bart-large-cnn"
	}
	if qaModel == "" {
		qaModel = "deepset/roberta-base-squad2"
	}
	return &HFAPI{
		apiKey:       apiKey,
		baseURL:      baseURL,
		summaryModel: summaryModel,
		qaModel:      qaModel,
		hc:           &http.Client{Timeout: hfRequestTimeout},
		limiter:      rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

func (p *HFAPI) Name() string { return "hf-api" }

func (p *HFAPI) Available() bool { return p != nil && p.apiKey != "" }

func (p *HFAPI) Summarize(ctx context.Context, text string) (string, error) {
	body := map[string]any{
		"inputs": clip(text, hfContextLimit),
		"parameters": map[string]int{
			"max_length": 150,
			"min_length": 50,
		},
	}
	var out []struct {
		SummaryText string `json:"summary_text"`
	}
	if err := p.post(ctx, p.summaryModel, body, &out); err != nil {
		return "", err
	}
	if len(out) == 0 || out[0].SummaryText == "" {
		return "", fmt.Errorf("hf-api: empty summarization response")
	}
	return out[0].SummaryText, nil
}

// Tag has no dedicated hosted model; the remote summary is matched against
// the category table instead, so tags still reflect model output.
func (p *HFAPI) Tag(ctx context.Context, text string) ([]string, error) {
	summary, err := p.Summarize(ctx, text)
	if err != nil {
		return nil, err
	}
	tags := analyze.Tags(summary)
	if len(tags) == 0 {
		return nil, fmt.Errorf("hf-api: no categories matched summary")
	}
	return tags, nil
}

func (p *HFAPI) Answer(ctx context.Context, text, question string) (string, error) {
	body := map[string]any{
		"inputs": map[string]string{
			"question": question,
			"context":  clip(text, hfContextLimit),
		},
	}
	var out struct {
		Answer string  `json:"answer"`
		Score  float64 `json:"score"`
	}
	if err := p.post(ctx, p.qaModel, body, &out); err != nil {
		return "", err
	}
	if out.Answer == "" {
		return "", fmt.Errorf("hf-api: no answer found")
	}
	return out.Answer, nil
}

func (p *HFAPI) post(ctx context.Context, model string, body, out any) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/models/"+model, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.hc.Do(req)
	if err != nil {
		return fmt.Errorf("hf-api request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("hf-api %s: status %d: %s", model, resp.StatusCode, string(b))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
