package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"coursecraft/models"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var (
	// ErrUnavailable means no generation collaborator is configured.
	ErrUnavailable = errors.New("llm: service unavailable")
	// ErrInvalidPlan means the model responded, but its output failed JSON
	// parsing or schema validation.
	ErrInvalidPlan = errors.New("llm: model produced an invalid plan")
	// ErrGenerationFailed covers transport and other unclassified failures.
	ErrGenerationFailed = errors.New("llm: generation failed")
)

// GenerateRequest describes the course the user wants a roadmap for.
type GenerateRequest struct {
	Field string `json:"field"`
	Level string `json:"level"`
}

// Client calls the Gemini generateContent API and returns schema-validated
// course plan drafts.
type Client struct {
	apiKey    string
	model     string
	baseURL   string
	http      *resty.Client
	available bool
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient builds a generation client. An empty API key yields a client
// in the unavailable state: GeneratePlan fails fast with ErrUnavailable
// instead of calling out.
func NewClient(apiKey, model string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		model:     model,
		baseURL:   defaultBaseURL,
		http:      resty.New().SetTimeout(60 * time.Second),
		available: apiKey != "",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether a generation collaborator is configured.
func (c *Client) Available() bool {
	return c.available
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string      `json:"responseMimeType,omitempty"`
	ResponseSchema   interface{} `json:"responseSchema,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeneratePlan asks the model for a structured course roadmap and returns a
// validated draft. The draft carries no id and no owner; persistence
// assigns both. There is no retry here: callers decide whether a failed
// generation is worth repeating.
func (c *Client) GeneratePlan(ctx context.Context, req GenerateRequest, userName string) (*models.CoursePlan, error) {
	if !c.available {
		return nil, ErrUnavailable
	}

	body := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemInstruction}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userPrompt(req, userName)}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   planResponseSchema,
		},
	}

	var out geminiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model))
	if err != nil {
		log.Printf("Gemini API call failed: %v", err)
		return nil, ErrGenerationFailed
	}
	if resp.StatusCode() != 200 {
		log.Printf("Gemini API returned status %d: %s", resp.StatusCode(), resp.String())
		return nil, ErrGenerationFailed
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		log.Printf("Gemini API returned no candidates")
		return nil, fmt.Errorf("%w: empty response", ErrInvalidPlan)
	}

	plan, err := ParsePlan([]byte(out.Candidates[0].Content.Parts[0].Text))
	if err != nil {
		log.Printf("LLM output validation error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}

	return plan, nil
}
