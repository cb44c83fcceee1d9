package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// LLMModelName is the Gemini model used for analysis and outfit generation.
type LLMModelName int32

const (
	Flash25 LLMModelName = iota
	Pro25
	FlashLite25
	Flash20
	Flash15
)

func (t LLMModelName) String() string {
	switch t {
	case Pro25:
		return "gemini-2.5-pro"
	case Flash25:
		return "gemini-2.5-flash"
	case FlashLite25:
		return "gemini-2.5-flash-lite"
	case Flash20:
		return "gemini-2.0-flash"
	case Flash15:
		return "gemini-1.5-flash"
	default:
		return "gemini-2.5-flash"
	}
}

// ParseLLMModelName maps a model id from config, unknown ids select Flash25.
func ParseLLMModelName(name string) LLMModelName {
	for _, model := range []LLMModelName{Flash25, Pro25, FlashLite25, Flash20, Flash15} {
		if strings.EqualFold(strings.TrimSpace(name), model.String()) {
			return model
		}
	}
	return Flash25
}

func floatPointer(f float32) *float32 {
	return &f
}

type LLMResponse struct {
	Response           string `json:"response"`
	InputTokenCount    int32  `json:"input_token_count"`
	Thoughts           string `json:"thoughts"`
	ThoughtsTokenCount int32  `json:"thoughts_token_count"`
	OutputTokenCount   int32  `json:"output_token_count"`
	TotalTokenCount    int32  `json:"total_token_count"`
	IsTest             bool   `json:"is_test"`
}

// GenerativeModel is the external model the wardrobe pipeline talks to. Neither call
// promises a schema, callers parse defensively.
type GenerativeModel interface {
	// Analyze returns free text expected to hold a JSON object with
	// type, color, material, style, season and sustainability_score.
	Analyze(ctx context.Context, image []byte, mimeType string) (*LLMResponse, error)
	// Generate returns free text expected to hold a JSON array of outfits.
	Generate(ctx context.Context, prompt string) (*LLMResponse, error)
}

const clothingAnalysisPrompt = `
You are a clothing analysis expert. For the image provided:
1. Identify the type of clothing (e.g., shirt, pants, dress)
2. Describe its color(s)
3. Identify the material if visible (e.g., cotton, denim, polyester)
4. Determine its style (casual, formal, sporty, etc.)
5. Suggest seasons appropriate for this item (summer, winter, all-season, etc.)

Format your response as a JSON object with these keys:
type, color, material, style, season, sustainability_score

For sustainability_score, provide a score from 1-10 based on the likely material.
Cotton: 6, Organic Cotton: 8, Polyester: 3, Recycled Polyester: 5, Nylon: 2,
Wool: 7, Linen: 9, Silk: 7, Denim: 4, Leather: 3, Vegan Leather: 4
`

type GoogleLLMProcessor struct {
	client *genai.Client
	model  LLMModelName
}

// NewGoogleLLMProcessor builds a Gemini API client. Without a key there is nothing to
// talk to, so ErrMissingCredential is returned and callers should stop.
func NewGoogleLLMProcessor(ctx context.Context, apiKey string, model LLMModelName) (*GoogleLLMProcessor, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingCredential
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GoogleLLMProcessor{client: client, model: model}, nil
}

func (p *GoogleLLMProcessor) Analyze(ctx context.Context, image []byte, mimeType string) (*LLMResponse, error) {
	parts := []*genai.Part{
		{Text: clothingAnalysisPrompt},
		{InlineData: &genai.Blob{Data: image, MIMEType: mimeType}},
	}
	return p.generate(ctx, parts)
}

func (p *GoogleLLMProcessor) Generate(ctx context.Context, prompt string) (*LLMResponse, error) {
	return p.generate(ctx, []*genai.Part{{Text: prompt}})
}

func (p *GoogleLLMProcessor) generate(ctx context.Context, parts []*genai.Part) (*LLMResponse, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model.String(), []*genai.Content{{Parts: parts}}, &genai.GenerateContentConfig{
		CandidateCount: 1,
		Temperature:    floatPointer(0.7),
	})
	if err != nil {
		fmt.Println("Error in GenerateContent:", err)
		return nil, fmt.Errorf("generate content with %s: %w", p.model, err)
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		fmt.Println(result.PromptFeedback.BlockReason, result.PromptFeedback.BlockReasonMessage)
		return nil, fmt.Errorf("content violation: %s", result.PromptFeedback.BlockReasonMessage)
	}

	text, err := GetFirstCandidateTextWithThoughts(result)
	if err != nil {
		return nil, err
	}
	response := &LLMResponse{
		Response: text.Text,
		Thoughts: text.Thoughts,
	}
	if result.UsageMetadata != nil {
		response.InputTokenCount = result.UsageMetadata.PromptTokenCount
		response.ThoughtsTokenCount = result.UsageMetadata.ThoughtsTokenCount
		response.OutputTokenCount = result.UsageMetadata.CandidatesTokenCount
		response.TotalTokenCount = result.UsageMetadata.TotalTokenCount
		fmt.Printf("[LLM %s] IT: %d, OT: %d, TT: %d, TOT: %d\n", p.model, response.InputTokenCount, response.OutputTokenCount, response.ThoughtsTokenCount, response.TotalTokenCount)
	}
	if strings.TrimSpace(response.Response) == "" {
		return nil, ErrEmptyLLMResponse
	}
	return response, nil
}

type ResponseWithThoughts struct {
	Thoughts string `json:"thoughts"`
	Text     string `json:"text"`
}

func GetFirstCandidateTextWithThoughts(result *genai.GenerateContentResponse) (*ResponseWithThoughts, error) {
	if result == nil {
		return nil, ErrEmptyLLMResponse
	}
	var thinkingContent string
	for _, c := range result.Candidates {
		for _, rating := range c.SafetyRatings {
			if rating.Blocked {
				fmt.Println("[Safety] rating:", rating.Category, "Score:", rating.Probability, " Blocked:", rating.Blocked)
				return nil, fmt.Errorf("content violation: blocked for %s", rating.Category)
			}
		}
		if c.Content == nil {
			continue
		}
		for _, part := range c.Content.Parts {
			if part.Thought && part.Text != "" {
				thinkingContent = part.Text
			}
		}
	}
	return &ResponseWithThoughts{
		Thoughts: thinkingContent,
		Text:     result.Text(),
	}, nil
}
