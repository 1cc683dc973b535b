package externalservices

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

const defaultModel = "gemini-2.5-flash"

// GeminiAIService implements the IAIService contract on top of the
// Google Gemini API.
type GeminiAIService struct {
	client *genai.Client
	model  string
}

var _ usecasecontract.IAIService = (*GeminiAIService)(nil)

// NewGeminiAIService creates the Gemini-backed AI service.
func NewGeminiAIService(ctx context.Context, apiKey string) (*GeminiAIService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAIService{client: client, model: defaultModel}, nil
}

// ExtractConditions asks the model for a JSON array of condition terms
// found in the free text.
func (s *GeminiAIService) ExtractConditions(ctx context.Context, text string) ([]string, error) {
	prompt := fmt.Sprintf("Extract medical conditions or keywords from the following text: %s. Return only a JSON array of strings, with no additional text or markdown formatting.", text)
	raw, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Models occasionally wrap the array in a markdown fence despite the prompt.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var conditions []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &conditions); err != nil {
		return nil, fmt.Errorf("failed to parse extracted conditions: %w", err)
	}
	return conditions, nil
}

// GenerateSummary summarizes a medical abstract for the given audience.
func (s *GeminiAIService) GenerateSummary(ctx context.Context, abstract string, audience usecasecontract.SummaryAudience) (string, error) {
	var prompt string
	switch audience {
	case usecasecontract.AudiencePatient:
		prompt = fmt.Sprintf("Summarize the following medical text in simple, patient-friendly language, focusing on the impact and key takeaways: %s.", abstract)
	case usecasecontract.AudienceResearcher:
		prompt = fmt.Sprintf("Summarize the following medical text in a technical, researcher-focused manner, highlighting methods, results, and significance: %s.", abstract)
	default:
		prompt = fmt.Sprintf("Summarize the following medical text: %s.", abstract)
	}
	return s.generate(ctx, prompt)
}

func (s *GeminiAIService) generate(ctx context.Context, prompt string) (string, error) {
	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
