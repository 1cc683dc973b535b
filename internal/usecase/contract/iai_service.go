package contract

import "context"

// SummaryAudience selects the tone of an AI-generated summary.
type SummaryAudience string

const (
	AudiencePatient    SummaryAudience = "Patient-friendly"
	AudienceResearcher SummaryAudience = "Researcher-focused"
)

type IAIService interface {
	// ExtractConditions pulls medical condition terms out of free text.
	ExtractConditions(ctx context.Context, text string) ([]string, error)
	// GenerateSummary summarizes a medical abstract for the given audience.
	GenerateSummary(ctx context.Context, abstract string, audience SummaryAudience) (string, error)
}
