package externalservices

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// TrialRegistryService fetches trials from ClinicalTrials.gov.
//
// The registry integration is still a stub: it returns a fixed placeholder
// record so the summarize-and-store pipeline behind it can run end to end.
// TODO: replace with the real ClinicalTrials.gov v2 API query once the
// field mapping is agreed with the frontend.
type TrialRegistryService struct{}

var _ usecasecontract.ITrialFetcher = (*TrialRegistryService)(nil)

func NewTrialRegistryService() *TrialRegistryService {
	return &TrialRegistryService{}
}

func (s *TrialRegistryService) FetchExternalTrials(ctx context.Context, keywords string, conditions []string) ([]entity.ClinicalTrial, error) {
	return []entity.ClinicalTrial{
		{
			TrialID:     "NCT0000000",
			Title:       "Placeholder Trial",
			Description: "Placeholder trial returned until the registry integration lands.",
			Status:      "Recruiting",
		},
	}, nil
}
