package contract

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
)

type ITrialFetcher interface {
	// FetchExternalTrials queries an external trial registry for trials
	// matching the keywords and condition terms.
	FetchExternalTrials(ctx context.Context, keywords string, conditions []string) ([]entity.ClinicalTrial, error)
}
