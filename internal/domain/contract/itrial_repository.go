package contract

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
)

type ITrialRepository interface {
	// UpsertTrial inserts or replaces a trial by its registry identifier.
	UpsertTrial(ctx context.Context, trial *entity.ClinicalTrial) error
	// GetTrialByID retrieves a trial by document ID.
	GetTrialByID(ctx context.Context, id string) (*entity.ClinicalTrial, error)
	// FindTrialsByConditions returns trials whose title or description
	// matches any of the given condition terms.
	FindTrialsByConditions(ctx context.Context, conditions []string, limit int64) ([]entity.ClinicalTrial, error)
	// SearchTrials returns trials matching the keyword, case-insensitive.
	SearchTrials(ctx context.Context, keyword string, limit int64) ([]entity.ClinicalTrial, error)
}
