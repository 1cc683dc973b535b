package contract

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
)

type IDashboardUseCase interface {
	// GetDashboard returns the role-dependent personalized payload for the user.
	GetDashboard(ctx context.Context, userID string, role entity.UserRole) (*DashboardPayload, error)
}

type ISearchUseCase interface {
	// Search runs a keyword search over trials, publications and experts.
	Search(ctx context.Context, keywords string) (*SearchResult, error)
}

// SearchResult is the combined payload of a global search.
type SearchResult struct {
	Keywords     string                 `json:"keywords"`
	Trials       []entity.ClinicalTrial `json:"trials"`
	Publications []entity.Publication   `json:"publications"`
	Experts      []entity.Expert        `json:"experts"`
}
