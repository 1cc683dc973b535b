package contract

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
)

// DashboardPayload is the personalized payload for one user, and the unit
// cached by the dashboard cache.
type DashboardPayload struct {
	Message      string                 `json:"message"`
	Trials       []entity.ClinicalTrial `json:"trials,omitempty"`
	Publications []entity.Publication   `json:"publications,omitempty"`
	Experts      []entity.Expert        `json:"experts,omitempty"`
}

// IDashboardCache caches dashboard payloads per user. The cache is optional:
// a nil cache means every read goes to the repositories.
type IDashboardCache interface {
	GetDashboard(ctx context.Context, userID string) (*DashboardPayload, bool, error)
	SetDashboard(ctx context.Context, userID string, payload *DashboardPayload) error
	InvalidateDashboard(ctx context.Context, userID string) error
}
