package contract

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
)

// ResolvedFavorites is a favorites list with its weak references resolved.
// Dangling references are skipped, not errored.
type ResolvedFavorites struct {
	Trials  []entity.ClinicalTrial `json:"trials"`
	Experts []entity.Expert        `json:"experts"`
}

type IUserUseCase interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	// OnboardPatient stores the patient's location and condition profile.
	// Condition terms are extracted from the free-text description.
	OnboardPatient(ctx context.Context, userID, conditionText string, location *entity.GeoPoint) (*entity.User, error)
	// OnboardResearcher stores the researcher's location and profile.
	// All fields are optional by design.
	OnboardResearcher(ctx context.Context, userID, orcidID string, location *entity.GeoPoint, specialties, researchInterests []string) (*entity.User, error)
	// AddFavorite appends a weak reference to the user's favorites. Adding
	// the same reference twice is a no-op.
	AddFavorite(ctx context.Context, userID string, kind entity.FavoriteKind, refID string) (*entity.User, error)
	// RemoveFavorite drops a weak reference from the user's favorites.
	RemoveFavorite(ctx context.Context, userID string, kind entity.FavoriteKind, refID string) (*entity.User, error)
	// ListFavorites resolves the user's favorites into full records.
	ListFavorites(ctx context.Context, userID string) (*ResolvedFavorites, error)
}
