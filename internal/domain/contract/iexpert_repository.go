package contract

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
)

type IExpertRepository interface {
	// CreateExpert inserts a new expert profile.
	CreateExpert(ctx context.Context, expert *entity.Expert) error
	// GetExpertByID retrieves an expert by document ID.
	GetExpertByID(ctx context.Context, id string) (*entity.Expert, error)
	// FindExpertsBySpecialties returns experts matching any of the given
	// specialties or research interests.
	FindExpertsBySpecialties(ctx context.Context, specialties []string, limit int64) ([]entity.Expert, error)
	// SearchExperts returns experts matching the keyword, case-insensitive.
	SearchExperts(ctx context.Context, keyword string, limit int64) ([]entity.Expert, error)
}
