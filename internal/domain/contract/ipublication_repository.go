package contract

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
)

type IPublicationRepository interface {
	// CreatePublication inserts a new publication, unique by DOI.
	CreatePublication(ctx context.Context, pub *entity.Publication) error
	// FindPublicationsByConditions returns publications whose title or
	// abstract matches any of the given condition terms.
	FindPublicationsByConditions(ctx context.Context, conditions []string, limit int64) ([]entity.Publication, error)
	// SearchPublications returns publications matching the keyword, case-insensitive.
	SearchPublications(ctx context.Context, keyword string, limit int64) ([]entity.Publication, error)
}
