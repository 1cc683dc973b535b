package contract

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser inserts a new user. Returns entity.ErrDuplicateEmail when
	// the email is already registered.
	CreateUser(ctx context.Context, user *entity.User) error
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateUser persists mutations to an existing user and returns the
	// updated record. Returns entity.ErrUserNotFound if the record is gone.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
}
