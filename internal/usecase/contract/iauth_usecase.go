package contract

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
)

type IAuthUseCase interface {
	// RegisterPatient creates a patient account and issues an access token,
	// so registration doubles as login. The role is fixed by the entry
	// point, never client-supplied.
	RegisterPatient(ctx context.Context, name, email, password string) (*entity.User, string, error)
	// RegisterResearcher creates a researcher account and issues an access token.
	RegisterResearcher(ctx context.Context, name, email, password string) (*entity.User, string, error)
	// Login authenticates by email and password and issues an access token.
	// Every failure returns entity.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	// Authenticate resolves an access token to the user it belongs to.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}
