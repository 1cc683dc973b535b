package mocks

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface
type MockAuthUsecase struct {
	// Control mock behavior
	FailRegister     error
	FailLogin        error
	FailAuthenticate error

	// Return values
	MockUser  entity.User
	MockToken string

	// Side-effect probes
	AuthenticateCalls int
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Email:    "test@example.com",
			Name:     "Test User",
			Role:     entity.UserRolePatient,
			IsActive: true,
		},
		MockToken: "mock_access_token",
	}
}

func (m *MockAuthUsecase) RegisterPatient(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	if m.FailRegister != nil {
		return nil, "", m.FailRegister
	}
	user := m.MockUser
	user.Role = entity.UserRolePatient
	return &user, m.MockToken, nil
}

func (m *MockAuthUsecase) RegisterResearcher(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	if m.FailRegister != nil {
		return nil, "", m.FailRegister
	}
	user := m.MockUser
	user.Role = entity.UserRoleResearcher
	return &user, m.MockToken, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.FailLogin != nil {
		return nil, "", m.FailLogin
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	m.AuthenticateCalls++
	if m.FailAuthenticate != nil {
		return nil, m.FailAuthenticate
	}
	return &m.MockUser, nil
}
