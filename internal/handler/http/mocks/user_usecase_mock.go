package mocks

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	FailGetByID           error
	FailOnboardPatient    error
	FailOnboardResearcher error
	FailFavorites         error

	// Return values
	MockUser      entity.User
	MockFavorites usecasecontract.ResolvedFavorites

	// Side-effect probes
	OnboardPatientCalls    int
	OnboardResearcherCalls int
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Email:    "test@example.com",
			Name:     "Test User",
			Role:     entity.UserRolePatient,
			IsActive: true,
		},
	}
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.FailGetByID != nil {
		return nil, m.FailGetByID
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) OnboardPatient(ctx context.Context, userID, conditionText string, location *entity.GeoPoint) (*entity.User, error) {
	m.OnboardPatientCalls++
	if m.FailOnboardPatient != nil {
		return nil, m.FailOnboardPatient
	}
	user := m.MockUser
	user.Location = location
	user.PatientProfile = &entity.PatientProfile{
		Condition:        "diabetes",
		ConditionFilters: []string{"diabetes", "type 2 diabetes"},
	}
	return &user, nil
}

func (m *MockUserUsecase) OnboardResearcher(ctx context.Context, userID, orcidID string, location *entity.GeoPoint, specialties, researchInterests []string) (*entity.User, error) {
	m.OnboardResearcherCalls++
	if m.FailOnboardResearcher != nil {
		return nil, m.FailOnboardResearcher
	}
	user := m.MockUser
	user.Role = entity.UserRoleResearcher
	user.Location = location
	user.ResearcherProfile = &entity.ResearcherProfile{
		Specialties:       specialties,
		ResearchInterests: researchInterests,
		OrcidID:           orcidID,
	}
	return &user, nil
}

func (m *MockUserUsecase) AddFavorite(ctx context.Context, userID string, kind entity.FavoriteKind, refID string) (*entity.User, error) {
	if m.FailFavorites != nil {
		return nil, m.FailFavorites
	}
	user := m.MockUser
	user.Favorites = append(user.Favorites, entity.Favorite{Kind: kind, RefID: refID})
	return &user, nil
}

func (m *MockUserUsecase) RemoveFavorite(ctx context.Context, userID string, kind entity.FavoriteKind, refID string) (*entity.User, error) {
	if m.FailFavorites != nil {
		return nil, m.FailFavorites
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) ListFavorites(ctx context.Context, userID string) (*usecasecontract.ResolvedFavorites, error) {
	if m.FailFavorites != nil {
		return nil, m.FailFavorites
	}
	return &m.MockFavorites, nil
}
