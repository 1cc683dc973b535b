package mocks

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/entity"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// MockDashboardUsecase is a mock implementation of the IDashboardUseCase interface
type MockDashboardUsecase struct {
	// Control mock behavior
	FailGetDashboard error

	// Return values
	MockPayload usecasecontract.DashboardPayload

	// Side-effect probes
	LastRole entity.UserRole
}

var _ usecasecontract.IDashboardUseCase = (*MockDashboardUsecase)(nil)

func NewMockDashboardUsecase() *MockDashboardUsecase {
	return &MockDashboardUsecase{
		MockPayload: usecasecontract.DashboardPayload{
			Message: "Patient dashboard data",
		},
	}
}

func (m *MockDashboardUsecase) GetDashboard(ctx context.Context, userID string, role entity.UserRole) (*usecasecontract.DashboardPayload, error) {
	m.LastRole = role
	if m.FailGetDashboard != nil {
		return nil, m.FailGetDashboard
	}
	payload := m.MockPayload
	return &payload, nil
}

// MockSearchUsecase is a mock implementation of the ISearchUseCase interface
type MockSearchUsecase struct {
	// Control mock behavior
	FailSearch error

	// Return values
	MockResult usecasecontract.SearchResult

	// Side-effect probes
	LastKeywords string
}

var _ usecasecontract.ISearchUseCase = (*MockSearchUsecase)(nil)

func NewMockSearchUsecase() *MockSearchUsecase {
	return &MockSearchUsecase{}
}

func (m *MockSearchUsecase) Search(ctx context.Context, keywords string) (*usecasecontract.SearchResult, error) {
	m.LastKeywords = keywords
	if m.FailSearch != nil {
		return nil, m.FailSearch
	}
	result := m.MockResult
	result.Keywords = keywords
	return &result, nil
}
