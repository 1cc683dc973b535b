package usecase

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/contract"
	"github.com/natembeza/curalink/internal/domain/entity"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

const dashboardLimit = 20

// DashboardUsecase builds the role-dependent personalized payload.
type DashboardUsecase struct {
	userRepo contract.IUserRepository
	trials   contract.ITrialRepository
	pubs     contract.IPublicationRepository
	experts  contract.IExpertRepository
	logger   usecasecontract.IAppLogger
	cache    usecasecontract.IDashboardCache
}

var _ usecasecontract.IDashboardUseCase = (*DashboardUsecase)(nil)

func NewDashboardUsecase(
	userRepo contract.IUserRepository,
	trials contract.ITrialRepository,
	pubs contract.IPublicationRepository,
	experts contract.IExpertRepository,
	logger usecasecontract.IAppLogger,
) *DashboardUsecase {
	return &DashboardUsecase{
		userRepo: userRepo,
		trials:   trials,
		pubs:     pubs,
		experts:  experts,
		logger:   logger,
	}
}

// SetDashboardCache wires an optional Redis-backed cache.
func (uc *DashboardUsecase) SetDashboardCache(cache usecasecontract.IDashboardCache) {
	uc.cache = cache
}

// GetDashboard returns trials and publications matched on the patient's
// condition filters, or experts matched on the researcher's specialties.
func (uc *DashboardUsecase) GetDashboard(ctx context.Context, userID string, role entity.UserRole) (*usecasecontract.DashboardPayload, error) {
	if uc.cache != nil {
		if cached, ok, err := uc.cache.GetDashboard(ctx, userID); err != nil {
			uc.logger.Warnf("dashboard cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var payload *usecasecontract.DashboardPayload
	switch role {
	case entity.UserRolePatient:
		payload, err = uc.patientDashboard(ctx, user)
	case entity.UserRoleResearcher:
		payload, err = uc.researcherDashboard(ctx, user)
	default:
		return nil, entity.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetDashboard(ctx, userID, payload); err != nil {
			uc.logger.Warnf("dashboard cache write failed: %v", err)
		}
	}
	return payload, nil
}

func (uc *DashboardUsecase) patientDashboard(ctx context.Context, user *entity.User) (*usecasecontract.DashboardPayload, error) {
	var filters []string
	if user.PatientProfile != nil {
		filters = user.PatientProfile.ConditionFilters
	}

	trials, err := uc.trials.FindTrialsByConditions(ctx, filters, dashboardLimit)
	if err != nil {
		return nil, err
	}
	pubs, err := uc.pubs.FindPublicationsByConditions(ctx, filters, dashboardLimit)
	if err != nil {
		return nil, err
	}

	return &usecasecontract.DashboardPayload{
		Message:      "Patient dashboard data",
		Trials:       trials,
		Publications: pubs,
	}, nil
}

func (uc *DashboardUsecase) researcherDashboard(ctx context.Context, user *entity.User) (*usecasecontract.DashboardPayload, error) {
	var interests []string
	if user.ResearcherProfile != nil {
		interests = append(interests, user.ResearcherProfile.Specialties...)
		interests = append(interests, user.ResearcherProfile.ResearchInterests...)
	}

	experts, err := uc.experts.FindExpertsBySpecialties(ctx, interests, dashboardLimit)
	if err != nil {
		return nil, err
	}

	return &usecasecontract.DashboardPayload{
		Message: "Researcher dashboard data",
		Experts: experts,
	}, nil
}
