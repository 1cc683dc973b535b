package usecase

import (
	"context"
	"errors"

	"github.com/natembeza/curalink/internal/domain/contract"
	"github.com/natembeza/curalink/internal/domain/entity"
	"github.com/natembeza/curalink/internal/infrastructure/metrics"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// UserUsecase implements profile onboarding and favorites management.
type UserUsecase struct {
	userRepo   contract.IUserRepository
	trialRepo  contract.ITrialRepository
	expertRepo contract.IExpertRepository
	aiService  usecasecontract.IAIService
	config     usecasecontract.IConfigProvider
	logger     usecasecontract.IAppLogger
	cache      usecasecontract.IDashboardCache
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

func NewUserUsecase(
	userRepo contract.IUserRepository,
	trialRepo contract.ITrialRepository,
	expertRepo contract.IExpertRepository,
	aiService usecasecontract.IAIService,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		trialRepo:  trialRepo,
		expertRepo: expertRepo,
		aiService:  aiService,
		config:     config,
		logger:     logger,
	}
}

// SetDashboardCache wires an optional cache; onboarding invalidates the
// user's cached dashboard so stale matches do not survive a profile change.
func (uc *UserUsecase) SetDashboardCache(cache usecasecontract.IDashboardCache) {
	uc.cache = cache
}

// GetUserByID retrieves a user by ID.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// OnboardPatient extracts condition terms from the free-text description
// and stores them with the location on the patient's profile.
func (uc *UserUsecase) OnboardPatient(ctx context.Context, userID, conditionText string, location *entity.GeoPoint) (*entity.User, error) {
	if conditionText == "" || location == nil {
		return nil, entity.ErrValidation
	}

	conditions, err := uc.aiService.ExtractConditions(ctx, conditionText)
	if err != nil {
		metrics.AIFailuresTotal.Inc()
		if !uc.config.GetAIDegradeOnFailure() {
			return nil, err
		}
		// Best-effort policy: onboarding proceeds with an empty term list.
		uc.logger.Warnf("condition extraction failed, degrading to empty list: %v", err)
		conditions = []string{}
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.UserRolePatient {
		return nil, entity.ErrForbidden
	}

	condition := ""
	if len(conditions) > 0 {
		condition = conditions[0]
	}
	user.Location = location
	user.PatientProfile = &entity.PatientProfile{
		Condition:        condition,
		ConditionFilters: conditions,
	}

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.invalidateDashboard(ctx, userID)
	return updated, nil
}

// OnboardResearcher stores the researcher's profile. All fields are
// optional; the permissive validation is intentional.
func (uc *UserUsecase) OnboardResearcher(ctx context.Context, userID, orcidID string, location *entity.GeoPoint, specialties, researchInterests []string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.UserRoleResearcher {
		return nil, entity.ErrForbidden
	}

	user.Location = location
	user.ResearcherProfile = &entity.ResearcherProfile{
		Specialties:       specialties,
		ResearchInterests: researchInterests,
		OrcidID:           orcidID,
	}

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.invalidateDashboard(ctx, userID)
	return updated, nil
}

// AddFavorite appends a weak reference; adding an existing one is a no-op.
func (uc *UserUsecase) AddFavorite(ctx context.Context, userID string, kind entity.FavoriteKind, refID string) (*entity.User, error) {
	if refID == "" || (kind != entity.FavoriteKindTrial && kind != entity.FavoriteKindExpert) {
		return nil, entity.ErrValidation
	}
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, f := range user.Favorites {
		if f.Kind == kind && f.RefID == refID {
			return user, nil
		}
	}
	user.Favorites = append(user.Favorites, entity.Favorite{Kind: kind, RefID: refID})
	return uc.userRepo.UpdateUser(ctx, user)
}

// RemoveFavorite drops a weak reference if present.
func (uc *UserUsecase) RemoveFavorite(ctx context.Context, userID string, kind entity.FavoriteKind, refID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := user.Favorites[:0]
	for _, f := range user.Favorites {
		if f.Kind != kind || f.RefID != refID {
			kept = append(kept, f)
		}
	}
	user.Favorites = kept
	return uc.userRepo.UpdateUser(ctx, user)
}

// ListFavorites resolves the weak references into full records. Dangling
// references are skipped rather than failing the whole read.
func (uc *UserUsecase) ListFavorites(ctx context.Context, userID string) (*usecasecontract.ResolvedFavorites, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved := &usecasecontract.ResolvedFavorites{
		Trials:  []entity.ClinicalTrial{},
		Experts: []entity.Expert{},
	}
	for _, f := range user.Favorites {
		switch f.Kind {
		case entity.FavoriteKindTrial:
			trial, err := uc.trialRepo.GetTrialByID(ctx, f.RefID)
			if err != nil {
				if errors.Is(err, entity.ErrNotFound) {
					continue
				}
				return nil, err
			}
			resolved.Trials = append(resolved.Trials, *trial)
		case entity.FavoriteKindExpert:
			expert, err := uc.expertRepo.GetExpertByID(ctx, f.RefID)
			if err != nil {
				if errors.Is(err, entity.ErrNotFound) {
					continue
				}
				return nil, err
			}
			resolved.Experts = append(resolved.Experts, *expert)
		}
	}
	return resolved, nil
}

func (uc *UserUsecase) invalidateDashboard(ctx context.Context, userID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateDashboard(ctx, userID); err != nil {
		uc.logger.Warnf("failed to invalidate dashboard cache for %s: %v", userID, err)
	}
}
