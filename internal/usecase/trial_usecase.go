package usecase

import (
	"context"

	"github.com/natembeza/curalink/internal/domain/contract"
	"github.com/natembeza/curalink/internal/domain/entity"
	"github.com/natembeza/curalink/internal/infrastructure/metrics"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// TrialUsecase fetches trials from the external registry, summarizes them
// and stores the result.
type TrialUsecase struct {
	fetcher   usecasecontract.ITrialFetcher
	trialRepo contract.ITrialRepository
	aiService usecasecontract.IAIService
	config    usecasecontract.IConfigProvider
	logger    usecasecontract.IAppLogger
}

func NewTrialUsecase(
	fetcher usecasecontract.ITrialFetcher,
	trialRepo contract.ITrialRepository,
	aiService usecasecontract.IAIService,
	config usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *TrialUsecase {
	return &TrialUsecase{
		fetcher:   fetcher,
		trialRepo: trialRepo,
		aiService: aiService,
		config:    config,
		logger:    logger,
	}
}

// RefreshExternalTrials fetches matching trials from the registry, attaches
// a patient-friendly AI summary to each and upserts them by registry ID.
// A failed summary degrades to storing the trial without one.
func (uc *TrialUsecase) RefreshExternalTrials(ctx context.Context, keywords string, conditions []string) ([]entity.ClinicalTrial, error) {
	trials, err := uc.fetcher.FetchExternalTrials(ctx, keywords, conditions)
	if err != nil {
		return nil, err
	}

	stored := make([]entity.ClinicalTrial, 0, len(trials))
	for _, trial := range trials {
		if trial.Description != "" {
			summary, err := uc.aiService.GenerateSummary(ctx, trial.Description, usecasecontract.AudiencePatient)
			if err != nil {
				metrics.AIFailuresTotal.Inc()
				if !uc.config.GetAIDegradeOnFailure() {
					return nil, err
				}
				uc.logger.Warnf("summary generation failed for %s: %v", trial.TrialID, err)
			} else {
				trial.AISummary = summary
			}
		}
		if err := uc.trialRepo.UpsertTrial(ctx, &trial); err != nil {
			return nil, err
		}
		stored = append(stored, trial)
	}
	return stored, nil
}
