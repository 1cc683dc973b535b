package usecase

import (
	"context"
	"strings"

	"github.com/natembeza/curalink/internal/domain/contract"
	"github.com/natembeza/curalink/internal/domain/entity"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

const searchLimit = 20

// SearchUsecase runs the global keyword search across collections.
type SearchUsecase struct {
	trials  contract.ITrialRepository
	pubs    contract.IPublicationRepository
	experts contract.IExpertRepository
}

var _ usecasecontract.ISearchUseCase = (*SearchUsecase)(nil)

func NewSearchUsecase(
	trials contract.ITrialRepository,
	pubs contract.IPublicationRepository,
	experts contract.IExpertRepository,
) *SearchUsecase {
	return &SearchUsecase{trials: trials, pubs: pubs, experts: experts}
}

// Search matches the keyword against trials, publications and experts.
func (uc *SearchUsecase) Search(ctx context.Context, keywords string) (*usecasecontract.SearchResult, error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return nil, entity.ErrValidation
	}

	trials, err := uc.trials.SearchTrials(ctx, keywords, searchLimit)
	if err != nil {
		return nil, err
	}
	pubs, err := uc.pubs.SearchPublications(ctx, keywords, searchLimit)
	if err != nil {
		return nil, err
	}
	experts, err := uc.experts.SearchExperts(ctx, keywords, searchLimit)
	if err != nil {
		return nil, err
	}

	return &usecasecontract.SearchResult{
		Keywords:     keywords,
		Trials:       trials,
		Publications: pubs,
		Experts:      experts,
	}, nil
}
