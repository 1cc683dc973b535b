package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/natembeza/curalink/internal/domain/contract"
	"github.com/natembeza/curalink/internal/domain/entity"
	usecasecontract "github.com/natembeza/curalink/internal/usecase/contract"
)

// In-memory fakes shared by the usecase tests.

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]*entity.User{},
		byEmail: map[string]*entity.User{},
	}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return entity.ErrDuplicateEmail
	}
	clone := *user
	r.byID[user.ID] = &clone
	r.byEmail[user.Email] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.byID[user.ID]; !ok {
		return nil, entity.ErrUserNotFound
	}
	clone := *user
	r.byID[user.ID] = &clone
	r.byEmail[user.Email] = &clone
	return user, nil
}

type fakeTrialRepo struct {
	trials map[string]*entity.ClinicalTrial
}

func newFakeTrialRepo() *fakeTrialRepo {
	return &fakeTrialRepo{trials: map[string]*entity.ClinicalTrial{}}
}

func (r *fakeTrialRepo) UpsertTrial(ctx context.Context, trial *entity.ClinicalTrial) error {
	if trial.ID == "" {
		trial.ID = trial.TrialID
	}
	clone := *trial
	r.trials[trial.ID] = &clone
	return nil
}

func (r *fakeTrialRepo) GetTrialByID(ctx context.Context, id string) (*entity.ClinicalTrial, error) {
	trial, ok := r.trials[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return trial, nil
}

func (r *fakeTrialRepo) FindTrialsByConditions(ctx context.Context, conditions []string, limit int64) ([]entity.ClinicalTrial, error) {
	out := []entity.ClinicalTrial{}
	for _, t := range r.trials {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTrialRepo) SearchTrials(ctx context.Context, keyword string, limit int64) ([]entity.ClinicalTrial, error) {
	return r.FindTrialsByConditions(ctx, nil, limit)
}

type fakeExpertRepo struct {
	experts map[string]*entity.Expert
}

func newFakeExpertRepo() *fakeExpertRepo {
	return &fakeExpertRepo{experts: map[string]*entity.Expert{}}
}

func (r *fakeExpertRepo) CreateExpert(ctx context.Context, expert *entity.Expert) error {
	r.experts[expert.ID] = expert
	return nil
}

func (r *fakeExpertRepo) GetExpertByID(ctx context.Context, id string) (*entity.Expert, error) {
	expert, ok := r.experts[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return expert, nil
}

func (r *fakeExpertRepo) FindExpertsBySpecialties(ctx context.Context, specialties []string, limit int64) ([]entity.Expert, error) {
	out := []entity.Expert{}
	for _, e := range r.experts {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeExpertRepo) SearchExperts(ctx context.Context, keyword string, limit int64) ([]entity.Expert, error) {
	return r.FindExpertsBySpecialties(ctx, nil, limit)
}

type fakeAIService struct {
	conditions []string
	summary    string
	err        error
	calls      int
}

func (s *fakeAIService) ExtractConditions(ctx context.Context, text string) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.conditions, nil
}

func (s *fakeAIService) GenerateSummary(ctx context.Context, abstract string, audience usecasecontract.SummaryAudience) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

type fakeConfig struct {
	degrade bool
}

func (c *fakeConfig) GetAccessTokenTTL() time.Duration { return time.Hour }
func (c *fakeConfig) GetAIDegradeOnFailure() bool      { return c.degrade }
func (c *fakeConfig) GetAIServiceAPIKey() string       { return "" }

type fakeValidator struct{}

func (v *fakeValidator) ValidateEmail(email string) error {
	for _, r := range email {
		if r == '@' {
			return nil
		}
	}
	return entity.ErrValidation
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

type seqUUIDGen struct {
	n int
}

func (g *seqUUIDGen) NewUUID() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

type fakePublicationRepo struct {
	pubs map[string]*entity.Publication
}

func newFakePublicationRepo() *fakePublicationRepo {
	return &fakePublicationRepo{pubs: map[string]*entity.Publication{}}
}

func (r *fakePublicationRepo) CreatePublication(ctx context.Context, pub *entity.Publication) error {
	if _, ok := r.pubs[pub.DOI]; ok {
		return entity.ErrDuplicateKey
	}
	clone := *pub
	r.pubs[pub.DOI] = &clone
	return nil
}

func (r *fakePublicationRepo) FindPublicationsByConditions(ctx context.Context, conditions []string, limit int64) ([]entity.Publication, error) {
	out := []entity.Publication{}
	for _, p := range r.pubs {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePublicationRepo) SearchPublications(ctx context.Context, keyword string, limit int64) ([]entity.Publication, error) {
	return r.FindPublicationsByConditions(ctx, nil, limit)
}

type fakeDashboardCache struct {
	payloads map[string]*usecasecontract.DashboardPayload

	gets        int
	sets        int
	invalidates int
	err         error
}

func newFakeDashboardCache() *fakeDashboardCache {
	return &fakeDashboardCache{payloads: map[string]*usecasecontract.DashboardPayload{}}
}

func (c *fakeDashboardCache) GetDashboard(ctx context.Context, userID string) (*usecasecontract.DashboardPayload, bool, error) {
	c.gets++
	if c.err != nil {
		return nil, false, c.err
	}
	payload, ok := c.payloads[userID]
	return payload, ok, nil
}

func (c *fakeDashboardCache) SetDashboard(ctx context.Context, userID string, payload *usecasecontract.DashboardPayload) error {
	c.sets++
	if c.err != nil {
		return c.err
	}
	c.payloads[userID] = payload
	return nil
}

func (c *fakeDashboardCache) InvalidateDashboard(ctx context.Context, userID string) error {
	c.invalidates++
	if c.err != nil {
		return c.err
	}
	delete(c.payloads, userID)
	return nil
}

type fakeTrialFetcher struct {
	trials []entity.ClinicalTrial
	err    error
}

func (f *fakeTrialFetcher) FetchExternalTrials(ctx context.Context, keywords string, conditions []string) ([]entity.ClinicalTrial, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.trials, nil
}

// countingHasher wraps a real hasher and counts comparisons.
type countingHasher struct {
	inner    contract.IHasher
	compares int
}

func (h *countingHasher) HashPassword(password string) (string, error) {
	return h.inner.HashPassword(password)
}

func (h *countingHasher) ComparePasswordHash(password, hash string) error {
	h.compares++
	return h.inner.ComparePasswordHash(password, hash)
}
