package service

import (
	"context"
	"time"

	"culture-match/internal/domain"
	"culture-match/internal/questionnaire"

	"github.com/stretchr/testify/mock"
)

// --- MockProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) ReplaceForRespondent(ctx context.Context, p *domain.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByRespondentID(ctx context.Context, respondentID string) (*domain.Profile, error) {
	args := m.Called(ctx, respondentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) ListCandidates(ctx context.Context, excludeRespondentID string, limit int) ([]*domain.Profile, error) {
	args := m.Called(ctx, excludeRespondentID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

// --- MockTransactionManager ---
// Runs fn directly unless an error is configured.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- MockProfileCacheService ---
type MockProfileCacheService struct {
	mock.Mock
}

func (m *MockProfileCacheService) Put(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileCacheService) Get(ctx context.Context, respondentID string) (*domain.Profile, error) {
	args := m.Called(ctx, respondentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileCacheService) Invalidate(ctx context.Context, respondentID string) error {
	args := m.Called(ctx, respondentID)
	return args.Error(0)
}

// --- MockProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Questionnaire() *questionnaire.Schema {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*questionnaire.Schema)
}

func (m *MockProfileService) SubmitAnswers(ctx context.Context, respondentID string, answers []domain.Answer) (*domain.Profile, error) {
	args := m.Called(ctx, respondentID, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) GetProfile(ctx context.Context, respondentID string) (*domain.Profile, error) {
	args := m.Called(ctx, respondentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
