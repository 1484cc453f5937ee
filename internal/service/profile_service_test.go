package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"culture-match/internal/domain"
	"culture-match/internal/questionnaire"
	"culture-match/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSchema(t *testing.T) *questionnaire.Schema {
	t.Helper()
	s, err := questionnaire.NewSchema("test", []domain.Question{
		{ID: "food", Category: domain.CategoryFood, Type: domain.QuestionTypeSlider, Prompt: "Food?", Weight: 1},
		{ID: "family", Category: domain.CategoryFamily, Type: domain.QuestionTypeSlider, Prompt: "Family?", Weight: 2},
	})
	require.NoError(t, err)
	return s
}

type profileServiceFixture struct {
	repo  *MockProfileRepository
	tx    *MockTransactionManager
	cache *MockProfileCacheService
	svc   *profileService
}

func newProfileServiceFixture(t *testing.T) *profileServiceFixture {
	f := &profileServiceFixture{
		repo:  new(MockProfileRepository),
		tx:    new(MockTransactionManager),
		cache: new(MockProfileCacheService),
	}
	f.svc = NewProfileService(testSchema(t), f.repo, f.tx, f.cache).(*profileService)
	f.svc.now = func() time.Time { return time.Date(2024, 6, 13, 12, 0, 0, 0, time.UTC) }
	return f
}

func TestSubmitAnswers_Success(t *testing.T) {
	ctx := context.Background()
	f := newProfileServiceFixture(t)

	f.tx.On("WithTransaction", ctx, mock.Anything).Return(nil).Once()
	f.repo.On("ReplaceForRespondent", ctx, mock.MatchedBy(func(p *domain.Profile) bool {
		return p.RespondentID == "r1"
	})).Return(nil).Once()
	f.cache.On("Put", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Once()

	answers := []domain.Answer{
		{QuestionID: "food", Value: float(9)},
		{QuestionID: "family", Value: float(8)},
		{QuestionID: "unknown", Value: float(1)},
	}
	p, err := f.svc.SubmitAnswers(ctx, " r1 ", answers)

	require.NoError(t, err)
	assert.True(t, util.IsULID(p.ID))
	assert.Equal(t, "r1", p.RespondentID)
	assert.Equal(t, domain.CategoryScores{domain.CategoryFood: 9, domain.CategoryFamily: 8}, p.CategoryScores)
	assert.Equal(t, 8.5, p.OverallScore)
	assert.Equal(t, domain.StrengthVeryStrong, p.CulturalStrength)
	assert.Equal(t, domain.ProfileTypeFamilyHeart, p.ProfileType)
	assert.Equal(t, time.Date(2024, 6, 13, 12, 0, 0, 0, time.UTC), p.CreatedAt)
	f.tx.AssertExpectations(t)
	f.repo.AssertExpectations(t)
	f.cache.AssertExpectations(t)
}

func TestSubmitAnswers_EmptyAnswersGiveFlexibleProfile(t *testing.T) {
	ctx := context.Background()
	f := newProfileServiceFixture(t)
	f.tx.On("WithTransaction", ctx, mock.Anything).Return(nil)
	f.repo.On("ReplaceForRespondent", ctx, mock.Anything).Return(nil)
	f.cache.On("Put", ctx, mock.Anything).Return(nil)

	p, err := f.svc.SubmitAnswers(ctx, "r1", nil)

	require.NoError(t, err)
	assert.Empty(t, p.CategoryScores)
	assert.Equal(t, 0.0, p.OverallScore)
	assert.Equal(t, domain.StrengthFlexible, p.CulturalStrength)
	assert.Equal(t, domain.ProfileTypeCulturalExplorer, p.ProfileType)
}

func TestSubmitAnswers_MissingRespondent(t *testing.T) {
	f := newProfileServiceFixture(t)

	_, err := f.svc.SubmitAnswers(context.Background(), "  ", nil)

	assert.True(t, domain.HasCode(err, domain.CodeUnauthorized))
	f.tx.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

func TestSubmitAnswers_RepositoryError(t *testing.T) {
	ctx := context.Background()
	f := newProfileServiceFixture(t)
	f.tx.On("WithTransaction", ctx, mock.Anything).Return(nil)
	f.repo.On("ReplaceForRespondent", ctx, mock.Anything).Return(errors.New("ORA-00001"))

	p, err := f.svc.SubmitAnswers(ctx, "r1", nil)

	assert.Nil(t, p)
	assert.True(t, domain.HasCode(err, domain.CodeInternal))
	f.cache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestSubmitAnswers_CacheFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	f := newProfileServiceFixture(t)
	f.tx.On("WithTransaction", ctx, mock.Anything).Return(nil)
	f.repo.On("ReplaceForRespondent", ctx, mock.Anything).Return(nil)
	f.cache.On("Put", ctx, mock.Anything).Return(errors.New("redis down"))
	f.cache.On("Invalidate", ctx, "r1").Return(errors.New("redis down"))

	p, err := f.svc.SubmitAnswers(ctx, "r1", []domain.Answer{{QuestionID: "food", Value: float(5)}})

	require.NoError(t, err)
	assert.Equal(t, 5.0, p.OverallScore)
	f.cache.AssertCalled(t, "Invalidate", ctx, "r1")
}

// A retake whose cache write fails must not leave the previous profile readable.
func TestSubmitAnswers_RetakeWithFailingCacheWriteServesNewProfile(t *testing.T) {
	ctx := context.Background()
	mc := new(MockCache)
	repo := new(MockProfileRepository)
	tx := new(MockTransactionManager)
	svc := NewProfileService(testSchema(t), repo, tx, NewProfileCacheService(mc, time.Hour))

	var stored *domain.Profile
	var cached string
	tx.On("WithTransaction", ctx, mock.Anything).Return(nil)
	repo.On("ReplaceForRespondent", ctx, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Profile) }).
		Return(nil)

	key := ProfileCacheKey("r1")
	mc.On("Set", ctx, key, mock.Anything, time.Hour).
		Run(func(args mock.Arguments) { cached = args.String(2) }).
		Return(nil).Once()
	first, err := svc.SubmitAnswers(ctx, "r1", []domain.Answer{{QuestionID: "food", Value: float(2)}})
	require.NoError(t, err)
	require.NotEmpty(t, cached)

	mc.On("Set", ctx, key, mock.Anything, time.Hour).Return(errors.New("OOM")).Once()
	mc.On("Delete", ctx, key).Run(func(mock.Arguments) { cached = "" }).Return(nil).Once()
	second, err := svc.SubmitAnswers(ctx, "r1", []domain.Answer{{QuestionID: "food", Value: float(9)}})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	var cacheErr error
	if cached == "" {
		cacheErr = domain.ErrCacheMiss
	}
	mc.On("Get", ctx, key).Return(cached, cacheErr)
	repo.On("GetByRespondentID", ctx, "r1").Return(stored, nil)
	mc.On("Set", ctx, key, mock.Anything, time.Hour).Return(nil)

	got, err := svc.GetProfile(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, 9.0, got.OverallScore)
	mc.AssertExpectations(t)
}

func TestGetProfile_CacheHit(t *testing.T) {
	ctx := context.Background()
	f := newProfileServiceFixture(t)
	f.cache.On("Get", ctx, "r1").Return(sampleProfile(), nil)

	p, err := f.svc.GetProfile(ctx, "r1")

	require.NoError(t, err)
	assert.Equal(t, sampleProfile(), p)
	f.repo.AssertNotCalled(t, "GetByRespondentID", mock.Anything, mock.Anything)
}

func TestGetProfile_FallsBackToRepository(t *testing.T) {
	tests := []struct {
		name     string
		cacheErr error
	}{
		{name: "cache miss", cacheErr: ErrProfileNotCached},
		{name: "cache failure", cacheErr: domain.NewInternalError("boom", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newProfileServiceFixture(t)
			stored := sampleProfile()
			f.cache.On("Get", ctx, "r1").Return(nil, tt.cacheErr)
			f.repo.On("GetByRespondentID", ctx, "r1").Return(stored, nil).Once()
			f.cache.On("Put", ctx, stored).Return(nil).Once()

			p, err := f.svc.GetProfile(ctx, "r1")

			require.NoError(t, err)
			assert.Same(t, stored, p)
			f.repo.AssertExpectations(t)
			f.cache.AssertExpectations(t)
		})
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newProfileServiceFixture(t)
	f.cache.On("Get", ctx, "r1").Return(nil, ErrProfileNotCached)
	f.repo.On("GetByRespondentID", ctx, "r1").Return(nil, nil)

	_, err := f.svc.GetProfile(ctx, "r1")

	assert.True(t, domain.HasCode(err, domain.CodeProfileNotFound))
	f.cache.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestGetProfile_RepositoryError(t *testing.T) {
	ctx := context.Background()
	f := newProfileServiceFixture(t)
	f.cache.On("Get", ctx, "r1").Return(nil, ErrProfileNotCached)
	f.repo.On("GetByRespondentID", ctx, "r1").Return(nil, errors.New("db down"))

	_, err := f.svc.GetProfile(ctx, "r1")

	assert.True(t, domain.HasCode(err, domain.CodeInternal))
}

func TestNewProfileService_NilCache(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProfileRepository)
	repo.On("GetByRespondentID", ctx, "r1").Return(sampleProfile(), nil)

	svc := NewProfileService(testSchema(t), repo, new(MockTransactionManager), nil)
	p, err := svc.GetProfile(ctx, "r1")

	require.NoError(t, err)
	assert.Equal(t, "r1", p.RespondentID)
	assert.Equal(t, "test", svc.Questionnaire().Version)
}
