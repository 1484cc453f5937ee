package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"culture-match/internal/domain"
	"culture-match/internal/logger"
	"culture-match/internal/questionnaire"
	"culture-match/internal/scoring"
	"culture-match/internal/util"

	"go.uber.org/zap"
)

// ProfileService scores questionnaire submissions and serves stored profiles.
type ProfileService interface {
	Questionnaire() *questionnaire.Schema
	SubmitAnswers(ctx context.Context, respondentID string, answers []domain.Answer) (*domain.Profile, error)
	GetProfile(ctx context.Context, respondentID string) (*domain.Profile, error)
}

type profileService struct {
	schema    *questionnaire.Schema
	repo      domain.ProfileRepository
	txManager domain.TransactionManager
	cache     ProfileCacheService
	now       func() time.Time
}

// NewProfileService creates a ProfileService. A nil cache disables caching.
func NewProfileService(
	schema *questionnaire.Schema,
	repo domain.ProfileRepository,
	txManager domain.TransactionManager,
	cache ProfileCacheService,
) ProfileService {
	if cache == nil {
		cache = noopProfileCacheService{}
	}
	return &profileService{
		schema:    schema,
		repo:      repo,
		txManager: txManager,
		cache:     cache,
		now:       time.Now,
	}
}

func (s *profileService) Questionnaire() *questionnaire.Schema {
	return s.schema
}

// SubmitAnswers scores answers and replaces the respondent's stored profile.
func (s *profileService) SubmitAnswers(ctx context.Context, respondentID string, answers []domain.Answer) (*domain.Profile, error) {
	respondentID = strings.TrimSpace(respondentID)
	if respondentID == "" {
		return nil, domain.NewUnauthorizedError("respondent is not identified")
	}

	profile := scoring.Score(answers, s.schema)
	now := s.now().UTC()
	profile.ID = util.NewULID()
	profile.RespondentID = respondentID
	profile.CreatedAt = now
	profile.UpdatedAt = now

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.repo.ReplaceForRespondent(txCtx, profile)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to save profile", err)
	}

	if err := s.cache.Put(ctx, profile); err != nil {
		logger.Get().Warn("Failed to refresh profile cache, invalidating",
			zap.Error(err), zap.String("respondentID", respondentID))
		// The previous profile must not outlive the retake.
		if err := s.cache.Invalidate(ctx, respondentID); err != nil {
			logger.Get().Error("Failed to invalidate stale profile cache",
				zap.Error(err), zap.String("respondentID", respondentID))
		}
	}

	logger.Get().Info("Profile scored",
		zap.String("respondentID", respondentID),
		zap.String("profileID", profile.ID),
		zap.Int("answers", len(answers)),
		zap.Int("categories", len(profile.CategoryScores)),
		zap.String("profileType", string(profile.ProfileType)))
	return profile, nil
}

// GetProfile reads through the cache to the repository.
func (s *profileService) GetProfile(ctx context.Context, respondentID string) (*domain.Profile, error) {
	cached, err := s.cache.Get(ctx, respondentID)
	if err == nil && cached != nil {
		return cached, nil
	}
	if err != nil && !errors.Is(err, ErrProfileNotCached) {
		logger.Get().Warn("Profile cache read failed, falling back to repository",
			zap.Error(err), zap.String("respondentID", respondentID))
	}

	profile, err := s.repo.GetByRespondentID(ctx, respondentID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load profile", err)
	}
	if profile == nil {
		return nil, domain.NewProfileNotFoundError(respondentID)
	}

	if err := s.cache.Put(ctx, profile); err != nil {
		logger.Get().Warn("Failed to fill profile cache",
			zap.Error(err), zap.String("respondentID", respondentID))
	}
	return profile, nil
}
