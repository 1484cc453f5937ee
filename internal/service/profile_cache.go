package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"culture-match/internal/cache"
	"culture-match/internal/domain"
	"culture-match/internal/logger"

	"go.uber.org/zap"
)

// ErrProfileNotCached is returned when a respondent's profile is not in the cache.
var ErrProfileNotCached = errors.New("profile not found in cache")

// ProfileCacheService caches scored profiles per respondent.
type ProfileCacheService interface {
	Put(ctx context.Context, profile *domain.Profile) error
	Get(ctx context.Context, respondentID string) (*domain.Profile, error)
	Invalidate(ctx context.Context, respondentID string) error
}

// cachedProfile is the JSON form of a profile stored in the cache.
type cachedProfile struct {
	ID               string             `json:"id"`
	RespondentID     string             `json:"respondent_id"`
	CategoryScores   map[string]float64 `json:"category_scores"`
	OverallScore     float64            `json:"overall_score"`
	CulturalStrength string             `json:"cultural_strength"`
	ProfileType      string             `json:"profile_type"`
	Recommendations  []string           `json:"recommendations"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func toCachedProfile(p *domain.Profile) cachedProfile {
	scores := make(map[string]float64, len(p.CategoryScores))
	for c, s := range p.CategoryScores {
		scores[string(c)] = s
	}
	return cachedProfile{
		ID:               p.ID,
		RespondentID:     p.RespondentID,
		CategoryScores:   scores,
		OverallScore:     p.OverallScore,
		CulturalStrength: string(p.CulturalStrength),
		ProfileType:      string(p.ProfileType),
		Recommendations:  p.Recommendations,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (c cachedProfile) toDomain() *domain.Profile {
	scores := make(domain.CategoryScores, len(c.CategoryScores))
	for raw, s := range c.CategoryScores {
		cat, err := domain.ParseCategory(raw)
		if err != nil {
			continue
		}
		scores[cat] = domain.ClampScore(s)
	}
	return &domain.Profile{
		ID:               c.ID,
		RespondentID:     c.RespondentID,
		CategoryScores:   scores,
		OverallScore:     domain.ClampScore(c.OverallScore),
		CulturalStrength: domain.CulturalStrength(c.CulturalStrength),
		ProfileType:      domain.ProfileType(c.ProfileType),
		Recommendations:  c.Recommendations,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

type profileCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewProfileCacheService returns a no-op service when c is nil.
func NewProfileCacheService(c domain.Cache, ttl time.Duration) ProfileCacheService {
	if c == nil {
		logger.Get().Warn("ProfileCacheService initialized with nil cache. Service will be no-op.")
		return &noopProfileCacheService{}
	}
	return &profileCacheServiceImpl{cache: c, ttl: ttl}
}

// ProfileCacheKey is the cache key of a respondent's profile.
func ProfileCacheKey(respondentID string) string {
	return cache.GenerateCacheKey("profile", "respondent", respondentID)
}

func (s *profileCacheServiceImpl) Put(ctx context.Context, profile *domain.Profile) error {
	if profile == nil {
		return domain.NewInvalidInputError("cannot cache nil profile")
	}

	key := ProfileCacheKey(profile.RespondentID)
	data, err := json.Marshal(toCachedProfile(profile))
	if err != nil {
		return domain.NewInternalError("failed to marshal profile for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache profile", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to set profile in cache for key %s", key), err)
	}
	logger.Get().Debug("Cached profile", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *profileCacheServiceImpl) Get(ctx context.Context, respondentID string) (*domain.Profile, error) {
	key := ProfileCacheKey(respondentID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Profile cache miss", zap.String("key", key))
			return nil, ErrProfileNotCached
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get profile from cache for key %s", key), err)
	}
	if data == "" {
		return nil, ErrProfileNotCached
	}

	var cp cachedProfile
	if err := json.Unmarshal([]byte(data), &cp); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal profile from cache for key %s", key), err)
	}
	return cp.toDomain(), nil
}

func (s *profileCacheServiceImpl) Invalidate(ctx context.Context, respondentID string) error {
	key := ProfileCacheKey(respondentID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to delete profile from cache for key %s", key), err)
	}
	return nil
}

type noopProfileCacheService struct{}

func (noopProfileCacheService) Put(context.Context, *domain.Profile) error { return nil }

func (noopProfileCacheService) Get(context.Context, string) (*domain.Profile, error) {
	return nil, ErrProfileNotCached
}

func (noopProfileCacheService) Invalidate(context.Context, string) error { return nil }
