package service

import (
	"context"
	"fmt"
	"sort"

	"culture-match/internal/config"
	"culture-match/internal/domain"
	"culture-match/internal/dto"
	"culture-match/internal/logger"
	"culture-match/internal/scoring"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MatchService compares category scores and ranks candidate profiles.
type MatchService interface {
	Compare(req *dto.CompareRequest) (*dto.CompareResponse, error)
	FindMatches(ctx context.Context, respondentID string, limit int) (*dto.MatchesResponse, error)
}

type matchService struct {
	profiles ProfileService
	repo     domain.ProfileRepository
	cfg      config.MatchingConfig
}

// NewMatchService creates a MatchService.
func NewMatchService(profiles ProfileService, repo domain.ProfileRepository, cfg config.MatchingConfig) MatchService {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 10
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 50
	}
	if cfg.CandidatePool < cfg.MaxLimit {
		cfg.CandidatePool = cfg.MaxLimit
	}
	return &matchService{profiles: profiles, repo: repo, cfg: cfg}
}

// Compare compares two raw category maps.
func (s *matchService) Compare(req *dto.CompareRequest) (*dto.CompareResponse, error) {
	a, err := parseScores(req.A)
	if err != nil {
		return nil, err
	}
	b, err := parseScores(req.B)
	if err != nil {
		return nil, err
	}

	cmp := scoring.Breakdown(a, b)
	resp := &dto.CompareResponse{
		Percentage:      cmp.Percentage,
		Categories:      make([]dto.CategoryMatchResponse, 0, len(cmp.Categories)),
		SharedStrengths: categoryNames(cmp.SharedStrengths),
	}
	for _, m := range cmp.Categories {
		resp.Categories = append(resp.Categories, dto.CategoryMatchResponse{
			Category:      string(m.Category),
			Compatibility: m.Compatibility,
			Weight:        m.Weight,
		})
	}
	return resp, nil
}

func parseScores(raw map[string]float64) (domain.CategoryScores, error) {
	out := make(domain.CategoryScores, len(raw))
	for k, v := range raw {
		c, err := domain.ParseCategory(k)
		if err != nil {
			return nil, domain.NewInvalidCategoryError(k)
		}
		if _, dup := out[c]; dup {
			return nil, domain.NewError(domain.CodeInvalidCategory,
				fmt.Sprintf("category %s given more than once", c), nil).WithContext("category", k)
		}
		out[c] = domain.ClampScore(v)
	}
	return out, nil
}

func categoryNames(cs []domain.Category) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, string(c))
	}
	return out
}

// FindMatches ranks stored profiles of other respondents against the respondent's profile.
func (s *matchService) FindMatches(ctx context.Context, respondentID string, limit int) (*dto.MatchesResponse, error) {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}

	var own *domain.Profile
	var candidates []*domain.Profile

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.GetProfile(gctx, respondentID)
		if err != nil {
			return err
		}
		own = p
		return nil
	})
	g.Go(func() error {
		list, err := s.repo.ListCandidates(gctx, respondentID, s.cfg.CandidatePool)
		if err != nil {
			return domain.NewInternalError("failed to list candidate profiles", err)
		}
		candidates = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]dto.MatchResponse, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.RespondentID == respondentID {
			continue
		}
		cmp := scoring.Breakdown(own.CategoryScores, c.CategoryScores)
		matches = append(matches, dto.MatchResponse{
			RespondentID:     c.RespondentID,
			ProfileType:      string(c.ProfileType),
			CulturalStrength: string(c.CulturalStrength),
			Percentage:       cmp.Percentage,
			SharedStrengths:  categoryNames(cmp.SharedStrengths),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Percentage != matches[j].Percentage {
			return matches[i].Percentage > matches[j].Percentage
		}
		return matches[i].RespondentID < matches[j].RespondentID
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}

	logger.Get().Debug("Matches ranked",
		zap.String("respondentID", respondentID),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(matches)))
	return &dto.MatchesResponse{Matches: matches, Total: len(matches)}, nil
}
