package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"culture-match/internal/domain"
	"culture-match/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const profileColumns = `
		id "id",
		respondent_id "respondent_id",
		category_scores "category_scores",
		overall_score "overall_score",
		cultural_strength "cultural_strength",
		profile_type "profile_type",
		recommendations "recommendations",
		created_at "created_at",
		updated_at "updated_at"`

// ProfileDatabaseAdapter implements domain.ProfileRepository on Oracle via sqlx.
type ProfileDatabaseAdapter struct {
	db DBTX
}

func NewProfileDatabaseAdapter(db *sqlx.DB) domain.ProfileRepository {
	return &ProfileDatabaseAdapter{db: db}
}

// ReplaceForRespondent deletes the respondent's previous profile and inserts p.
// Run it inside TransactionManager.WithTransaction so both statements commit together.
func (a *ProfileDatabaseAdapter) ReplaceForRespondent(ctx context.Context, p *domain.Profile) error {
	if p == nil {
		return fmt.Errorf("cannot save nil profile")
	}
	exec := GetExecutor(ctx, a.db)
	m := toModelProfile(p)

	if _, err := exec.ExecContext(ctx,
		`DELETE FROM culture_profiles WHERE respondent_id = :1`, m.RespondentID); err != nil {
		return fmt.Errorf("failed to delete previous profile for respondent %s: %w", m.RespondentID, err)
	}

	query := `INSERT INTO culture_profiles (
		id, respondent_id, category_scores, overall_score,
		cultural_strength, profile_type, recommendations, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9
	)`
	_, err := exec.ExecContext(ctx, query,
		m.ID,
		m.RespondentID,
		m.CategoryScores,
		m.OverallScore,
		m.CulturalStrength,
		m.ProfileType,
		m.Recommendations,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert profile for respondent %s: %w", m.RespondentID, err)
	}
	return nil
}

func (a *ProfileDatabaseAdapter) GetByRespondentID(ctx context.Context, respondentID string) (*domain.Profile, error) {
	var m models.Profile
	query := `SELECT` + profileColumns + `
	FROM culture_profiles
	WHERE respondent_id = :1`

	if err := GetExecutor(ctx, a.db).GetContext(ctx, &m, query, respondentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile for respondent %s: %w", respondentID, err)
	}
	return toDomainProfile(&m), nil
}

func (a *ProfileDatabaseAdapter) ListCandidates(ctx context.Context, excludeRespondentID string, limit int) ([]*domain.Profile, error) {
	var rows []models.Profile
	query := `SELECT` + profileColumns + `
	FROM culture_profiles
	WHERE respondent_id <> :1
	ORDER BY updated_at DESC
	FETCH FIRST :2 ROWS ONLY`

	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, excludeRespondentID, limit); err != nil {
		return nil, fmt.Errorf("failed to list candidate profiles: %w", err)
	}

	out := make([]*domain.Profile, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainProfile(&rows[i]))
	}
	return out, nil
}

func toModelProfile(p *domain.Profile) *models.Profile {
	scores := make(models.ScoreMap, len(p.CategoryScores))
	for c, s := range p.CategoryScores {
		scores[string(c)] = s
	}
	return &models.Profile{
		ID:               p.ID,
		RespondentID:     p.RespondentID,
		CategoryScores:   scores,
		OverallScore:     p.OverallScore,
		CulturalStrength: string(p.CulturalStrength),
		ProfileType:      string(p.ProfileType),
		Recommendations:  models.StringSlice(p.Recommendations),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// toDomainProfile drops stored categories that are no longer part of the category set.
func toDomainProfile(m *models.Profile) *domain.Profile {
	if m == nil {
		return nil
	}
	scores := make(domain.CategoryScores, len(m.CategoryScores))
	for raw, s := range m.CategoryScores {
		c, err := domain.ParseCategory(raw)
		if err != nil {
			continue
		}
		scores[c] = domain.ClampScore(s)
	}
	recs := []string(m.Recommendations)
	if recs == nil {
		recs = []string{}
	}
	return &domain.Profile{
		ID:               m.ID,
		RespondentID:     m.RespondentID,
		CategoryScores:   scores,
		OverallScore:     m.OverallScore,
		CulturalStrength: domain.CulturalStrength(m.CulturalStrength),
		ProfileType:      domain.ProfileType(m.ProfileType),
		Recommendations:  recs,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
