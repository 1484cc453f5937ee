package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"culture-match/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *domain.Profile {
	created := time.Date(2024, 6, 13, 10, 0, 0, 0, time.UTC)
	return &domain.Profile{
		ID:               "01HZX3J8Y4Q2W9V6T5R7N1M0KA",
		RespondentID:     "r1",
		CategoryScores:   domain.CategoryScores{domain.CategoryFood: 9, domain.CategoryFamily: 8.5},
		OverallScore:     8.75,
		CulturalStrength: domain.StrengthVeryStrong,
		ProfileType:      domain.ProfileTypeFamilyHeart,
		Recommendations:  []string{"Join our Portuguese cooking workshop"},
		CreatedAt:        created,
		UpdatedAt:        created,
	}
}

func TestProfileCacheKey(t *testing.T) {
	assert.Equal(t, "culturematch:profile:respondent:r1", ProfileCacheKey("r1"))
}

func TestProfileCache_PutThenGet(t *testing.T) {
	ctx := context.Background()
	mc := new(MockCache)
	svc := NewProfileCacheService(mc, time.Hour)

	var stored string
	mc.On("Set", ctx, "culturematch:profile:respondent:r1", mock.AnythingOfType("string"), time.Hour).
		Run(func(args mock.Arguments) { stored = args.String(2) }).
		Return(nil).Once()

	want := sampleProfile()
	require.NoError(t, svc.Put(ctx, want))
	assert.Contains(t, stored, `"food":9`)

	mc.On("Get", ctx, "culturematch:profile:respondent:r1").Return(stored, nil).Once()
	got, err := svc.Get(ctx, "r1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	mc.AssertExpectations(t)
}

func TestProfileCache_Get(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		value   string
		err     error
		wantErr func(t *testing.T, err error)
	}{
		{
			name: "miss",
			err:  domain.ErrCacheMiss,
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrProfileNotCached)
			},
		},
		{
			name: "empty value",
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrProfileNotCached)
			},
		},
		{
			name: "backend failure",
			err:  errors.New("connection refused"),
			wantErr: func(t *testing.T, err error) {
				assert.True(t, domain.HasCode(err, domain.CodeInternal))
			},
		},
		{
			name:  "corrupt payload",
			value: "{not json",
			wantErr: func(t *testing.T, err error) {
				assert.True(t, domain.HasCode(err, domain.CodeInternal))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mc := new(MockCache)
			mc.On("Get", ctx, ProfileCacheKey("r1")).Return(tt.value, tt.err)

			got, err := NewProfileCacheService(mc, time.Minute).Get(ctx, "r1")

			assert.Nil(t, got)
			tt.wantErr(t, err)
		})
	}
}

func TestProfileCache_GetDropsUnknownCategories(t *testing.T) {
	ctx := context.Background()
	mc := new(MockCache)
	mc.On("Get", ctx, ProfileCacheKey("r1")).
		Return(`{"respondent_id":"r1","category_scores":{"food":12,"sport":5},"overall_score":7}`, nil)

	got, err := NewProfileCacheService(mc, time.Minute).Get(ctx, "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryScores{domain.CategoryFood: 10}, got.CategoryScores)
}

func TestProfileCache_PutErrors(t *testing.T) {
	ctx := context.Background()
	mc := new(MockCache)
	svc := NewProfileCacheService(mc, time.Minute)

	err := svc.Put(ctx, nil)
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))

	mc.On("Set", ctx, mock.Anything, mock.Anything, time.Minute).Return(errors.New("down"))
	err = svc.Put(ctx, sampleProfile())
	assert.True(t, domain.HasCode(err, domain.CodeInternal))
}

func TestProfileCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	mc := new(MockCache)
	mc.On("Delete", ctx, ProfileCacheKey("r1")).Return(nil).Once()

	require.NoError(t, NewProfileCacheService(mc, time.Minute).Invalidate(ctx, "r1"))
	mc.AssertExpectations(t)
}

func TestProfileCache_NilCacheIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileCacheService(nil, time.Minute)

	assert.NoError(t, svc.Put(ctx, sampleProfile()))
	assert.NoError(t, svc.Invalidate(ctx, "r1"))
	_, err := svc.Get(ctx, "r1")
	assert.ErrorIs(t, err, ErrProfileNotCached)
}
