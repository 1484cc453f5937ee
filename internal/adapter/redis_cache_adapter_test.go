package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"culture-match/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileKey = "culturematch:profile:respondent:01HZX3J8Y4Q2W9V6T5R7N1M0KA"

func TestRedisCacheAdapter_Get(t *testing.T) {
	tests := []struct {
		name    string
		expect  func(m redismock.ClientMock)
		want    string
		wantErr error
		anyErr  bool
	}{
		{
			name:   "hit",
			expect: func(m redismock.ClientMock) { m.ExpectGet(profileKey).SetVal(`{"overall_score":7.5}`) },
			want:   `{"overall_score":7.5}`,
		},
		{
			name:    "miss",
			expect:  func(m redismock.ClientMock) { m.ExpectGet(profileKey).RedisNil() },
			wantErr: domain.ErrCacheMiss,
		},
		{
			name:   "connection failure",
			expect: func(m redismock.ClientMock) { m.ExpectGet(profileKey).SetErr(errors.New("i/o timeout")) },
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.expect(mock)

			got, err := NewRedisCacheAdapter(client).Get(context.Background(), profileKey)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrCacheMiss)
				assert.Contains(t, err.Error(), profileKey)
			default:
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisCacheAdapter_SetAndDelete(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	c := NewRedisCacheAdapter(client)

	mock.ExpectSet(profileKey, "payload", time.Hour).SetVal("OK")
	require.NoError(t, c.Set(ctx, profileKey, "payload", time.Hour))

	mock.ExpectSet(profileKey, "payload", 0).SetErr(errors.New("OOM"))
	assert.Error(t, c.Set(ctx, profileKey, "payload", 0))

	mock.ExpectDel(profileKey).SetVal(0)
	require.NoError(t, c.Delete(ctx, profileKey))

	mock.ExpectDel(profileKey).SetErr(errors.New("READONLY"))
	assert.Error(t, c.Delete(ctx, profileKey))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisCacheAdapter(client)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, c.Ping(context.Background()))

	mock.ExpectPing().SetErr(redis.ErrClosed)
	assert.ErrorIs(t, c.Ping(context.Background()), redis.ErrClosed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
