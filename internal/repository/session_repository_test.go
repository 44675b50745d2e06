package repository_test

import (
	"context"
	"testing"
	"time"

	"milesalone/internal/repository"
	"milesalone/internal/storage"
	redisapp "milesalone/internal/storage/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupSessionRepo() (*repository.SessionRepo, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return repository.NewSessionRepository(&redisapp.Client{Client: db}), mock
}

func TestSaveSession(t *testing.T) {
	ctx := context.Background()
	repo, mock := setupSessionRepo()
	token := "3f1b8a4e-4a8e-4d9f-9ab1-0f2a6f5a7c3d"
	ttl := 24 * time.Hour

	t.Run("successful save", func(t *testing.T) {
		mock.ExpectSet("session:"+token, "1", ttl).SetVal("OK")
		err := repo.SaveSession(ctx, token, ttl)
		assert.NoError(t, err)
	})

	t.Run("redis error", func(t *testing.T) {
		mock.ExpectSet("session:"+token, "1", ttl).SetErr(redis.ErrClosed)
		err := repo.SaveSession(ctx, token, ttl)
		assert.ErrorIs(t, err, redis.ErrClosed)
	})
}

func TestSessionExists(t *testing.T) {
	ctx := context.Background()
	repo, mock := setupSessionRepo()
	token := "3f1b8a4e-4a8e-4d9f-9ab1-0f2a6f5a7c3d"

	t.Run("session exists", func(t *testing.T) {
		mock.ExpectGet("session:" + token).SetVal("1")
		exists, err := repo.SessionExists(ctx, token)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("session expired", func(t *testing.T) {
		mock.ExpectGet("session:" + token).RedisNil()
		exists, err := repo.SessionExists(ctx, token)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("redis error", func(t *testing.T) {
		mock.ExpectGet("session:" + token).SetErr(redis.ErrClosed)
		_, err := repo.SessionExists(ctx, token)
		assert.ErrorIs(t, err, redis.ErrClosed)
	})
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	repo, mock := setupSessionRepo()
	token := "3f1b8a4e-4a8e-4d9f-9ab1-0f2a6f5a7c3d"

	t.Run("successful delete", func(t *testing.T) {
		mock.ExpectDel("session:" + token).SetVal(1)
		err := repo.DeleteSession(ctx, token)
		assert.NoError(t, err)
	})

	t.Run("already expired", func(t *testing.T) {
		mock.ExpectDel("session:" + token).SetVal(0)
		err := repo.DeleteSession(ctx, token)
		assert.ErrorIs(t, err, storage.ErrSessionExpired)
	})

	t.Run("redis error", func(t *testing.T) {
		mock.ExpectDel("session:" + token).SetErr(redis.ErrClosed)
		err := repo.DeleteSession(ctx, token)
		assert.ErrorIs(t, err, redis.ErrClosed)
	})
}
