package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/anandita-3217/FlashcardApp-CLI/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectPing().SetVal("PONG")
		err := adapter.Ping(ctx)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectPing().SetErr(redisErr)
		err := adapter.Ping(ctx)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_HGetAll(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "flashcards:quiz:result:abc"

	t.Run("Success", func(t *testing.T) {
		expected := map[string]string{"score": "4", "total": "5"}
		mock.ExpectHGetAll(key).SetVal(expected)
		val, err := adapter.HGetAll(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, expected, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyHashIsMiss", func(t *testing.T) {
		mock.ExpectHGetAll(key).SetVal(map[string]string{})
		val, err := adapter.HGetAll(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Nil(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NilIsMiss", func(t *testing.T) {
		mock.ExpectHGetAll(key).SetErr(redis.Nil)
		val, err := adapter.HGetAll(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Nil(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectHGetAll(key).SetErr(redisErr)
		_, err := adapter.HGetAll(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_HSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "flashcards:quiz:result:abc"
	fields := map[string]string{"total": "5", "level": "beginner", "score": "4"}

	t.Run("SuccessWritesFieldsInKeyOrder", func(t *testing.T) {
		mock.ExpectHSet(key, "level", "beginner", "score", "4", "total", "5").SetVal(3)
		err := adapter.HSet(ctx, key, fields)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoFieldsIsNoop", func(t *testing.T) {
		err := adapter.HSet(ctx, key, nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectHSet(key, "level", "beginner", "score", "4", "total", "5").SetErr(redisErr)
		err := adapter.HSet(ctx, key, fields)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Expire(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "flashcards:quiz:result:abc"
	expiration := 24 * time.Hour

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExpire(key, expiration).SetVal(true)
		err := adapter.Expire(ctx, key, expiration)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectExpire(key, expiration).SetErr(redisErr)
		err := adapter.Expire(ctx, key, expiration)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
