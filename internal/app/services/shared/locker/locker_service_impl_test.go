package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	args := m.Called(ctx, key, ttl)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func TestLockService_TryLock(t *testing.T) {
	key := "lock:booking:doctor-1:2024-06-03"

	t.Run("Acquired", func(t *testing.T) {
		repo := new(MockRedisRepository)
		svc := newLockService(repo, zap.NewNop())
		repo.On("TrySetNX", mock.Anything, key, mock.AnythingOfType("string"), 10*time.Second).Return(true, nil)

		acquired, value, err := svc.TryLock(context.Background(), key, 10*time.Second)

		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value, "lock value should be returned to the owner")
		repo.AssertExpectations(t)
	})

	t.Run("Held By Someone Else", func(t *testing.T) {
		repo := new(MockRedisRepository)
		svc := newLockService(repo, zap.NewNop())
		repo.On("TrySetNX", mock.Anything, key, mock.Anything, mock.Anything).Return(false, nil)

		acquired, value, err := svc.TryLock(context.Background(), key, time.Second)

		assert.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("Redis Error", func(t *testing.T) {
		repo := new(MockRedisRepository)
		svc := newLockService(repo, zap.NewNop())
		repo.On("TrySetNX", mock.Anything, key, mock.Anything, mock.Anything).Return(false, errors.New("connection refused"))

		acquired, _, err := svc.TryLock(context.Background(), key, time.Second)

		assert.Error(t, err)
		assert.False(t, acquired)
	})
}

func TestLockService_Unlock(t *testing.T) {
	key := "lock:booking:doctor-1:2024-06-03"

	t.Run("Owner Releases", func(t *testing.T) {
		repo := new(MockRedisRepository)
		svc := newLockService(repo, zap.NewNop())
		repo.On("CompareAndDelete", mock.Anything, key, "owner-value").Return(true, nil)

		err := svc.Unlock(context.Background(), key, "owner-value")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Expired Or Foreign Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		svc := newLockService(repo, zap.NewNop())
		repo.On("CompareAndDelete", mock.Anything, key, "stale-value").Return(false, nil)

		err := svc.Unlock(context.Background(), key, "stale-value")

		assert.Error(t, err)
	})
}
