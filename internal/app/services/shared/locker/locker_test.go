package locker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func TestLockService(t *testing.T) {
	t.Run("Acquire And Release", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("TrySetNX", mock.Anything, "lock:key", mock.AnythingOfType("string"), time.Second).Return(true, nil).Once()

		acquired, lockValue, err := service.TryLock(context.Background(), "lock:key", time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)

		repo.On("CompareAndDelete", mock.Anything, "lock:key", lockValue).Return(true, nil).Once()
		assert.NoError(t, service.Unlock(context.Background(), "lock:key", lockValue))
		repo.AssertExpectations(t)
	})

	t.Run("Held By Someone Else", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("TrySetNX", mock.Anything, "lock:key", mock.Anything, time.Second).Return(false, nil).Once()

		acquired, lockValue, err := service.TryLock(context.Background(), "lock:key", time.Second)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, lockValue)
	})

	t.Run("Unlock Of Expired Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("CompareAndDelete", mock.Anything, "lock:key", "stale").Return(false, nil).Once()

		assert.Error(t, service.Unlock(context.Background(), "lock:key", "stale"))
	})
}

func TestLocalLockService(t *testing.T) {
	service := NewLocalLockService().(*localLockService)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	acquired, first, err := service.TryLock(context.Background(), "k", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	acquired, _, err = service.TryLock(context.Background(), "k", time.Second)
	require.NoError(t, err)
	assert.False(t, acquired, "lock is still held")

	now = now.Add(2 * time.Second)
	acquired, second, err := service.TryLock(context.Background(), "k", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired, "expired lock can be taken over")

	assert.Error(t, service.Unlock(context.Background(), "k", first))
	assert.NoError(t, service.Unlock(context.Background(), "k", second))
}
