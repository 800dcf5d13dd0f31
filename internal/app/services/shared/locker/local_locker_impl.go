package locker

import (
	"context"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/google/uuid"
)

type localLock struct {
	value     string
	expiresAt time.Time
}

// localLockService is the in-process counterpart of lockService, used with the
// memory workspace store where a single replica owns all state.
type localLockService struct {
	mu    sync.Mutex
	locks map[string]localLock
	now   func() time.Time
}

func NewLocalLockService() contracts.LockerService {
	return &localLockService{
		locks: make(map[string]localLock),
		now:   time.Now,
	}
}

func (s *localLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if current, ok := s.locks[key]; ok && now.Before(current.expiresAt) {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	s.locks[key] = localLock{value: lockValue, expiresAt: now.Add(expiration)}
	return true, lockValue, nil
}

func (s *localLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.locks[key]
	if !ok || current.value != lockValue {
		return exceptions.ErrRedisUnlock(errLockNotOwned)
	}
	delete(s.locks, key)
	return nil
}
