package workspace

import (
	"context"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// workspaceMemoryRepository keeps serialized workspaces in process, so callers
// never share mutable state with the store.
type workspaceMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewWorkspaceMemoryRepository(ttl time.Duration) contracts.WorkspaceRepository {
	return &workspaceMemoryRepository{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *workspaceMemoryRepository) Get(ctx context.Context, workspaceID string) (*models.Workspace, error) {
	r.mu.RLock()
	entry, ok := r.entries[workspaceID]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if r.ttl > 0 && r.now().After(entry.expiresAt) {
		r.mu.Lock()
		delete(r.entries, workspaceID)
		r.mu.Unlock()
		return nil, nil
	}

	workspace := new(models.Workspace)
	err := json.Unmarshal(entry.data, workspace)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	workspace.Normalize()
	return workspace, nil
}

func (r *workspaceMemoryRepository) Save(ctx context.Context, workspace *models.Workspace) error {
	data, err := json.Marshal(workspace)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[workspace.ID] = memoryEntry{data: data, expiresAt: r.now().Add(r.ttl)}
	r.evictExpiredLocked()
	return nil
}

func (r *workspaceMemoryRepository) Delete(ctx context.Context, workspaceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, workspaceID)
	return nil
}

func (r *workspaceMemoryRepository) evictExpiredLocked() {
	if r.ttl <= 0 {
		return
	}
	now := r.now()
	for id, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, id)
		}
	}
}
