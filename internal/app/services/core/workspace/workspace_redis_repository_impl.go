package workspace

import (
	"context"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type workspaceRedisRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

func NewWorkspaceRedisRepository(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.WorkspaceRepository {
	return &workspaceRedisRepository{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func workspaceKey(workspaceID string) string {
	return constvars.WorkspaceRedisKeyPrefix + workspaceID
}

func (r *workspaceRedisRepository) Get(ctx context.Context, workspaceID string) (*models.Workspace, error) {
	data, err := r.RedisRepository.Get(ctx, workspaceKey(workspaceID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	workspace := new(models.Workspace)
	err = json.Unmarshal([]byte(data), workspace)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	workspace.Normalize()
	return workspace, nil
}

// Save refreshes the TTL on every write, so active workspaces do not expire.
func (r *workspaceRedisRepository) Save(ctx context.Context, workspace *models.Workspace) error {
	return r.RedisRepository.Set(ctx, workspaceKey(workspace.ID), workspace, r.TTL)
}

func (r *workspaceRedisRepository) Delete(ctx context.Context, workspaceID string) error {
	return r.RedisRepository.Delete(ctx, workspaceKey(workspaceID))
}
