package workspace

import (
	"context"
	"errors"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

var errLockWaitExceeded = errors.New("lock wait exceeded")

const lockRetryInterval = 20 * time.Millisecond

type workspaceService struct {
	Repository  contracts.WorkspaceRepository
	Locker      contracts.LockerService
	Log         *zap.Logger
	LockTimeout time.Duration
	LockExpiry  time.Duration
}

func NewWorkspaceService(
	repository contracts.WorkspaceRepository,
	locker contracts.LockerService,
	logger *zap.Logger,
	lockTimeout time.Duration,
	lockExpiry time.Duration,
) contracts.WorkspaceService {
	return &workspaceService{
		Repository:  repository,
		Locker:      locker,
		Log:         logger,
		LockTimeout: lockTimeout,
		LockExpiry:  lockExpiry,
	}
}

func (s *workspaceService) Load(ctx context.Context, workspaceID string) (*models.Workspace, error) {
	if workspaceID == "" {
		return nil, exceptions.ErrMissingWorkspaceID(nil)
	}

	workspace, err := s.Repository.Get(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		workspace = models.NewWorkspace(workspaceID)
	}
	return workspace, nil
}

func (s *workspaceService) Update(ctx context.Context, workspaceID string, fn func(workspace *models.Workspace) error) (*models.Workspace, error) {
	if workspaceID == "" {
		return nil, exceptions.ErrMissingWorkspaceID(nil)
	}

	lockKey := constvars.WorkspaceLockRedisKeyPrefix + workspaceID
	lockValue, err := s.acquire(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	defer func() {
		unlockErr := s.Locker.Unlock(utils.DetachContext(ctx), lockKey, lockValue)
		if unlockErr != nil {
			s.Log.Warn("workspaceService.Update error releasing workspace lock",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingWorkspaceIDKey, workspaceID),
				zap.Error(unlockErr),
			)
		}
	}()

	workspace, err := s.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	fnErr := fn(workspace)

	workspace.UpdatedAt = time.Now().UTC()
	err = s.Repository.Save(ctx, workspace)
	if err != nil {
		s.Log.Error("workspaceService.Update error saving workspace",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingWorkspaceIDKey, workspaceID),
			zap.Error(err),
		)
		return nil, err
	}

	return workspace, fnErr
}

func (s *workspaceService) Snapshot(ctx context.Context, workspaceID string) (*models.Workspace, []models.Notification, error) {
	var notifications []models.Notification
	workspace, err := s.Update(ctx, workspaceID, func(workspace *models.Workspace) error {
		notifications = workspace.DrainNotifications()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return workspace, notifications, nil
}

func (s *workspaceService) acquire(ctx context.Context, lockKey string) (string, error) {
	deadline := time.Now().Add(s.LockTimeout)
	for {
		acquired, lockValue, err := s.Locker.TryLock(ctx, lockKey, s.LockExpiry)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}
		if time.Now().After(deadline) {
			return "", exceptions.ErrWorkspaceLockTimeout(errLockWaitExceeded, lockKey)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}
