package workspace

import (
	"context"
	"errors"
	"fmt"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/app/services/shared/locker"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWorkspaceService() *workspaceService {
	return NewWorkspaceService(
		NewWorkspaceMemoryRepository(time.Hour),
		locker.NewLocalLockService(),
		zap.NewNop(),
		5*time.Second,
		10*time.Second,
	).(*workspaceService)
}

func TestWorkspaceService_Load(t *testing.T) {
	service := newTestWorkspaceService()

	workspace, err := service.Load(context.Background(), "fresh")

	require.NoError(t, err)
	assert.Equal(t, "fresh", workspace.ID)
	assert.Empty(t, workspace.Results)
	assert.NotNil(t, workspace.Selection)

	_, err = service.Load(context.Background(), "")
	assert.Error(t, err)
}

func TestWorkspaceService_Update(t *testing.T) {
	t.Run("Persists Mutations", func(t *testing.T) {
		service := newTestWorkspaceService()

		_, err := service.Update(context.Background(), "ws", func(workspace *models.Workspace) error {
			workspace.SetSelected("1234567890", true)
			return nil
		})
		require.NoError(t, err)

		workspace, err := service.Load(context.Background(), "ws")
		require.NoError(t, err)
		assert.True(t, workspace.IsSelected("1234567890"))
	})

	t.Run("Persists Even When Callback Fails", func(t *testing.T) {
		service := newTestWorkspaceService()
		failure := errors.New("remote failed")

		_, err := service.Update(context.Background(), "ws", func(workspace *models.Workspace) error {
			workspace.Notify("error", "Failed to load lists.")
			return failure
		})
		assert.ErrorIs(t, err, failure)

		_, notifications, err := service.Snapshot(context.Background(), "ws")
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, "Failed to load lists.", notifications[0].Message)

		_, notifications, err = service.Snapshot(context.Background(), "ws")
		require.NoError(t, err)
		assert.Empty(t, notifications, "notifications are shown once")
	})

	t.Run("Concurrent Writers Do Not Lose Updates", func(t *testing.T) {
		service := newTestWorkspaceService()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := service.Update(context.Background(), "ws", func(workspace *models.Workspace) error {
					workspace.SetSelected(fmt.Sprintf("%010d", i), true)
					return nil
				})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		workspace, err := service.Load(context.Background(), "ws")
		require.NoError(t, err)
		assert.Len(t, workspace.Selection, 20)
	})
}

func TestWorkspaceMemoryRepository_Expiry(t *testing.T) {
	repository := NewWorkspaceMemoryRepository(time.Minute).(*workspaceMemoryRepository)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repository.now = func() time.Time { return now }

	require.NoError(t, repository.Save(context.Background(), models.NewWorkspace("ws")))

	workspace, err := repository.Get(context.Background(), "ws")
	require.NoError(t, err)
	require.NotNil(t, workspace)

	now = now.Add(2 * time.Minute)
	workspace, err = repository.Get(context.Background(), "ws")
	require.NoError(t, err)
	assert.Nil(t, workspace)
}
