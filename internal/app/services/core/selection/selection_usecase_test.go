package selection

import (
	"context"
	"math"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/app/services/core/workspace"
	"provider-leads-service/internal/app/services/shared/locker"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/dto/requests"
	"provider-leads-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testWorkspaceID = "ws-selection"

func setupSelectionUsecase(t *testing.T, npis ...string) (contracts.SelectionUsecase, contracts.WorkspaceService) {
	t.Helper()
	workspaceService := workspace.NewWorkspaceService(
		workspace.NewWorkspaceMemoryRepository(time.Hour),
		locker.NewLocalLockService(),
		zap.NewNop(),
		5*time.Second,
		10*time.Second,
	)

	providers := make([]models.Provider, len(npis))
	for i, npi := range npis {
		providers[i] = models.Provider{NPI: models.NPI(npi), Basic: models.ProviderBasic{FirstName: "Doc", LastName: npi}}
	}
	_, err := workspaceService.Update(context.Background(), testWorkspaceID, func(ws *models.Workspace) error {
		ws.Results = providers
		return nil
	})
	require.NoError(t, err)

	return NewSelectionUsecase(workspaceService, zap.NewNop()), workspaceService
}

func TestSelectionUsecase_Toggle(t *testing.T) {
	usecase, _ := setupSelectionUsecase(t, "1111111111", "2222222222")

	ws, err := usecase.UpdateSelection(context.Background(), testWorkspaceID, &requests.UpdateSelection{
		Action:   constvars.SelectionActionToggle,
		NPI:      "2222222222",
		Selected: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2222222222"}, ws.SelectedNPIs())

	ws, err = usecase.UpdateSelection(context.Background(), testWorkspaceID, &requests.UpdateSelection{
		Action:   constvars.SelectionActionToggle,
		NPI:      "2222222222",
		Selected: false,
	})
	require.NoError(t, err)
	assert.Empty(t, ws.SelectedNPIs())
}

func TestSelectionUsecase_ToggleUnknownProvider(t *testing.T) {
	usecase, _ := setupSelectionUsecase(t, "1111111111")

	_, err := usecase.UpdateSelection(context.Background(), testWorkspaceID, &requests.UpdateSelection{
		Action:   constvars.SelectionActionToggle,
		NPI:      "9999999999",
		Selected: true,
	})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestSelectionUsecase_SelectAllScopedToPage(t *testing.T) {
	usecase, _ := setupSelectionUsecase(t, "1111111111", "2222222222", "3333333333")

	ws, err := usecase.UpdateSelection(context.Background(), testWorkspaceID, &requests.UpdateSelection{
		Action:   constvars.SelectionActionSelectAll,
		Page:     2,
		PageSize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"3333333333"}, ws.SelectedNPIs())

	ws, err = usecase.UpdateSelection(context.Background(), testWorkspaceID, &requests.UpdateSelection{
		Action: constvars.SelectionActionSelectAll,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1111111111", "2222222222", "3333333333"}, ws.SelectedNPIs())

	ws, err = usecase.UpdateSelection(context.Background(), testWorkspaceID, &requests.UpdateSelection{
		Action:   constvars.SelectionActionClearAll,
		Page:     1,
		PageSize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"3333333333"}, ws.SelectedNPIs())
}

func TestSelectionUsecase_SelectAllPastLastPage(t *testing.T) {
	usecase, _ := setupSelectionUsecase(t, "1111111111", "2222222222")

	ws, err := usecase.UpdateSelection(context.Background(), testWorkspaceID, &requests.UpdateSelection{
		Action:   constvars.SelectionActionSelectAll,
		Page:     math.MaxInt64 / 5,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, ws.SelectedNPIs())
}

func TestSelectionUsecase_InvalidAction(t *testing.T) {
	usecase, _ := setupSelectionUsecase(t, "1111111111")

	_, err := usecase.UpdateSelection(context.Background(), testWorkspaceID, &requests.UpdateSelection{Action: "invert"})

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestSelectionUsecase_ClearSelection(t *testing.T) {
	usecase, workspaceService := setupSelectionUsecase(t, "1111111111", "2222222222")
	_, err := usecase.UpdateSelection(context.Background(), testWorkspaceID, &requests.UpdateSelection{
		Action: constvars.SelectionActionSelectAll,
	})
	require.NoError(t, err)

	_, err = usecase.ClearSelection(context.Background(), testWorkspaceID)
	require.NoError(t, err)

	ws, err := workspaceService.Load(context.Background(), testWorkspaceID)
	require.NoError(t, err)
	assert.Empty(t, ws.SelectedNPIs())
}
