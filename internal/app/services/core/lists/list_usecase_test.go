package lists

import (
	"context"
	"errors"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/contracts/mocks"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/app/services/core/workspace"
	"provider-leads-service/internal/app/services/shared/events"
	"provider-leads-service/internal/app/services/shared/locker"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testWorkspaceID = "ws-lists"

func setupListUsecase(t *testing.T) (contracts.ListUsecase, *mocks.MockLeadsAPIClient, contracts.WorkspaceService, *mocks.MockEventPublisher) {
	t.Helper()
	leadsAPI := new(mocks.MockLeadsAPIClient)
	publisher := new(mocks.MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	workspaceService := workspace.NewWorkspaceService(
		workspace.NewWorkspaceMemoryRepository(time.Hour),
		locker.NewLocalLockService(),
		zap.NewNop(),
		5*time.Second,
		10*time.Second,
	)
	usecase := NewListUsecase(leadsAPI, workspaceService, events.NewRecorder(publisher, zap.NewNop()), zap.NewNop())
	return usecase, leadsAPI, workspaceService, publisher
}

func selectProviders(t *testing.T, workspaceService contracts.WorkspaceService, npis ...string) {
	t.Helper()
	_, err := workspaceService.Update(context.Background(), testWorkspaceID, func(ws *models.Workspace) error {
		for _, npi := range npis {
			ws.Results = append(ws.Results, models.Provider{NPI: models.NPI(npi)})
			ws.SetSelected(npi, true)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestListUsecase_LoadLists(t *testing.T) {
	t.Run("Stores Fetched Lists", func(t *testing.T) {
		usecase, leadsAPI, workspaceService, _ := setupListUsecase(t)
		leadsAPI.On("FetchLists", mock.Anything).Return([]models.List{{ID: "l1", Name: "Cardio"}}, nil).Once()

		lists, err := usecase.LoadLists(context.Background(), testWorkspaceID)
		require.NoError(t, err)
		assert.Len(t, lists, 1)

		ws, err := workspaceService.Load(context.Background(), testWorkspaceID)
		require.NoError(t, err)
		assert.True(t, ws.ListsLoaded)
		assert.Equal(t, "Cardio", ws.Lists[0].Name)
	})

	t.Run("Failed Fetch Keeps Previous Lists And Notifies", func(t *testing.T) {
		usecase, leadsAPI, workspaceService, _ := setupListUsecase(t)
		_, err := workspaceService.Update(context.Background(), testWorkspaceID, func(ws *models.Workspace) error {
			ws.Lists = []models.List{{ID: "l1", Name: "Existing"}}
			ws.ListsLoaded = true
			return nil
		})
		require.NoError(t, err)
		leadsAPI.On("FetchLists", mock.Anything).Return(nil, errors.New("connection reset")).Once()

		_, err = usecase.LoadLists(context.Background(), testWorkspaceID)
		require.Error(t, err)

		ws, notifications, err := workspaceService.Snapshot(context.Background(), testWorkspaceID)
		require.NoError(t, err)
		require.Len(t, ws.Lists, 1)
		assert.Equal(t, "Existing", ws.Lists[0].Name)
		require.Len(t, notifications, 1)
		assert.Equal(t, constvars.SeverityError, notifications[0].Severity)
		assert.Equal(t, constvars.ErrClientFailedToLoadLists, notifications[0].Message)
	})
}

func TestListUsecase_ViewList(t *testing.T) {
	t.Run("Switches To List View", func(t *testing.T) {
		usecase, leadsAPI, workspaceService, _ := setupListUsecase(t)
		selectProviders(t, workspaceService, "1111111111")
		leadsAPI.On("FetchLists", mock.Anything).Return([]models.List{{ID: "l1", Name: "Cardio"}}, nil).Once()
		leadsAPI.On("GetListProviders", mock.Anything, "l1").
			Return([]models.Provider{{NPI: "2222222222"}, {NPI: "3333333333"}}, nil).Once()

		ws, err := usecase.ViewList(context.Background(), testWorkspaceID, "l1")

		require.NoError(t, err)
		assert.Equal(t, models.WorkspaceViewList, ws.ActiveView)
		require.NotNil(t, ws.CurrentList)
		assert.Equal(t, "Cardio", ws.CurrentList.Name)
		assert.Equal(t, 2, ws.CurrentList.ProviderCount)
		assert.Len(t, ws.ListProviders, 2)
		assert.Empty(t, ws.SelectedNPIs())
	})

	t.Run("Failed Fetch Leaves State Unchanged", func(t *testing.T) {
		usecase, leadsAPI, workspaceService, _ := setupListUsecase(t)
		_, err := workspaceService.Update(context.Background(), testWorkspaceID, func(ws *models.Workspace) error {
			ws.Lists = []models.List{{ID: "l1", Name: "Cardio"}, {ID: "l2", Name: "Neuro"}}
			ws.CurrentList = &ws.Lists[0]
			ws.ListProviders = []models.Provider{{NPI: "1111111111"}}
			ws.ActiveView = models.WorkspaceViewList
			return nil
		})
		require.NoError(t, err)
		leadsAPI.On("GetListProviders", mock.Anything, "l2").Return(nil, errors.New("timeout")).Once()

		_, err = usecase.ViewList(context.Background(), testWorkspaceID, "l2")
		require.Error(t, err)

		ws, notifications, err := workspaceService.Snapshot(context.Background(), testWorkspaceID)
		require.NoError(t, err)
		assert.Equal(t, "l1", ws.CurrentList.ID)
		assert.Len(t, ws.ListProviders, 1)
		require.Len(t, notifications, 1)
		assert.Equal(t, constvars.ErrClientFailedToLoadListProviders, notifications[0].Message)
		leadsAPI.AssertNotCalled(t, "FetchLists", mock.Anything)
	})
}

func TestListUsecase_SaveSelectionToNewList(t *testing.T) {
	t.Run("One Create Then One Add With All NPIs", func(t *testing.T) {
		usecase, leadsAPI, workspaceService, _ := setupListUsecase(t)
		selectProviders(t, workspaceService, "1111111111", "2222222222", "3333333333")

		leadsAPI.On("CreateList", mock.Anything, "Q3 Leads").Return(&models.List{ID: "new-list", Name: "Q3 Leads"}, nil).Once()
		leadsAPI.On("AddProvidersToList", mock.Anything, "new-list", []string{"1111111111", "2222222222", "3333333333"}).
			Return("Providers added", nil).Once()
		leadsAPI.On("FetchLists", mock.Anything).Return([]models.List{{ID: "new-list", Name: "Q3 Leads", ProviderCount: 3}}, nil).Once()

		result, err := usecase.SaveSelectionToNewList(context.Background(), testWorkspaceID, "  Q3 Leads ", nil)

		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, 3, result.AddedCount)
		leadsAPI.AssertNumberOfCalls(t, "CreateList", 1)
		leadsAPI.AssertNumberOfCalls(t, "AddProvidersToList", 1)

		ws, notifications, err := workspaceService.Snapshot(context.Background(), testWorkspaceID)
		require.NoError(t, err)
		assert.Empty(t, ws.SelectedNPIs())
		assert.Equal(t, 3, ws.Lists[0].ProviderCount)
		require.Len(t, notifications, 1)
		assert.Equal(t, "Providers saved to new list 'Q3 Leads'!", notifications[0].Message)
	})

	t.Run("Add Failure Reports The Created List", func(t *testing.T) {
		usecase, leadsAPI, workspaceService, _ := setupListUsecase(t)
		selectProviders(t, workspaceService, "1111111111")

		leadsAPI.On("CreateList", mock.Anything, "Broken").Return(&models.List{ID: "half", Name: "Broken"}, nil).Once()
		leadsAPI.On("AddProvidersToList", mock.Anything, "half", []string{"1111111111"}).Return("", errors.New("boom")).Once()
		leadsAPI.On("FetchLists", mock.Anything).Return([]models.List{{ID: "half", Name: "Broken"}}, nil).Once()

		result, err := usecase.SaveSelectionToNewList(context.Background(), testWorkspaceID, "Broken", nil)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusMultiStatus, customErr.StatusCode)
		require.NotNil(t, result)
		assert.Equal(t, "half", result.List.ID)
		assert.Zero(t, result.AddedCount)

		ws, notifications, err := workspaceService.Snapshot(context.Background(), testWorkspaceID)
		require.NoError(t, err)
		assert.Equal(t, []string{"1111111111"}, ws.SelectedNPIs())
		require.Len(t, notifications, 1)
		assert.Equal(t, constvars.SeverityError, notifications[0].Severity)
	})

	t.Run("Create Failure Shows Generic Message", func(t *testing.T) {
		usecase, leadsAPI, workspaceService, _ := setupListUsecase(t)
		selectProviders(t, workspaceService, "1111111111")
		leadsAPI.On("CreateList", mock.Anything, "Nope").Return(nil, errors.New("boom")).Once()

		_, err := usecase.SaveSelectionToNewList(context.Background(), testWorkspaceID, "Nope", nil)
		require.Error(t, err)
		leadsAPI.AssertNotCalled(t, "AddProvidersToList", mock.Anything, mock.Anything, mock.Anything)

		_, notifications, err := workspaceService.Snapshot(context.Background(), testWorkspaceID)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, constvars.ErrClientFailedToSaveToList, notifications[0].Message)
	})

	t.Run("Requires Name And Selection", func(t *testing.T) {
		usecase, leadsAPI, _, _ := setupListUsecase(t)

		_, err := usecase.SaveSelectionToNewList(context.Background(), testWorkspaceID, "   ", []string{"1111111111"})
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientListNameRequired, customErr.ClientMessage)

		_, err = usecase.SaveSelectionToNewList(context.Background(), testWorkspaceID, "Named", nil)
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientNoProvidersSelected, customErr.ClientMessage)

		leadsAPI.AssertNotCalled(t, "CreateList", mock.Anything, mock.Anything)
	})
}

func TestListUsecase_SaveSelectionToExistingList(t *testing.T) {
	usecase, leadsAPI, workspaceService, publisher := setupListUsecase(t)
	selectProviders(t, workspaceService, "1111111111", "2222222222")
	_, err := workspaceService.Update(context.Background(), testWorkspaceID, func(ws *models.Workspace) error {
		ws.Lists = []models.List{{ID: "l1", Name: "Cardio"}}
		return nil
	})
	require.NoError(t, err)

	leadsAPI.On("AddProvidersToList", mock.Anything, "l1", []string{"1111111111", "2222222222"}).Return("ok", nil).Once()
	leadsAPI.On("FetchLists", mock.Anything).Return(nil, errors.New("index down")).Once()

	result, err := usecase.SaveSelectionToExistingList(context.Background(), testWorkspaceID, "l1", nil)

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, 2, result.AddedCount)
	leadsAPI.AssertNotCalled(t, "CreateList", mock.Anything, mock.Anything)
	publisher.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(event *models.LeadEvent) bool {
		return event.Type == constvars.EventListProvidersAdded
	}))

	ws, notifications, err := workspaceService.Snapshot(context.Background(), testWorkspaceID)
	require.NoError(t, err)
	assert.Empty(t, ws.SelectedNPIs())
	assert.Equal(t, "Cardio", ws.Lists[0].Name)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Providers added to list 'Cardio'!", notifications[0].Message)
}

func TestListUsecase_CreateList(t *testing.T) {
	usecase, leadsAPI, workspaceService, _ := setupListUsecase(t)
	leadsAPI.On("CreateList", mock.Anything, "Empty").Return(&models.List{ID: "e1"}, nil).Once()

	list, err := usecase.CreateList(context.Background(), testWorkspaceID, "Empty")

	require.NoError(t, err)
	assert.Equal(t, "Empty", list.Name)

	ws, notifications, err := workspaceService.Snapshot(context.Background(), testWorkspaceID)
	require.NoError(t, err)
	require.Len(t, ws.Lists, 1)
	assert.Equal(t, "e1", ws.Lists[0].ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "List 'Empty' created!", notifications[0].Message)
}
