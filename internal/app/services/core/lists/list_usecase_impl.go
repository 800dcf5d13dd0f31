package lists

import (
	"context"
	"fmt"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/app/services/leadsapi"
	"provider-leads-service/internal/app/services/shared/events"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/exceptions"
	"provider-leads-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type listUsecase struct {
	LeadsAPI         contracts.LeadsAPIClient
	WorkspaceService contracts.WorkspaceService
	Events           *events.Recorder
	Log              *zap.Logger
}

func NewListUsecase(
	leadsAPI contracts.LeadsAPIClient,
	workspaceService contracts.WorkspaceService,
	recorder *events.Recorder,
	logger *zap.Logger,
) contracts.ListUsecase {
	return &listUsecase{
		LeadsAPI:         leadsAPI,
		WorkspaceService: workspaceService,
		Events:           recorder,
		Log:              logger,
	}
}

// LoadLists refreshes the list index. A failed fetch leaves the previously
// loaded lists in place.
func (uc *listUsecase) LoadLists(ctx context.Context, workspaceID string) ([]models.List, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("listUsecase.LoadLists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWorkspaceIDKey, workspaceID),
	)

	lists, err := uc.LeadsAPI.FetchLists(ctx)
	if err != nil {
		uc.Log.Error("listUsecase.LoadLists error fetching lists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.notify(ctx, workspaceID, constvars.SeverityError, constvars.ErrClientFailedToLoadLists)
		return nil, err
	}

	_, err = uc.WorkspaceService.Update(ctx, workspaceID, func(workspace *models.Workspace) error {
		workspace.Lists = lists
		workspace.ListsLoaded = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("listUsecase.LoadLists succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(lists)),
	)
	return lists, nil
}

// ViewList fetches a list's providers and makes it the active table. The
// selection is reset; a failed fetch changes nothing.
func (uc *listUsecase) ViewList(ctx context.Context, workspaceID, listID string) (*models.Workspace, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("listUsecase.ViewList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, listID),
	)

	if strings.TrimSpace(listID) == "" {
		return nil, exceptions.ErrMissingListID()
	}

	current, err := uc.WorkspaceService.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	list, known := current.FindList(listID)
	var fetchedLists []models.List
	if !known {
		fetchedLists, err = uc.LeadsAPI.FetchLists(ctx)
		if err != nil {
			uc.Log.Warn("listUsecase.ViewList could not refresh list index",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		list = findList(fetchedLists, listID)
	}

	providers, err := uc.LeadsAPI.GetListProviders(ctx, listID)
	if err != nil {
		uc.Log.Error("listUsecase.ViewList error fetching list providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingListIDKey, listID),
			zap.Error(err),
		)
		uc.notify(ctx, workspaceID, constvars.SeverityError, constvars.ErrClientFailedToLoadListProviders)
		return nil, err
	}

	currentList := models.List{ID: listID, Name: listID}
	if list != nil {
		currentList = *list
	}
	currentList.ProviderCount = len(providers)

	workspace, err := uc.WorkspaceService.Update(ctx, workspaceID, func(workspace *models.Workspace) error {
		if fetchedLists != nil {
			workspace.Lists = fetchedLists
			workspace.ListsLoaded = true
		}
		workspace.CurrentList = &currentList
		workspace.ListProviders = providers
		workspace.ActiveView = models.WorkspaceViewList
		workspace.ClearSelection()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("listUsecase.ViewList succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, listID),
		zap.Int(constvars.LoggingCountKey, len(providers)),
	)
	return workspace, nil
}

func (uc *listUsecase) CreateList(ctx context.Context, workspaceID, listName string) (*models.List, error) {
	requestID := utils.GetRequestID(ctx)
	listName = strings.TrimSpace(listName)
	uc.Log.Info("listUsecase.CreateList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListNameKey, listName),
	)

	if listName == "" {
		uc.notify(ctx, workspaceID, constvars.SeverityWarning, constvars.ErrClientListNameRequired)
		return nil, exceptions.ErrEmptyListName()
	}

	list, err := uc.LeadsAPI.CreateList(ctx, listName)
	if err != nil {
		uc.Log.Error("listUsecase.CreateList error creating list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.notify(ctx, workspaceID, constvars.SeverityError, exceptions.ClientMessage(err, constvars.ErrClientRemoteCallFailed))
		return nil, err
	}
	if list.Name == "" {
		list.Name = listName
	}

	_, err = uc.WorkspaceService.Update(ctx, workspaceID, func(workspace *models.Workspace) error {
		if _, exists := workspace.FindList(list.ID); !exists {
			workspace.Lists = append(workspace.Lists, *list)
		}
		workspace.Notify(constvars.SeveritySuccess, fmt.Sprintf(constvars.CreateListSuccessMessageFormat, list.Name))
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.Events.Record(ctx, constvars.EventListCreated, map[string]interface{}{
		"list_id":   list.ID,
		"list_name": list.Name,
	})

	uc.Log.Info("listUsecase.CreateList succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, list.ID),
	)
	return list, nil
}

// SaveSelectionToNewList creates the list, then attaches every NPI in a single
// call. When the second call fails the created list is left in place and
// reported alongside the error.
func (uc *listUsecase) SaveSelectionToNewList(ctx context.Context, workspaceID, listName string, npis []string) (*models.ListSaveResult, error) {
	requestID := utils.GetRequestID(ctx)
	listName = strings.TrimSpace(listName)
	uc.Log.Info("listUsecase.SaveSelectionToNewList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListNameKey, listName),
	)

	if listName == "" {
		uc.notify(ctx, workspaceID, constvars.SeverityWarning, constvars.ErrClientListNameRequired)
		return nil, exceptions.ErrEmptyListName()
	}

	npis, err := uc.resolveNPIs(ctx, workspaceID, npis)
	if err != nil {
		return nil, err
	}

	result, err := leadsapi.CreateListWithProviders(ctx, uc.LeadsAPI, listName, npis)
	if result == nil {
		uc.Log.Error("listUsecase.SaveSelectionToNewList error creating list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.notify(ctx, workspaceID, constvars.SeverityError, constvars.ErrClientFailedToSaveToList)
		return nil, err
	}

	list := result.List
	uc.Events.Record(ctx, constvars.EventListCreated, map[string]interface{}{
		"list_id":   list.ID,
		"list_name": list.Name,
	})

	if err != nil {
		uc.Log.Error("listUsecase.SaveSelectionToNewList error adding providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingListIDKey, list.ID),
			zap.Error(err),
		)
		uc.notify(ctx, workspaceID, constvars.SeverityError, exceptions.ClientMessage(err, constvars.ErrClientFailedToSaveToList))
		uc.refreshLists(ctx, workspaceID)
		return result, err
	}

	uc.completeSave(ctx, workspaceID, fmt.Sprintf(constvars.SaveToNewListSuccessMessageFormat, list.Name))
	uc.Events.Record(ctx, constvars.EventListProvidersAdded, map[string]interface{}{
		"list_id": list.ID,
		"count":   len(npis),
	})

	uc.Log.Info("listUsecase.SaveSelectionToNewList succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, list.ID),
		zap.Int(constvars.LoggingCountKey, len(npis)),
	)
	return result, nil
}

func (uc *listUsecase) SaveSelectionToExistingList(ctx context.Context, workspaceID, listID string, npis []string) (*models.ListSaveResult, error) {
	requestID := utils.GetRequestID(ctx)
	listID = strings.TrimSpace(listID)
	uc.Log.Info("listUsecase.SaveSelectionToExistingList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, listID),
	)

	if listID == "" {
		uc.notify(ctx, workspaceID, constvars.SeverityWarning, constvars.ErrClientListRequired)
		return nil, exceptions.ErrMissingListID()
	}

	workspace, err := uc.WorkspaceService.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	list := models.List{ID: listID}
	if known, ok := workspace.FindList(listID); ok {
		list = *known
	}

	npis, err = uc.resolveNPIs(ctx, workspaceID, npis)
	if err != nil {
		return nil, err
	}

	_, err = uc.LeadsAPI.AddProvidersToList(ctx, listID, npis)
	if err != nil {
		uc.Log.Error("listUsecase.SaveSelectionToExistingList error adding providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingListIDKey, listID),
			zap.Error(err),
		)
		uc.notify(ctx, workspaceID, constvars.SeverityError, constvars.ErrClientFailedToAddToList)
		return nil, err
	}

	listName := list.Name
	if listName == "" {
		listName = constvars.AddToListFallbackListName
	}
	uc.completeSave(ctx, workspaceID, fmt.Sprintf(constvars.AddToListSuccessMessageFormat, listName))
	uc.Events.Record(ctx, constvars.EventListProvidersAdded, map[string]interface{}{
		"list_id": listID,
		"count":   len(npis),
	})

	uc.Log.Info("listUsecase.SaveSelectionToExistingList succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingListIDKey, listID),
		zap.Int(constvars.LoggingCountKey, len(npis)),
	)
	return &models.ListSaveResult{List: list, AddedCount: len(npis)}, nil
}

// resolveNPIs returns the explicit NPIs, or the workspace selection when none
// were given, with duplicates removed.
func (uc *listUsecase) resolveNPIs(ctx context.Context, workspaceID string, npis []string) ([]string, error) {
	if len(npis) == 0 {
		workspace, err := uc.WorkspaceService.Load(ctx, workspaceID)
		if err != nil {
			return nil, err
		}
		npis = workspace.SelectedNPIs()
	}

	unique := make([]string, 0, len(npis))
	seen := make(map[string]bool, len(npis))
	for _, npi := range npis {
		npi = strings.TrimSpace(npi)
		if npi == "" || seen[npi] {
			continue
		}
		seen[npi] = true
		unique = append(unique, npi)
	}

	if len(unique) == 0 {
		uc.notify(ctx, workspaceID, constvars.SeverityWarning, constvars.ErrClientNoProvidersSelected)
		return nil, exceptions.ErrEmptySelection()
	}
	return unique, nil
}

// completeSave clears the selection, announces the save and refreshes the
// list index so provider counts are current.
func (uc *listUsecase) completeSave(ctx context.Context, workspaceID, message string) {
	lists, err := uc.LeadsAPI.FetchLists(ctx)
	if err != nil {
		uc.Log.Warn("listUsecase.completeSave could not refresh list index",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}

	_, err = uc.WorkspaceService.Update(utils.DetachContext(ctx), workspaceID, func(workspace *models.Workspace) error {
		workspace.ClearSelection()
		if lists != nil {
			workspace.Lists = lists
			workspace.ListsLoaded = true
		}
		workspace.Notify(constvars.SeveritySuccess, message)
		return nil
	})
	if err != nil {
		utils.LogError(uc.Log, err)
	}
}

func (uc *listUsecase) refreshLists(ctx context.Context, workspaceID string) {
	lists, err := uc.LeadsAPI.FetchLists(ctx)
	if err != nil {
		return
	}
	_, err = uc.WorkspaceService.Update(utils.DetachContext(ctx), workspaceID, func(workspace *models.Workspace) error {
		workspace.Lists = lists
		workspace.ListsLoaded = true
		return nil
	})
	if err != nil {
		utils.LogError(uc.Log, err)
	}
}

func (uc *listUsecase) notify(ctx context.Context, workspaceID, severity, message string) {
	_, err := uc.WorkspaceService.Update(utils.DetachContext(ctx), workspaceID, func(workspace *models.Workspace) error {
		workspace.Notify(severity, message)
		return nil
	})
	if err != nil {
		uc.Log.Warn("listUsecase.notify error storing notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func findList(lists []models.List, listID string) *models.List {
	for i := range lists {
		if lists[i].ID == listID {
			return &lists[i]
		}
	}
	return nil
}
