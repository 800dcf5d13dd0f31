package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"provider-leads-service/internal/app/config"
	"provider-leads-service/internal/app/contracts"
	"provider-leads-service/internal/app/contracts/mocks"
	"provider-leads-service/internal/app/delivery/http/controllers"
	"provider-leads-service/internal/app/delivery/http/middlewares"
	"provider-leads-service/internal/app/delivery/http/views"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/app/services/core/workspace"
	"provider-leads-service/internal/app/services/shared/locker"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/dto/responses"
	"provider-leads-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testWorkspaceID = "0b6f4d2e-8a51-4c3b-9a57-2f1e7f3c9d10"

type testServer struct {
	router           *chi.Mux
	workspaceService contracts.WorkspaceService
	providerUsecase  *mocks.MockProviderUsecase
	selectionUsecase *mocks.MockSelectionUsecase
	listUsecase      *mocks.MockListUsecase
	exportUsecase    *mocks.MockExportUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                 "v1",
			EndpointPrefix:          "api",
			CorsAllowedOrigins:      []string{"*"},
			RequestTimeoutInSeconds: 5,
			PageSize:                10,
			ListPageSize:            15,
		},
		Workspace: config.AppWorkspace{
			TTLInHours: 24,
			CookieName: "leads_workspace",
		},
		Enrichment: config.AppEnrichment{
			LookupRequestsPerMinute:  2,
			LookupBlockTimeInSeconds: 60,
		},
	}

	workspaceService := workspace.NewWorkspaceService(
		workspace.NewWorkspaceMemoryRepository(time.Hour),
		locker.NewLocalLockService(),
		logger,
		5*time.Second,
		10*time.Second,
	)

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	server := &testServer{
		router:           chi.NewRouter(),
		workspaceService: workspaceService,
		providerUsecase:  new(mocks.MockProviderUsecase),
		selectionUsecase: new(mocks.MockSelectionUsecase),
		listUsecase:      new(mocks.MockListUsecase),
		exportUsecase:    new(mocks.MockExportUsecase),
	}

	SetupRoutes(server.router, logger, internalConfig, middlewares.NewMiddlewares(logger, internalConfig), &Controllers{
		Page: controllers.NewPageController(logger, renderer, workspaceService,
			server.providerUsecase, server.selectionUsecase, server.listUsecase, server.exportUsecase, internalConfig),
		Provider:  controllers.NewProviderController(logger, server.providerUsecase, workspaceService, internalConfig),
		Selection: controllers.NewSelectionController(logger, server.selectionUsecase, internalConfig),
		List:      controllers.NewListController(logger, server.listUsecase, internalConfig),
		Export:    controllers.NewExportController(logger, server.exportUsecase, internalConfig),
	})
	return server
}

func (s *testServer) do(method, target string, body []byte, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(constvars.HeaderXWorkspaceID, testWorkspaceID)
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func newProvider(npi, firstName, lastName string) models.Provider {
	return models.Provider{
		NPI:             models.NPI(npi),
		EnumerationType: constvars.EnumerationTypeIndividual,
		Basic: models.ProviderBasic{
			FirstName: firstName,
			LastName:  lastName,
		},
	}
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":true`)
}

func TestProviderRoutes(t *testing.T) {
	t.Run("Search serves the first page of results", func(t *testing.T) {
		server := newTestServer(t)
		result := models.NewWorkspace(testWorkspaceID)
		result.HasSearched = true
		result.Filter = models.ProviderFilter{State: "NY"}
		result.Results = []models.Provider{
			newProvider("1111111111", "Ada", "Lovelace"),
			newProvider("2222222222", "Alan", "Turing"),
		}
		server.providerUsecase.On("Search", mock.Anything, testWorkspaceID, mock.AnythingOfType("models.ProviderFilter")).
			Return(result, nil).Once()

		rr := server.do("GET", "/api/v1/providers?state=NY&page_size=1", nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		var response struct {
			Success    bool                      `json:"success"`
			Data       responses.SearchProviders `json:"data"`
			Pagination *responses.Pagination     `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Len(t, response.Data.Rows, 1)
		assert.Equal(t, 2, response.Pagination.Total)
		server.providerUsecase.AssertExpectations(t)
	})

	t.Run("Page far past the end is empty", func(t *testing.T) {
		server := newTestServer(t)
		result := models.NewWorkspace(testWorkspaceID)
		result.HasSearched = true
		result.Results = []models.Provider{newProvider("1111111111", "Ada", "Lovelace")}
		server.providerUsecase.On("Search", mock.Anything, testWorkspaceID, mock.AnythingOfType("models.ProviderFilter")).
			Return(result, nil).Once()

		rr := server.do("GET", "/api/v1/providers?state=NY&page=1844674407370955162&page_size=10", nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		var response struct {
			Data responses.SearchProviders `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Empty(t, response.Data.Rows)
	})

	t.Run("Unknown provider is not found", func(t *testing.T) {
		server := newTestServer(t)
		server.providerUsecase.On("GetDetail", mock.Anything, testWorkspaceID, "9999999999").
			Return(nil, exceptions.ErrProviderNotInWorkspace("9999999999")).Once()

		rr := server.do("GET", "/api/v1/providers/9999999999", nil, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientProviderNotFound)
	})

	t.Run("Email lookups are rate limited per client", func(t *testing.T) {
		server := newTestServer(t)
		server.providerUsecase.On("FindEmail", mock.Anything, testWorkspaceID, "1111111111").
			Return(&models.EmailLookupResult{NPI: "1111111111", Email: "ada@example.com", Found: true}, nil)

		assert.Equal(t, http.StatusOK, server.do("POST", "/api/v1/providers/1111111111/find-email", nil, "").Code)
		assert.Equal(t, http.StatusOK, server.do("POST", "/api/v1/providers/1111111111/find-email", nil, "").Code)
		assert.Equal(t, http.StatusTooManyRequests, server.do("POST", "/api/v1/providers/1111111111/find-email", nil, "").Code)
		server.providerUsecase.AssertNumberOfCalls(t, "FindEmail", 2)
	})

	t.Run("Bulk lookup rejects malformed NPIs", func(t *testing.T) {
		server := newTestServer(t)

		rr := server.do("POST", "/api/v1/providers/find-emails", []byte(`{"npis":["abc"]}`), constvars.MIMEApplicationJSON)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		server.providerUsecase.AssertNotCalled(t, "FindEmails", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWorkspaceHeaderMustBeValid(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/v1/lists", nil)
	req.Header.Set(constvars.HeaderXWorkspaceID, "not-a-uuid")
	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	server.listUsecase.AssertNotCalled(t, "LoadLists", mock.Anything, mock.Anything)
}

func TestSelectionRoutes(t *testing.T) {
	t.Run("Invalid action is rejected", func(t *testing.T) {
		server := newTestServer(t)

		rr := server.do("PUT", "/api/v1/selection", []byte(`{"action":"invert"}`), constvars.MIMEApplicationJSON)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		server.selectionUsecase.AssertNotCalled(t, "UpdateSelection", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Partial save answers multi status", func(t *testing.T) {
		server := newTestServer(t)
		result := &models.ListSaveResult{List: models.List{ID: "list-1", Name: "Q3"}, Created: true}
		server.listUsecase.On("SaveSelectionToNewList", mock.Anything, testWorkspaceID, "Q3", mock.Anything).
			Return(result, exceptions.ErrListPartiallySaved(nil, "list-1", "Q3")).Once()

		rr := server.do("POST", "/api/v1/selection/save", []byte(`{"listName":"Q3"}`), constvars.MIMEApplicationJSON)

		assert.Equal(t, http.StatusMultiStatus, rr.Code)
		assert.Contains(t, rr.Body.String(), `"list-1"`)
		server.listUsecase.AssertExpectations(t)
	})
}

func TestExportRoutes(t *testing.T) {
	server := newTestServer(t)
	server.exportUsecase.On("ExportSelection", mock.Anything, testWorkspaceID).
		Return(&models.CSVExport{Filename: "selected_providers.csv", Content: []byte("NPI\r\n"), RowCount: 0}, nil).Once()

	rr := server.do("GET", "/api/v1/exports/selection", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get(constvars.HeaderContentDisposition), "selected_providers.csv")
	assert.Equal(t, "NPI\r\n", rr.Body.String())
}

func TestPageRoutes(t *testing.T) {
	formContentType := "application/x-www-form-urlencoded"

	t.Run("Home renders the search page", func(t *testing.T) {
		server := newTestServer(t)

		rr := server.do("GET", "/", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Find providers")
	})

	t.Run("Home tolerates page numbers far past the end", func(t *testing.T) {
		server := newTestServer(t)
		_, err := server.workspaceService.Update(context.Background(), testWorkspaceID, func(ws *models.Workspace) error {
			ws.HasSearched = true
			ws.ListsLoaded = true
			ws.Results = []models.Provider{newProvider("1111111111", "Ada", "Lovelace")}
			return nil
		})
		require.NoError(t, err)

		rr := server.do("GET", "/?page=1844674407370955162&page_size=10", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Returning home drops the list selection", func(t *testing.T) {
		server := newTestServer(t)
		_, err := server.workspaceService.Update(context.Background(), testWorkspaceID, func(ws *models.Workspace) error {
			ws.ActiveView = models.WorkspaceViewList
			ws.ListsLoaded = true
			ws.ListProviders = []models.Provider{newProvider("2222222222", "Alan", "Turing")}
			ws.SetSelected("2222222222", true)
			return nil
		})
		require.NoError(t, err)

		rr := server.do("GET", "/", nil, "")

		require.Equal(t, http.StatusOK, rr.Code)
		ws, err := server.workspaceService.Load(context.Background(), testWorkspaceID)
		require.NoError(t, err)
		assert.Equal(t, models.WorkspaceViewSearch, ws.ActiveView)
		assert.Empty(t, ws.Selection)
	})

	t.Run("Search form redirects home", func(t *testing.T) {
		server := newTestServer(t)
		server.providerUsecase.On("Search", mock.Anything, testWorkspaceID, mock.AnythingOfType("models.ProviderFilter")).
			Return(models.NewWorkspace(testWorkspaceID), nil).Once()

		form := url.Values{"state": {"NY"}}
		rr := server.do("POST", "/search", []byte(form.Encode()), formContentType)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))
	})

	t.Run("Create list form ignores foreign return paths", func(t *testing.T) {
		server := newTestServer(t)
		server.listUsecase.On("CreateList", mock.Anything, testWorkspaceID, "Q3").
			Return(&models.List{ID: "list-1", Name: "Q3"}, nil).Once()

		form := url.Values{"mode": {"create"}, "list_name": {"Q3"}, "return_to": {"//evil.example.com"}}
		rr := server.do("POST", "/lists", []byte(form.Encode()), formContentType)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/lists", rr.Header().Get("Location"))
		server.listUsecase.AssertExpectations(t)
	})

	t.Run("Unknown provider page is not found", func(t *testing.T) {
		server := newTestServer(t)
		server.providerUsecase.On("GetDetail", mock.Anything, testWorkspaceID, "9999999999").
			Return(nil, exceptions.ErrProviderNotInWorkspace("9999999999")).Once()

		rr := server.do("GET", "/provider/9999999999", nil, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.True(t, strings.Contains(rr.Body.String(), constvars.ErrClientProviderNotFound))
	})
}
