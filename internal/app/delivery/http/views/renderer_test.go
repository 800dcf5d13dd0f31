package views

import (
	"math"
	"net/http"
	"net/http/httptest"
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	t.Run("Search page shows notifications and rows", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := renderer.Render(rr, http.StatusOK, PageSearch, &PageData{
			Title:         "Search",
			ActiveView:    models.WorkspaceViewSearch,
			ReturnTo:      "/",
			Notifications: []models.Notification{{Severity: constvars.SeveritySuccess, Message: "Email found for Ada Lovelace!"}},
			Options:       DefaultFilterOptions,
			HasSearched:   true,
			Table: &Table{
				Rows:       []responses.ProviderRow{{NPI: "1111111111", Name: "Ada Lovelace", Selected: true}},
				Pagination: &responses.Pagination{Total: 1, Page: 1, PageSize: 10},
				BasePath:   "/",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.MIMETextHTMLCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))
		assert.Contains(t, rr.Body.String(), "Email found for Ada Lovelace!")
		assert.Contains(t, rr.Body.String(), "Ada Lovelace")
	})

	t.Run("Detail page without a provider shows the not found message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := renderer.Render(rr, http.StatusNotFound, PageDetail, &PageData{
			Title:           "Provider",
			ReturnTo:        "/",
			NotFoundMessage: constvars.ErrClientProviderNotFound,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientProviderNotFound)
	})

	t.Run("Unknown page fails before writing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := renderer.Render(rr, http.StatusOK, "missing", &PageData{})

		assert.Error(t, err)
		assert.Empty(t, rr.Body.String())
	})
}

func TestTablePaging(t *testing.T) {
	table := &Table{Pagination: &responses.Pagination{Total: 25, Page: 2, PageSize: 10}}
	assert.True(t, table.HasPrev())
	assert.True(t, table.HasNext())

	table.Pagination.Page = 3
	assert.False(t, table.HasNext())

	table.Pagination.Page = math.MaxInt64 / 5
	assert.False(t, table.HasNext())
	assert.False(t, table.AllRowsSelected())
}
