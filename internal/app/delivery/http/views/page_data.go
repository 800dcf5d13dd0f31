package views

import (
	"provider-leads-service/internal/app/models"
	"provider-leads-service/internal/pkg/constvars"
	"provider-leads-service/internal/pkg/dto/responses"
	"provider-leads-service/internal/pkg/utils"
)

type FilterOptions struct {
	Specialties     []string
	States          []string
	ProviderTypes   []string
	AddressPurposes []string
}

var DefaultFilterOptions = FilterOptions{
	Specialties:     constvars.FilterSpecialties,
	States:          constvars.FilterStates,
	ProviderTypes:   constvars.FilterProviderTypes,
	AddressPurposes: constvars.FilterAddressPurpose,
}

// Table is a page of provider rows with the state needed to link between pages.
type Table struct {
	Rows          []responses.ProviderRow
	Pagination    *responses.Pagination
	Search        string
	SelectedCount int
	// BasePath is the page the table lives on, used for paging links.
	BasePath string
}

func (t *Table) HasPrev() bool {
	return t.Pagination != nil && t.Pagination.Page > 1
}

func (t *Table) HasNext() bool {
	return t.Pagination != nil && utils.HasNextPage(t.Pagination.Total, t.Pagination.Page, t.Pagination.PageSize)
}

func (t *Table) AllRowsSelected() bool {
	if len(t.Rows) == 0 {
		return false
	}
	for _, row := range t.Rows {
		if !row.Selected {
			return false
		}
	}
	return true
}

type PageData struct {
	Title         string
	ActiveView    string
	ReturnTo      string
	Notifications []models.Notification

	Filter      models.ProviderFilter
	Badges      []models.FilterField
	Options     FilterOptions
	HasSearched bool
	Table       *Table

	Lists       []models.List
	ListsLoaded bool
	CurrentList *models.List

	Detail          *responses.ProviderDetail
	NotFoundMessage string
}
