package models

import "time"

// maxPendingNotifications bounds the queue for callers that never render it.
const maxPendingNotifications = 20

const (
	WorkspaceViewSearch = "search"
	WorkspaceViewLists  = "lists"
	WorkspaceViewList   = "list"
)

// Workspace is the per visitor state of the leads tool: search results, the
// row selection, the lists index and the list currently being browsed.
type Workspace struct {
	ID            string          `json:"id"`
	ActiveView    string          `json:"active_view"`
	Filter        ProviderFilter  `json:"filter"`
	HasSearched   bool            `json:"has_searched"`
	Results       []Provider      `json:"results"`
	Selection     map[string]bool `json:"selection"`
	Lists         []List          `json:"lists"`
	ListsLoaded   bool            `json:"lists_loaded"`
	CurrentList   *List           `json:"current_list,omitempty"`
	ListProviders []Provider      `json:"list_providers"`
	EmailLookups  map[string]bool `json:"email_lookups"`
	Notifications []Notification  `json:"notifications"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewWorkspace(id string) *Workspace {
	return &Workspace{
		ID:           id,
		ActiveView:   WorkspaceViewSearch,
		Selection:    make(map[string]bool),
		EmailLookups: make(map[string]bool),
	}
}

// Normalize restores the maps a decoded workspace may lack.
func (w *Workspace) Normalize() {
	if w.Selection == nil {
		w.Selection = make(map[string]bool)
	}
	if w.EmailLookups == nil {
		w.EmailLookups = make(map[string]bool)
	}
	if w.ActiveView == "" {
		w.ActiveView = WorkspaceViewSearch
	}
}

// ActiveProviders returns the rows of the table currently on screen.
func (w *Workspace) ActiveProviders() []Provider {
	if w.ActiveView == WorkspaceViewList {
		return w.ListProviders
	}
	return w.Results
}

// SwitchView makes view the active one. The selection only applies to the
// table it was made on, so it is cleared when the table on screen changes.
func (w *Workspace) SwitchView(view string) {
	if (w.ActiveView == WorkspaceViewList) != (view == WorkspaceViewList) {
		w.ClearSelection()
	}
	w.ActiveView = view
}

func (w *Workspace) SetSelected(npi string, selected bool) {
	if npi == "" {
		return
	}
	if selected {
		w.Selection[npi] = true
		return
	}
	delete(w.Selection, npi)
}

func (w *Workspace) SelectAll(providers []Provider) {
	for _, provider := range providers {
		w.SetSelected(provider.NPI.String(), true)
	}
}

func (w *Workspace) DeselectAll(providers []Provider) {
	for _, provider := range providers {
		delete(w.Selection, provider.NPI.String())
	}
}

func (w *Workspace) ClearSelection() {
	w.Selection = make(map[string]bool)
}

func (w *Workspace) IsSelected(npi string) bool {
	return w.Selection[npi]
}

// SelectedProviders returns the selected rows of the active table in display order.
func (w *Workspace) SelectedProviders() []Provider {
	active := w.ActiveProviders()
	selected := make([]Provider, 0, len(w.Selection))
	seen := make(map[string]bool, len(w.Selection))
	for _, provider := range active {
		npi := provider.NPI.String()
		if w.Selection[npi] && !seen[npi] {
			seen[npi] = true
			selected = append(selected, provider)
		}
	}
	return selected
}

func (w *Workspace) SelectedNPIs() []string {
	providers := w.SelectedProviders()
	npis := make([]string, len(providers))
	for i, provider := range providers {
		npis[i] = provider.NPI.String()
	}
	return npis
}

// FindProvider looks the NPI up in the search results first, then in the
// providers of the list being browsed.
func (w *Workspace) FindProvider(npi string) (*Provider, bool) {
	for i := range w.Results {
		if w.Results[i].NPI.String() == npi {
			return &w.Results[i], true
		}
	}
	for i := range w.ListProviders {
		if w.ListProviders[i].NPI.String() == npi {
			return &w.ListProviders[i], true
		}
	}
	return nil, false
}

// ApplyEmail stores email on every row carrying npi and leaves all other rows
// untouched. It returns the number of rows updated.
func (w *Workspace) ApplyEmail(npi, email string) int {
	updated := 0
	for i := range w.Results {
		if w.Results[i].NPI.String() == npi {
			w.Results[i].Basic.Email = email
			updated++
		}
	}
	for i := range w.ListProviders {
		if w.ListProviders[i].NPI.String() == npi {
			w.ListProviders[i].Basic.Email = email
			updated++
		}
	}
	return updated
}

func (w *Workspace) SetEmailLookup(npi string, inFlight bool) {
	if inFlight {
		w.EmailLookups[npi] = true
		return
	}
	delete(w.EmailLookups, npi)
}

func (w *Workspace) IsEmailLookupInFlight(npi string) bool {
	return w.EmailLookups[npi]
}

func (w *Workspace) FindList(listID string) (*List, bool) {
	for i := range w.Lists {
		if w.Lists[i].ID == listID {
			return &w.Lists[i], true
		}
	}
	return nil, false
}

func (w *Workspace) Notify(severity, message string) {
	w.Notifications = append(w.Notifications, Notification{Severity: severity, Message: message})
	if len(w.Notifications) > maxPendingNotifications {
		w.Notifications = w.Notifications[len(w.Notifications)-maxPendingNotifications:]
	}
}

// DrainNotifications returns pending notifications and forgets them, so each
// is shown once.
func (w *Workspace) DrainNotifications() []Notification {
	notifications := w.Notifications
	w.Notifications = nil
	return notifications
}
