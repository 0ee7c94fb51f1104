package store

import (
	"net/url"

	"userdeck/internal/models"
)

// PaginationInfo is everything a pager widget needs to render itself.
type PaginationInfo struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
	StartItem    int
	EndItem      int
	HasNextPage  bool
	HasPrevPage  bool
	IsFirstPage  bool
	IsLastPage   bool
}

// PaginationInfo projects the paging window into display terms.
func (s State) PaginationInfo() PaginationInfo {
	p := s.Pagination

	startItem := 0
	if p.TotalItems > 0 {
		startItem = (p.CurrentPage-1)*p.ItemsPerPage + 1
	}
	endItem := p.CurrentPage * p.ItemsPerPage
	if endItem > p.TotalItems {
		endItem = p.TotalItems
	}

	return PaginationInfo{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
		StartItem:    startItem,
		EndItem:      endItem,
		HasNextPage:  p.CurrentPage < p.TotalPages,
		HasPrevPage:  p.CurrentPage > 1,
		IsFirstPage:  p.CurrentPage == 1,
		IsLastPage:   p.CurrentPage == p.TotalPages,
	}
}

// LoadingStates aggregates the operation flags for the views.
type LoadingStates struct {
	IsAnyLoading    bool
	IsLoading       bool
	IsCreating      bool
	IsUpdating      bool
	IsDeleting      bool
	IsSearching     bool
	ShowCreateModal bool
	ShowEditModal   bool
}

func (s State) LoadingStates() LoadingStates {
	ui := s.UI
	return LoadingStates{
		IsAnyLoading:    ui.IsLoading || ui.IsCreating || ui.IsUpdating || ui.IsDeleting || ui.IsSearching,
		IsLoading:       ui.IsLoading,
		IsCreating:      ui.IsCreating,
		IsUpdating:      ui.IsUpdating,
		IsDeleting:      ui.IsDeleting,
		IsSearching:     ui.IsSearching,
		ShowCreateModal: ui.ShowCreateModal,
		ShowEditModal:   ui.ShowEditModal,
	}
}

// SearchResults summarizes the active search for the result banner.
type SearchResults struct {
	HasSearchTerm bool
	ResultCount   int
	HasResults    bool
	SearchTerm    string
}

func (s State) SearchResults() SearchResults {
	count := len(s.Users)
	return SearchResults{
		HasSearchTerm: len(s.Filters.Search) > 0,
		ResultCount:   count,
		HasResults:    count > 0,
		SearchTerm:    s.Filters.Search,
	}
}

// PaginatedUsers returns the collection in canonical order. The store
// already holds exactly one page, so no further slicing happens here.
func (s State) PaginatedUsers() []models.User {
	out := make([]models.User, len(s.Users))
	copy(out, s.Users)
	return out
}

// CompanyFilter narrows display rows by company presence.
type CompanyFilter string

const (
	CompanyFilterAll  CompanyFilter = "all"
	CompanyFilterHas  CompanyFilter = "has-company"
	CompanyFilterNone CompanyFilter = "no-company"
)

// Next cycles through the three filter settings.
func (f CompanyFilter) Next() CompanyFilter {
	switch f {
	case CompanyFilterAll:
		return CompanyFilterHas
	case CompanyFilterHas:
		return CompanyFilterNone
	default:
		return CompanyFilterAll
	}
}

// DisplayRow is one listing row with display fallbacks applied.
type DisplayRow struct {
	User        models.User
	Location    string
	CompanyName string
	Phone       string
	Website     string
	AvatarURL   string
}

// DisplayRows projects the page into listing rows: location from the
// address, "N/A" fallbacks for the optional columns, and an avatar URL
// derived from the name. The filter is applied after projection so
// "no-company" also catches rows that only fell back to "N/A".
func (s State) DisplayRows(filter CompanyFilter) []DisplayRow {
	rows := make([]DisplayRow, 0, len(s.Users))
	for _, u := range s.Users {
		row := DisplayRow{
			User:        u,
			Location:    "Unknown",
			CompanyName: fallback(u.Company.Name),
			Phone:       fallback(u.Phone),
			Website:     fallback(u.Website),
			AvatarURL:   avatarURL(u.Name),
		}
		if u.Address.City != "" {
			row.Location = u.Address.City + ", " + u.Address.Zipcode
		}

		hasCompany := row.CompanyName != "N/A"
		if filter == CompanyFilterHas && !hasCompany {
			continue
		}
		if filter == CompanyFilterNone && hasCompany {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func fallback(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=7c3aed&color=fff"
}
