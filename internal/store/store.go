package store

import (
	"sort"
	"strings"

	"userdeck/internal/models"
)

// Filters holds the active search term and sort settings.
type Filters struct {
	Search    string
	SortBy    string
	SortOrder string
}

// Pagination mirrors the remote collection's paging window.
// TotalPages is always recomputed together with TotalItems.
type Pagination struct {
	CurrentPage  int
	ItemsPerPage int
	TotalItems   int
	TotalPages   int
}

// UIState is the set of independent boolean flags the views key off.
type UIState struct {
	IsLoading       bool
	IsCreating      bool
	IsUpdating      bool
	IsDeleting      bool
	IsSearching     bool
	ShowCreateModal bool
	ShowEditModal   bool
}

// State is the single source of truth for the console. It is an owned
// value: all mutation goes through Reduce, which returns the next state
// without touching the old one.
type State struct {
	// Users holds exactly the most recently fulfilled list or search
	// page, in canonical order (lexicographic by name).
	Users    []models.User
	Selected *models.User
	Filters  Filters
	Pagination
	UI  UIState
	Err string

	// Latest issued fetch sequence per category. Fulfillments carrying
	// an older sequence are dropped so an out-of-order response can
	// never overwrite newer data.
	listSeq   uint64
	searchSeq uint64
}

// NewState builds the initial session state.
func NewState(pageSize int) State {
	return State{
		Filters: Filters{SortBy: "name", SortOrder: "asc"},
		Pagination: Pagination{
			CurrentPage:  1,
			ItemsPerPage: pageSize,
		},
	}
}

// Intent is a named request to transition state; the only mutation
// surface the store exposes.
type Intent interface{ intent() }

type (
	// ListRequested marks fetch seq as the authoritative list request.
	ListRequested struct{ Seq uint64 }
	// ListSucceeded replaces the collection with one server page.
	ListSucceeded struct {
		Seq        uint64
		Users      []models.User
		TotalCount int
		Page       int
		Limit      int
	}
	ListFailed struct {
		Seq     uint64
		Message string
	}

	SearchRequested struct{ Seq uint64 }
	SearchSucceeded struct {
		Seq        uint64
		Users      []models.User
		TotalCount int
		Page       int
		Limit      int
		Term       string
	}
	SearchFailed struct {
		Seq     uint64
		Message string
	}

	CreateRequested struct{}
	CreateSucceeded struct{ User models.User }
	CreateFailed    struct{ Message string }

	UpdateRequested struct{}
	UpdateSucceeded struct{ User models.User }
	UpdateFailed    struct{ Message string }

	DeleteRequested struct{}
	DeleteSucceeded struct{ ID int64 }
	DeleteFailed    struct{ Message string }

	SetSelectedUser   struct{ User models.User }
	ClearSelectedUser struct{}
	SetSearchFilter   struct{ Term string }
	SetCurrentPage    struct{ Page int }
	SetItemsPerPage   struct{ Limit int }
	ToggleCreateModal struct{}
	ToggleEditModal   struct{}
	CloseAllModals    struct{}
	ResetFilters      struct{}
)

func (ListRequested) intent()     {}
func (ListSucceeded) intent()     {}
func (ListFailed) intent()        {}
func (SearchRequested) intent()   {}
func (SearchSucceeded) intent()   {}
func (SearchFailed) intent()      {}
func (CreateRequested) intent()   {}
func (CreateSucceeded) intent()   {}
func (CreateFailed) intent()      {}
func (UpdateRequested) intent()   {}
func (UpdateSucceeded) intent()   {}
func (UpdateFailed) intent()      {}
func (DeleteRequested) intent()   {}
func (DeleteSucceeded) intent()   {}
func (DeleteFailed) intent()      {}
func (SetSelectedUser) intent()   {}
func (ClearSelectedUser) intent() {}
func (SetSearchFilter) intent()   {}
func (SetCurrentPage) intent()    {}
func (SetItemsPerPage) intent()   {}
func (ToggleCreateModal) intent() {}
func (ToggleEditModal) intent()   {}
func (CloseAllModals) intent()    {}
func (ResetFilters) intent()      {}

// Reduce derives the next state from the current state and one intent.
// Unrecognized intents return the state unchanged.
func Reduce(s State, in Intent) State {
	switch in := in.(type) {
	case ListRequested:
		s.listSeq = in.Seq
		s.UI.IsLoading = true
		s.Err = ""

	case ListSucceeded:
		if in.Seq != s.listSeq {
			return s // stale response, a newer list fetch was issued
		}
		s.UI.IsLoading = false
		s.Users = setAll(in.Users)
		s.Pagination = Pagination{
			CurrentPage:  in.Page,
			ItemsPerPage: in.Limit,
			TotalItems:   in.TotalCount,
			TotalPages:   ceilDiv(in.TotalCount, in.Limit),
		}

	case ListFailed:
		if in.Seq != s.listSeq {
			return s
		}
		s.UI.IsLoading = false
		s.Err = in.Message

	case SearchRequested:
		s.searchSeq = in.Seq
		s.UI.IsSearching = true
		s.Err = ""

	case SearchSucceeded:
		if in.Seq != s.searchSeq {
			return s
		}
		s.UI.IsSearching = false
		s.Users = setAll(in.Users)
		s.Pagination.TotalItems = in.TotalCount
		s.Pagination.TotalPages = ceilDiv(in.TotalCount, in.Limit)
		s.Pagination.CurrentPage = in.Page
		s.Filters.Search = in.Term

	case SearchFailed:
		if in.Seq != s.searchSeq {
			return s
		}
		s.UI.IsSearching = false
		s.Err = in.Message

	case CreateRequested:
		s.UI.IsCreating = true
		s.Err = ""

	case CreateSucceeded:
		s.UI.IsCreating = false
		s.UI.ShowCreateModal = false
		s.Users = addOne(s.Users, in.User)

	case CreateFailed:
		s.UI.IsCreating = false
		s.Err = in.Message

	case UpdateRequested:
		s.UI.IsUpdating = true
		s.Err = ""

	case UpdateSucceeded:
		s.UI.IsUpdating = false
		s.UI.ShowEditModal = false
		u := in.User
		s.Selected = &u
		s.Users = updateOne(s.Users, in.User)

	case UpdateFailed:
		s.UI.IsUpdating = false
		s.Err = in.Message

	case DeleteRequested:
		s.UI.IsDeleting = true
		s.Err = ""

	case DeleteSucceeded:
		s.UI.IsDeleting = false
		// Removal is gated on the deleted row being the selected one; a
		// successful remote delete of an unselected row stays in the
		// collection. Matches the web console's observed behavior, which
		// is likely unintended. See DESIGN.md.
		if s.Selected != nil && s.Selected.ID == in.ID {
			s.Selected = nil
			s.Users = removeOne(s.Users, in.ID)
		}

	case DeleteFailed:
		s.UI.IsDeleting = false
		s.Err = in.Message

	case SetSelectedUser:
		u := in.User
		s.Selected = &u

	case ClearSelectedUser:
		s.Selected = nil

	case SetSearchFilter:
		s.Filters.Search = in.Term
		s.Pagination.CurrentPage = 1

	case SetCurrentPage:
		if in.Page >= 1 {
			s.Pagination.CurrentPage = in.Page
		}

	case SetItemsPerPage:
		if in.Limit >= 1 {
			s.Pagination.ItemsPerPage = in.Limit
			s.Pagination.CurrentPage = 1
		}

	case ToggleCreateModal:
		s.UI.ShowCreateModal = !s.UI.ShowCreateModal

	case ToggleEditModal:
		s.UI.ShowEditModal = !s.UI.ShowEditModal

	case CloseAllModals:
		s.UI.ShowCreateModal = false
		s.UI.ShowEditModal = false

	case ResetFilters:
		s.Filters = Filters{SortBy: "name", SortOrder: "asc"}
		s.Pagination.CurrentPage = 1
	}

	return s
}

// UserByID looks a record up by identity.
func (s State) UserByID(id int64) (models.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func ceilDiv(total, per int) int {
	if per <= 0 {
		return 0
	}
	return (total + per - 1) / per
}

func sortCanonical(users []models.User) {
	sort.SliceStable(users, func(i, j int) bool {
		return strings.Compare(users[i].Name, users[j].Name) < 0
	})
}

func setAll(users []models.User) []models.User {
	next := make([]models.User, len(users))
	copy(next, users)
	sortCanonical(next)
	return next
}

func addOne(users []models.User, u models.User) []models.User {
	next := make([]models.User, 0, len(users)+1)
	next = append(next, users...)
	next = append(next, u)
	sortCanonical(next)
	return next
}

func updateOne(users []models.User, u models.User) []models.User {
	next := make([]models.User, len(users))
	copy(next, users)
	for i := range next {
		if next[i].ID == u.ID {
			next[i] = u
			break
		}
	}
	sortCanonical(next)
	return next
}

func removeOne(users []models.User, id int64) []models.User {
	next := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			next = append(next, u)
		}
	}
	return next
}
