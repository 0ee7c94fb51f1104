package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdeck/internal/models"
)

func stateWithPaging(total, perPage, page int) State {
	s := NewState(perPage)
	s = Reduce(s, ListRequested{Seq: 1})
	s = Reduce(s, ListSucceeded{Seq: 1, TotalCount: total, Page: page, Limit: perPage})
	return s
}

func TestPaginationInfo_MiddlePage(t *testing.T) {
	info := stateWithPaging(23, 5, 3).PaginationInfo()

	assert.Equal(t, 3, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 11, info.StartItem)
	assert.Equal(t, 15, info.EndItem)
	assert.True(t, info.HasNextPage)
	assert.True(t, info.HasPrevPage)
	assert.False(t, info.IsFirstPage)
	assert.False(t, info.IsLastPage)
}

func TestPaginationInfo_Edges(t *testing.T) {
	first := stateWithPaging(23, 5, 1).PaginationInfo()
	assert.Equal(t, 1, first.StartItem)
	assert.Equal(t, 5, first.EndItem)
	assert.True(t, first.IsFirstPage)
	assert.False(t, first.HasPrevPage)

	last := stateWithPaging(23, 5, 5).PaginationInfo()
	assert.Equal(t, 21, last.StartItem)
	assert.Equal(t, 23, last.EndItem, "end item clamps to total")
	assert.True(t, last.IsLastPage)
	assert.False(t, last.HasNextPage)
}

func TestPaginationInfo_EmptyCollection(t *testing.T) {
	info := stateWithPaging(0, 5, 1).PaginationInfo()
	assert.Equal(t, 0, info.StartItem)
	assert.Equal(t, 0, info.EndItem)
	assert.Equal(t, 0, info.TotalPages)
	assert.False(t, info.HasNextPage)
}

func TestPaginationInfo_AllPagesConsistent(t *testing.T) {
	for page := 1; page <= 5; page++ {
		info := stateWithPaging(23, 5, page).PaginationInfo()
		assert.Equal(t, page, info.CurrentPage)
		assert.Equal(t, (page-1)*5+1, info.StartItem)
		want := page * 5
		if want > 23 {
			want = 23
		}
		assert.Equal(t, want, info.EndItem)
	}
}

// IsAnyLoading must be true exactly when at least one of the five
// operation flags is, across all 32 combinations.
func TestLoadingStates_AggregateAllCombinations(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		s := NewState(5)
		s.UI.IsLoading = mask&1 != 0
		s.UI.IsCreating = mask&2 != 0
		s.UI.IsUpdating = mask&4 != 0
		s.UI.IsDeleting = mask&8 != 0
		s.UI.IsSearching = mask&16 != 0

		got := s.LoadingStates()
		assert.Equalf(t, mask != 0, got.IsAnyLoading, "mask=%05b", mask)
		assert.Equal(t, s.UI.IsLoading, got.IsLoading)
		assert.Equal(t, s.UI.IsCreating, got.IsCreating)
		assert.Equal(t, s.UI.IsUpdating, got.IsUpdating)
		assert.Equal(t, s.UI.IsDeleting, got.IsDeleting)
		assert.Equal(t, s.UI.IsSearching, got.IsSearching)
	}
}

func TestLoadingStates_ModalPassthrough(t *testing.T) {
	s := NewState(5)
	s = Reduce(s, ToggleCreateModal{})
	got := s.LoadingStates()
	assert.True(t, got.ShowCreateModal)
	assert.False(t, got.ShowEditModal)
	assert.False(t, got.IsAnyLoading, "modals do not count as loading")
}

func TestSearchResults(t *testing.T) {
	s := NewState(5)
	res := s.SearchResults()
	assert.False(t, res.HasSearchTerm)
	assert.False(t, res.HasResults)

	s = Reduce(s, SearchRequested{Seq: 1})
	s = Reduce(s, SearchSucceeded{Seq: 1, Users: []models.User{user(1, "Leanne")}, TotalCount: 1, Page: 1, Limit: 5, Term: "lea"})

	res = s.SearchResults()
	assert.True(t, res.HasSearchTerm)
	assert.Equal(t, "lea", res.SearchTerm)
	assert.Equal(t, 1, res.ResultCount)
	assert.True(t, res.HasResults)
}

func TestPaginatedUsers_ReturnsCopy(t *testing.T) {
	s := NewState(5)
	s = Reduce(s, ListRequested{Seq: 1})
	s = Reduce(s, ListSucceeded{Seq: 1, Users: []models.User{user(1, "Alice")}, TotalCount: 1, Page: 1, Limit: 5})

	got := s.PaginatedUsers()
	require.Len(t, got, 1)
	got[0].Name = "Mallory"
	assert.Equal(t, "Alice", s.Users[0].Name)
}

func TestDisplayRows_Fallbacks(t *testing.T) {
	s := NewState(5)
	s = Reduce(s, ListRequested{Seq: 1})
	s = Reduce(s, ListSucceeded{Seq: 1, Users: []models.User{
		{
			ID: 1, Name: "Leanne Graham", Phone: "1-770-736-8031",
			Website: "hildegard.org",
			Company: models.Company{Name: "Romaguera-Crona"},
			Address: models.Address{City: "Gwenborough", Zipcode: "92998-3874"},
		},
		{ID: 2, Name: "Bare Bones"},
	}, TotalCount: 2, Page: 1, Limit: 5})

	rows := s.DisplayRows(CompanyFilterAll)
	require.Len(t, rows, 2)

	full := rows[1] // sorted by name: Bare Bones first
	assert.Equal(t, "Gwenborough, 92998-3874", full.Location)
	assert.Equal(t, "Romaguera-Crona", full.CompanyName)
	assert.Contains(t, full.AvatarURL, "Leanne+Graham")

	bare := rows[0]
	assert.Equal(t, "Unknown", bare.Location)
	assert.Equal(t, "N/A", bare.CompanyName)
	assert.Equal(t, "N/A", bare.Phone)
	assert.Equal(t, "N/A", bare.Website)
}

func TestDisplayRows_CompanyFilter(t *testing.T) {
	s := NewState(5)
	s = Reduce(s, ListRequested{Seq: 1})
	s = Reduce(s, ListSucceeded{Seq: 1, Users: []models.User{
		{ID: 1, Name: "Has Co", Company: models.Company{Name: "Acme"}},
		{ID: 2, Name: "No Co"},
	}, TotalCount: 2, Page: 1, Limit: 5})

	has := s.DisplayRows(CompanyFilterHas)
	require.Len(t, has, 1)
	assert.Equal(t, "Has Co", has[0].User.Name)

	none := s.DisplayRows(CompanyFilterNone)
	require.Len(t, none, 1)
	assert.Equal(t, "No Co", none[0].User.Name)

	assert.Len(t, s.DisplayRows(CompanyFilterAll), 2)
}

func TestCompanyFilter_NextCycles(t *testing.T) {
	f := CompanyFilterAll
	seen := map[CompanyFilter]bool{}
	for i := 0; i < 3; i++ {
		seen[f] = true
		f = f.Next()
	}
	assert.Equal(t, CompanyFilterAll, f, "cycle returns to start")
	assert.Len(t, seen, 3)
}

func ExampleState_PaginationInfo() {
	s := stateWithPaging(23, 5, 3)
	info := s.PaginationInfo()
	fmt.Printf("%d-%d of %d\n", info.StartItem, info.EndItem, info.TotalItems)
	// Output: 11-15 of 23
}
