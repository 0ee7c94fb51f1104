package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdeck/internal/config"
	"userdeck/internal/models"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&config.Config{APIBaseURL: srv.URL, HTTPTimeout: 2 * time.Second}, zerolog.Nop())
}

var fixtureUsers = []models.User{
	{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz",
		Phone: "1-770-736-8031", Website: "hildegard.org",
		Company: models.Company{Name: "Romaguera-Crona"}},
	{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv",
		Company: models.Company{Name: "Deckow-Crist"}},
	{ID: 3, Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net",
		Company: models.Company{Name: "Romaguera-Jacobson"}},
}

func TestListPage_UsesTotalCountHeader(t *testing.T) {
	var gotPage, gotLimit string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("_page")
		gotLimit = r.URL.Query().Get("_limit")
		w.Header().Set("X-Total-Count", "23")
		_ = json.NewEncoder(w).Encode(fixtureUsers[:2])
	}))

	page, err := c.ListPage(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "5", gotLimit)
	assert.Equal(t, 23, page.TotalCount)
	assert.Len(t, page.Users, 2)
}

func TestListPage_FallsBackToBodyLength(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(fixtureUsers)
	}))

	page, err := c.ListPage(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
}

func TestListPage_NonSuccessStatus(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.ListPage(context.Background(), 1, 5)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, http.StatusBadGateway, netErr.Status)
	assert.Equal(t, "fetch users", netErr.Op)
}

func TestSearchAll_FiltersAndPaginates(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		_ = json.NewEncoder(w).Encode(fixtureUsers)
	}))

	// "romaguera" matches users 1 and 3 through the company name only.
	res, err := c.SearchAll(context.Background(), "romaguera", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalCount, "total is the full match count, not the page size")
	require.Len(t, res.Users, 1)
	assert.Equal(t, "Leanne Graham", res.Users[0].Name)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 1, res.Limit)
	assert.Equal(t, "romaguera", res.Term)

	second, err := c.SearchAll(context.Background(), "romaguera", 2, 1)
	require.NoError(t, err)
	require.Len(t, second.Users, 1)
	assert.Equal(t, "Clementine Bauch", second.Users[0].Name)
}

func TestSearchAll_PageBeyondMatches(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(fixtureUsers)
	}))

	res, err := c.SearchAll(context.Background(), "leanne", 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalCount)
	assert.Empty(t, res.Users)
}

func TestSearchAll_CaseInsensitiveAcrossFields(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(fixtureUsers)
	}))

	for _, term := range []string{"BRET", "shanna@", "hildegard", "1-770"} {
		res, err := c.SearchAll(context.Background(), term, 1, 10)
		require.NoError(t, err)
		assert.Equalf(t, 1, res.TotalCount, "term %q", term)
	}
}

func TestCreate_AssignsFreshLocalIDs(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var in models.User
		_ = json.NewDecoder(r.Body).Decode(&in)
		in.ID = 11 // remote echo id must be discarded
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	}))

	first, err := c.Create(context.Background(), models.User{Name: "Alice", Email: "a@x.com", Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", first.Name)
	assert.NotEqual(t, int64(11), first.ID)
	assert.Greater(t, first.ID, int64(0))

	second, err := c.Create(context.Background(), models.User{Name: "Bob"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID, "ids are unique and increasing")
}

func TestUpdate_ForcesInputID(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/42", r.URL.Path)
		var in models.User
		_ = json.NewDecoder(r.Body).Decode(&in)
		in.ID = 7 // unreliable remote echo
		_ = json.NewEncoder(w).Encode(in)
	}))

	got, err := c.Update(context.Background(), 42, models.User{Name: "Alice", Website: "alice.dev"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "alice.dev", got.Website)
}

func TestRemove_ReturnsID(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	id, err := c.Remove(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestRemove_NonSuccessStatus(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Remove(context.Background(), 9)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "delete user", netErr.Op)
}

func TestNetworkError_TransportFailure(t *testing.T) {
	c := New(&config.Config{APIBaseURL: "http://127.0.0.1:1", HTTPTimeout: 200 * time.Millisecond}, zerolog.Nop())

	_, err := c.ListPage(context.Background(), 1, 5)
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.Status)
	assert.NotEmpty(t, netErr.Message)
}
