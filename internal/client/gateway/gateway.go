package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"userdeck/internal/config"
	"userdeck/internal/models"
)

// NetworkError is returned for any transport failure or non-2xx status
// from the remote collection.
type NetworkError struct {
	Op      string
	Status  int
	Message string
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Page is one server page of the collection.
type Page struct {
	Users      []models.User
	TotalCount int
}

// SearchPage is one page of a client-side filtered search.
type SearchPage struct {
	Users      []models.User
	TotalCount int
	Page       int
	Limit      int
	Term       string
}

// Client wraps the remote user collection. It has no mutable state
// beyond the counter that mints local ids for created records.
type Client struct {
	http    *http.Client
	baseURL string
	log     zerolog.Logger
	lastID  atomic.Int64
}

// New builds a client against cfg.APIBaseURL.
func New(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		log:     log.With().Str("component", "gateway").Logger(),
	}
}

// ListPage fetches one server page. The total count comes from the
// X-Total-Count header; when the header is missing or unparsable the
// body length is used instead.
func (c *Client) ListPage(ctx context.Context, page, limit int) (*Page, error) {
	q := url.Values{}
	q.Set("_page", strconv.Itoa(page))
	q.Set("_limit", strconv.Itoa(limit))

	var users []models.User
	header, err := c.do(ctx, "fetch users", http.MethodGet, "/users?"+q.Encode(), nil, &users)
	if err != nil {
		return nil, err
	}

	total := len(users)
	if v, convErr := strconv.Atoi(header.Get("X-Total-Count")); convErr == nil {
		total = v
	}
	return &Page{Users: users, TotalCount: total}, nil
}

// SearchAll fetches the whole collection, filters it client-side by a
// case-insensitive substring match across the searchable fields, then
// slices out the requested page. TotalCount is the full match count.
func (c *Client) SearchAll(ctx context.Context, term string, page, limit int) (*SearchPage, error) {
	var all []models.User
	if _, err := c.do(ctx, "search users", http.MethodGet, "/users", nil, &all); err != nil {
		return nil, err
	}

	var matched []models.User
	for _, u := range all {
		if u.Matches(term) {
			matched = append(matched, u)
		}
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return &SearchPage{
		Users:      matched[start:end],
		TotalCount: len(matched),
		Page:       page,
		Limit:      limit,
		Term:       term,
	}, nil
}

// Create posts the payload and returns the echoed record with a freshly
// minted local id. The remote demo service does not persist creates, so
// any id it echoes back is discarded.
func (c *Client) Create(ctx context.Context, data models.User) (*models.User, error) {
	var created models.User
	if _, err := c.do(ctx, "create user", http.MethodPost, "/users", data, &created); err != nil {
		return nil, err
	}
	created.ID = c.nextID()
	return &created, nil
}

// Update puts the payload for id. The result's id is forced back to the
// input id: the remote echo is unreliable for locally minted ids.
func (c *Client) Update(ctx context.Context, id int64, data models.User) (*models.User, error) {
	var updated models.User
	path := fmt.Sprintf("/users/%d", id)
	if _, err := c.do(ctx, "update user", http.MethodPut, path, data, &updated); err != nil {
		return nil, err
	}
	updated.ID = id
	return &updated, nil
}

// Remove deletes the record with id and returns the id on success.
func (c *Client) Remove(ctx context.Context, id int64) (int64, error) {
	path := fmt.Sprintf("/users/%d", id)
	if _, err := c.do(ctx, "delete user", http.MethodDelete, path, nil, nil); err != nil {
		return 0, err
	}
	return id, nil
}

// nextID mints a locally unique id. It starts from the current clock
// and bumps by one whenever two creates land in the same millisecond.
func (c *Client) nextID() int64 {
	for {
		last := c.lastID.Load()
		next := time.Now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if c.lastID.CompareAndSwap(last, next) {
			return next
		}
	}
}

// do runs one request and decodes a JSON body into out when out is
// non-nil. Every call gets a correlation id for the log line. A non-2xx
// status or transport failure comes back as *NetworkError.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (http.Header, error) {
	reqID := uuid.NewString()
	start := time.Now()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &NetworkError{Op: op, Message: fmt.Sprintf("encode payload: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &NetworkError{Op: op, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("request_id", reqID).Str("method", method).Str("path", path).Msg("request failed")
		return nil, &NetworkError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{Op: op, Status: resp.StatusCode, Message: "unexpected status from remote"}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, &NetworkError{Op: op, Message: fmt.Sprintf("decode response: %v", err)}
		}
	}
	return resp.Header, nil
}
