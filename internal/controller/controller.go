// Package controller plans remote fetches for the console: which
// category to issue (plain list or active search), with which paging
// parameters, and under which sequence number. The sequence numbers are
// what lets the reducer reject responses that resolve out of order.
package controller

import (
	"time"

	"userdeck/internal/store"
)

// FetchCategory separates the two authoritative fetch streams.
type FetchCategory int

const (
	FetchList FetchCategory = iota
	FetchSearch
)

// FetchPlan describes one fetch to perform. The Seq ties the eventual
// outcome back to the store's staleness guard.
type FetchPlan struct {
	Category FetchCategory
	Seq      uint64
	Term     string
	Page     int
	Limit    int
}

// RequestIntent is the intent to reduce when the planned fetch is
// dispatched.
func (p FetchPlan) RequestIntent() store.Intent {
	if p.Category == FetchSearch {
		return store.SearchRequested{Seq: p.Seq}
	}
	return store.ListRequested{Seq: p.Seq}
}

// Planner owns the monotonic fetch counters and the debounce
// generation for search-as-you-type. One planner drives one session.
type Planner struct {
	listSeq     uint64
	searchSeq   uint64
	debounceGen uint64
	debounce    time.Duration
}

func NewPlanner(debounce time.Duration) *Planner {
	return &Planner{debounce: debounce}
}

// PlanList issues a fresh list fetch for page.
func (pl *Planner) PlanList(page, limit int) FetchPlan {
	pl.listSeq++
	return FetchPlan{Category: FetchList, Seq: pl.listSeq, Page: page, Limit: limit}
}

// PlanSearch issues a fresh search fetch for term.
func (pl *Planner) PlanSearch(term string, page, limit int) FetchPlan {
	pl.searchSeq++
	return FetchPlan{Category: FetchSearch, Seq: pl.searchSeq, Term: term, Page: page, Limit: limit}
}

// PlanPageChange targets page within whichever collection view is
// active: the filtered set while a search term is live, the plain
// listing otherwise.
func (pl *Planner) PlanPageChange(s store.State, page int) FetchPlan {
	if s.Filters.Search != "" {
		return pl.PlanSearch(s.Filters.Search, page, s.Pagination.ItemsPerPage)
	}
	return pl.PlanList(page, s.Pagination.ItemsPerPage)
}

// PlanPageSizeChange resets to the first page under the new limit.
func (pl *Planner) PlanPageSizeChange(s store.State, limit int) FetchPlan {
	if s.Filters.Search != "" {
		return pl.PlanSearch(s.Filters.Search, 1, limit)
	}
	return pl.PlanList(1, limit)
}

// PlanDebouncedSearch is the fetch for a search term that survived the
// quiet window. Term changes always restart from page 1.
func (pl *Planner) PlanDebouncedSearch(s store.State) FetchPlan {
	return pl.PlanSearch(s.Filters.Search, 1, s.Pagination.ItemsPerPage)
}

// PlanRefresh reissues whichever fetch is currently active, for the
// current page.
func (pl *Planner) PlanRefresh(s store.State) FetchPlan {
	if s.Filters.Search != "" {
		return pl.PlanSearch(s.Filters.Search, s.Pagination.CurrentPage, s.Pagination.ItemsPerPage)
	}
	return pl.PlanList(s.Pagination.CurrentPage, s.Pagination.ItemsPerPage)
}

// PlanReset is the unfiltered first page, used after filters clear.
func (pl *Planner) PlanReset(s store.State) FetchPlan {
	return pl.PlanList(1, s.Pagination.ItemsPerPage)
}

// NoteKeystroke registers one search-box keystroke and returns the
// debounce generation plus the quiet window to wait out. Each keystroke
// supersedes any pending one: an older generation must not fire.
func (pl *Planner) NoteKeystroke() (uint64, time.Duration) {
	pl.debounceGen++
	return pl.debounceGen, pl.debounce
}

// DebounceCurrent reports whether gen is still the latest keystroke,
// i.e. whether its timer expiring should trigger a fetch.
func (pl *Planner) DebounceCurrent(gen uint64) bool {
	return gen == pl.debounceGen
}
