// Package pager holds the catalog screen's state and the transitions that
// drive its fetch lifecycle. Every transition is a value method returning a
// new State, so the screen can be tested without a terminal.
package pager

import (
	"slices"

	"github.com/qyinm/shoptui/types"
)

const (
	// PageSize is the number of products requested per fetch.
	PageSize = 10

	// DefaultErrorMessage is shown when a failure carries no text of its own.
	DefaultErrorMessage = "Failed to load products"
)

// Request describes one page fetch. Token ties the eventual response back to
// the state that issued it.
type Request struct {
	Token  uint64
	Skip   int
	Limit  int
	Append bool
}

// State is the catalog screen's state. The zero value is not ready for use;
// call Mount.
type State struct {
	products       []types.Product
	total          int
	loadingInitial bool
	loadingMore    bool
	errMsg         string
	activeTab      types.Tab

	inflight  uint64
	lastToken uint64
}

// Mount returns a fresh state with the initial load already issued.
func Mount() (State, Request) {
	s := State{products: []types.Product{}, activeTab: types.ForYou}
	s, req, _ := s.FetchPage(0, false)
	return s, req
}

// Remount discards fetched data and reissues the initial load. The active tab
// is kept, and the token sequence continues so a response to any earlier
// request is ignored.
func (s State) Remount() (State, Request) {
	next := State{
		products:  []types.Product{},
		activeTab: s.activeTab,
		lastToken: s.lastToken,
	}
	next, req, _ := next.FetchPage(0, false)
	return next, req
}

// FetchPage marks a fetch of PageSize items at skip as in flight. It refuses,
// returning s unchanged and false, while another fetch is outstanding.
func (s State) FetchPage(skip int, appending bool) (State, Request, bool) {
	if s.Loading() {
		return s, Request{}, false
	}
	if skip < 0 {
		skip = 0
	}

	s.lastToken++
	s.inflight = s.lastToken
	if appending {
		s.loadingMore = true
	} else {
		s.loadingInitial = true
	}

	return s, Request{
		Token:  s.inflight,
		Skip:   skip,
		Limit:  PageSize,
		Append: appending,
	}, true
}

// LoadNextPage issues an append fetch at the end of the collection unless a
// fetch is in flight or every product has been loaded.
func (s State) LoadNextPage() (State, Request, bool) {
	if s.Loading() {
		return s, Request{}, false
	}
	if len(s.products) >= s.total {
		return s, Request{}, false
	}
	return s.FetchPage(len(s.products), true)
}

// Current reports whether req is the fetch this state is waiting on.
func (s State) Current(req Request) bool {
	return s.inflight != 0 && req.Token == s.inflight
}

// Succeeded applies a successful response. Responses to requests other than
// the in-flight one are ignored.
func (s State) Succeeded(req Request, page types.Page) State {
	if !s.Current(req) {
		return s
	}

	incoming := page.Products()
	if req.Append {
		merged := make([]types.Product, 0, len(s.products)+len(incoming))
		merged = append(merged, s.products...)
		s.products = append(merged, incoming...)
	} else {
		s.products = slices.Clone(incoming)
		if s.products == nil {
			s.products = []types.Product{}
		}
	}
	s.total = page.Total()
	s.errMsg = ""
	return s.settle()
}

// Failed records a failed fetch. Products and total are left untouched.
func (s State) Failed(req Request, err error) State {
	if !s.Current(req) {
		return s
	}

	s.errMsg = DefaultErrorMessage
	if err != nil && err.Error() != "" {
		s.errMsg = err.Error()
	}
	return s.settle()
}

// SelectTab changes the highlighted tab. It has no effect on fetched data.
func (s State) SelectTab(tab types.Tab) State {
	if !tab.Valid() {
		return s
	}
	s.activeTab = tab
	return s
}

func (s State) settle() State {
	s.loadingInitial = false
	s.loadingMore = false
	s.inflight = 0
	return s
}

// Products returns a copy of the loaded products in fetch order.
func (s State) Products() []types.Product { return slices.Clone(s.products) }

func (s State) Len() int               { return len(s.products) }
func (s State) Total() int             { return s.total }
func (s State) LoadingInitial() bool   { return s.loadingInitial }
func (s State) LoadingMore() bool      { return s.loadingMore }
func (s State) Loading() bool          { return s.loadingInitial || s.loadingMore }
func (s State) Err() string            { return s.errMsg }
func (s State) ActiveTab() types.Tab   { return s.activeTab }
func (s State) HasMore() bool          { return len(s.products) < s.total }
func (s State) At(i int) types.Product { return s.products[i] }
