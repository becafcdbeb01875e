package pager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qyinm/shoptui/types"
)

func makeProducts(start, n int) []types.Product {
	out := make([]types.Product, 0, n)
	for i := 0; i < n; i++ {
		id := start + i
		out = append(out, types.NewProduct(
			id,
			fmt.Sprintf("Product %d", id),
			"description",
			"https://img.example/thumb.png",
			decimal.NewFromInt(int64(id)),
			4.5,
		))
	}
	return out
}

func ids(products []types.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID())
	}
	return out
}

// loaded returns a settled state holding n products out of total.
func loaded(t *testing.T, n, total int) State {
	t.Helper()
	s, req := Mount()
	s = s.Succeeded(req, types.NewPage(makeProducts(1, n), total))
	require.False(t, s.Loading())
	return s
}

func assertExclusive(t *testing.T, s State) {
	t.Helper()
	assert.False(t, s.LoadingInitial() && s.LoadingMore(), "loadingInitial and loadingMore both set")
}

func TestMount(t *testing.T) {
	s, req := Mount()

	assert.True(t, s.LoadingInitial())
	assert.False(t, s.LoadingMore())
	assert.Equal(t, types.ForYou, s.ActiveTab())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, Request{Token: req.Token, Skip: 0, Limit: PageSize, Append: false}, req)
	assert.NotZero(t, req.Token)
	assert.True(t, s.Current(req))
}

func TestScenarioInitialLoad(t *testing.T) {
	s, req := Mount()
	s = s.Succeeded(req, types.NewPage(makeProducts(1, 10), 57))

	assert.Equal(t, 10, s.Len())
	assert.Equal(t, 57, s.Total())
	assert.False(t, s.LoadingInitial())
	assert.Empty(t, s.Err())
	assert.True(t, s.HasMore())
}

func TestScenarioScrollLoadsSecondPage(t *testing.T) {
	s := loaded(t, 10, 57)

	s, req, ok := s.LoadNextPage()
	require.True(t, ok)
	assert.Equal(t, 10, req.Skip)
	assert.Equal(t, PageSize, req.Limit)
	assert.True(t, req.Append)
	assert.True(t, s.LoadingMore())
	assertExclusive(t, s)

	s = s.Succeeded(req, types.NewPage(makeProducts(11, 10), 57))
	assert.Equal(t, 20, s.Len())
	assert.False(t, s.LoadingMore())
}

func TestScenarioInitialFailure(t *testing.T) {
	s, req := Mount()
	s = s.Failed(req, errors.New("request failed with status 500"))

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "request failed with status 500", s.Err())
	assert.False(t, s.Loading())
	assert.False(t, s.HasMore())
}

func TestMutualExclusion(t *testing.T) {
	s, req := Mount()
	assertExclusive(t, s)

	// append while initial in flight is refused
	s2, _, ok := s.FetchPage(0, true)
	assert.False(t, ok)
	assert.Equal(t, s, s2)
	assertExclusive(t, s2)

	s = s.Succeeded(req, types.NewPage(makeProducts(1, 10), 30))
	assertExclusive(t, s)

	s, _, ok = s.LoadNextPage()
	require.True(t, ok)
	assertExclusive(t, s)

	s3, _, ok := s.FetchPage(0, false)
	assert.False(t, ok)
	assertExclusive(t, s3)
	assert.True(t, s3.LoadingMore())
	assert.False(t, s3.LoadingInitial())
}

func TestAppendPreservesOrder(t *testing.T) {
	s := loaded(t, 10, 40)
	before := s.Products()

	s, req, ok := s.LoadNextPage()
	require.True(t, ok)
	incoming := makeProducts(100, 7)
	s = s.Succeeded(req, types.NewPage(incoming, 40))

	want := append(ids(before), ids(incoming)...)
	assert.Equal(t, want, ids(s.Products()))
	assert.Equal(t, len(before)+len(incoming), s.Len())
}

func TestAppendDoesNotDeduplicate(t *testing.T) {
	s := loaded(t, 3, 10)
	s, req, ok := s.LoadNextPage()
	require.True(t, ok)
	s = s.Succeeded(req, types.NewPage(makeProducts(1, 3), 10))

	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, ids(s.Products()))
}

func TestReplaceDiscardsPriorProducts(t *testing.T) {
	s := loaded(t, 10, 57)
	s, req, ok := s.FetchPage(0, false)
	require.True(t, ok)

	s = s.Succeeded(req, types.NewPage(makeProducts(500, 2), 3))
	assert.Equal(t, []int{500, 501}, ids(s.Products()))
	assert.Equal(t, 3, s.Total())
}

func TestReplaceWithNilProducts(t *testing.T) {
	s, req := Mount()
	s = s.Succeeded(req, types.NewPage(nil, 0))

	assert.NotNil(t, s.Products())
	assert.Equal(t, 0, s.Len())
}

func TestLoadNextPageGuardExhausted(t *testing.T) {
	s, req := Mount()
	s = s.Succeeded(req, types.NewPage(makeProducts(1, 57), 57))

	next, r, ok := s.LoadNextPage()
	assert.False(t, ok)
	assert.Equal(t, Request{}, r)
	assert.Equal(t, s, next)
}

func TestLoadNextPageGuardInFlight(t *testing.T) {
	s := loaded(t, 10, 57)
	s, _, ok := s.LoadNextPage()
	require.True(t, ok)

	next, r, ok := s.LoadNextPage()
	assert.False(t, ok)
	assert.Equal(t, Request{}, r)
	assert.Equal(t, s, next)

	initial, _ := Mount()
	next, _, ok = initial.LoadNextPage()
	assert.False(t, ok)
	assert.Equal(t, initial, next)
}

func TestFailedAppendIsolated(t *testing.T) {
	s := loaded(t, 10, 57)
	before := s.Products()

	s, req, ok := s.LoadNextPage()
	require.True(t, ok)
	s = s.Failed(req, errors.New("boom"))

	assert.Equal(t, ids(before), ids(s.Products()))
	assert.Equal(t, 57, s.Total())
	assert.Equal(t, "boom", s.Err())
	assert.False(t, s.Loading())

	// scrolling again retries the same offset
	s, req, ok = s.LoadNextPage()
	require.True(t, ok)
	assert.Equal(t, 10, req.Skip)

	s = s.Succeeded(req, types.NewPage(makeProducts(11, 10), 57))
	assert.Empty(t, s.Err())
	assert.Equal(t, 20, s.Len())
}

func TestFailedDefaultMessage(t *testing.T) {
	s, req := Mount()
	s = s.Failed(req, nil)
	assert.Equal(t, DefaultErrorMessage, s.Err())

	s, req = s.Remount()
	s = s.Failed(req, errors.New(""))
	assert.Equal(t, DefaultErrorMessage, s.Err())
}

func TestStaleResponseIgnored(t *testing.T) {
	s, first := Mount()
	s, second := s.Remount()

	after := s.Succeeded(first, types.NewPage(makeProducts(1, 10), 57))
	assert.Equal(t, s, after)
	assert.True(t, after.LoadingInitial())

	after = s.Failed(first, errors.New("late"))
	assert.Equal(t, s, after)

	s = s.Succeeded(second, types.NewPage(makeProducts(1, 2), 2))
	assert.Equal(t, 2, s.Len())

	// a duplicate delivery of the settled request is ignored too
	again := s.Succeeded(second, types.NewPage(makeProducts(9, 5), 5))
	assert.Equal(t, s, again)
}

func TestRemountKeepsTab(t *testing.T) {
	s := loaded(t, 10, 57).SelectTab(types.Featured)
	s, req := s.Remount()

	assert.Equal(t, types.Featured, s.ActiveTab())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Total())
	assert.True(t, s.LoadingInitial())
	assert.Equal(t, 0, req.Skip)
	assert.False(t, req.Append)
}

func TestSelectTab(t *testing.T) {
	s := loaded(t, 10, 57)
	before := s.Products()

	s = s.SelectTab(types.Groups)
	assert.Equal(t, types.Groups, s.ActiveTab())
	assert.Equal(t, ids(before), ids(s.Products()))
	assert.False(t, s.Loading())

	s = s.SelectTab(types.Tab(42))
	assert.Equal(t, types.Groups, s.ActiveTab())
}

func TestSnapshotsAreIndependent(t *testing.T) {
	s := loaded(t, 3, 10)
	snapshot := s

	s, req, ok := s.LoadNextPage()
	require.True(t, ok)
	s = s.Succeeded(req, types.NewPage(makeProducts(4, 3), 10))

	assert.Equal(t, 3, snapshot.Len())
	assert.Equal(t, 6, s.Len())

	out := s.Products()
	out[0] = types.NewProduct(999, "mutated", "", "", decimal.Zero, 0)
	assert.Equal(t, 1, s.At(0).ID())
}
