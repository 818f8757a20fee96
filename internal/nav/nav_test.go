package nav

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	loc := ParsePath("/items?search=camera&type=Free&page=2")
	assert.Equal(t, "/items", loc.Path)
	assert.Equal(t, "camera", loc.Query.Get("search"))
	assert.Equal(t, "Free", loc.Query.Get("type"))
	assert.Equal(t, "2", loc.Query.Get("page"))

	loc = ParsePath("/dashboard")
	assert.Equal(t, "/dashboard", loc.Path)
	assert.Empty(t, loc.Query)

	// A malformed query yields an empty query, not a crash.
	loc = ParsePath("/items?%zz")
	assert.Equal(t, "/items", loc.Path)
	assert.Empty(t, loc.Query)
}

func TestHistorySemantics(t *testing.T) {
	n := New("/items")
	assert.Equal(t, "/items", n.Location().Path)
	assert.Equal(t, 1, n.Depth())

	n.Go("/items/item-1")
	assert.Equal(t, "/items/item-1", n.Location().Path)
	assert.Equal(t, 2, n.Depth())

	// Replace swaps the top entry without growing the stack.
	n.Replace("/login")
	assert.Equal(t, "/login", n.Location().Path)
	assert.Equal(t, 2, n.Depth())

	// Back cannot reach the replaced entry.
	require.True(t, n.Back())
	assert.Equal(t, "/items", n.Location().Path)
	require.False(t, n.Back())
}

func TestSetQueryPushesSamePath(t *testing.T) {
	n := New("/items?page=1")

	query := url.Values{}
	query.Set("page", "2")
	n.SetQuery(query)

	assert.Equal(t, "/items", n.Location().Path)
	assert.Equal(t, "2", n.Location().Query.Get("page"))
	assert.Equal(t, 2, n.Depth())

	require.True(t, n.Back())
	assert.Equal(t, "1", n.Location().Query.Get("page"))
}

func TestMatch(t *testing.T) {
	params, ok := Match("/items/{id}", "/items/item-123")
	require.True(t, ok)
	assert.Equal(t, "item-123", params["id"])

	_, ok = Match("/items/{id}", "/items")
	assert.False(t, ok)

	_, ok = Match("/items/{id}", "/swaps/item-123")
	assert.False(t, ok)

	params, ok = Match("/items", "/items")
	require.True(t, ok)
	assert.Empty(t, params)
}

func TestLocationString(t *testing.T) {
	loc := ParsePath("/items?search=old+camera&page=2")
	assert.Equal(t, "/items?page=2&search=old+camera", loc.String())
	assert.Equal(t, "/items", Location{Path: "/items"}.String())
}
