package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopzone.com/app/internal/modules/catalog"
)

func TestStore_GetOrCreate(t *testing.T) {
	st := NewStore(time.Hour)

	s1, created := st.GetOrCreate("")
	require.True(t, created)
	require.NotEmpty(t, s1.ID)

	s2, created := st.GetOrCreate(s1.ID)
	assert.False(t, created)
	assert.Same(t, s1, s2)

	_, created = st.GetOrCreate("unknown-id")
	assert.True(t, created, "unknown id gets a fresh session")
}

func TestStore_Get(t *testing.T) {
	st := NewStore(time.Hour)

	s, _ := st.GetOrCreate("")

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = st.Get("unknown-id")
	assert.False(t, ok)
}

func TestStore_EvictsStaleSessions(t *testing.T) {
	st := NewStore(time.Minute)
	base := time.Now()
	st.now = func() time.Time { return base }

	s, _ := st.GetOrCreate("")
	require.Equal(t, 1, st.Len())

	st.now = func() time.Time { return base.Add(2 * time.Minute) }
	fresh, created := st.GetOrCreate(s.ID)

	assert.True(t, created, "expired session is replaced")
	assert.NotEqual(t, s.ID, fresh.ID)
}

func TestSession_StateIsPerSession(t *testing.T) {
	st := NewStore(time.Hour)
	a, _ := st.GetOrCreate("")
	b, _ := st.GetOrCreate("")

	a.AddToCart(catalog.Product{ID: 1, Title: "Mascara", Price: 9.99})
	a.ToggleWishlist(7)

	assert.Equal(t, 1, a.CartCount())
	assert.Zero(t, b.CartCount())
	assert.True(t, a.Wishlisted(7))
	assert.False(t, b.Wishlisted(7))
}

func TestSession_CartOperations(t *testing.T) {
	st := NewStore(time.Hour)
	s, _ := st.GetOrCreate("")
	p := catalog.Product{ID: 1, Title: "Mascara", Price: 9.99}

	s.AddToCart(p)
	s.AddToCart(p)

	assert.True(t, s.InCart(1))
	assert.Equal(t, 2, s.CartCount())

	page := s.CartPage()
	require.Len(t, page.Items, 1)
	assert.Equal(t, "19.98", page.Total)

	s.RemoveFromCart(1)
	assert.False(t, s.InCart(1))
	assert.Zero(t, s.CartCount())
}
