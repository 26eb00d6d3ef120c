package store

import (
	"testing"
	"time"

	"github.com/afnankhn654-alt/ShopNest/auth"
	"github.com/afnankhn654-alt/ShopNest/models"
	"github.com/afnankhn654-alt/ShopNest/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessions_CreateGetExpire(t *testing.T) {
	r := NewSessions(auth.UnavailableProvider{}, time.Hour, false)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	s := r.Create()
	assert.False(t, s.Auth.Loading())

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	now = now.Add(50 * time.Minute)
	_, err = r.Get(s.ID)
	require.NoError(t, err, "access refreshes the idle timer")

	now = now.Add(61 * time.Minute)
	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, r.Len())

	_, err = r.Get("unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessions_Prune(t *testing.T) {
	r := NewSessions(auth.UnavailableProvider{}, time.Minute, false)
	now := time.Now()
	r.now = func() time.Time { return now }

	r.Create()
	keep := r.Create()
	now = now.Add(45 * time.Second)
	_, err := r.Get(keep.ID)
	require.NoError(t, err)
	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, r.Prune())
	assert.Equal(t, 1, r.Len())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, r.Prune())
	assert.Zero(t, r.Len())
}

func TestSession_Summary(t *testing.T) {
	s := newTestStore(t, Options{})
	r := NewSessions(auth.UnavailableProvider{}, 0, false)
	sess := r.Create()

	_, err := sess.Cart.AddItem(models.Product{ID: "p4", Price: 99}, 3, nil)
	require.NoError(t, err)

	sess.Navigate(navigation.Profile{}, s)
	sum := sess.Summary(s)
	assert.Nil(t, sum.User)
	assert.Equal(t, "login", sum.View.Name)
	assert.Equal(t, 3, sum.CartCount)
	assert.Equal(t, 1, sum.ScrollResets)

	sess.Auth.Restore(&auth.Identity{UID: "u1", EmailVerified: true})
	sess.Navigate(navigation.ProductDetail{ID: "p2"}, s)
	sum = sess.Summary(s)
	require.NotNil(t, sum.User)
	assert.Equal(t, "u1", sum.User.UID)
	assert.Equal(t, navigation.Wire{Name: "product", ID: "p2"}, sum.View)
	assert.Equal(t, 3, sum.CartCount, "the cart survives sign-in")
}
