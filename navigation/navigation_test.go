package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct{}

func (fakeLookup) HasProduct(id string) bool  { return id == "p1" }
func (fakeLookup) HasCategory(id string) bool { return id == "fashion" }

func TestResolve(t *testing.T) {
	cases := []struct {
		name string
		in   View
		auth bool
		want View
	}{
		{"profile while signed out goes to login", Profile{}, false, Login{}},
		{"profile while signed in", Profile{}, true, Profile{}},
		{"login while signed in goes home", Login{}, true, Home{}},
		{"login while signed out", Login{}, false, Login{}},
		{"known product", ProductDetail{ID: "p1"}, false, ProductDetail{ID: "p1"}},
		{"unknown product goes home", ProductDetail{ID: "nope"}, false, Home{}},
		{"known category", Category{ID: "fashion"}, true, Category{ID: "fashion"}},
		{"unknown category goes home", Category{ID: "toys"}, true, Home{}},
		{"cart", Cart{}, false, Cart{}},
		{"wishlist", Wishlist{}, false, Wishlist{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.in, tc.auth, fakeLookup{}))
		})
	}
}

func TestNavigator(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, Home{}, n.Current(false, nil))

	got := n.Navigate(Profile{}, false, fakeLookup{})
	assert.Equal(t, Login{}, got)
	assert.Equal(t, 1, n.ScrollResets())

	n.Navigate(Profile{}, true, fakeLookup{})
	assert.Equal(t, Profile{}, n.Current(true, fakeLookup{}))
	assert.Equal(t, Login{}, n.Current(false, fakeLookup{}), "signing out re-guards the profile page")
	assert.Equal(t, 2, n.ScrollResets())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(Wire{Name: "product"})
	assert.Error(t, err)
	_, err = Parse(Wire{Name: "checkout"})
	assert.Error(t, err)
}

func TestMarshal(t *testing.T) {
	b, err := Marshal(ProductDetail{ID: "p1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"product","id":"p1"}`, string(b))
}
