package navigation

import "sync"

// Lookup tells the resolver which product and category ids exist.
type Lookup interface {
	HasProduct(id string) bool
	HasCategory(id string) bool
}

// Resolve applies the page guards: profile needs a signed-in user, login is
// skipped for one, and unknown products or categories fall back to home.
func Resolve(v View, authenticated bool, lookup Lookup) View {
	switch v := v.(type) {
	case Profile:
		if !authenticated {
			return Login{}
		}
	case Login:
		if authenticated {
			return Home{}
		}
	case ProductDetail:
		if lookup != nil && !lookup.HasProduct(v.ID) {
			return Home{}
		}
	case Category:
		if lookup != nil && !lookup.HasCategory(v.ID) {
			return Home{}
		}
	}
	return v
}

// Navigator holds the active view of one session.
type Navigator struct {
	mu          sync.RWMutex
	current     View
	scrollReset int
}

func NewNavigator() *Navigator {
	return &Navigator{current: Home{}}
}

// Navigate resolves v and makes it the current view. Every navigation also
// asks the client to scroll back to the top.
func (n *Navigator) Navigate(v View, authenticated bool, lookup Lookup) View {
	resolved := Resolve(v, authenticated, lookup)
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = resolved
	n.scrollReset++
	return resolved
}

// Current returns the active view re-checked against the current auth state,
// so signing out while on the profile page lands on login.
func (n *Navigator) Current(authenticated bool, lookup Lookup) View {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return Resolve(n.current, authenticated, lookup)
}

// ScrollResets counts navigations; clients scroll to top when it changes.
func (n *Navigator) ScrollResets() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.scrollReset
}
