package store

import (
	"sync"
	"time"

	"github.com/afnankhn654-alt/ShopNest/auth"
	"github.com/afnankhn654-alt/ShopNest/chatbot"
	"github.com/afnankhn654-alt/ShopNest/navigation"
	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an idle session is kept.
const DefaultSessionTTL = 24 * time.Hour

// Session is the state one browser session owns.
type Session struct {
	ID        string
	Cart      *Cart
	Navigator *navigation.Navigator
	Auth      *auth.SessionProxy
	Chat      *chatbot.Transcript

	mu       sync.Mutex
	lastSeen time.Time
}

// Summary is the header view of a session.
type Summary struct {
	ID           string          `json:"sessionId"`
	User         *auth.Identity  `json:"user"`
	Loading      bool            `json:"loading"`
	View         navigation.Wire `json:"view"`
	CartCount    int             `json:"cartCount"`
	ScrollResets int             `json:"scrollResets"`
}

// Summary resolves the current view against the session's sign-in state.
func (s *Session) Summary(lookup navigation.Lookup) Summary {
	sum := Summary{
		ID:           s.ID,
		Loading:      s.Auth.Loading(),
		CartCount:    s.Cart.ItemCount(),
		ScrollResets: s.Navigator.ScrollResets(),
	}
	user, ok := s.Auth.CurrentUser()
	if ok {
		sum.User = &user
	}
	sum.View = navigation.ToWire(s.Navigator.Current(ok, lookup))
	return sum
}

// Navigate moves the session to v after resolving it.
func (s *Session) Navigate(v navigation.View, lookup navigation.Lookup) navigation.View {
	_, authenticated := s.Auth.CurrentUser()
	return s.Navigator.Navigate(v, authenticated, lookup)
}

// Sessions is the registry of live sessions.
type Sessions struct {
	mu           sync.Mutex
	sessions     map[string]*Session
	provider     auth.IdentityProvider
	ttl          time.Duration
	enforceStock bool
	now          func() time.Time
}

func NewSessions(provider auth.IdentityProvider, ttl time.Duration, enforceStock bool) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Sessions{
		sessions:     make(map[string]*Session),
		provider:     provider,
		ttl:          ttl,
		enforceStock: enforceStock,
		now:          time.Now,
	}
}

// Create starts a guest session.
func (r *Sessions) Create() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Cart:      NewCart(r.enforceStock),
		Navigator: navigation.NewNavigator(),
		Auth:      auth.NewSessionProxy(r.provider),
		Chat:      chatbot.NewTranscript(),
		lastSeen:  r.now(),
	}
	s.Auth.Restore(nil)

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns a live session and refreshes its idle timer.
func (r *Sessions) Get(id string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := r.now()
	s.mu.Lock()
	expired := now.Sub(s.lastSeen) > r.ttl
	if !expired {
		s.lastSeen = now
	}
	s.mu.Unlock()
	if expired {
		r.Delete(id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *Sessions) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Prune drops idle sessions and returns how many were removed.
func (r *Sessions) Prune() int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastSeen) > r.ttl
		s.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
