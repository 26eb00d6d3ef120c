package auth

import (
	"context"
	"sync"
)

// SessionProxy wraps the identity provider for one storefront session. Only
// identities with a verified e-mail are ever surfaced as signed in.
type SessionProxy struct {
	provider IdentityProvider

	mu      sync.RWMutex
	user    *Identity
	loading bool
}

// NewSessionProxy starts in the loading state until Restore is called.
func NewSessionProxy(provider IdentityProvider) *SessionProxy {
	return &SessionProxy{provider: provider, loading: true}
}

// Restore finishes the initial session resolution.
func (s *SessionProxy) Restore(id *Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setUserLocked(id)
	s.loading = false
}

func (s *SessionProxy) setUserLocked(id *Identity) {
	if id == nil || !id.EmailVerified {
		s.user = nil
		return
	}
	u := *id
	s.user = &u
}

// CurrentUser returns the signed-in identity, if any.
func (s *SessionProxy) CurrentUser() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return Identity{}, false
	}
	return *s.user, true
}

func (s *SessionProxy) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SignInWithProvider signs in with an ID token obtained from a provider pop-up.
func (s *SessionProxy) SignInWithProvider(ctx context.Context, kind ProviderKind, idToken string) (Identity, error) {
	cred, err := s.provider.VerifyProviderToken(ctx, kind, idToken)
	if err != nil {
		return Identity{}, err
	}
	if !cred.EmailVerified {
		s.Restore(nil)
		return Identity{}, ErrProviderUnverified
	}
	s.Restore(&cred.Identity)
	return cred.Identity, nil
}

// LoginWithEmail signs in with e-mail and password. An unverified account gets
// a fresh verification link and is signed straight back out.
func (s *SessionProxy) LoginWithEmail(ctx context.Context, email, password string) (Identity, error) {
	cred, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return Identity{}, err
	}
	if !cred.EmailVerified {
		if err := s.provider.SendEmailVerification(ctx, cred); err != nil {
			return Identity{}, err
		}
		if err := s.provider.SignOut(ctx, cred.UID); err != nil {
			return Identity{}, err
		}
		s.Restore(nil)
		return Identity{}, ErrEmailNotVerified
	}
	s.Restore(&cred.Identity)
	return cred.Identity, nil
}

// RegisterWithEmail creates an account, sends the verification e-mail and
// leaves the session signed out until the address is verified.
func (s *SessionProxy) RegisterWithEmail(ctx context.Context, name, email, password string) (Identity, error) {
	cred, err := s.provider.CreateAccount(ctx, name, email, password)
	if err != nil {
		return Identity{}, err
	}
	if err := s.provider.SendEmailVerification(ctx, cred); err != nil {
		return Identity{}, err
	}
	if err := s.provider.SignOut(ctx, cred.UID); err != nil {
		return Identity{}, err
	}
	s.Restore(nil)
	return cred.Identity, nil
}

// SignOut ends the signed-in state of this session.
func (s *SessionProxy) SignOut(ctx context.Context) error {
	s.mu.Lock()
	user := s.user
	s.user = nil
	s.mu.Unlock()

	if user == nil {
		return nil
	}
	return s.provider.SignOut(ctx, user.UID)
}
