package auth

import (
	"context"
	"sync"
)

type fakeProvider struct {
	mu            sync.Mutex
	creds         map[string]*Credential // keyed by email or id token
	err           error
	verifications []string
	signOuts      []string
	created       []string
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{creds: make(map[string]*Credential)}
}

func (f *fakeProvider) add(key string, id Identity) {
	f.creds[key] = &Credential{Identity: id, IDToken: "tok-" + id.UID}
}

func (f *fakeProvider) VerifyProviderToken(_ context.Context, _ ProviderKind, idToken string) (*Credential, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.creds[idToken]
	if !ok {
		return nil, &ProviderError{Code: "auth/invalid-id-token", Message: "Firebase: Error (auth/invalid-id-token)."}
	}
	return c, nil
}

func (f *fakeProvider) SignInWithPassword(_ context.Context, email, _ string) (*Credential, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.creds[email]
	if !ok {
		return nil, &ProviderError{Code: "auth/invalid-credential", Message: "Firebase: Error (auth/invalid-credential)."}
	}
	return c, nil
}

func (f *fakeProvider) CreateAccount(_ context.Context, name, email, _ string) (*Credential, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, email)
	c := &Credential{Identity: Identity{UID: "new-" + email, DisplayName: name, Email: email}, IDToken: "tok-new"}
	f.creds[email] = c
	return c, nil
}

func (f *fakeProvider) SendEmailVerification(_ context.Context, cred *Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifications = append(f.verifications, cred.UID)
	return nil
}

func (f *fakeProvider) SignOut(_ context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOuts = append(f.signOuts, uid)
	return nil
}
