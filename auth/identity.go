package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ProviderKind is an external sign-in provider.
type ProviderKind string

const (
	ProviderGoogle    ProviderKind = "google"
	ProviderGitHub    ProviderKind = "github"
	ProviderMicrosoft ProviderKind = "microsoft"
)

// ParseProviderKind validates a provider name from a request.
func ParseProviderKind(s string) (ProviderKind, error) {
	switch k := ProviderKind(strings.ToLower(s)); k {
	case ProviderGoogle, ProviderGitHub, ProviderMicrosoft:
		return k, nil
	}
	return "", fmt.Errorf("unsupported sign-in provider %q", s)
}

// SignInProvider is the provider id the identity service stamps on tokens.
func (k ProviderKind) SignInProvider() string {
	switch k {
	case ProviderGoogle:
		return "google.com"
	case ProviderGitHub:
		return "github.com"
	case ProviderMicrosoft:
		return "microsoft.com"
	}
	return ""
}

// Identity is the signed-in user as seen by the storefront.
type Identity struct {
	UID           string `json:"uid"`
	DisplayName   string `json:"displayName"`
	AvatarURL     string `json:"photoURL"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
}

// Credential is an identity plus the provider token that proves it.
type Credential struct {
	Identity
	IDToken string
}

// IdentityProvider is the external identity service.
type IdentityProvider interface {
	VerifyProviderToken(ctx context.Context, kind ProviderKind, idToken string) (*Credential, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Credential, error)
	CreateAccount(ctx context.Context, name, email, password string) (*Credential, error)
	SendEmailVerification(ctx context.Context, cred *Credential) error
	SignOut(ctx context.Context, uid string) error
}

const (
	CodeAccountExists = "auth/account-exists-with-different-credential"

	msgAccountExists = "An account already exists with the same email address but different sign-in credentials. Sign in using a provider associated with this email address."
	msgGeneric       = "An error occurred. Please try again."
	msgProviderFail  = "Failed to sign in with provider."
)

var (
	ErrEmailNotVerified   = errors.New("Please verify your email address. A new verification link has been sent to your inbox.")
	ErrProviderUnverified = errors.New("Please verify the email address of your sign-in provider account before continuing.")
	ErrProviderMismatch   = errors.New("token was not issued for the requested sign-in provider")
	ErrNotSignedIn        = errors.New("not signed in")
)

// ProviderError is a failure reported by the identity service.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// DisplayMessage turns any auth failure into the string shown to the user.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var perr *ProviderError
	if errors.As(err, &perr) && perr.Code == CodeAccountExists {
		return msgAccountExists
	}
	msg := strings.TrimSpace(strings.Replace(err.Error(), "Firebase: ", "", 1))
	if msg == "" {
		return msgGeneric
	}
	return msg
}

// ProviderDisplayMessage is DisplayMessage for provider pop-up sign-in, which
// has its own fallback text.
func ProviderDisplayMessage(err error) string {
	msg := DisplayMessage(err)
	if msg == msgGeneric {
		return msgProviderFail
	}
	return msg
}

// UnavailableProvider is used when no identity service is configured; every
// sign-in attempt fails with a displayable error.
type UnavailableProvider struct{}

var errAuthUnavailable = &ProviderError{Code: "auth/operation-not-allowed", Message: "Firebase: Error (auth/operation-not-allowed)."}

func (UnavailableProvider) VerifyProviderToken(context.Context, ProviderKind, string) (*Credential, error) {
	return nil, errAuthUnavailable
}

func (UnavailableProvider) SignInWithPassword(context.Context, string, string) (*Credential, error) {
	return nil, errAuthUnavailable
}

func (UnavailableProvider) CreateAccount(context.Context, string, string, string) (*Credential, error) {
	return nil, errAuthUnavailable
}

func (UnavailableProvider) SendEmailVerification(context.Context, *Credential) error {
	return errAuthUnavailable
}

func (UnavailableProvider) SignOut(context.Context, string) error { return nil }
