package auth

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FirebaseConfig configures the Firebase identity provider.
type FirebaseConfig struct {
	ProjectID       string
	CredentialsJSON string
	WebAPIKey       string
	// ToolkitURL overrides the Identity Toolkit endpoint (emulator, tests).
	ToolkitURL string
	// ContinueURL is where verification links send the user back to.
	ContinueURL string
}

// tokenVerifier is the part of the Firebase Admin auth client we use.
type tokenVerifier interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*fbauth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// FirebaseProvider implements IdentityProvider on Firebase Authentication.
type FirebaseProvider struct {
	projectID string
	verifier  tokenVerifier
	toolkit   *toolkitClient
	logger    *zap.Logger
}

// NewFirebaseProvider initialises the Admin SDK from the service-account JSON.
func NewFirebaseProvider(ctx context.Context, cfg FirebaseConfig, logger *zap.Logger) (*FirebaseProvider, error) {
	if cfg.CredentialsJSON == "" {
		return nil, errors.New("FIREBASE_CREDENTIALS_JSON must be set")
	}
	if cfg.ProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID must be set")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("get firebase auth client: %w", err)
	}
	return newFirebaseProvider(cfg, client, logger), nil
}

func newFirebaseProvider(cfg FirebaseConfig, verifier tokenVerifier, logger *zap.Logger) *FirebaseProvider {
	return &FirebaseProvider{
		projectID: cfg.ProjectID,
		verifier:  verifier,
		toolkit:   newToolkitClient(cfg.ToolkitURL, cfg.WebAPIKey, cfg.ContinueURL),
		logger:    logger,
	}
}

// VerifyProviderToken checks the ID token, its revocation state, audience and
// that it came from the requested provider.
func (f *FirebaseProvider) VerifyProviderToken(ctx context.Context, kind ProviderKind, idToken string) (*Credential, error) {
	token, err := f.verifier.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		f.logger.Warn("id token verification failed", zap.Error(err))
		return nil, &ProviderError{Code: "auth/invalid-id-token", Message: "Firebase: Error (auth/invalid-id-token)."}
	}
	if token.Audience != f.projectID {
		f.logger.Warn("token audience mismatch", zap.String("audience", token.Audience))
		return nil, &ProviderError{Code: "auth/invalid-id-token", Message: "Firebase: Error (auth/invalid-id-token)."}
	}
	if signInProvider(token.Claims) != kind.SignInProvider() {
		return nil, ErrProviderMismatch
	}
	return credentialFromToken(token, idToken), nil
}

func signInProvider(claims map[string]interface{}) string {
	fb, ok := claims["firebase"].(map[string]interface{})
	if !ok {
		return ""
	}
	p, _ := fb["sign_in_provider"].(string)
	return p
}

func credentialFromToken(token *fbauth.Token, idToken string) *Credential {
	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)
	verified, _ := token.Claims["email_verified"].(bool)
	return &Credential{
		Identity: Identity{
			UID:           token.UID,
			DisplayName:   name,
			AvatarURL:     picture,
			Email:         email,
			EmailVerified: verified,
		},
		IDToken: idToken,
	}
}

func (f *FirebaseProvider) SignInWithPassword(ctx context.Context, email, password string) (*Credential, error) {
	resp, err := f.toolkit.signInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	user, err := f.toolkit.lookup(ctx, resp.IDToken)
	if err != nil {
		return nil, err
	}
	return &Credential{
		Identity: Identity{
			UID:           user.LocalID,
			DisplayName:   user.DisplayName,
			AvatarURL:     user.PhotoURL,
			Email:         user.Email,
			EmailVerified: user.EmailVerified,
		},
		IDToken: resp.IDToken,
	}, nil
}

func (f *FirebaseProvider) CreateAccount(ctx context.Context, name, email, password string) (*Credential, error) {
	resp, err := f.toolkit.signUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if name != "" {
		if err := f.toolkit.updateDisplayName(ctx, resp.IDToken, name); err != nil {
			return nil, err
		}
	}
	f.logger.Info("account registered", zap.String("uid", resp.LocalID))
	return &Credential{
		Identity: Identity{UID: resp.LocalID, DisplayName: name, Email: resp.Email},
		IDToken:  resp.IDToken,
	}, nil
}

func (f *FirebaseProvider) SendEmailVerification(ctx context.Context, cred *Credential) error {
	if err := f.toolkit.sendVerification(ctx, cred.IDToken); err != nil {
		return err
	}
	f.logger.Info("verification email sent", zap.String("uid", cred.UID))
	return nil
}

// SignOut revokes the user's refresh tokens, ending provider sessions.
func (f *FirebaseProvider) SignOut(ctx context.Context, uid string) error {
	if err := f.verifier.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}
	return nil
}
