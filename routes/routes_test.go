package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/afnankhn654-alt/ShopNest/auth"
	"github.com/afnankhn654-alt/ShopNest/catalog"
	"github.com/afnankhn654-alt/ShopNest/chatbot"
	orderControllers "github.com/afnankhn654-alt/ShopNest/controllers/order"
	"github.com/afnankhn654-alt/ShopNest/routes"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminKey = "test-admin-key"

type account struct {
	password string
	identity auth.Identity
}

// stubProvider signs in the accounts it was given and accepts the
// provider token "google-token".
type stubProvider struct {
	mu       sync.Mutex
	accounts map[string]account
	sentTo   []string
}

func (p *stubProvider) VerifyProviderToken(_ context.Context, kind auth.ProviderKind, idToken string) (*auth.Credential, error) {
	if kind != auth.ProviderGoogle || idToken != "google-token" {
		return nil, &auth.ProviderError{Code: "auth/invalid-credential", Message: "Firebase: Error (auth/invalid-credential)."}
	}
	return &auth.Credential{Identity: auth.Identity{
		UID: "google-uid", DisplayName: "Gina Google", Email: "gina@example.com", EmailVerified: true,
	}, IDToken: idToken}, nil
}

func (p *stubProvider) SignInWithPassword(_ context.Context, email, password string) (*auth.Credential, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	acc, ok := p.accounts[email]
	if !ok || acc.password != password {
		return nil, &auth.ProviderError{Code: "auth/invalid-credential", Message: "Firebase: Error (auth/invalid-credential)."}
	}
	return &auth.Credential{Identity: acc.identity, IDToken: "id-" + acc.identity.UID}, nil
}

func (p *stubProvider) CreateAccount(_ context.Context, name, email, password string) (*auth.Credential, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.accounts[email]; ok {
		return nil, &auth.ProviderError{Code: "auth/email-already-in-use", Message: "Firebase: Error (auth/email-already-in-use)."}
	}
	id := auth.Identity{UID: "uid-" + email, DisplayName: name, Email: email}
	p.accounts[email] = account{password: password, identity: id}
	return &auth.Credential{Identity: id, IDToken: "id-" + id.UID}, nil
}

func (p *stubProvider) SendEmailVerification(_ context.Context, cred *auth.Credential) error {
	p.mu.Lock()
	p.sentTo = append(p.sentTo, cred.Email)
	p.mu.Unlock()
	return nil
}

func (p *stubProvider) SignOut(context.Context, string) error { return nil }

type harness struct {
	t        *testing.T
	router   *gin.Engine
	shop     *store.Store
	provider *stubProvider
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := &stubProvider{accounts: map[string]account{
		"ada@example.com": {password: "secret1", identity: auth.Identity{
			UID: "ada-uid", DisplayName: "Ada", Email: "ada@example.com", EmailVerified: true,
		}},
		"una@example.com": {password: "secret2", identity: auth.Identity{
			UID: "una-uid", DisplayName: "Una", Email: "una@example.com",
		}},
	}}

	shop := store.New(catalog.Seed(7, 20), store.Options{
		Now: func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) },
	})
	rules, err := chatbot.LoadRules("")
	require.NoError(t, err)
	hub := orderControllers.NewHub(zap.NewNop())
	t.Cleanup(hub.Close)

	r := gin.New()
	routes.SetupRoutes(r, routes.Deps{
		Store:     shop,
		Sessions:  store.NewSessions(provider, time.Hour, false),
		Issuer:    auth.NewTokenIssuer("test-secret", time.Hour),
		Assistant: chatbot.NewAssistant(chatbot.NewScriptedResponder(rules, 0), zap.NewNop()),
		Hub:       hub,
		APIKey:    adminKey,
	})
	return &harness{t: t, router: r, shop: shop, provider: provider}
}

func (h *harness) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	h.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(h.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

type tokenResponse struct {
	Token   string        `json:"token"`
	Session store.Summary `json:"session"`
}

func (h *harness) guest() string {
	h.t.Helper()
	w := h.do(http.MethodPost, "/auth/guest", "", nil)
	require.Equal(h.t, http.StatusCreated, w.Code)
	return decode[tokenResponse](h.t, w).Token
}

func (h *harness) login(token, email, password string) string {
	h.t.Helper()
	w := h.do(http.MethodPost, "/auth/login", token, gin.H{"email": email, "password": password})
	require.Equal(h.t, http.StatusOK, w.Code, w.Body.String())
	return decode[tokenResponse](h.t, w).Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["error"]
}

func (h *harness) doWithHeader(method, path, key, value string) *httptest.ResponseRecorder {
	h.t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(key, value)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}
