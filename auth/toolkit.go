package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// toolkitClient calls the Identity Toolkit REST API, which covers the
// password and e-mail flows the Admin SDK does not.
type toolkitClient struct {
	baseURL     string
	apiKey      string
	continueURL string
	http        *http.Client
}

func newToolkitClient(baseURL, apiKey, continueURL string) *toolkitClient {
	if baseURL == "" {
		baseURL = defaultToolkitURL
	}
	return &toolkitClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		continueURL: continueURL,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

type toolkitError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// toolkitCodes maps REST error codes to the client SDK error codes users
// already know from the sign-in page.
var toolkitCodes = map[string]string{
	"EMAIL_EXISTS":                     "auth/email-already-in-use",
	"EMAIL_NOT_FOUND":                  "auth/user-not-found",
	"INVALID_PASSWORD":                 "auth/wrong-password",
	"INVALID_LOGIN_CREDENTIALS":        "auth/invalid-credential",
	"INVALID_EMAIL":                    "auth/invalid-email",
	"USER_DISABLED":                    "auth/user-disabled",
	"WEAK_PASSWORD":                    "auth/weak-password",
	"TOO_MANY_ATTEMPTS_TRY_LATER":      "auth/too-many-requests",
	"FEDERATED_USER_ID_ALREADY_LINKED": CodeAccountExists,
}

func providerErrorFromToolkit(status int, body []byte) error {
	var te toolkitError
	if err := json.Unmarshal(body, &te); err != nil || te.Error.Message == "" {
		return &ProviderError{Code: "auth/internal-error", Message: fmt.Sprintf("Firebase: Error (auth/internal-error) status %d.", status)}
	}
	// messages look like "WEAK_PASSWORD : Password should be at least 6 characters"
	raw, detail, _ := strings.Cut(te.Error.Message, " : ")
	code, ok := toolkitCodes[strings.TrimSpace(raw)]
	if !ok {
		code = "auth/" + strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "_", "-"))
	}
	msg := fmt.Sprintf("Firebase: Error (%s).", code)
	if detail != "" {
		msg = fmt.Sprintf("Firebase: %s (%s).", strings.TrimSpace(detail), code)
	}
	return &ProviderError{Code: code, Message: msg}
}

func (c *toolkitClient) call(ctx context.Context, method string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/accounts:%s?key=%s", c.baseURL, method, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach identity toolkit: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return providerErrorFromToolkit(resp.StatusCode, respBody)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse identity toolkit response: %w", err)
	}
	return nil
}

type toolkitAuthResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
}

type toolkitUser struct {
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	PhotoURL      string `json:"photoUrl"`
	EmailVerified bool   `json:"emailVerified"`
}

func (c *toolkitClient) signInWithPassword(ctx context.Context, email, password string) (*toolkitAuthResponse, error) {
	var out toolkitAuthResponse
	err := c.call(ctx, "signInWithPassword", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &out)
	return &out, err
}

func (c *toolkitClient) signUp(ctx context.Context, email, password string) (*toolkitAuthResponse, error) {
	var out toolkitAuthResponse
	err := c.call(ctx, "signUp", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &out)
	return &out, err
}

func (c *toolkitClient) updateDisplayName(ctx context.Context, idToken, name string) error {
	return c.call(ctx, "update", map[string]interface{}{
		"idToken":           idToken,
		"displayName":       name,
		"returnSecureToken": false,
	}, nil)
}

func (c *toolkitClient) lookup(ctx context.Context, idToken string) (*toolkitUser, error) {
	var out struct {
		Users []toolkitUser `json:"users"`
	}
	if err := c.call(ctx, "lookup", map[string]string{"idToken": idToken}, &out); err != nil {
		return nil, err
	}
	if len(out.Users) == 0 {
		return nil, &ProviderError{Code: "auth/user-not-found", Message: "Firebase: Error (auth/user-not-found)."}
	}
	return &out.Users[0], nil
}

func (c *toolkitClient) sendVerification(ctx context.Context, idToken string) error {
	payload := map[string]interface{}{
		"requestType": "VERIFY_EMAIL",
		"idToken":     idToken,
	}
	if c.continueURL != "" {
		payload["continueUrl"] = c.continueURL
		payload["canHandleCodeInApp"] = true
	}
	return c.call(ctx, "sendOobCode", payload, nil)
}
