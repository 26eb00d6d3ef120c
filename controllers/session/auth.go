package sessionControllers

import (
	"net/http"
	"time"

	"github.com/afnankhn654-alt/ShopNest/auth"
	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/afnankhn654-alt/ShopNest/navigation"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const verifyEmailNotice = "Registration successful! Please check your email to verify your account."

type ProviderLoginInput struct {
	Provider string `json:"provider" binding:"required"`
	IDToken  string `json:"id_token" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// TokenResponse is returned whenever a session token is (re)issued.
type TokenResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Session   store.Summary `json:"session"`
}

// Handlers serves the /auth and /session endpoints.
type Handlers struct {
	sessions *store.Sessions
	issuer   *auth.TokenIssuer
	lookup   navigation.Lookup
	logger   *zap.Logger
}

func NewHandlers(sessions *store.Sessions, issuer *auth.TokenIssuer, lookup navigation.Lookup, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{sessions: sessions, issuer: issuer, lookup: lookup, logger: logger}
}

func (h *Handlers) issue(c *gin.Context, status int, session *store.Session) {
	var id *auth.Identity
	if user, ok := session.Auth.CurrentUser(); ok {
		id = &user
	}
	token, expires, err := h.issuer.Issue(session.ID, id)
	if err != nil {
		h.logger.Error("issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(status, TokenResponse{Token: token, ExpiresAt: expires, Session: session.Summary(h.lookup)})
}

// POST /auth/guest
func (h *Handlers) CreateGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := h.sessions.Create()
		h.logger.Info("guest session created", zap.String("session_id", session.ID))
		h.issue(c, http.StatusCreated, session)
	}
}

// POST /auth/provider
func (h *Handlers) ProviderLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProviderLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		kind, err := auth.ParseProviderKind(input.Provider)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		session := middleware.CurrentSession(c)
		if _, err := session.Auth.SignInWithProvider(c.Request.Context(), kind, input.IDToken); err != nil {
			h.logger.Warn("provider sign-in failed", zap.String("provider", string(kind)), zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ProviderDisplayMessage(err)})
			return
		}
		h.issue(c, http.StatusOK, session)
	}
}

// POST /auth/login
func (h *Handlers) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session := middleware.CurrentSession(c)
		if _, err := session.Auth.LoginWithEmail(c.Request.Context(), input.Email, input.Password); err != nil {
			h.logger.Warn("email sign-in failed", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.DisplayMessage(err)})
			return
		}
		h.issue(c, http.StatusOK, session)
	}
}

// POST /auth/register
func (h *Handlers) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session := middleware.CurrentSession(c)
		if _, err := session.Auth.RegisterWithEmail(c.Request.Context(), input.Name, input.Email, input.Password); err != nil {
			h.logger.Warn("registration failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": auth.DisplayMessage(err)})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": verifyEmailNotice})
	}
}

// POST /auth/logout
func (h *Handlers) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := middleware.CurrentSession(c)
		if err := session.Auth.SignOut(c.Request.Context()); err != nil {
			// The local session is signed out either way.
			h.logger.Warn("provider sign-out failed", zap.Error(err))
		}
		h.issue(c, http.StatusOK, session)
	}
}

// GET /auth/me
func (h *Handlers) Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
