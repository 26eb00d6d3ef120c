package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/afnankhn654-alt/ShopNest/auth"
	"github.com/afnankhn654-alt/ShopNest/catalog"
	"github.com/afnankhn654-alt/ShopNest/chatbot"
	"github.com/afnankhn654-alt/ShopNest/config"
	orderControllers "github.com/afnankhn654-alt/ShopNest/controllers/order"
	"github.com/afnankhn654-alt/ShopNest/middleware"
	"github.com/afnankhn654-alt/ShopNest/repository"
	"github.com/afnankhn654-alt/ShopNest/routes"
	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second
	pruneInterval   = 10 * time.Minute
)

type server struct {
	http     *http.Server
	hub      *orderControllers.Hub
	sessions *store.Sessions
	logger   *zap.Logger
}

func newServer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*server, error) {
	// Catalog, optionally persisted
	ds := catalog.Seed(cfg.CatalogSeed, catalog.DefaultGenerated)
	var repo store.Repository
	if dsn := cfg.DatabaseDSN(); dsn != "" {
		db, err := repository.OpenPostgres(dsn)
		if err != nil {
			return nil, err
		}
		r := repository.New(db, logger)
		if err := r.Migrate(ctx); err != nil {
			return nil, err
		}
		if ds, err = r.LoadOrSeed(ctx, ds); err != nil {
			return nil, err
		}
		repo = r
		logger.Info("✅ Database connected")
	} else {
		logger.Warn("no database configured, state is kept in memory only")
	}

	// Identity provider
	var provider auth.IdentityProvider = auth.UnavailableProvider{}
	if cfg.AuthEnabled() {
		fb, err := auth.NewFirebaseProvider(ctx, auth.FirebaseConfig{
			ProjectID:       cfg.FirebaseProjectID,
			CredentialsJSON: cfg.FirebaseCredentialsJSON,
			WebAPIKey:       cfg.FirebaseWebAPIKey,
			ContinueURL:     cfg.VerificationContinueURL,
		}, logger)
		if err != nil {
			return nil, err
		}
		provider = fb
	} else {
		logger.Warn("firebase not configured, sign-in is disabled")
	}

	// Chat responder
	responder, err := newResponder(ctx, cfg)
	if err != nil {
		return nil, err
	}

	hub := orderControllers.NewHub(logger)
	shop := store.New(ds, store.Options{
		Repository:   repo,
		Notifier:     hub,
		Logger:       logger,
		EnforceStock: cfg.EnforceStock,
	})
	sessions := store.NewSessions(provider, cfg.SessionTTL, cfg.EnforceStock)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Store:     shop,
		Sessions:  sessions,
		Issuer:    auth.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL),
		Assistant: chatbot.NewAssistant(responder, logger),
		Hub:       hub,
		APIKey:    cfg.APIKey,
		Logger:    logger,
	})

	return &server{
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		hub:      hub,
		sessions: sessions,
		logger:   logger,
	}, nil
}

func newResponder(ctx context.Context, cfg config.Config) (chatbot.Responder, error) {
	if cfg.GeminiAPIKey != "" {
		return chatbot.NewGeminiResponder(ctx, chatbot.GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		})
	}
	rules, err := chatbot.LoadRules(cfg.ChatbotRulesFile)
	if err != nil {
		return nil, err
	}
	return chatbot.NewScriptedResponder(rules, cfg.ChatbotLatency), nil
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("🚀 Server running", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(pruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if n := s.sessions.Prune(); n > 0 {
					s.logger.Info("expired sessions pruned", zap.Int("count", n))
				}
			}
		}
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		s.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
