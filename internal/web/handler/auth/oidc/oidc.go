// Package oidc implements the OIDC login flow routes. On a successful
// callback the raw ID token is stored in a cookie; the auth middleware
// verifies it on every request.
package oidc

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Greengage-project/interlinker-ceditor/internal/auth"
	"github.com/Greengage-project/interlinker-ceditor/internal/config"
	"github.com/Greengage-project/interlinker-ceditor/internal/web/handler"
)

const (
	// LoginPath is the path to initiate OIDC login.
	LoginPath = "/auth/login"

	// CallbackPath is the path for the OIDC callback.
	CallbackPath = "/auth/callback"

	// LogoutPath is the path for OIDC logout.
	LogoutPath = "/auth/logout"

	stateTTL = 5 * time.Minute
)

// Service is the OIDC handler service.
type Service struct {
	cfg      *config.Config
	provider *auth.OIDCProvider

	mu         sync.Mutex
	stateStore map[string]time.Time
}

// Handler is the OIDC handler.
var Handler = Service{
	stateStore: make(map[string]time.Time),
}

// Init initializes the OIDC handler. A nil provider disables the routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, provider *auth.OIDCProvider) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg

	if provider == nil {
		log.Info().Msg("OIDC authentication is disabled")
		return
	}

	s.provider = provider

	app.Get(LoginPath, s.Login)
	app.Get(CallbackPath, s.Callback)
	app.Get(LogoutPath, s.Logout)

	go s.cleanupStates()

	log.Info().Msg("OIDC authentication provider initialized")
}

// Login initiates the OIDC login flow.
func (s *Service) Login(c *fiber.Ctx) error {
	state, err := auth.GenerateStateToken()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate state token")
		return c.Status(fiber.StatusInternalServerError).
			JSON(handler.Detail{Detail: "Internal server error"})
	}

	s.mu.Lock()
	s.stateStore[state] = time.Now().Add(stateTTL)
	s.mu.Unlock()

	return c.Redirect(s.provider.GetAuthURL(state))
}

// Callback handles the OIDC callback and sets the identity cookie.
func (s *Service) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")

	if code == "" || state == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(handler.Detail{Detail: "Invalid callback parameters"})
	}

	if !s.consumeState(state) {
		log.Error().Str("state", state).Msg("invalid or expired state token")
		return c.Status(fiber.StatusBadRequest).
			JSON(handler.Detail{Detail: "Invalid state token"})
	}

	identity, rawIDToken, err := s.provider.HandleCallback(c.UserContext(), code)
	if err != nil {
		log.Error().Err(err).Msg("OIDC authentication failed")
		return c.Status(fiber.StatusUnauthorized).
			JSON(handler.Detail{Detail: "Authentication failed"})
	}

	cookie := &fiber.Cookie{
		Name:     auth.TokenCookie,
		Value:    rawIDToken,
		MaxAge:   cookieMaxAge(s.cfg),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookie.Secure = false
	}

	c.Cookie(cookie)

	log.Info().Str("sub", identity.Sub).Msg("user logged in via OIDC")

	return c.Redirect(handler.RootPath)
}

// Logout clears the identity cookie and redirects to the provider's logout
// endpoint when it has one.
func (s *Service) Logout(c *fiber.Ctx) error {
	c.ClearCookie(auth.TokenCookie)

	if logoutURL := s.provider.GetLogoutURL("", s.cfg.Webserver.URL); logoutURL != "" {
		return c.Redirect(logoutURL)
	}

	return c.Redirect(handler.RootPath)
}

// consumeState validates and removes a state token.
func (s *Service) consumeState(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiration, exists := s.stateStore[state]
	delete(s.stateStore, state)

	return exists && time.Now().Before(expiration)
}

// cleanupStates periodically removes expired state tokens.
func (s *Service) cleanupStates() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()

		s.mu.Lock()
		for state, expiration := range s.stateStore {
			if now.After(expiration) {
				delete(s.stateStore, state)
			}
		}
		s.mu.Unlock()
	}
}

// cookieMaxAge returns the identity cookie lifetime in seconds, matching
// the configured session TTL.
func cookieMaxAge(cfg *config.Config) int {
	if cfg.Session.TTL == 0 {
		return int((5 * time.Hour).Seconds())
	}

	return cfg.Session.TTL
}
