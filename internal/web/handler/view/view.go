// Package view serves the editable pad page for an asset.
package view

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	assetsvc "github.com/Greengage-project/interlinker-ceditor/internal/asset"
	"github.com/Greengage-project/interlinker-ceditor/internal/auth"
	"github.com/Greengage-project/interlinker-ceditor/internal/config"
	viewsvc "github.com/Greengage-project/interlinker-ceditor/internal/view"
	"github.com/Greengage-project/interlinker-ceditor/internal/web/handler"
)

const (
	// Path serves the editable view of an asset.
	Path = "/assets/:id/view"

	// WrapperPath is the legacy name of the same route.
	WrapperPath = "/assets/:id/gui"

	// SessionCookie authorizes the browser for the pad's group on the
	// editing service domain. Replaced on every view.
	SessionCookie = "sessionID"

	// TemplateName is the template embedding the pad iframe.
	TemplateName = "view"
)

// Service is the view handler service.
type Service struct {
	cfg    *config.Config
	assets *assetsvc.Service
	views  *viewsvc.Service
}

// Handler is the view handler.
var Handler = Service{}

// Init initializes the view handler and registers its route.
func (s *Service) Init(router fiber.Router, cfg *config.Config, assets *assetsvc.Service, views *viewsvc.Service) {
	if router == nil || cfg == nil || assets == nil || views == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.assets = assets
	s.views = views

	path := Path
	if cfg.Variant == config.VariantWrapper {
		path = WrapperPath
	}

	router.Get(path, s.View)
}

// View opens an editing session for the asset and renders the pad page.
// Callers without a verified identity share the anonymous author; when OIDC
// is enabled on the full backend they are rejected instead.
func (s *Service) View(c *fiber.Ctx) error {
	id := c.Params("id")

	found, err := s.assets.Get(c.UserContext(), id)
	if err != nil {
		return handler.APIError(c, err, id)
	}

	identity, ok := auth.IdentityFrom(c)
	if !ok {
		if s.cfg.Variant != config.VariantWrapper && s.cfg.Auth.OIDC.Enabled {
			return c.Status(fiber.StatusUnauthorized).
				JSON(handler.Detail{Detail: "Not authenticated"})
		}

		identity = auth.Anonymous()
	}

	session, err := s.views.Open(c.UserContext(), found, identity)
	if err != nil {
		return handler.APIError(c, err, id)
	}

	// replace any previous session cookie with the newest session
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    session.SessionID,
		Path:     "/",
		HTTPOnly: false, // the editing service frontend reads it
		SameSite: "Lax",
	})

	return c.Render(TemplateName, fiber.Map{
		"Title": s.cfg.Title,
		"Name":  found.Name,
		"URL":   session.URL,
	})
}
