// Package docs serves the static API description page.
package docs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Greengage-project/interlinker-ceditor/internal/config"
	"github.com/Greengage-project/interlinker-ceditor/internal/web/handler"
)

const (
	// Path is the path of the API description page.
	Path = "/docs"

	// TemplateName is the docs template.
	TemplateName = "docs"
)

// Service is the docs handler service.
type Service struct {
	cfg *config.Config
}

// Handler is the docs handler.
var Handler = Service{}

// Init initializes the docs handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(Path, s.Get)
}

// Get renders the API description page.
func (s *Service) Get(c *fiber.Ctx) error {
	prefix := ""
	if s.cfg.Variant == config.VariantWrapper {
		prefix = "/api/v1"
	}

	return c.Render(TemplateName, fiber.Map{
		"Title":   s.cfg.Title,
		"Variant": s.cfg.Variant,
		"Prefix":  prefix,
	})
}
