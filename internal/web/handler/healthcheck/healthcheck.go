// Package healthcheck implements the liveness route.
package healthcheck

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Greengage-project/interlinker-ceditor/internal/web/handler"
)

// Path is the path of the liveness route.
const Path = "/healthcheck"

// Service is the healthcheck handler service.
type Service struct {
	alive func() bool
}

// Handler is the healthcheck handler.
var Handler = Service{}

// Init initializes the healthcheck handler. alive reports whether the
// process accepts traffic; during graceful shutdown it turns false so load
// balancers drain the instance.
func (s *Service) Init(app *fiber.App, alive func() bool) {
	if app == nil || alive == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.alive = alive

	app.Get(Path, s.Get)
}

// Get handles GET /healthcheck.
func (s *Service) Get(c *fiber.Ctx) error {
	if !s.alive() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(false)
	}

	return c.JSON(true)
}
