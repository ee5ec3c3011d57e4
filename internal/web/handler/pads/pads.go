// Package pads implements the administrative reconciliation routes. All of
// them are destructive to some degree and exist for test and staging
// cleanup; none of them take parameters.
package pads

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	assetsvc "github.com/Greengage-project/interlinker-ceditor/internal/asset"
	"github.com/Greengage-project/interlinker-ceditor/internal/config"
	"github.com/Greengage-project/interlinker-ceditor/internal/web/handler"
)

const (
	// PurgePath deletes every pad on the editing service.
	PurgePath = "/pads"

	// PrunePath deletes local records whose pad no longer exists.
	PrunePath = "/pads/delete"

	// CleanPath deletes every asset, remote pad and local record.
	CleanPath = "/pads/clean"
)

// Service is the pads admin handler service.
type Service struct {
	cfg    *config.Config
	assets *assetsvc.Service
}

// Handler is the pads admin handler.
var Handler = Service{}

// Init initializes the pads admin handler and registers its routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, assets *assetsvc.Service) {
	if router == nil || cfg == nil || assets == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.assets = assets

	router.Get(PurgePath, s.Purge)
	router.Get(PrunePath, s.Prune)
	router.Get(CleanPath, s.Clean)
}

// Purge handles GET /pads. It deletes every remote pad and returns the
// enumerated pad ids. Local records are left untouched.
func (s *Service) Purge(c *fiber.Ctx) error {
	padIDs, err := s.assets.PurgeRemote(c.UserContext())
	if err != nil {
		return handler.APIError(c, err, "")
	}

	return c.JSON(fiber.Map{"padIDs": padIDs})
}

// Prune handles GET /pads/delete. It removes local records whose remote pad
// is gone and returns the live pad ids.
func (s *Service) Prune(c *fiber.Ctx) error {
	padIDs, err := s.assets.PruneOrphans(c.UserContext())
	if err != nil {
		return handler.APIError(c, err, "")
	}

	return c.JSON(fiber.Map{"padIDs": padIDs})
}

// Clean handles GET /pads/clean. It deletes every stored asset together
// with its remote pad.
func (s *Service) Clean(c *fiber.Ctx) error {
	if err := s.assets.PurgeAll(c.UserContext()); err != nil {
		return handler.APIError(c, err, "")
	}

	log.Warn().Msg("all assets were purged")

	return c.JSON(true)
}
