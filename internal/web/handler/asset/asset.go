// Package asset implements the JSON routes for the asset collection.
package asset

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	assetsvc "github.com/Greengage-project/interlinker-ceditor/internal/asset"
	"github.com/Greengage-project/interlinker-ceditor/internal/config"
	"github.com/Greengage-project/interlinker-ceditor/internal/web/handler"
)

const (
	// CollectionPath is the path of the asset collection.
	CollectionPath = "/assets"

	// InstantiatePath serves the asset creation form.
	InstantiatePath = CollectionPath + "/instantiate"

	// ItemPath addresses a single asset.
	ItemPath = CollectionPath + "/:id"

	// ClonePath clones a single asset.
	ClonePath = ItemPath + "/clone"

	// InstantiateTemplateName is the template of the creation form.
	InstantiateTemplateName = "instantiate"
)

// Service is the asset handler service.
type Service struct {
	cfg       *config.Config
	assets    *assetsvc.Service
	validator *validator.Validate
}

// Handler is the asset handler.
var Handler = Service{}

// Init initializes the asset handler and registers its routes.
func (s *Service) Init(router fiber.Router, cfg *config.Config, assets *assetsvc.Service) {
	if router == nil || cfg == nil || assets == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.assets = assets
	s.validator = validator.New()

	router.Post(CollectionPath, s.Create)
	router.Get(CollectionPath, s.List)

	// static route must be registered before the :id routes
	router.Get(InstantiatePath, s.Instantiate)

	router.Get(ItemPath, s.Get)
	router.Delete(ItemPath, s.Delete)
	router.Post(ClonePath, s.Clone)
}

// Create handles POST /assets.
func (s *Service) Create(c *fiber.Ctx) error {
	var req CreateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(handler.Detail{Detail: "Invalid request body"})
	}

	if err := s.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(handler.Detail{Detail: "Asset name cannot be empty"})
	}

	created, err := s.assets.Create(c.UserContext(), req.Name)
	if err != nil {
		return handler.APIError(c, err, "")
	}

	log.Info().Str("asset_id", created.ID).Str("name", created.Name).Msg("asset created")

	return c.Status(fiber.StatusCreated).JSON(created)
}

// List handles GET /assets.
func (s *Service) List(c *fiber.Ctx) error {
	assets, err := s.assets.List(c.UserContext())
	if err != nil {
		return handler.APIError(c, err, "")
	}

	return c.JSON(assets)
}

// Get handles GET /assets/:id.
func (s *Service) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	found, err := s.assets.Get(c.UserContext(), id)
	if err != nil {
		return handler.APIError(c, err, id)
	}

	return c.JSON(found)
}

// Delete handles DELETE /assets/:id.
func (s *Service) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := s.assets.Delete(c.UserContext(), id); err != nil {
		return handler.APIError(c, err, id)
	}

	log.Info().Str("asset_id", id).Msg("asset deleted")

	return c.SendStatus(fiber.StatusNoContent)
}

// Clone handles POST /assets/:id/clone.
func (s *Service) Clone(c *fiber.Ctx) error {
	id := c.Params("id")

	clone, err := s.assets.Clone(c.UserContext(), id)
	if err != nil {
		return handler.APIError(c, err, id)
	}

	return c.Status(fiber.StatusCreated).JSON(clone)
}

// Instantiate renders the asset creation form.
func (s *Service) Instantiate(c *fiber.Ctx) error {
	// the form posts back to the collection path of this route group
	action := strings.TrimSuffix(c.Path(), "/instantiate")

	return c.Render(InstantiateTemplateName, fiber.Map{
		"Title":  s.cfg.Title,
		"Action": action,
	})
}
