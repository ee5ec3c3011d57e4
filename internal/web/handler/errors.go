package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/Greengage-project/interlinker-ceditor/internal/asset"
	controller "github.com/Greengage-project/interlinker-ceditor/internal/db/controller/asset"
	"github.com/Greengage-project/interlinker-ceditor/internal/etherpad"
)

// APIError translates service errors into the JSON API error responses.
// assetID names the asset the request was about; it may be empty.
func APIError(c *fiber.Ctx, err error, assetID string) error {
	apiErr := &etherpad.APIError{}

	switch {
	case errors.Is(err, asset.ErrNameEmpty):
		return c.Status(fiber.StatusBadRequest).
			JSON(Detail{Detail: "Asset name cannot be empty"})

	case errors.Is(err, controller.ErrAssetNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(Detail{Detail: fmt.Sprintf("Asset with id %s not found", assetID)})

	case errors.Is(err, asset.ErrDeleteFailed):
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(Detail{Detail: fmt.Sprintf("Asset with id %s could not be deleted", assetID)})

	case errors.As(err, &apiErr):
		log.Error().Err(err).Str("asset_id", assetID).Msg("editing service call failed")

		return c.Status(fiber.StatusBadGateway).
			JSON(Detail{Detail: "Editing service error: " + apiErr.Message})

	default:
		log.Error().Err(err).Str("asset_id", assetID).Msg("unhandled error")

		return c.Status(fiber.StatusInternalServerError).
			JSON(Detail{Detail: "Internal server error"})
	}
}
