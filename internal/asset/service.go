// Package asset orchestrates asset records against the document store and
// the external editing service. The remote group and pad are created before
// the local record is written, so every persisted asset points at a live pad.
package asset

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	controller "github.com/Greengage-project/interlinker-ceditor/internal/db/controller/asset"
	"github.com/Greengage-project/interlinker-ceditor/internal/db/models"
	"github.com/Greengage-project/interlinker-ceditor/internal/etherpad"
	"github.com/Greengage-project/interlinker-ceditor/internal/uniuri"
)

// Service combines the document store and the editing service client. It is
// constructed once at startup and shared across requests.
type Service struct {
	db  *gorm.DB
	pad *etherpad.Client
}

// NewService creates a new asset service.
func NewService(db *gorm.DB, pad *etherpad.Client) *Service {
	if db == nil {
		panic("db cannot be nil")
	}

	if pad == nil {
		panic("etherpad client cannot be nil")
	}

	return &Service{db: db, pad: pad}
}

// newID generates a fresh asset id (uuid4 without dashes).
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Create registers a group and pad on the editing service and persists the
// asset record. There is no compensation: if the local insert fails after
// the remote pad was created, the pad is left orphaned (see PruneOrphans).
func (s *Service) Create(ctx context.Context, name string) (*models.Asset, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}

	mapper := uniuri.NewMapper()

	groupID, err := s.pad.CreateGroupIfNotExistsFor(ctx, mapper)
	if err != nil {
		return nil, err
	}

	padID, err := s.pad.CreateGroupPad(ctx, groupID, name)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("pad_id", padID).Str("group_id", groupID).Msg("created pad")

	record := &models.Asset{
		ID:          newID(),
		Name:        name,
		GroupID:     groupID,
		PadID:       padID,
		GroupMapper: mapper,
	}

	if err := controller.Create(s.db, record); err != nil {
		log.Warn().Err(err).
			Str("pad_id", padID).
			Msg("asset insert failed, remote pad left orphaned")

		return nil, err
	}

	// re-read the stored row so the caller sees exactly what was persisted
	return controller.Get(s.db, record.ID)
}

// Get returns the asset with the given id.
func (s *Service) Get(_ context.Context, id string) (*models.Asset, error) {
	return controller.Get(s.db, id)
}

// List returns the stored assets, capped at 1000 records.
func (s *Service) List(_ context.Context) ([]models.Asset, error) {
	return controller.List(s.db)
}

// Clone creates a brand new asset named after the source and copies the
// source pad's rendered content into the new pad. The clone has its own id,
// group and pad.
func (s *Service) Clone(ctx context.Context, id string) (*models.Asset, error) {
	source, err := controller.Get(s.db, id)
	if err != nil {
		return nil, err
	}

	clone, err := s.Create(ctx, "Copy of "+source.Name)
	if err != nil {
		return nil, err
	}

	html, err := s.pad.GetHTML(ctx, source.PadID)
	if err != nil {
		return nil, err
	}

	if err := s.pad.SetHTML(ctx, clone.PadID, html); err != nil {
		return nil, err
	}

	log.Info().
		Str("source_id", source.ID).
		Str("clone_id", clone.ID).
		Msg("cloned asset")

	return clone, nil
}

// Delete requests deletion of the remote pad and removes the local record.
// The remote deletion is best effort and happens first; a failed local
// delete therefore leaves no pad behind but returns ErrDeleteFailed.
func (s *Service) Delete(ctx context.Context, id string) error {
	asset, err := controller.Get(s.db, id)
	if err != nil {
		return err
	}

	if err := s.pad.DeletePad(ctx, asset.PadID); err != nil {
		log.Warn().Err(err).Str("pad_id", asset.PadID).Msg("remote pad deletion failed")
	}

	if err := controller.Delete(s.db, id); err != nil {
		if errors.Is(err, controller.ErrAssetNotFound) {
			return ErrDeleteFailed
		}

		return err
	}

	return nil
}

// PurgeRemote enumerates every pad known to the editing service and deletes
// all of them unconditionally. Destructive; exists for test and staging
// cleanup only. Returns the enumerated pad ids.
func (s *Service) PurgeRemote(ctx context.Context) ([]string, error) {
	padIDs, err := s.pad.ListAllPads(ctx)
	if err != nil {
		return nil, err
	}

	for _, padID := range padIDs {
		if err := s.pad.DeletePad(ctx, padID); err != nil {
			log.Warn().Err(err).Str("pad_id", padID).Msg("pad purge failed")
		}
	}

	log.Info().Int("pad_count", len(padIDs)).Msg("purged all remote pads")

	return padIDs, nil
}

// PruneOrphans deletes every local record whose pad no longer exists on the
// editing service. Repairs drift caused by direct remote deletions or
// failed local inserts. Returns the live remote pad id set.
func (s *Service) PruneOrphans(ctx context.Context) ([]string, error) {
	assets, err := controller.List(s.db)
	if err != nil {
		return nil, err
	}

	padIDs, err := s.pad.ListAllPads(ctx)
	if err != nil {
		return nil, err
	}

	live := make(map[string]bool, len(padIDs))
	for _, padID := range padIDs {
		live[padID] = true
	}

	for _, asset := range assets {
		if live[asset.PadID] {
			continue
		}

		if err := controller.Delete(s.db, asset.ID); err != nil {
			log.Warn().Err(err).Str("asset_id", asset.ID).Msg("orphan prune failed")
			continue
		}

		log.Info().
			Str("asset_id", asset.ID).
			Str("pad_id", asset.PadID).
			Msg("pruned orphaned asset record")
	}

	return padIDs, nil
}

// PurgeAll deletes the remote pad and the local record of every stored
// asset. Destructive; exists for test and staging cleanup only.
func (s *Service) PurgeAll(ctx context.Context) error {
	assets, err := controller.List(s.db)
	if err != nil {
		return err
	}

	for _, asset := range assets {
		if err := s.pad.DeletePad(ctx, asset.PadID); err != nil {
			log.Warn().Err(err).Str("pad_id", asset.PadID).Msg("remote pad deletion failed")
		}

		if err := controller.Delete(s.db, asset.ID); err != nil {
			log.Warn().Err(err).Str("asset_id", asset.ID).Msg("asset record deletion failed")
		}
	}

	log.Info().Int("asset_count", len(assets)).Msg("purged all assets")

	return nil
}
