// Package asset provides the document store operations for asset records.
package asset

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Greengage-project/interlinker-ceditor/internal/db/models"
)

const (
	idQueryPattern = "id = ?"

	// ListCap is the maximum number of records returned by List.
	ListCap = 1000
)

var (
	// ErrAssetNotFound is returned when an asset is not found.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrAssetIDEmpty is returned when an operation is attempted with an empty id.
	ErrAssetIDEmpty = errors.New("asset id cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves an asset by its id.
func Get(db *gorm.DB, id string) (*models.Asset, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if id == "" {
		return nil, ErrAssetIDEmpty
	}

	var asset models.Asset
	result := db.Where(idQueryPattern, id).First(&asset)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, result.Error
	}

	return &asset, nil
}

// List retrieves asset records from the store, capped at ListCap.
func List(db *gorm.DB) ([]models.Asset, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var assets []models.Asset
	result := db.Limit(ListCap).Find(&assets)
	if result.Error != nil {
		return nil, result.Error
	}

	return assets, nil
}

// Create inserts a new asset record.
func Create(db *gorm.DB, asset *models.Asset) error {
	if db == nil {
		return ErrDBNil
	}
	if asset.ID == "" {
		return ErrAssetIDEmpty
	}

	result := db.Create(asset)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete removes an asset record by id. Returns ErrAssetNotFound when no
// row was removed.
func Delete(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}
	if id == "" {
		return ErrAssetIDEmpty
	}

	result := db.Where(idQueryPattern, id).Delete(&models.Asset{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssetNotFound
	}

	return nil
}
