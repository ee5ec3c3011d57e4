package asset

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Greengage-project/interlinker-ceditor/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	// Migrate the schema
	err = db.AutoMigrate(&models.Asset{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// seedAssets inserts test data into the database.
func seedAssets(t *testing.T, db *gorm.DB, assets []models.Asset) {
	t.Helper()
	for _, asset := range assets {
		err := db.Create(&asset).Error
		require.NoError(t, err, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		assetID       string
		seedData      []models.Asset
		expectedError error
		expectedName  string
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			assetID:       "abc",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty id",
			dbParam:       db,
			assetID:       "",
			expectedError: ErrAssetIDEmpty,
		},
		{
			name:          "asset not found",
			dbParam:       db,
			assetID:       "nonexistent",
			expectedError: ErrAssetNotFound,
		},
		{
			name:    "successful get",
			dbParam: db,
			assetID: "a1",
			seedData: []models.Asset{
				{ID: "a1", Name: "Meeting Notes", GroupID: "g.x", PadID: "g.x$Meeting Notes", GroupMapper: "abcdefghij"},
			},
			expectedName: "Meeting Notes",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clean database for each test
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM assets")
			}

			if tc.seedData != nil {
				seedAssets(t, tc.dbParam, tc.seedData)
			}

			asset, err := Get(tc.dbParam, tc.assetID)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, asset)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, asset)
				assert.Equal(t, tc.assetID, asset.ID)
				assert.Equal(t, tc.expectedName, asset.Name)
			}
		})
	}
}

func TestList(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		seedCount     int
		expectedError error
		expectedCount int
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			expectedError: ErrDBNil,
		},
		{
			name:          "empty database",
			dbParam:       db,
			expectedCount: 0,
		},
		{
			name:          "three assets",
			dbParam:       db,
			seedCount:     3,
			expectedCount: 3,
		},
		{
			name:          "cap enforced at 1000",
			dbParam:       db,
			seedCount:     ListCap + 1,
			expectedCount: ListCap,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM assets")
			}

			for i := 0; i < tc.seedCount; i++ {
				seedAssets(t, tc.dbParam, []models.Asset{
					{
						ID:          fmt.Sprintf("asset-%04d", i),
						Name:        fmt.Sprintf("Asset %d", i),
						GroupID:     "g.x",
						PadID:       fmt.Sprintf("g.x$Asset %d", i),
						GroupMapper: "abcdefghij",
					},
				})
			}

			assets, err := List(tc.dbParam)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, assets)
			} else {
				require.NoError(t, err)
				assert.Len(t, assets, tc.expectedCount)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		asset         models.Asset
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			asset:         models.Asset{ID: "a1"},
			expectedError: ErrDBNil,
		},
		{
			name:          "empty id",
			dbParam:       db,
			asset:         models.Asset{Name: "No ID"},
			expectedError: ErrAssetIDEmpty,
		},
		{
			name:    "successful create",
			dbParam: db,
			asset: models.Asset{
				ID:          "a1",
				Name:        "Meeting Notes",
				GroupID:     "g.x",
				PadID:       "g.x$Meeting Notes",
				GroupMapper: "abcdefghij",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM assets")
			}

			err := Create(tc.dbParam, &tc.asset)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)

				// Verify the asset was written
				stored, err := Get(tc.dbParam, tc.asset.ID)
				require.NoError(t, err)
				assert.Equal(t, tc.asset.Name, stored.Name)
				assert.Equal(t, tc.asset.GroupID, stored.GroupID)
				assert.Equal(t, tc.asset.PadID, stored.PadID)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		assetID       string
		seedData      []models.Asset
		expectedError error
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			assetID:       "a1",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty id",
			dbParam:       db,
			assetID:       "",
			expectedError: ErrAssetIDEmpty,
		},
		{
			name:          "asset not found",
			dbParam:       db,
			assetID:       "nonexistent",
			expectedError: ErrAssetNotFound,
		},
		{
			name:    "successful delete",
			dbParam: db,
			assetID: "a1",
			seedData: []models.Asset{
				{ID: "a1", Name: "Meeting Notes", GroupID: "g.x", PadID: "g.x$Meeting Notes", GroupMapper: "abcdefghij"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM assets")
			}

			if tc.seedData != nil {
				seedAssets(t, tc.dbParam, tc.seedData)
			}

			err := Delete(tc.dbParam, tc.assetID)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)

				// Verify the asset was deleted
				var count int64
				tc.dbParam.Model(&models.Asset{}).Where("id = ?", tc.assetID).Count(&count)
				assert.Zero(t, count)
			}
		})
	}
}

func TestIntegration(t *testing.T) {
	db := setupTestDB(t)

	// Create an asset
	created := &models.Asset{
		ID:          "a1",
		Name:        "Meeting Notes",
		GroupID:     "g.x",
		PadID:       "g.x$Meeting Notes",
		GroupMapper: "abcdefghij",
	}
	require.NoError(t, Create(db, created))

	// Get it back
	stored, err := Get(db, "a1")
	require.NoError(t, err)
	assert.Equal(t, created.Name, stored.Name)

	// List contains exactly one record
	assets, err := List(db)
	require.NoError(t, err)
	assert.Len(t, assets, 1)

	// Delete it
	require.NoError(t, Delete(db, "a1"))

	// Get now fails
	_, err = Get(db, "a1")
	require.ErrorIs(t, err, ErrAssetNotFound)

	// Deleting again reports not found
	require.ErrorIs(t, Delete(db, "a1"), ErrAssetNotFound)
}
