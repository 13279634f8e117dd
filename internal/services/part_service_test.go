package services

import (
	"errors"
	"testing"

	"asset_ops_server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartCatalogFilter(t *testing.T) {
	setupTestDB(t)
	assets := NewAssetService()
	parts := NewPartService()

	view, err := assets.Create(&AssetSpec{
		Name:        "host",
		AssetNumber: "A-100",
		AssetStatus: models.AssetStatusInUse,
	})
	require.NoError(t, err)

	free, err := parts.Create(&models.AssetPartsInfo{Name: "spare-dimm", PartNumber: "P-10"})
	require.NoError(t, err)
	bound, err := parts.Create(&models.AssetPartsInfo{Name: "boot-ssd", PartNumber: "P-11", AssetID: &view.ID})
	require.NoError(t, err)

	page, err := parts.List(models.PartCatalogInventory, "", "", Page{Number: 1, Size: 10}, nil)
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, free.ID, page.Rows[0].ID)

	page, err = parts.List(models.PartCatalogUsed, "", "", Page{Number: 1, Size: 10}, nil)
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, bound.ID, page.Rows[0].ID)

	page, err = parts.List("", "", "", Page{Number: 1, Size: 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
}

func TestPartCatalogUnknownValue(t *testing.T) {
	setupTestDB(t)
	parts := NewPartService()

	_, err := parts.List("broken", "", "", Page{Number: 1, Size: 10}, nil)
	assert.True(t, errors.Is(err, ErrInvalidQuery))
}

func TestPartCreateBoundToMissingAsset(t *testing.T) {
	setupTestDB(t)
	parts := NewPartService()

	missing := "no-such-asset"
	_, err := parts.Create(&models.AssetPartsInfo{Name: "nic", PartNumber: "P-20", AssetID: &missing})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPartBindUnbindRoundTrip(t *testing.T) {
	setupTestDB(t)
	assets := NewAssetService()
	parts := NewPartService()

	view, err := assets.Create(&AssetSpec{
		Name:        "host",
		AssetNumber: "A-200",
		AssetStatus: models.AssetStatusInUse,
	})
	require.NoError(t, err)

	part, err := parts.Create(&models.AssetPartsInfo{Name: "gpu", PartNumber: "P-30"})
	require.NoError(t, err)
	assert.Equal(t, models.PartCatalogInventory, part.Catalog())

	bound, err := parts.Bind(part.ID, view.ID)
	require.NoError(t, err)
	require.NotNil(t, bound.AssetID)
	assert.Equal(t, view.ID, *bound.AssetID)
	assert.Equal(t, models.PartCatalogUsed, bound.Catalog())

	unbound, err := parts.Unbind(part.ID, view.ID)
	require.NoError(t, err)
	assert.Nil(t, unbound.AssetID)
	assert.Equal(t, models.PartCatalogInventory, unbound.Catalog())
}

func TestPartRebindMovesToNewAsset(t *testing.T) {
	setupTestDB(t)
	assets := NewAssetService()
	parts := NewPartService()

	first, err := assets.Create(&AssetSpec{Name: "one", AssetNumber: "A-301", AssetStatus: models.AssetStatusInUse})
	require.NoError(t, err)
	second, err := assets.Create(&AssetSpec{Name: "two", AssetNumber: "A-302", AssetStatus: models.AssetStatusInUse})
	require.NoError(t, err)

	part, err := parts.Create(&models.AssetPartsInfo{Name: "raid-card", PartNumber: "P-40", AssetID: &first.ID})
	require.NoError(t, err)

	bound, err := parts.Bind(part.ID, second.ID)
	require.NoError(t, err)
	require.NotNil(t, bound.AssetID)
	assert.Equal(t, second.ID, *bound.AssetID)
}

func TestPartBindLosesRaceToConcurrentWriter(t *testing.T) {
	setupTestDB(t)
	assets := NewAssetService()
	parts := NewPartService()

	first, err := assets.Create(&AssetSpec{Name: "one", AssetNumber: "A-311", AssetStatus: models.AssetStatusInUse})
	require.NoError(t, err)
	second, err := assets.Create(&AssetSpec{Name: "two", AssetNumber: "A-312", AssetStatus: models.AssetStatusInUse})
	require.NoError(t, err)

	part, err := parts.Create(&models.AssetPartsInfo{Name: "hba", PartNumber: "P-45"})
	require.NoError(t, err)

	// Another writer binds the part after this one read it as unbound. The
	// stale writer's conditional update must match zero rows and conflict.
	_, err = parts.Bind(part.ID, first.ID)
	require.NoError(t, err)

	err = parts.casBind(part.ID, nil, second.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	// The winner's binding survives the losing write.
	got, err := parts.Get(part.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AssetID)
	assert.Equal(t, first.ID, *got.AssetID)
}

func TestPartBindMissingAsset(t *testing.T) {
	setupTestDB(t)
	parts := NewPartService()

	part, err := parts.Create(&models.AssetPartsInfo{Name: "fan", PartNumber: "P-50"})
	require.NoError(t, err)

	_, err = parts.Bind(part.ID, "no-such-asset")
	assert.True(t, errors.Is(err, ErrNotFound))

	// The part stays in inventory.
	got, err := parts.Get(part.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssetID)
}

func TestPartUnbindWrongAssetConflict(t *testing.T) {
	setupTestDB(t)
	assets := NewAssetService()
	parts := NewPartService()

	owner, err := assets.Create(&AssetSpec{Name: "owner", AssetNumber: "A-401", AssetStatus: models.AssetStatusInUse})
	require.NoError(t, err)
	other, err := assets.Create(&AssetSpec{Name: "other", AssetNumber: "A-402", AssetStatus: models.AssetStatusInUse})
	require.NoError(t, err)

	part, err := parts.Create(&models.AssetPartsInfo{Name: "psu", PartNumber: "P-60", AssetID: &owner.ID})
	require.NoError(t, err)

	_, err = parts.Unbind(part.ID, other.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	// The binding is untouched after the rejected unbind.
	got, err := parts.Get(part.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AssetID)
	assert.Equal(t, owner.ID, *got.AssetID)
}

func TestPartUnbindInventoryConflict(t *testing.T) {
	setupTestDB(t)
	parts := NewPartService()

	part, err := parts.Create(&models.AssetPartsInfo{Name: "cable", PartNumber: "P-70"})
	require.NoError(t, err)

	_, err = parts.Unbind(part.ID, "anything")
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestPartUpdateKeepsBinding(t *testing.T) {
	setupTestDB(t)
	assets := NewAssetService()
	parts := NewPartService()

	view, err := assets.Create(&AssetSpec{Name: "host", AssetNumber: "A-500", AssetStatus: models.AssetStatusInUse})
	require.NoError(t, err)

	part, err := parts.Create(&models.AssetPartsInfo{Name: "old-name", PartNumber: "P-80", AssetID: &view.ID})
	require.NoError(t, err)

	updated, err := parts.Update(part.ID, &models.AssetPartsInfo{Name: "new-name", PartNumber: "P-80", PartBrand: "Samsung"})
	require.NoError(t, err)
	assert.Equal(t, "new-name", updated.Name)
	assert.Equal(t, "Samsung", updated.PartBrand)
	require.NotNil(t, updated.AssetID)
	assert.Equal(t, view.ID, *updated.AssetID)
}

func TestPartDelete(t *testing.T) {
	setupTestDB(t)
	parts := NewPartService()

	part, err := parts.Create(&models.AssetPartsInfo{Name: "tray", PartNumber: "P-90"})
	require.NoError(t, err)

	require.NoError(t, parts.Delete(part.ID))
	_, err = parts.Get(part.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = parts.Delete(part.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}
