package services

import (
	"errors"
	"testing"

	"asset_ops_server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetTypeListOrder(t *testing.T) {
	setupTestDB(t)
	svc := NewAssetTypeService()

	for _, in := range []struct {
		name  string
		queue int
	}{
		{"server", 2},
		{"network", 1},
		{"storage", 1},
	} {
		_, err := svc.Create(&models.AssetType{AssetTypeName: in.name, Queue: in.queue})
		require.NoError(t, err)
	}

	types, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, types, 3)
	assert.Equal(t, "network", types[0].AssetTypeName)
	assert.Equal(t, "storage", types[1].AssetTypeName)
	assert.Equal(t, "server", types[2].AssetTypeName)

	filtered, err := svc.List("net")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "network", filtered[0].AssetTypeName)
}

func TestAssetTypeCreateMissingParent(t *testing.T) {
	setupTestDB(t)
	svc := NewAssetTypeService()

	missing := "no-such-parent"
	_, err := svc.Create(&models.AssetType{AssetTypeName: "orphan", ParentID: &missing})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAssetTypeReparent(t *testing.T) {
	setupTestDB(t)
	svc := NewAssetTypeService()

	root, err := svc.Create(&models.AssetType{AssetTypeName: "hardware"})
	require.NoError(t, err)
	child, err := svc.Create(&models.AssetType{AssetTypeName: "server", ParentID: &root.ID})
	require.NoError(t, err)

	other, err := svc.Create(&models.AssetType{AssetTypeName: "appliance"})
	require.NoError(t, err)

	moved, err := svc.Reparent(child.ID, &other.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.ParentID)
	assert.Equal(t, other.ID, *moved.ParentID)

	// Reparenting to nil makes the node a root again.
	moved, err = svc.Reparent(child.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, moved.ParentID)
}

func TestAssetTypeReparentRejectsCycles(t *testing.T) {
	setupTestDB(t)
	svc := NewAssetTypeService()

	a, err := svc.Create(&models.AssetType{AssetTypeName: "a"})
	require.NoError(t, err)
	b, err := svc.Create(&models.AssetType{AssetTypeName: "b", ParentID: &a.ID})
	require.NoError(t, err)
	c, err := svc.Create(&models.AssetType{AssetTypeName: "c", ParentID: &b.ID})
	require.NoError(t, err)

	// a under its own grandchild closes a cycle.
	_, err = svc.Reparent(a.ID, &c.ID)
	assert.True(t, errors.Is(err, ErrInvalidQuery))

	// Self-parenting is rejected outright.
	_, err = svc.Reparent(a.ID, &a.ID)
	assert.True(t, errors.Is(err, ErrInvalidQuery))
}
