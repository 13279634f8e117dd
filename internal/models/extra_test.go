package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtra(t *testing.T) {
	t.Run("empty input is nil", func(t *testing.T) {
		m, err := ParseExtra("")
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("valid object", func(t *testing.T) {
		m, err := ParseExtra(`{"rack":"R12","owner":"infra"}`)
		require.NoError(t, err)
		assert.Equal(t, ExtraMap{"rack": "R12", "owner": "infra"}, m)
	})

	t.Run("invalid json is rejected", func(t *testing.T) {
		_, err := ParseExtra("{broken")
		assert.Error(t, err)
	})

	t.Run("non-string values are rejected", func(t *testing.T) {
		_, err := ParseExtra(`{"count":3}`)
		assert.Error(t, err)
	})
}

func TestExtraMapValueScanRoundTrip(t *testing.T) {
	original := ExtraMap{"vendor": "dell", "slot": "4"}

	v, err := original.Value()
	require.NoError(t, err)

	var restored ExtraMap
	require.NoError(t, restored.Scan(v))
	assert.Equal(t, original, restored)
}

func TestExtraMapEmptyValue(t *testing.T) {
	var m ExtraMap
	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "", v)

	var restored ExtraMap
	require.NoError(t, restored.Scan(""))
	assert.Nil(t, restored)
}

func TestPartCatalogDerivation(t *testing.T) {
	part := AssetPartsInfo{}
	assert.Equal(t, PartCatalogInventory, part.Catalog())

	empty := ""
	part.AssetID = &empty
	assert.Equal(t, PartCatalogInventory, part.Catalog())

	id := "some-asset"
	part.AssetID = &id
	assert.Equal(t, PartCatalogUsed, part.Catalog())
}

func TestIsKnownAssetStatus(t *testing.T) {
	for _, s := range []string{AssetStatusInUse, AssetStatusFree, AssetStatusMaintenance, AssetStatusScrapped} {
		assert.True(t, IsKnownAssetStatus(s))
	}
	assert.False(t, IsKnownAssetStatus("retired"))
	assert.False(t, IsKnownAssetStatus(""))
}
