package services

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"asset_ops_server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook assembles an in-memory two-sheet workbook from header plus
// row slices, the same shape the import endpoint receives.
func buildWorkbook(t *testing.T, assetRows, partRows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(AssetSheetName)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(AssetSheetName, "A1", &assetSheetHeader))
	for i, row := range assetRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, f.SetSheetRow(AssetSheetName, cell, &row))
	}

	_, err = f.NewSheet(PartSheetName)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(PartSheetName, "A1", &partSheetHeader))
	for i, row := range partRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, f.SetSheetRow(PartSheetName, cell, &row))
	}

	require.NoError(t, f.DeleteSheet("Sheet1"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func assetRow(name, assetNumber, snNumber, status string) []interface{} {
	return []interface{}{
		name, "", "", snNumber, assetNumber, status,
		"", "", "", "", "", "", "", "", "", "",
	}
}

func partRow(name, partNumber, assetNumber string) []interface{} {
	return []interface{}{name, "", "", "", partNumber, "", assetNumber, "", ""}
}

func TestImportCreatesAndBinds(t *testing.T) {
	setupTestDB(t)
	svc := NewTransferService()

	wb := buildWorkbook(t,
		[][]interface{}{
			assetRow("gpu-node-01", "A-1001", "SN-1001", models.AssetStatusInUse),
		},
		[][]interface{}{
			partRow("boot-ssd", "P-1001", "A-1001"),
			partRow("spare-dimm", "P-1002", ""),
		},
	)

	result, err := svc.Import(wb)
	require.NoError(t, err)
	assert.False(t, result.PartialFailure())
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Updated)

	assetID, err := svc.findAssetByNaturalKey("A-1001", "")
	require.NoError(t, err)
	require.NotEmpty(t, assetID)

	view, err := svc.assets.Compose(assetID)
	require.NoError(t, err)
	require.Len(t, view.Parts, 1)
	assert.Equal(t, "P-1001", view.Parts[0].PartNumber)

	page, err := svc.parts.List(models.PartCatalogInventory, "", "", Page{Number: 1, Size: 10}, nil)
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "P-1002", page.Rows[0].PartNumber)
}

func TestImportUpsertsByNaturalKey(t *testing.T) {
	setupTestDB(t)
	svc := NewTransferService()

	first := buildWorkbook(t,
		[][]interface{}{assetRow("node", "A-2001", "SN-2001", models.AssetStatusFree)},
		nil,
	)
	result, err := svc.Import(first)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)

	// Same asset number again: the row updates in place.
	second := buildWorkbook(t,
		[][]interface{}{assetRow("node-renamed", "A-2001", "SN-2001", models.AssetStatusInUse)},
		nil,
	)
	result, err = svc.Import(second)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)

	assetID, err := svc.findAssetByNaturalKey("A-2001", "")
	require.NoError(t, err)
	view, err := svc.assets.Compose(assetID)
	require.NoError(t, err)
	assert.Equal(t, "node-renamed", view.Name)
	assert.Equal(t, models.AssetStatusInUse, view.AssetStatus)
}

func TestImportBadRowDoesNotAbortBatch(t *testing.T) {
	setupTestDB(t)
	svc := NewTransferService()

	wb := buildWorkbook(t,
		[][]interface{}{
			assetRow("good-node", "A-3001", "SN-3001", models.AssetStatusFree),
			assetRow("bad-node", "A-3002", "SN-3002", "totally-broken"),
		},
		nil,
	)

	result, err := svc.Import(wb)
	require.NoError(t, err)
	assert.True(t, result.PartialFailure())
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Failed())

	require.Len(t, result.Rows, 2)
	assert.True(t, result.Rows[0].Success)
	assert.False(t, result.Rows[1].Success)
	assert.Contains(t, result.Rows[1].Error, "asset_status")

	// The good row is fully queryable despite its neighbor's failure.
	assetID, err := svc.findAssetByNaturalKey("A-3001", "")
	require.NoError(t, err)
	assert.NotEmpty(t, assetID)

	// The bad row left nothing behind.
	assetID, err = svc.findAssetByNaturalKey("A-3002", "")
	require.NoError(t, err)
	assert.Empty(t, assetID)
}

func TestImportRowWithoutNaturalKey(t *testing.T) {
	setupTestDB(t)
	svc := NewTransferService()

	wb := buildWorkbook(t,
		[][]interface{}{assetRow("keyless", "", "", models.AssetStatusFree)},
		nil,
	)

	result, err := svc.Import(wb)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.False(t, result.Rows[0].Success)
}

func TestImportPartReferencingMissingAsset(t *testing.T) {
	setupTestDB(t)
	svc := NewTransferService()

	wb := buildWorkbook(t, nil,
		[][]interface{}{partRow("orphan", "P-4001", "A-nowhere")},
	)

	result, err := svc.Import(wb)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.False(t, result.Rows[0].Success)
	assert.Contains(t, result.Rows[0].Error, "referenced asset")
}

func TestImportRejectsNonWorkbook(t *testing.T) {
	setupTestDB(t)
	svc := NewTransferService()

	_, err := svc.Import(bytes.NewReader([]byte("not a workbook")))
	assert.True(t, errors.Is(err, ErrInvalidQuery))
}

func TestExportRoundTrip(t *testing.T) {
	setupTestDB(t)
	svc := NewTransferService()

	view, err := svc.assets.Create(&AssetSpec{
		Name:        "exported-node",
		AssetNumber: "A-5001",
		SnNumber:    "SN-5001",
		AssetStatus: models.AssetStatusInUse,
	})
	require.NoError(t, err)
	_, err = svc.parts.Create(&models.AssetPartsInfo{Name: "ssd", PartNumber: "P-5001", AssetID: &view.ID})
	require.NoError(t, err)

	dir := t.TempDir()
	fileName, path, err := svc.Export(dir)
	require.NoError(t, err)
	assert.Contains(t, fileName, "asset_")
	assert.FileExists(t, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assetRows, err := f.GetRows(AssetSheetName)
	require.NoError(t, err)
	require.Len(t, assetRows, 2)
	assert.Equal(t, "exported-node", assetRows[1][0])
	assert.Equal(t, "A-5001", assetRows[1][4])

	partRows, err := f.GetRows(PartSheetName)
	require.NoError(t, err)
	require.Len(t, partRows, 2)
	assert.Equal(t, "P-5001", partRows[1][4])
	// The bound part is exported with its asset's number, not its id.
	assert.Equal(t, "A-5001", partRows[1][6])
}

func TestExportEmptyStore(t *testing.T) {
	setupTestDB(t)
	svc := NewTransferService()

	_, _, err := svc.Export(t.TempDir())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWriteTemplate(t *testing.T) {
	setupTestDB(t)
	svc := NewTransferService()

	dir := t.TempDir()
	path, err := svc.WriteTemplate(dir, TemplateID)
	require.NoError(t, err)
	assert.FileExists(t, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(AssetSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, assetSheetHeader, rows[0])

	rows, err = f.GetRows(PartSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, partSheetHeader, rows[0])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteTemplateUnknownID(t *testing.T) {
	setupTestDB(t)
	svc := NewTransferService()

	_, err := svc.WriteTemplate(t.TempDir(), "other_template")
	assert.True(t, errors.Is(err, ErrNotFound))
}
