package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"asset_ops_server/internal/db"
	"asset_ops_server/internal/models"
	"asset_ops_server/pkg/utils"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Sheet names of the import/export workbook. Phase order matters: part rows
// may reference assets created by asset rows of the same batch.
const (
	AssetSheetName = "assets"
	PartSheetName  = "parts"
)

// TemplateID is the only import template this server serves.
const TemplateID = "asset_template"

var assetSheetHeader = []string{
	"name", "description", "equipment_number", "sn_number", "asset_number",
	"asset_status", "manufacturer_name", "frame_position", "cabinet_position",
	"u_position", "contract_number", "purchase_date", "batch_number",
	"department_name", "user_name", "extra",
}

var partSheetHeader = []string{
	"name", "part_type", "part_brand", "part_config", "part_number",
	"surplus", "asset_number", "description", "extra",
}

// TransferService reconciles spreadsheet rows against the store (import) and
// projects the store into a workbook (export). It drives the composer and the
// part lifecycle row by row; it never writes tables directly.
type TransferService struct {
	assets *AssetService
	parts  *PartService
}

// NewTransferService creates a new transfer service
func NewTransferService() *TransferService {
	return &TransferService{
		assets: NewAssetService(),
		parts:  NewPartService(),
	}
}

// Import consumes the two sheets of an uploaded workbook in order: every
// asset row first, then every part row. Rows are upserted by natural key and
// processed best-effort: a bad row is recorded and the batch continues. The
// returned result carries one outcome per row.
func (s *TransferService) Import(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, invalidQueryf("not a readable workbook: %v", err)
	}
	defer f.Close()

	result := &ImportResult{}

	assetRows, err := f.GetRows(AssetSheetName)
	if err != nil {
		return nil, invalidQueryf("workbook has no %q sheet", AssetSheetName)
	}
	s.importSheet(result, AssetSheetName, assetRows, s.importAssetRow)

	partRows, err := f.GetRows(PartSheetName)
	if err != nil {
		return nil, invalidQueryf("workbook has no %q sheet", PartSheetName)
	}
	s.importSheet(result, PartSheetName, partRows, s.importPartRow)

	return result, nil
}

type rowImporter func(cells map[string]string) (key string, created bool, err error)

func (s *TransferService) importSheet(result *ImportResult, sheet string, rows [][]string, importRow rowImporter) {
	if len(rows) == 0 {
		return
	}
	header := rows[0]

	for i, row := range rows[1:] {
		cells := make(map[string]string, len(header))
		for col, name := range header {
			if col < len(row) {
				cells[strings.TrimSpace(name)] = strings.TrimSpace(row[col])
			}
		}
		if allEmpty(cells) {
			continue
		}

		key, created, err := importRow(cells)
		outcome := RowResult{Sheet: sheet, Row: i + 1, Key: key, Success: err == nil}
		if err != nil {
			outcome.Error = err.Error()
		} else if created {
			result.Created++
		} else {
			result.Updated++
		}
		result.Rows = append(result.Rows, outcome)
	}
}

func allEmpty(cells map[string]string) bool {
	for _, v := range cells {
		if v != "" {
			return false
		}
	}
	return true
}

// importAssetRow upserts one asset row. The natural key is the asset number,
// falling back to the serial number.
func (s *TransferService) importAssetRow(cells map[string]string) (string, bool, error) {
	assetNumber := cells["asset_number"]
	snNumber := cells["sn_number"]
	key := assetNumber
	if key == "" {
		key = snNumber
	}
	if key == "" {
		return "", false, invalidQueryf("row carries neither asset_number nor sn_number")
	}

	status := cells["asset_status"]
	if status != "" && !models.IsKnownAssetStatus(status) {
		return key, false, invalidQueryf("unrecognized asset_status %q", status)
	}

	extra, err := models.ParseExtra(cells["extra"])
	if err != nil {
		return key, false, invalidQueryf("%v", err)
	}

	purchaseDate, err := utils.ParseDate(cells["purchase_date"])
	if err != nil {
		return key, false, invalidQueryf("unparseable purchase_date %q", cells["purchase_date"])
	}

	spec := &AssetSpec{
		Name:            cells["name"],
		Description:     cells["description"],
		EquipmentNumber: cells["equipment_number"],
		SnNumber:        snNumber,
		AssetNumber:     assetNumber,
		AssetStatus:     status,
		Extra:           extra,
	}
	if cells["manufacturer_name"] != "" {
		spec.Manufacturer = &models.AssetManufacturesInfo{Name: cells["manufacturer_name"]}
	}
	if cells["frame_position"] != "" || cells["cabinet_position"] != "" || cells["u_position"] != "" {
		spec.Position = &models.AssetPositionsInfo{
			FramePosition:   cells["frame_position"],
			CabinetPosition: cells["cabinet_position"],
			UPosition:       cells["u_position"],
		}
	}
	if cells["contract_number"] != "" || purchaseDate != nil || cells["batch_number"] != "" {
		spec.Contract = &models.AssetContractsInfo{
			ContractNumber: cells["contract_number"],
			PurchaseDate:   purchaseDate,
			BatchNumber:    cells["batch_number"],
		}
	}
	if cells["department_name"] != "" || cells["user_name"] != "" {
		spec.Belong = &models.AssetBelongsInfo{
			DepartmentName: cells["department_name"],
			UserName:       cells["user_name"],
		}
	}

	existing, err := s.findAssetByNaturalKey(assetNumber, snNumber)
	if err != nil {
		return key, false, err
	}
	if existing != "" {
		_, err = s.assets.Update(existing, spec)
		return key, false, err
	}
	_, err = s.assets.Create(spec)
	return key, true, err
}

// importPartRow upserts one part row by part number and, when the row names
// an asset, binds the part to it.
func (s *TransferService) importPartRow(cells map[string]string) (string, bool, error) {
	partNumber := cells["part_number"]
	if partNumber == "" {
		return "", false, invalidQueryf("row carries no part_number")
	}

	extra, err := models.ParseExtra(cells["extra"])
	if err != nil {
		return partNumber, false, invalidQueryf("%v", err)
	}

	input := &models.AssetPartsInfo{
		Name:        cells["name"],
		PartType:    cells["part_type"],
		PartBrand:   cells["part_brand"],
		PartConfig:  cells["part_config"],
		PartNumber:  partNumber,
		Surplus:     cells["surplus"],
		Description: cells["description"],
		Extra:       extra,
	}

	var existing models.AssetPartsInfo
	err = db.GetDB().First(&existing, "part_number = ?", partNumber).Error
	created := false
	var part *models.AssetPartsInfo
	switch {
	case err == nil:
		part, err = s.parts.Update(existing.ID, input)
		if err != nil {
			return partNumber, false, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		part, err = s.parts.Create(input)
		if err != nil {
			return partNumber, false, err
		}
		created = true
	default:
		return partNumber, false, storeErr(err)
	}

	if ref := cells["asset_number"]; ref != "" {
		assetID, err := s.findAssetByNaturalKey(ref, ref)
		if err != nil {
			return partNumber, created, err
		}
		if assetID == "" {
			return partNumber, created, notFoundf("referenced asset %s", ref)
		}
		if part.AssetID == nil || *part.AssetID != assetID {
			if _, err := s.parts.Bind(part.ID, assetID); err != nil {
				return partNumber, created, err
			}
		}
	}

	return partNumber, created, nil
}

// findAssetByNaturalKey resolves an asset id by asset number first, serial
// number second. Empty string means no match, which is not an error here;
// the caller decides whether that means create or fail.
func (s *TransferService) findAssetByNaturalKey(assetNumber, snNumber string) (string, error) {
	var basic models.AssetBasicInfo

	if assetNumber != "" {
		err := db.GetDB().First(&basic, "asset_number = ?", assetNumber).Error
		if err == nil {
			return basic.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", storeErr(err)
		}
	}
	if snNumber != "" {
		err := db.GetDB().First(&basic, "sn_number = ?", snNumber).Error
		if err == nil {
			return basic.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", storeErr(err)
		}
	}
	return "", nil
}

// Export composes every asset and projects the store into a two-sheet
// workbook under dir. The file name is timestamp-qualified so concurrent
// exports never collide. An empty store produces no file.
func (s *TransferService) Export(dir string) (fileName string, path string, err error) {
	database := db.GetDB()

	var ids []string
	if err := database.Model(&models.AssetBasicInfo{}).Order("created_at ASC").Pluck("id", &ids).Error; err != nil {
		return "", "", storeErr(err)
	}
	var parts []models.AssetPartsInfo
	if err := database.Order("created_at ASC").Find(&parts).Error; err != nil {
		return "", "", storeErr(err)
	}

	if len(ids) == 0 && len(parts) == 0 {
		return "", "", notFoundf("no data to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(AssetSheetName); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if err := f.SetSheetRow(AssetSheetName, "A1", &assetSheetHeader); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	assetNumbers := make(map[string]string, len(ids))
	for i, id := range ids {
		view, err := s.assets.Compose(id)
		if err != nil {
			return "", "", err
		}
		assetNumbers[view.ID] = view.AssetNumber

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(AssetSheetName, cell, assetExportRow(view)); err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
		}
	}

	if _, err := f.NewSheet(PartSheetName); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if err := f.SetSheetRow(PartSheetName, "A1", &partSheetHeader); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	for i, part := range parts {
		assetNumber := ""
		if part.AssetID != nil {
			assetNumber = assetNumbers[*part.AssetID]
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(PartSheetName, cell, partExportRow(&part, assetNumber)); err != nil {
			return "", "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	fileName = "asset_" + utils.CompactTimestamp() + ".xlsx"
	path = filepath.Join(dir, fileName)
	if err := f.SaveAs(path); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return fileName, path, nil
}

// WriteTemplate writes the header-only import template workbook under dir and
// returns its path. Unknown template ids are NotFound.
func (s *TransferService) WriteTemplate(dir, templateID string) (string, error) {
	if templateID != TemplateID {
		return "", notFoundf("template %s", templateID)
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(AssetSheetName); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if err := f.SetSheetRow(AssetSheetName, "A1", &assetSheetHeader); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if _, err := f.NewSheet(PartSheetName); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if err := f.SetSheetRow(PartSheetName, "A1", &partSheetHeader); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	path := filepath.Join(dir, templateID+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return path, nil
}

func assetExportRow(view *AssetView) *[]interface{} {
	manufacturer := ""
	if view.Manufacturer != nil {
		manufacturer = view.Manufacturer.Name
	}
	frame, cabinet, uPos := "", "", ""
	if view.Position != nil {
		frame = view.Position.FramePosition
		cabinet = view.Position.CabinetPosition
		uPos = view.Position.UPosition
	}
	contractNumber, purchaseDate, batchNumber := "", "", ""
	if view.Contract != nil {
		contractNumber = view.Contract.ContractNumber
		purchaseDate = utils.FormatDateTime(view.Contract.PurchaseDate)
		batchNumber = view.Contract.BatchNumber
	}
	department, owner := "", ""
	if view.Belong != nil {
		department = view.Belong.DepartmentName
		owner = view.Belong.UserName
	}
	extra := ""
	if len(view.Extra) > 0 {
		if v, err := view.Extra.Value(); err == nil {
			extra = v.(string)
		}
	}

	return &[]interface{}{
		view.Name, view.Description, view.EquipmentNumber, view.SnNumber,
		view.AssetNumber, view.AssetStatus, manufacturer, frame, cabinet,
		uPos, contractNumber, purchaseDate, batchNumber, department, owner,
		extra,
	}
}

func partExportRow(part *models.AssetPartsInfo, assetNumber string) *[]interface{} {
	extra := ""
	if len(part.Extra) > 0 {
		if v, err := part.Extra.Value(); err == nil {
			extra = v.(string)
		}
	}
	return &[]interface{}{
		part.Name, part.PartType, part.PartBrand, part.PartConfig,
		part.PartNumber, part.Surplus, assetNumber, part.Description, extra,
	}
}
