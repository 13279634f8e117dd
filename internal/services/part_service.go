package services

import (
	"errors"

	"asset_ops_server/internal/db"
	"asset_ops_server/internal/models"

	"gorm.io/gorm"
)

// PartService manages the part lifecycle: inventory parts, parts bound to an
// asset, and the transitions between the two states. A part's asset_id is the
// single source of truth for its catalog.
type PartService struct{}

// NewPartService creates a new part service
func NewPartService() *PartService {
	return &PartService{}
}

// PartPage is one page of part rows.
type PartPage struct {
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
	Rows     []models.AssetPartsInfo `json:"rows"`
}

// List returns one page of parts. partCatalog narrows to inventory (unbound)
// or used (bound) parts; any other non-empty value is an InvalidQuery error.
func (s *PartService) List(partCatalog, assetID, name string, page Page, sorts []SortKey) (*PartPage, error) {
	database := db.GetDB()

	buildQuery := func() (*gorm.DB, error) {
		query := database.Model(&models.AssetPartsInfo{})
		switch partCatalog {
		case "":
			// no constraint
		case models.PartCatalogInventory:
			query = query.Where("asset_id IS NULL OR asset_id = ''")
		case models.PartCatalogUsed:
			query = query.Where("asset_id IS NOT NULL AND asset_id <> ''")
		default:
			return nil, invalidQueryf("unrecognized part_catalog %q", partCatalog)
		}
		if assetID != "" {
			query = query.Where("asset_id = ?", assetID)
		}
		if name != "" {
			query = query.Where("name LIKE ?", "%"+name+"%")
		}
		return query, nil
	}

	query, err := buildQuery()
	if err != nil {
		return nil, err
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, storeErr(err)
	}

	query, _ = buildQuery()
	query, err = applySort(query, sorts, partSortColumns, "id")
	if err != nil {
		return nil, err
	}

	result := &PartPage{Total: total, Page: page.Number, PageSize: page.Size}
	if err := query.Limit(page.Size).Offset(page.Offset()).Find(&result.Rows).Error; err != nil {
		return nil, storeErr(err)
	}
	return result, nil
}

// Get fetches one part by id.
func (s *PartService) Get(id string) (*models.AssetPartsInfo, error) {
	var part models.AssetPartsInfo
	if err := db.GetDB().First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("part %s", id)
		}
		return nil, storeErr(err)
	}
	return &part, nil
}

// Create stores a new part. Without an asset_id the part enters inventory;
// with one it is created already bound, provided the asset exists.
func (s *PartService) Create(part *models.AssetPartsInfo) (*models.AssetPartsInfo, error) {
	part.ID = ""
	if part.AssetID != nil && *part.AssetID != "" {
		if err := s.assetExists(*part.AssetID); err != nil {
			return nil, err
		}
	} else {
		part.AssetID = nil
	}

	if err := db.GetDB().Create(part).Error; err != nil {
		return nil, storeErr(err)
	}
	return part, nil
}

// Update replaces the descriptive fields of a part by id, in whatever state
// it is. The binding is not touched here; that goes through Bind/Unbind.
func (s *PartService) Update(id string, input *models.AssetPartsInfo) (*models.AssetPartsInfo, error) {
	part, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	part.PartType = input.PartType
	part.PartBrand = input.PartBrand
	part.PartConfig = input.PartConfig
	part.PartNumber = input.PartNumber
	part.PersonalUsedFlag = input.PersonalUsedFlag
	part.Surplus = input.Surplus
	part.Name = input.Name
	part.Description = input.Description
	part.Extra = input.Extra

	if err := db.GetDB().Save(part).Error; err != nil {
		return nil, storeErr(err)
	}
	return part, nil
}

// Delete removes a part by id regardless of its current state.
func (s *PartService) Delete(id string) error {
	result := db.GetDB().Delete(&models.AssetPartsInfo{}, "id = ?", id)
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundf("part %s", id)
	}
	return nil
}

// Bind attaches a part to an asset. Rebinding a bound part to a new asset is
// an implicit unbind-then-bind; binding to a missing asset is NotFound. The
// write is a compare-and-set on the part's current asset_id so that of two
// concurrent binds one observes a Conflict instead of silently overwriting.
func (s *PartService) Bind(partID, assetID string) (*models.AssetPartsInfo, error) {
	if err := s.assetExists(assetID); err != nil {
		return nil, err
	}

	part, err := s.Get(partID)
	if err != nil {
		return nil, err
	}

	if err := s.casBind(partID, part.AssetID, assetID); err != nil {
		return nil, err
	}

	return s.Get(partID)
}

// casBind rebinds the part from the observed binding to assetID with one
// conditional UPDATE. Zero rows affected means another writer moved the part
// between the read and this write; that caller gets the Conflict.
func (s *PartService) casBind(partID string, observed *string, assetID string) error {
	query := db.GetDB().Model(&models.AssetPartsInfo{}).Where("id = ?", partID)
	if observed == nil {
		query = query.Where("asset_id IS NULL")
	} else {
		query = query.Where("asset_id = ?", *observed)
	}
	result := query.Update("asset_id", assetID)
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return conflictf("part %s was rebound concurrently", partID)
	}
	return nil
}

// Unbind detaches a part from the asset it is bound to. The caller must name
// the asset the part is actually bound to; a stale or wrong asset reference
// is a Conflict, not a silent no-op.
func (s *PartService) Unbind(partID, assetID string) (*models.AssetPartsInfo, error) {
	part, err := s.Get(partID)
	if err != nil {
		return nil, err
	}
	if part.AssetID == nil || *part.AssetID != assetID {
		return nil, conflictf("part %s is not bound to asset %s", partID, assetID)
	}

	result := db.GetDB().Model(&models.AssetPartsInfo{}).
		Where("id = ? AND asset_id = ?", partID, assetID).
		Update("asset_id", nil)
	if result.Error != nil {
		return nil, storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, conflictf("part %s is not bound to asset %s", partID, assetID)
	}

	return s.Get(partID)
}

func (s *PartService) assetExists(assetID string) error {
	var count int64
	if err := db.GetDB().Model(&models.AssetBasicInfo{}).Where("id = ?", assetID).Count(&count).Error; err != nil {
		return storeErr(err)
	}
	if count == 0 {
		return notFoundf("asset %s", assetID)
	}
	return nil
}
