package services

import (
	"asset_ops_server/internal/db"
	"asset_ops_server/internal/models"
)

// ManufactureService handles the standalone manufacturer endpoints. Vendor
// rows may exist unbound or linked to an asset by asset_id.
type ManufactureService struct{}

// NewManufactureService creates a new manufacture service
func NewManufactureService() *ManufactureService {
	return &ManufactureService{}
}

var manufactureSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// ManufacturePage is one page of manufacturer rows.
type ManufacturePage struct {
	Total    int64                          `json:"total"`
	Page     int                            `json:"page"`
	PageSize int                            `json:"page_size"`
	Rows     []models.AssetManufacturesInfo `json:"rows"`
}

// List returns one page of manufacturers, optionally filtered by name.
func (s *ManufactureService) List(name string, page Page, sorts []SortKey) (*ManufacturePage, error) {
	database := db.GetDB()

	query := database.Model(&models.AssetManufacturesInfo{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, storeErr(err)
	}

	query = database.Model(&models.AssetManufacturesInfo{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	query, err := applySort(query, sorts, manufactureSortColumns, "id")
	if err != nil {
		return nil, err
	}

	result := &ManufacturePage{Total: total, Page: page.Number, PageSize: page.Size}
	if err := query.Limit(page.Size).Offset(page.Offset()).Find(&result.Rows).Error; err != nil {
		return nil, storeErr(err)
	}
	return result, nil
}

// Create stores a new manufacturer row.
func (s *ManufactureService) Create(m *models.AssetManufacturesInfo) (*models.AssetManufacturesInfo, error) {
	m.ID = ""
	if m.AssetID != nil && *m.AssetID == "" {
		m.AssetID = nil
	}
	if err := db.GetDB().Create(m).Error; err != nil {
		return nil, storeErr(err)
	}
	return m, nil
}

// Update replaces a manufacturer row's fields by id.
func (s *ManufactureService) Update(id string, input *models.AssetManufacturesInfo) (*models.AssetManufacturesInfo, error) {
	var m models.AssetManufacturesInfo
	if err := db.GetDB().First(&m, "id = ?", id).Error; err != nil {
		return nil, storeErr(err)
	}

	m.Name = input.Name
	m.Description = input.Description
	m.Extra = input.Extra
	if err := db.GetDB().Save(&m).Error; err != nil {
		return nil, storeErr(err)
	}
	return &m, nil
}

// Delete removes a manufacturer row by id.
func (s *ManufactureService) Delete(id string) error {
	result := db.GetDB().Delete(&models.AssetManufacturesInfo{}, "id = ?", id)
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundf("manufacturer %s", id)
	}
	return nil
}
