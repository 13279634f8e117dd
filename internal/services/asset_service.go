package services

import (
	"errors"

	"asset_ops_server/internal/db"
	"asset_ops_server/internal/models"

	"gorm.io/gorm"
)

// StatusNotifier, when set, is invoked after every successful asset status
// transition. The HTTP layer points it at the websocket hub so bigscreen
// clients see transitions live.
var StatusNotifier func(assetID, status string)

func notifyStatus(assetID, status string) {
	if StatusNotifier != nil {
		StatusNotifier(assetID, status)
	}
}

// AssetService composes the seven asset tables into one logical view and
// accepts one merged object for writes. It is a stateless facade over the
// per-table store; the composed view is never cached and never the system of
// record.
type AssetService struct{}

// NewAssetService creates a new asset service
func NewAssetService() *AssetService {
	return &AssetService{}
}

// AssetSpec is the merged write object of an asset. Dependent groups are
// optional; a nil group is left untouched on update and skipped on create.
type AssetSpec struct {
	AssetTypeID     string          `json:"asset_type_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	EquipmentNumber string          `json:"equipment_number"`
	SnNumber        string          `json:"sn_number"`
	AssetNumber     string          `json:"asset_number"`
	AssetStatus     string          `json:"asset_status"`
	Extra           models.ExtraMap `json:"extra"`

	Manufacturer *models.AssetManufacturesInfo `json:"manufacturer,omitempty"`
	Position     *models.AssetPositionsInfo    `json:"position,omitempty"`
	Contract     *models.AssetContractsInfo    `json:"contract,omitempty"`
	Belong       *models.AssetBelongsInfo      `json:"belong,omitempty"`
	Customer     *models.AssetCustomersInfo    `json:"customer,omitempty"`
}

// AssetView is the composed read view of one asset. Absent dependents are
// nil or empty, never an error.
type AssetView struct {
	models.AssetBasicInfo
	Manufacturer *models.AssetManufacturesInfo `json:"manufacturer"`
	Position     *models.AssetPositionsInfo    `json:"position"`
	Contract     *models.AssetContractsInfo    `json:"contract"`
	Belong       *models.AssetBelongsInfo      `json:"belong"`
	Customers    []models.AssetCustomersInfo   `json:"customers"`
	Parts        []models.AssetPartsInfo       `json:"parts"`
}

// AssetPage is one page of composed asset rows.
type AssetPage struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Rows     []AssetView `json:"rows"`
}

// Compose assembles the merged view of one asset by left-joining the six
// dependent tables on asset_id. NotFound only when the basic record itself is
// absent.
func (s *AssetService) Compose(id string) (*AssetView, error) {
	database := db.GetDB()

	var basic models.AssetBasicInfo
	if err := database.First(&basic, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("asset %s", id)
		}
		return nil, storeErr(err)
	}

	view := &AssetView{AssetBasicInfo: basic}

	var manufacturer models.AssetManufacturesInfo
	if err := database.First(&manufacturer, "asset_id = ?", id).Error; err == nil {
		view.Manufacturer = &manufacturer
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr(err)
	}

	var position models.AssetPositionsInfo
	if err := database.First(&position, "asset_id = ?", id).Error; err == nil {
		view.Position = &position
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr(err)
	}

	var contract models.AssetContractsInfo
	if err := database.First(&contract, "asset_id = ?", id).Error; err == nil {
		view.Contract = &contract
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr(err)
	}

	var belong models.AssetBelongsInfo
	if err := database.First(&belong, "asset_id = ?", id).Error; err == nil {
		view.Belong = &belong
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr(err)
	}

	if err := database.Find(&view.Customers, "asset_id = ?", id).Error; err != nil {
		return nil, storeErr(err)
	}
	if err := database.Find(&view.Parts, "asset_id = ?", id).Error; err != nil {
		return nil, storeErr(err)
	}

	return view, nil
}

// List returns one filtered, sorted page of composed assets plus the total
// matching count. Pages beyond the available range return empty rows with the
// correct total.
func (s *AssetService) List(filter AssetFilter, page Page, sorts []SortKey) (*AssetPage, error) {
	database := db.GetDB()

	base := filter.apply(database)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, storeErr(err)
	}

	query := filter.apply(database).Select("ops_assets_basic_info.id")
	query, err := applySort(query, sorts, assetSortColumns, "ops_assets_basic_info.id")
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := query.Limit(page.Size).Offset(page.Offset()).Scan(&ids).Error; err != nil {
		return nil, storeErr(err)
	}

	result := &AssetPage{Total: total, Page: page.Number, PageSize: page.Size, Rows: make([]AssetView, 0, len(ids))}
	for _, id := range ids {
		view, err := s.Compose(id)
		if err != nil {
			return nil, err
		}
		result.Rows = append(result.Rows, *view)
	}
	return result, nil
}

// Create allocates a new asset and whatever dependent sub-records the spec
// carries, all inside one transaction so a mid-write failure leaves no
// partially created aggregate behind. The basic record is written first.
func (s *AssetService) Create(spec *AssetSpec) (*AssetView, error) {
	basic := models.AssetBasicInfo{
		AssetTypeID:     spec.AssetTypeID,
		Name:            spec.Name,
		Description:     spec.Description,
		EquipmentNumber: spec.EquipmentNumber,
		SnNumber:        spec.SnNumber,
		AssetNumber:     spec.AssetNumber,
		AssetStatus:     spec.AssetStatus,
		Extra:           spec.Extra,
	}

	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&basic).Error; err != nil {
			return storeErr(err)
		}
		return createDependents(tx, basic.ID, spec)
	})
	if err != nil {
		return nil, err
	}

	return s.Compose(basic.ID)
}

func createDependents(tx *gorm.DB, assetID string, spec *AssetSpec) error {
	if spec.Manufacturer != nil {
		spec.Manufacturer.ID = ""
		spec.Manufacturer.AssetID = &assetID
		if err := tx.Create(spec.Manufacturer).Error; err != nil {
			return storeErr(err)
		}
	}
	if spec.Position != nil {
		spec.Position.ID = ""
		spec.Position.AssetID = &assetID
		if err := tx.Create(spec.Position).Error; err != nil {
			return storeErr(err)
		}
	}
	if spec.Contract != nil {
		spec.Contract.ID = ""
		spec.Contract.AssetID = &assetID
		if err := tx.Create(spec.Contract).Error; err != nil {
			return storeErr(err)
		}
	}
	if spec.Belong != nil {
		spec.Belong.ID = ""
		spec.Belong.AssetID = &assetID
		if err := tx.Create(spec.Belong).Error; err != nil {
			return storeErr(err)
		}
	}
	if spec.Customer != nil {
		spec.Customer.ID = ""
		spec.Customer.AssetID = &assetID
		if err := tx.Create(spec.Customer).Error; err != nil {
			return storeErr(err)
		}
	}
	return nil
}

// Update replaces the basic-info fields and upserts each dependent group the
// spec carries. Groups absent from the spec are left untouched; update is a
// per-field-group upsert, not a whole-aggregate replace.
func (s *AssetService) Update(id string, spec *AssetSpec) (*AssetView, error) {
	err := db.GetDB().Transaction(func(tx *gorm.DB) error {
		var basic models.AssetBasicInfo
		if err := tx.First(&basic, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("asset %s", id)
			}
			return storeErr(err)
		}

		basic.AssetTypeID = spec.AssetTypeID
		basic.Name = spec.Name
		basic.Description = spec.Description
		basic.EquipmentNumber = spec.EquipmentNumber
		basic.SnNumber = spec.SnNumber
		basic.AssetNumber = spec.AssetNumber
		basic.AssetStatus = spec.AssetStatus
		basic.Extra = spec.Extra
		if err := tx.Save(&basic).Error; err != nil {
			return storeErr(err)
		}

		if spec.Manufacturer != nil {
			var existing models.AssetManufacturesInfo
			err := tx.First(&existing, "asset_id = ?", id).Error
			switch {
			case err == nil:
				existing.Name = spec.Manufacturer.Name
				existing.Description = spec.Manufacturer.Description
				existing.Extra = spec.Manufacturer.Extra
				if err := tx.Save(&existing).Error; err != nil {
					return storeErr(err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				spec.Manufacturer.ID = ""
				spec.Manufacturer.AssetID = &basic.ID
				if err := tx.Create(spec.Manufacturer).Error; err != nil {
					return storeErr(err)
				}
			default:
				return storeErr(err)
			}
		}

		if spec.Position != nil {
			var existing models.AssetPositionsInfo
			err := tx.First(&existing, "asset_id = ?", id).Error
			switch {
			case err == nil:
				existing.FramePosition = spec.Position.FramePosition
				existing.CabinetPosition = spec.Position.CabinetPosition
				existing.UPosition = spec.Position.UPosition
				existing.Description = spec.Position.Description
				if err := tx.Save(&existing).Error; err != nil {
					return storeErr(err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				spec.Position.ID = ""
				spec.Position.AssetID = &basic.ID
				if err := tx.Create(spec.Position).Error; err != nil {
					return storeErr(err)
				}
			default:
				return storeErr(err)
			}
		}

		if spec.Contract != nil {
			var existing models.AssetContractsInfo
			err := tx.First(&existing, "asset_id = ?", id).Error
			switch {
			case err == nil:
				existing.ContractNumber = spec.Contract.ContractNumber
				existing.PurchaseDate = spec.Contract.PurchaseDate
				existing.BatchNumber = spec.Contract.BatchNumber
				existing.Description = spec.Contract.Description
				if err := tx.Save(&existing).Error; err != nil {
					return storeErr(err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				spec.Contract.ID = ""
				spec.Contract.AssetID = &basic.ID
				if err := tx.Create(spec.Contract).Error; err != nil {
					return storeErr(err)
				}
			default:
				return storeErr(err)
			}
		}

		if spec.Belong != nil {
			var existing models.AssetBelongsInfo
			err := tx.First(&existing, "asset_id = ?", id).Error
			switch {
			case err == nil:
				existing.DepartmentID = spec.Belong.DepartmentID
				existing.DepartmentName = spec.Belong.DepartmentName
				existing.UserID = spec.Belong.UserID
				existing.UserName = spec.Belong.UserName
				existing.TelNumber = spec.Belong.TelNumber
				existing.Description = spec.Belong.Description
				if err := tx.Save(&existing).Error; err != nil {
					return storeErr(err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				spec.Belong.ID = ""
				spec.Belong.AssetID = &basic.ID
				if err := tx.Create(spec.Belong).Error; err != nil {
					return storeErr(err)
				}
			default:
				return storeErr(err)
			}
		}

		if spec.Customer != nil {
			var existing models.AssetCustomersInfo
			err := tx.First(&existing, "asset_id = ?", id).Error
			switch {
			case err == nil:
				existing.CustomerID = spec.Customer.CustomerID
				existing.CustomerName = spec.Customer.CustomerName
				existing.RentalDuration = spec.Customer.RentalDuration
				existing.StartDate = spec.Customer.StartDate
				existing.EndDate = spec.Customer.EndDate
				existing.VlanID = spec.Customer.VlanID
				existing.FloatIP = spec.Customer.FloatIP
				existing.BandWidth = spec.Customer.BandWidth
				existing.Description = spec.Customer.Description
				if err := tx.Save(&existing).Error; err != nil {
					return storeErr(err)
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				spec.Customer.ID = ""
				spec.Customer.AssetID = &basic.ID
				if err := tx.Create(spec.Customer).Error; err != nil {
					return storeErr(err)
				}
			default:
				return storeErr(err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Compose(id)
}

// Delete removes the basic-info record only. Dependent records are not
// cascaded; a part still bound to the asset keeps its dangling asset_id.
// Accepted debt, pinned by the service tests.
func (s *AssetService) Delete(id string) error {
	result := db.GetDB().Delete(&models.AssetBasicInfo{}, "id = ?", id)
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFoundf("asset %s", id)
	}
	return nil
}

// StatusUpdateItem is one (asset, status) pair of a batch status update.
type StatusUpdateItem struct {
	AssetID     string `json:"asset_id"`
	AssetStatus string `json:"asset_status"`
}

// BatchUpdateStatus applies each item independently. A failure on one id
// never prevents the others from applying; every outcome is reported in the
// returned batch result.
func (s *AssetService) BatchUpdateStatus(items []StatusUpdateItem) *BatchResult {
	database := db.GetDB()
	result := &BatchResult{Items: make([]ItemResult, 0, len(items))}

	for _, item := range items {
		outcome := ItemResult{ID: item.AssetID, Success: true}

		res := database.Model(&models.AssetBasicInfo{}).
			Where("id = ?", item.AssetID).
			Update("asset_status", item.AssetStatus)
		switch {
		case res.Error != nil:
			outcome.Success = false
			outcome.Error = storeErr(res.Error).Error()
		case res.RowsAffected == 0:
			outcome.Success = false
			outcome.Error = notFoundf("asset %s", item.AssetID).Error()
		default:
			notifyStatus(item.AssetID, item.AssetStatus)
		}

		result.Items = append(result.Items, outcome)
	}

	return result
}
