package services

import (
	"errors"

	"asset_ops_server/internal/db"
	"asset_ops_server/internal/models"

	"gorm.io/gorm"
)

// AssetTypeService manages the classification tree. parent_id references form
// a forest; the service rejects writes that would close a cycle.
type AssetTypeService struct{}

// NewAssetTypeService creates a new asset type service
func NewAssetTypeService() *AssetTypeService {
	return &AssetTypeService{}
}

// List returns asset types, optionally narrowed by a name substring, in queue
// then name order.
func (s *AssetTypeService) List(name string) ([]models.AssetType, error) {
	query := db.GetDB().Model(&models.AssetType{})
	if name != "" {
		query = query.Where("asset_type_name LIKE ?", "%"+name+"%")
	}

	var types []models.AssetType
	if err := query.Order("queue ASC").Order("asset_type_name ASC").Find(&types).Error; err != nil {
		return nil, storeErr(err)
	}
	return types, nil
}

// Create stores a new classification node. A non-nil parent must exist.
func (s *AssetTypeService) Create(t *models.AssetType) (*models.AssetType, error) {
	t.ID = ""
	if t.ParentID != nil && *t.ParentID == "" {
		t.ParentID = nil
	}
	if t.ParentID != nil {
		var count int64
		if err := db.GetDB().Model(&models.AssetType{}).Where("id = ?", *t.ParentID).Count(&count).Error; err != nil {
			return nil, storeErr(err)
		}
		if count == 0 {
			return nil, notFoundf("asset type %s", *t.ParentID)
		}
	}

	if err := db.GetDB().Create(t).Error; err != nil {
		return nil, storeErr(err)
	}
	return t, nil
}

// Reparent moves a node under a new parent (nil makes it a root), refusing
// moves that would make the node its own ancestor.
func (s *AssetTypeService) Reparent(id string, parentID *string) (*models.AssetType, error) {
	var node models.AssetType
	if err := db.GetDB().First(&node, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("asset type %s", id)
		}
		return nil, storeErr(err)
	}

	if parentID != nil && *parentID == "" {
		parentID = nil
	}
	if parentID != nil {
		if *parentID == id {
			return nil, invalidQueryf("asset type %s cannot be its own parent", id)
		}
		cycle, err := s.isDescendant(*parentID, id)
		if err != nil {
			return nil, err
		}
		if cycle {
			return nil, invalidQueryf("moving asset type %s under %s would create a cycle", id, *parentID)
		}
	}

	node.ParentID = parentID
	if err := db.GetDB().Save(&node).Error; err != nil {
		return nil, storeErr(err)
	}
	return &node, nil
}

// isDescendant walks the parent chain of candidate and reports whether
// ancestor appears on it.
func (s *AssetTypeService) isDescendant(candidate, ancestor string) (bool, error) {
	current := candidate
	for i := 0; i < 1000; i++ { // depth is unbounded in data, bounded here
		var node models.AssetType
		err := db.GetDB().Select("parent_id").First(&node, "id = ?", current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, notFoundf("asset type %s", current)
			}
			return false, storeErr(err)
		}
		if node.ParentID == nil {
			return false, nil
		}
		if *node.ParentID == ancestor {
			return true, nil
		}
		current = *node.ParentID
	}
	return true, nil
}
