package services

import (
	"strings"

	"gorm.io/gorm"
)

// Page is a normalized 1-based page request.
type Page struct {
	Number int
	Size   int
}

// NormalizePage clamps page number and size the same way the list endpoints
// document them: pages start at 1, size defaults to 10 and is capped at 100.
func NormalizePage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}
	return Page{Number: number, Size: size}
}

// Offset returns the row offset of the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// SortKey is one (field, direction) pair of an ordered sort specification.
type SortKey struct {
	Field     string
	Direction string
}

// ParseSort splits the comma-separated sort_keys / sort_dirs query values into
// sort pairs. Directions are restricted to asc/desc; anything else is an
// InvalidQuery error rather than a silent default. Missing directions mean
// ascending.
func ParseSort(sortKeys, sortDirs string) ([]SortKey, error) {
	if strings.TrimSpace(sortKeys) == "" {
		return nil, nil
	}
	keys := splitList(sortKeys)
	dirs := splitList(sortDirs)
	if len(dirs) > len(keys) {
		return nil, invalidQueryf("more sort directions than sort keys")
	}

	sorts := make([]SortKey, 0, len(keys))
	for i, key := range keys {
		dir := "asc"
		if i < len(dirs) {
			dir = strings.ToLower(dirs[i])
		}
		if dir != "asc" && dir != "desc" {
			return nil, invalidQueryf("unrecognized sort direction %q", dirs[i])
		}
		sorts = append(sorts, SortKey{Field: key, Direction: dir})
	}
	return sorts, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// applySort appends ORDER BY clauses for the given sort keys, validating each
// field against a column whitelist, and finishes with the stable tie-break on
// the table's primary key.
func applySort(query *gorm.DB, sorts []SortKey, columns map[string]string, tieBreak string) (*gorm.DB, error) {
	for _, s := range sorts {
		column, ok := columns[s.Field]
		if !ok {
			return nil, invalidQueryf("unrecognized sort field %q", s.Field)
		}
		query = query.Order(column + " " + strings.ToUpper(s.Direction))
	}
	return query.Order(tieBreak + " ASC"), nil
}

// AssetFilter carries the optional list filters of the asset list endpoint.
// Empty values mean "no constraint", never "match empty".
type AssetFilter struct {
	AssetID         string
	Name            string
	Status          string
	FramePosition   string
	CabinetPosition string
	UPosition       string
	EquipmentNumber string
	AssetNumber     string
	SnNumber        string
	DepartmentName  string
	UserName        string
}

// assetSortColumns whitelists the sort fields of the composed asset list and
// maps them onto their joined columns.
var assetSortColumns = map[string]string{
	"name":             "ops_assets_basic_info.name",
	"asset_status":     "ops_assets_basic_info.asset_status",
	"asset_number":     "ops_assets_basic_info.asset_number",
	"sn_number":        "ops_assets_basic_info.sn_number",
	"equipment_number": "ops_assets_basic_info.equipment_number",
	"created_at":       "ops_assets_basic_info.created_at",
	"updated_at":       "ops_assets_basic_info.updated_at",
	"frame_position":   "ops_assets_positions_info.frame_position",
	"cabinet_position": "ops_assets_positions_info.cabinet_position",
	"u_position":       "ops_assets_positions_info.u_position",
	"department_name":  "ops_assets_belongs_info.department_name",
	"user_name":        "ops_assets_belongs_info.user_name",
}

// apply builds the filtered asset query. Position and ownership filters need
// their 0..1 side tables, so the basic-info table is left-joined against both;
// substring filters use LIKE so the same query runs on postgres and on the
// sqlite test dialector.
func (f *AssetFilter) apply(db *gorm.DB) *gorm.DB {
	query := db.Table("ops_assets_basic_info").
		Joins("LEFT JOIN ops_assets_positions_info ON ops_assets_positions_info.asset_id = ops_assets_basic_info.id").
		Joins("LEFT JOIN ops_assets_belongs_info ON ops_assets_belongs_info.asset_id = ops_assets_basic_info.id")

	if f.AssetID != "" {
		query = query.Where("ops_assets_basic_info.id = ?", f.AssetID)
	}
	if f.Name != "" {
		query = query.Where("ops_assets_basic_info.name LIKE ?", "%"+f.Name+"%")
	}
	if f.Status != "" {
		query = query.Where("ops_assets_basic_info.asset_status = ?", f.Status)
	}
	if f.EquipmentNumber != "" {
		query = query.Where("ops_assets_basic_info.equipment_number LIKE ?", "%"+f.EquipmentNumber+"%")
	}
	if f.AssetNumber != "" {
		query = query.Where("ops_assets_basic_info.asset_number LIKE ?", "%"+f.AssetNumber+"%")
	}
	if f.SnNumber != "" {
		query = query.Where("ops_assets_basic_info.sn_number LIKE ?", "%"+f.SnNumber+"%")
	}
	if f.FramePosition != "" {
		query = query.Where("ops_assets_positions_info.frame_position = ?", f.FramePosition)
	}
	if f.CabinetPosition != "" {
		query = query.Where("ops_assets_positions_info.cabinet_position = ?", f.CabinetPosition)
	}
	if f.UPosition != "" {
		query = query.Where("ops_assets_positions_info.u_position = ?", f.UPosition)
	}
	if f.DepartmentName != "" {
		query = query.Where("ops_assets_belongs_info.department_name LIKE ?", "%"+f.DepartmentName+"%")
	}
	if f.UserName != "" {
		query = query.Where("ops_assets_belongs_info.user_name LIKE ?", "%"+f.UserName+"%")
	}

	return query
}

// partSortColumns whitelists the sort fields of the part list.
var partSortColumns = map[string]string{
	"name":        "name",
	"part_type":   "part_type",
	"part_brand":  "part_brand",
	"part_number": "part_number",
	"surplus":     "surplus",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}
