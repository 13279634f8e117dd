package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ExtraMap holds the free-form attributes some asset records carry. It is
// persisted as a JSON text blob and validated only for parseability; the
// server never interprets individual keys.
type ExtraMap map[string]string

// Value implements driver.Valuer so gorm can persist the map as TEXT.
func (m ExtraMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for reading the TEXT blob back.
func (m *ExtraMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("unsupported extra column type %T", value)
	}
	if raw == "" {
		*m = nil
		return nil
	}
	return json.Unmarshal([]byte(raw), m)
}

// ParseExtra validates a raw extra blob from an import row. Empty input is a
// nil map; anything else must be a JSON object of string values.
func ParseExtra(raw string) (ExtraMap, error) {
	if raw == "" {
		return nil, nil
	}
	var m ExtraMap
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("extra is not a valid JSON object: %w", err)
	}
	return m, nil
}
