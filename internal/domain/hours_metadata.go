package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// HoursMetadata keeps the source triple of an hours-derived amount
// (amount = hours * hourRate * multiplier) for audit and display. A nil
// value means the amount was entered directly.
type HoursMetadata struct {
	Hours      float64 `json:"hours"`
	HourRate   float64 `json:"hourRate"`
	Multiplier float64 `json:"multiplier"`
}

// Value serializes the metadata for a jsonb column.
func (m *HoursMetadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan deserializes the metadata from a jsonb column.
func (m *HoursMetadata) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for HoursMetadata")
	}

	return json.Unmarshal(data, m)
}
