package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// MetalType represents the metal a receipt is denominated in
type MetalType int

const (
	MetalTypeGold   MetalType = 0
	MetalTypeSilver MetalType = 1
)

func (m MetalType) String() string {
	return [...]string{"Gold", "Silver"}[m]
}

func (m MetalType) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MetalType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = MetalType(i)
		return nil
	}
	switch str {
	case "Gold":
		*m = MetalTypeGold
	case "Silver":
		*m = MetalTypeSilver
	}
	return nil
}

func (m MetalType) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *MetalType) Scan(value interface{}) error {
	if value == nil {
		*m = MetalTypeGold
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = MetalType(v)
	case int:
		*m = MetalType(v)
	}
	return nil
}
