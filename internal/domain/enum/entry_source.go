package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EntrySource represents what produced a balance ledger entry
type EntrySource int

const (
	EntrySourceReceipt    EntrySource = 0
	EntrySourceReversal   EntrySource = 1
	EntrySourceAdjustment EntrySource = 2
)

func (s EntrySource) String() string {
	return [...]string{"Receipt", "Reversal", "Adjustment"}[s]
}

func (s EntrySource) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *EntrySource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = EntrySource(i)
		return nil
	}
	switch str {
	case "Receipt":
		*s = EntrySourceReceipt
	case "Reversal":
		*s = EntrySourceReversal
	case "Adjustment":
		*s = EntrySourceAdjustment
	}
	return nil
}

func (s EntrySource) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *EntrySource) Scan(value interface{}) error {
	if value == nil {
		*s = EntrySourceReceipt
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = EntrySource(v)
	case int:
		*s = EntrySource(v)
	}
	return nil
}
