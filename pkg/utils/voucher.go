package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// FormatVoucherNo renders a sequence value as a shop voucher number,
// e.g. FormatVoucherNo("GS", 123) -> "GS-000123".
func FormatVoucherNo(prefix string, value int64) string {
	return fmt.Sprintf("%s-%06d", prefix, value)
}
