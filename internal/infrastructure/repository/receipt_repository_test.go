package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceiptSortColumn(t *testing.T) {
	tests := []struct {
		name   string
		sortBy string
		want   string
	}{
		{"default when empty", "", "created_at"},
		{"issue date allowed", "issue_date", "issue_date"},
		{"voucher allowed", "voucher_no", "voucher_no"},
		{"created at allowed", "created_at", "created_at"},
		{"unknown column rejected", "balance", "created_at"},
		{"injection attempt rejected", "created_at; DROP TABLE receipts", "created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, receiptSortColumn(tt.sortBy))
		})
	}
}
