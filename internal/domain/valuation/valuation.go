// Package valuation holds the weight and balance arithmetic for receipts.
// All weights are grams of fine-metal equivalent, carried as exact decimals;
// rounding is left to the display layer.
package valuation

import (
	"fmt"

	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/apperror"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// GivenInput is the raw entered form of a line of metal handed to the goldsmith.
type GivenInput struct {
	ItemName     string
	Tag          string
	GrossWt      decimal.Decimal
	StoneWt      decimal.Decimal
	MeltingTouch decimal.Decimal
	StoneAmt     int64 // cents, entered manually, never derived
}

// ReceivedInput is the raw entered form of a line of metal returned to the client.
type ReceivedInput struct {
	ReceivedGold decimal.Decimal
	Melting      decimal.Decimal
}

// NetWeight returns gross minus stone weight.
func NetWeight(gross, stone decimal.Decimal) decimal.Decimal {
	return gross.Sub(stone)
}

// GivenFineWeight converts a given line to its pure-metal equivalent:
// (gross - stone) * touch / 100. Multiplication happens before division so
// the result stays exact for terminating decimal inputs.
func GivenFineWeight(gross, stone, touch decimal.Decimal) decimal.Decimal {
	return NetWeight(gross, stone).Mul(touch).Div(hundred)
}

// ReceivedFineWeight converts a received line to its pure-metal equivalent.
func ReceivedFineWeight(gold, melting decimal.Decimal) decimal.Decimal {
	return gold.Mul(melting).Div(hundred)
}

// GivenTotals aggregates each numeric field of a given-item list independently.
type GivenTotals struct {
	GrossWt  decimal.Decimal `json:"gross_wt"`
	StoneWt  decimal.Decimal `json:"stone_wt"`
	NetWt    decimal.Decimal `json:"net_wt"`
	FineWt   decimal.Decimal `json:"fine_wt"`
	StoneAmt int64           `json:"stone_amt"`
}

// ReceivedTotals aggregates a received-item list.
type ReceivedTotals struct {
	ReceivedGold decimal.Decimal `json:"received_gold"`
	FineWt       decimal.Decimal `json:"fine_wt"`
}

// SumGiven recomputes totals from the full list. Callers never cache the
// result across edits; recomputation is the invalidation strategy.
func SumGiven(items []GivenInput) GivenTotals {
	var t GivenTotals
	for _, it := range items {
		t.GrossWt = t.GrossWt.Add(it.GrossWt)
		t.StoneWt = t.StoneWt.Add(it.StoneWt)
		t.NetWt = t.NetWt.Add(NetWeight(it.GrossWt, it.StoneWt))
		t.FineWt = t.FineWt.Add(GivenFineWeight(it.GrossWt, it.StoneWt, it.MeltingTouch))
		t.StoneAmt += it.StoneAmt
	}
	return t
}

// SumReceived recomputes totals from the full list, skipping blank lines.
func SumReceived(items []ReceivedInput) ReceivedTotals {
	var t ReceivedTotals
	for _, it := range items {
		if IsBlankReceived(it) {
			continue
		}
		t.ReceivedGold = t.ReceivedGold.Add(it.ReceivedGold)
		t.FineWt = t.FineWt.Add(ReceivedFineWeight(it.ReceivedGold, it.Melting))
	}
	return t
}

// BalanceDelta is the fine weight given out minus the fine weight returned.
func BalanceDelta(given GivenTotals, received ReceivedTotals) decimal.Decimal {
	return given.FineWt.Sub(received.FineWt)
}

// CloseBalance applies a receipt's delta to the client's opening balance.
// The opening balance is an explicit field, never a synthetic line item, so
// it cannot be double-counted by the totals.
func CloseBalance(opening, delta decimal.Decimal) decimal.Decimal {
	return opening.Add(delta)
}

// IsBlankReceived reports whether a received line carries no data at all.
// Blank lines are treated as absent rather than invalid.
func IsBlankReceived(it ReceivedInput) bool {
	return it.ReceivedGold.IsZero() && it.Melting.IsZero()
}

// DeriveStatus is the single status derivation used by every call site: a
// receipt is Complete once any received line has positive gold and a valid
// melting percentage.
func DeriveStatus(items []ReceivedInput) enum.ReceiptStatus {
	for _, it := range items {
		if it.ReceivedGold.IsPositive() && percentValid(it.Melting) {
			return enum.ReceiptStatusComplete
		}
	}
	return enum.ReceiptStatusIncomplete
}

// percentValid reports whether p is in (0, 100].
func percentValid(p decimal.Decimal) bool {
	return p.IsPositive() && p.LessThanOrEqual(hundred)
}

// ValidateGiven checks a given line against the uniform entry rules.
// Melting touch of zero or below is always rejected; there is no fallback.
func ValidateGiven(index int, it GivenInput) []apperror.FieldError {
	var errs []apperror.FieldError
	field := func(name string) string {
		return fmt.Sprintf("given_items[%d].%s", index, name)
	}

	if it.ItemName == "" {
		errs = append(errs, apperror.FieldError{Field: field("item_name"), Message: "Item name is required"})
	}
	if !it.GrossWt.IsPositive() {
		errs = append(errs, apperror.FieldError{Field: field("gross_wt"), Message: "Gross weight must be greater than zero"})
	}
	if it.StoneWt.IsNegative() {
		errs = append(errs, apperror.FieldError{Field: field("stone_wt"), Message: "Stone weight cannot be negative"})
	} else if it.StoneWt.GreaterThan(it.GrossWt) {
		errs = append(errs, apperror.FieldError{Field: field("stone_wt"), Message: "Stone weight cannot exceed gross weight"})
	}
	if !percentValid(it.MeltingTouch) {
		errs = append(errs, apperror.FieldError{Field: field("melting_touch"), Message: "Melting touch must be between 0 and 100"})
	}
	if it.StoneAmt < 0 {
		errs = append(errs, apperror.FieldError{Field: field("stone_amt"), Message: "Stone amount cannot be negative"})
	}
	return errs
}

// ValidateReceived checks a received line. A completely blank line is valid
// and skipped by the totals; a partially filled one must be fully valid.
func ValidateReceived(index int, it ReceivedInput) []apperror.FieldError {
	if IsBlankReceived(it) {
		return nil
	}

	var errs []apperror.FieldError
	field := func(name string) string {
		return fmt.Sprintf("received_items[%d].%s", index, name)
	}

	if !it.ReceivedGold.IsPositive() {
		errs = append(errs, apperror.FieldError{Field: field("received_gold"), Message: "Received gold must be greater than zero"})
	}
	if !percentValid(it.Melting) {
		errs = append(errs, apperror.FieldError{Field: field("melting"), Message: "Melting must be between 0 and 100"})
	}
	return errs
}

// ValidateReceipt validates both item lists and returns all field errors.
func ValidateReceipt(given []GivenInput, received []ReceivedInput) []apperror.FieldError {
	var errs []apperror.FieldError
	for i, it := range given {
		errs = append(errs, ValidateGiven(i, it)...)
	}
	for i, it := range received {
		errs = append(errs, ValidateReceived(i, it)...)
	}
	return errs
}
