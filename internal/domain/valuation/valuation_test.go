package valuation

import (
	"testing"

	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGivenFineWeight(t *testing.T) {
	tests := []struct {
		name  string
		gross string
		stone string
		touch string
		want  string
	}{
		{"worked example", "10", "1", "91.6", "8.244"},
		{"no stone", "10", "0", "91.6", "9.16"},
		{"full touch", "5", "0", "100", "5"},
		{"fractional weights", "12.345", "0.345", "75.5", "9.06"},
		{"stone equals gross", "3", "3", "91.6", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GivenFineWeight(d(tt.gross), d(tt.stone), d(tt.touch))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestReceivedFineWeight(t *testing.T) {
	got := ReceivedFineWeight(d("5"), d("99.9"))
	assert.True(t, got.Equal(d("4.995")), "got %s", got)
}

func TestNetWeight(t *testing.T) {
	assert.True(t, NetWeight(d("10.5"), d("0.5")).Equal(d("10")))
	// Net weight is a pure difference; validation rejects stone > gross upstream
	assert.True(t, NetWeight(d("1"), d("2")).Equal(d("-1")))
}

func TestSumGiven(t *testing.T) {
	items := []GivenInput{
		{ItemName: "Ring", GrossWt: d("10"), StoneWt: d("1"), MeltingTouch: d("91.6"), StoneAmt: 5000},
		{ItemName: "Chain", GrossWt: d("20"), StoneWt: d("0"), MeltingTouch: d("75"), StoneAmt: 0},
	}

	totals := SumGiven(items)

	assert.True(t, totals.GrossWt.Equal(d("30")))
	assert.True(t, totals.StoneWt.Equal(d("1")))
	assert.True(t, totals.NetWt.Equal(d("29")))
	// 8.244 + 15 = 23.244
	assert.True(t, totals.FineWt.Equal(d("23.244")), "got %s", totals.FineWt)
	assert.Equal(t, int64(5000), totals.StoneAmt)
}

func TestSumGivenEmpty(t *testing.T) {
	totals := SumGiven(nil)
	assert.True(t, totals.FineWt.IsZero())
	assert.True(t, totals.GrossWt.IsZero())
}

func TestSumReceivedSkipsBlankLines(t *testing.T) {
	items := []ReceivedInput{
		{ReceivedGold: d("5"), Melting: d("91.6")},
		{}, // blank row from the entry form
		{ReceivedGold: d("2"), Melting: d("100")},
	}

	totals := SumReceived(items)

	assert.True(t, totals.ReceivedGold.Equal(d("7")))
	// 4.58 + 2 = 6.58
	assert.True(t, totals.FineWt.Equal(d("6.58")), "got %s", totals.FineWt)
}

func TestBalanceDelta(t *testing.T) {
	given := SumGiven([]GivenInput{
		{ItemName: "Ring", GrossWt: d("10"), StoneWt: d("1"), MeltingTouch: d("91.6")},
	})
	received := SumReceived([]ReceivedInput{
		{ReceivedGold: d("5"), Melting: d("91.6")},
	})

	delta := BalanceDelta(given, received)

	// 8.244 - 4.58 = 3.664
	assert.True(t, delta.Equal(d("3.664")), "got %s", delta)
}

func TestCloseBalance(t *testing.T) {
	assert.True(t, CloseBalance(d("12.5"), d("3.664")).Equal(d("16.164")))
	assert.True(t, CloseBalance(d("0"), d("-2")).Equal(d("-2")))
}

func TestBalanceEvolutionAcrossReceipts(t *testing.T) {
	// Fresh client: one given item carries the full fine weight forward.
	given := SumGiven([]GivenInput{
		{ItemName: "Ring", GrossWt: d("10"), StoneWt: d("1"), MeltingTouch: d("91.6")},
	})
	balance := CloseBalance(d("0"), BalanceDelta(given, SumReceived(nil)))
	require.True(t, balance.Equal(d("8.244")), "got %s", balance)

	// Next receipt returns most of it.
	received := SumReceived([]ReceivedInput{
		{ReceivedGold: d("8"), Melting: d("100")},
	})
	balance = CloseBalance(balance, BalanceDelta(SumGiven(nil), received))
	require.True(t, balance.Equal(d("0.244")), "got %s", balance)

	// A receipt with no items leaves the balance untouched.
	balance = CloseBalance(balance, BalanceDelta(SumGiven(nil), SumReceived(nil)))
	assert.True(t, balance.Equal(d("0.244")), "got %s", balance)
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		items []ReceivedInput
		want  enum.ReceiptStatus
	}{
		{"no received items", nil, enum.ReceiptStatusIncomplete},
		{"all blank", []ReceivedInput{{}, {}}, enum.ReceiptStatusIncomplete},
		{
			"valid received line",
			[]ReceivedInput{{ReceivedGold: d("5"), Melting: d("91.6")}},
			enum.ReceiptStatusComplete,
		},
		{
			"gold without melting",
			[]ReceivedInput{{ReceivedGold: d("5"), Melting: d("0")}},
			enum.ReceiptStatusIncomplete,
		},
		{
			"melting above hundred",
			[]ReceivedInput{{ReceivedGold: d("5"), Melting: d("101")}},
			enum.ReceiptStatusIncomplete,
		},
		{
			"one valid among blanks",
			[]ReceivedInput{{}, {ReceivedGold: d("1"), Melting: d("100")}},
			enum.ReceiptStatusComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.items))
		})
	}
}

func TestValidateGiven(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		errs := ValidateGiven(0, GivenInput{
			ItemName: "Ring", GrossWt: d("10"), StoneWt: d("1"), MeltingTouch: d("91.6"),
		})
		assert.Empty(t, errs)
	})

	t.Run("zero melting touch rejected", func(t *testing.T) {
		errs := ValidateGiven(0, GivenInput{
			ItemName: "Ring", GrossWt: d("10"), MeltingTouch: d("0"),
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "given_items[0].melting_touch", errs[0].Field)
	})

	t.Run("stone exceeding gross rejected", func(t *testing.T) {
		errs := ValidateGiven(2, GivenInput{
			ItemName: "Ring", GrossWt: d("1"), StoneWt: d("2"), MeltingTouch: d("91.6"),
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "given_items[2].stone_wt", errs[0].Field)
	})

	t.Run("missing everything", func(t *testing.T) {
		errs := ValidateGiven(0, GivenInput{})
		assert.Len(t, errs, 3) // item name, gross weight, melting touch
	})
}

func TestValidateReceived(t *testing.T) {
	t.Run("blank line is valid", func(t *testing.T) {
		assert.Empty(t, ValidateReceived(0, ReceivedInput{}))
	})

	t.Run("partial line rejected", func(t *testing.T) {
		errs := ValidateReceived(1, ReceivedInput{ReceivedGold: d("5")})
		require.Len(t, errs, 1)
		assert.Equal(t, "received_items[1].melting", errs[0].Field)
	})

	t.Run("melting without gold rejected", func(t *testing.T) {
		errs := ValidateReceived(0, ReceivedInput{Melting: d("91.6")})
		require.Len(t, errs, 1)
		assert.Equal(t, "received_items[0].received_gold", errs[0].Field)
	})
}

func TestValidateReceiptCollectsAllErrors(t *testing.T) {
	given := []GivenInput{
		{ItemName: "Ring", GrossWt: d("10"), MeltingTouch: d("91.6")},
		{GrossWt: d("0"), MeltingTouch: d("50")},
	}
	received := []ReceivedInput{
		{ReceivedGold: d("1"), Melting: d("150")},
	}

	errs := ValidateReceipt(given, received)

	assert.Len(t, errs, 3)
}

func TestExactnessAcrossOrderings(t *testing.T) {
	// Mul before Div keeps terminating inputs exact: (10-1)*91.6/100
	got := GivenFineWeight(d("10"), d("1"), d("91.6"))
	assert.Equal(t, "8.244", got.String())
}
