package ordering

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/siteorders/pkg/domain/entities"
)

func TestParseUnitSize(t *testing.T) {
	tests := []struct {
		input  string
		amount string
		unit   string
		ok     bool
	}{
		{"25kg", "25", "kg", true},
		{"5L", "5", "L", true},
		{"310ml", "310", "ml", true},
		{"2.5 kg", "2.5", "kg", true},
		{"", "0", "", false},
		{"kg", "0", "", false},
		{"25", "0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, unit, ok := ParseUnitSize(tt.input)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.unit, unit)
			require.True(t, amount.Equal(decimal.RequireFromString(tt.amount)), "amount %s", amount)
		})
	}
}

func TestMeasureTotals(t *testing.T) {
	items := []entities.OrderItem{
		{Material: entities.Material{ID: "m1", Unit: "drums", UnitSize: "25kg"}, Quantity: 2},
		{Material: entities.Material{ID: "m2", Unit: "cans", UnitSize: "5L"}, Quantity: 3},
		{Material: entities.Material{ID: "m8", Unit: "kits"}, Quantity: 1},
		{Material: entities.Material{ID: "m3", Unit: "drums", UnitSize: "20kg"}, Quantity: 1},
		{Material: entities.Material{ID: "m9", Unit: "kits"}, Quantity: 2},
	}

	totals := MeasureTotals(items)

	require.Len(t, totals, 3)
	require.Equal(t, "kg", totals[0].Unit)
	require.True(t, totals[0].Amount.Equal(decimal.NewFromInt(70)))
	require.Equal(t, "L", totals[1].Unit)
	require.True(t, totals[1].Amount.Equal(decimal.NewFromInt(15)))
	require.Equal(t, "kits", totals[2].Unit)
	require.True(t, totals[2].Amount.Equal(decimal.NewFromInt(3)))
}
