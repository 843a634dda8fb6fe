package ordering

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/siteorders/pkg/application/dto"
	"github.com/vsinha/siteorders/pkg/domain/entities"
)

// ParseUnitSize splits a catalog unit size such as "25kg", "5L" or "310ml"
// into its amount and unit. ok is false when either part is missing.
func ParseUnitSize(unitSize string) (amount decimal.Decimal, unit string, ok bool) {
	s := strings.TrimSpace(unitSize)
	split := 0
	for split < len(s) && (s[split] == '.' || (s[split] >= '0' && s[split] <= '9')) {
		split++
	}
	if split == 0 || split == len(s) {
		return decimal.Zero, "", false
	}

	amount, err := decimal.NewFromString(s[:split])
	if err != nil {
		return decimal.Zero, "", false
	}
	return amount, strings.TrimSpace(s[split:]), true
}

// MeasureTotals totals the physical amount ordered per unit of measure, in
// first-seen order. Materials without a parseable unit size are counted by
// their packaging unit instead, e.g. "kits".
func MeasureTotals(items []entities.OrderItem) []dto.MeasureTotal {
	var totals []dto.MeasureTotal
	index := make(map[string]int)

	for _, item := range items {
		quantity := decimal.NewFromInt(int64(item.Quantity))
		amount, unit, ok := ParseUnitSize(item.Material.UnitSize)
		if ok {
			amount = amount.Mul(quantity)
		} else {
			amount, unit = quantity, item.Material.Unit
		}

		i, exists := index[unit]
		if !exists {
			i = len(totals)
			index[unit] = i
			totals = append(totals, dto.MeasureTotal{Unit: unit, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(amount)
	}

	return totals
}
