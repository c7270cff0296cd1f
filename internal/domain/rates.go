package domain

import "github.com/shopspring/decimal"

// RateTable maps a waste type to its point multiplier. Treated as immutable after
// construction; test or deployment overrides are injected via configuration.
type RateTable map[WasteType]decimal.Decimal

func DefaultRateTable() RateTable {
	return RateTable{
		WasteRecyclable: decimal.NewFromInt(2),
		WasteHazardous:  decimal.NewFromInt(3),
		WasteKitchen:    decimal.NewFromInt(1),
		WasteOther:      decimal.NewFromFloat(0.5),
	}
}

// PointsFor computes the points earned for a disposal of the given type and
// weight. Unrecognized waste types fall back to the WasteOther rate.
func (r RateTable) PointsFor(wasteType WasteType, weight decimal.Decimal) decimal.Decimal {
	rate, ok := r[wasteType]
	if !ok {
		rate = r[WasteOther]
	}
	return weight.Mul(rate)
}
