package stats

import "estoque-api/internal/models"

// Summary holds aggregate figures derived from a product collection.
// None of these values are persisted; they are recomputed on every read.
type Summary struct {
	TotalProducts int     `json:"total_products"`
	TotalValue    float64 `json:"total_value"`
	AverageMargin float64 `json:"average_margin"`
}

// Margin returns the percentage profit of sale over cost.
// A zero cost yields 0, even when sale is nonzero. This understates the
// profitability of cost-less items but matches the established business rule.
func Margin(cost, sale float64) float64 {
	if cost == 0 {
		return 0
	}
	return (sale - cost) / cost * 100
}

// Aggregate computes summary figures over a product collection.
// TotalValue is the stock value at sale price. AverageMargin is the plain
// arithmetic mean of per-item margins, 0 for an empty collection.
// No rounding happens here; display rounding is a presentation concern.
func Aggregate(products []models.Product) Summary {
	s := Summary{TotalProducts: len(products)}
	if len(products) == 0 {
		return s
	}

	var marginSum float64
	for _, p := range products {
		s.TotalValue += p.SaleValue * float64(p.Quantity)
		marginSum += Margin(p.CostValue, p.SaleValue)
	}
	s.AverageMargin = marginSum / float64(len(products))
	return s
}
