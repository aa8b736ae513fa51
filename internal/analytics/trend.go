package analytics

import (
	"github.com/shopspring/decimal"

	"noumi/internal/core"
)

// ExtractCategoryWithHighestDecrease finds the category whose spending
// dropped the most between its two most recent months, in monthly amounts.
// It returns nil when no category has at least two months.
func ExtractCategoryWithHighestDecrease(observations []core.CategoryObservation) *core.TrendResult {
	return extractHighestDecrease(observations, identityScaler{})
}

// ExtractCategoryWithHighestDecreaseIn is ExtractCategoryWithHighestDecrease
// with the reported amounts expressed in the given unit. The leading
// category and its percentage are chosen on monthly amounts, so they do not
// depend on the unit.
func ExtractCategoryWithHighestDecreaseIn(observations []core.CategoryObservation, unit Unit) (*core.TrendResult, error) {
	scaler, err := ScalerFor(unit)
	if err != nil {
		return nil, err
	}
	return extractHighestDecrease(observations, scaler), nil
}

func extractHighestDecrease(observations []core.CategoryObservation, scaler AmountScaler) *core.TrendResult {
	series := AggregateByCategoryAndMonth(observations)

	var (
		best     *core.TrendResult
		bestDrop decimal.Decimal
	)
	for _, category := range series.Categories() {
		months := series.Months(category)
		if len(months) < 2 {
			continue
		}
		prev, _ := series.Amount(category, months[len(months)-2])
		last, _ := series.Amount(category, months[len(months)-1])

		drop := prev.Sub(last)
		// Strictly greater: on a tie the earlier category stays.
		if best != nil && !drop.GreaterThan(bestDrop) {
			continue
		}
		bestDrop = drop
		best = &core.TrendResult{
			Category:       category,
			DecreaseAmount: core.Round2(scaler.Scale(drop)),
			PercentageDrop: core.Percent(drop, prev),
			PreviousAmount: scaler.Scale(prev),
		}
	}
	return best
}
