package scenario

import "sort"

// buildSweep evaluates the scenario at every distinct exit price —
// the selected one plus any comparison prices — in ascending order.
// Exactly one entry is marked selected.
func buildSweep(in Input) []SweepEntry {
	seen := map[float64]bool{in.ExitPricePerSqft: true}
	prices := []float64{in.ExitPricePerSqft}
	for _, p := range in.ComparePrices {
		if !seen[p] {
			seen[p] = true
			prices = append(prices, p)
		}
	}
	sort.Float64s(prices)

	sweep := make([]SweepEntry, 0, len(prices))
	for _, price := range prices {
		b := evaluateAt(in, price)
		sweep = append(sweep, SweepEntry{
			ExitPricePerSqft: price,
			SaleValue:        b.SaleValue,
			NetProfit:        b.NetProfit,
			ROI:              b.ROI,
			LeftoverCash:     b.LeftoverCash,
			Selected:         price == in.ExitPricePerSqft,
		})
	}
	return sweep
}
