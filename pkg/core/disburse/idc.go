package disburse

// Report is the interest-during-construction cost breakdown: one
// annotated slab per release, plus aggregates for display.
type Report struct {
	Slabs              []Slab  `json:"slabs"`
	TotalInterest      float64 `json:"total_interest"`
	MinMonthlyInterest float64 `json:"min_monthly_interest"`
	MaxMonthlyInterest float64 `json:"max_monthly_interest"`
	CutoffMonth        int     `json:"cutoff_month"`
}

// AnnotateInterest is the second pass over a built schedule: it prices
// each slab's pre-EMI carry and aggregates the totals.
//
// Per slab: monthlyInterest = amount × rate / 1200
//
//	duration = max(0, cutoffMonth − releaseMonth + 1)
//	totalCost = monthlyInterest × duration
//
// cutoffMonth is the last month pre-EMI interest applies (EMI start
// month − 1). Min/max monthly interest are the first and last
// cumulative figures in release order — a display range, not a
// statistical min/max.
func AnnotateInterest(schedule []Slab, annualRatePercent float64, cutoffMonth int) Report {
	report := Report{
		Slabs:       make([]Slab, len(schedule)),
		CutoffMonth: cutoffMonth,
	}

	cumulative := 0.0
	for i, slab := range schedule {
		monthly := slab.Amount * annualRatePercent / 1200.0
		cumulative += monthly

		duration := cutoffMonth - slab.ReleaseMonth + 1
		if duration < 0 {
			duration = 0
		}

		slab.MonthlyInterest = monthly
		slab.CumulativeMonthly = cumulative
		slab.DurationMonths = duration
		slab.TotalInterest = monthly * float64(duration)

		report.Slabs[i] = slab
		report.TotalInterest += slab.TotalInterest
	}

	if len(report.Slabs) > 0 {
		report.MinMonthlyInterest = report.Slabs[0].CumulativeMonthly
		report.MaxMonthlyInterest = report.Slabs[len(report.Slabs)-1].CumulativeMonthly
	}
	return report
}
