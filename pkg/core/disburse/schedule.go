// Package disburse models construction-linked home-loan releases: the
// slab schedule (which month how much of the loan is released) and the
// pre-EMI interest cost each slab accumulates until the full EMI
// cutover.
package disburse

// Slab is one tranche of the home loan tied to a construction
// milestone month. The interest fields are zero until the schedule is
// passed through AnnotateInterest.
type Slab struct {
	Number            int     `json:"number"` // 1-based, release order
	ReleaseMonth      int     `json:"release_month"`
	Amount            float64 `json:"amount"`
	MonthlyInterest   float64 `json:"monthly_interest"`
	CumulativeMonthly float64 `json:"cumulative_monthly"`
	DurationMonths    int     `json:"duration_months"`
	TotalInterest     float64 `json:"total_interest"`
}

// BuildSchedule splits loanAmount into equal slabs released from
// startMonth to fundingEndMonth every intervalMonths. The final slab
// absorbs the division remainder so the slabs always sum to exactly
// loanAmount. Degenerate windows collapse to a single full-amount slab
// at startMonth; the schedule never under-disburses.
func BuildSchedule(loanAmount float64, startMonth, intervalMonths, fundingEndMonth int) []Slab {
	if loanAmount <= 0 {
		return nil
	}
	if startMonth < 0 {
		startMonth = 0
	}
	if intervalMonths < 1 {
		intervalMonths = 1
	}
	if fundingEndMonth < startMonth {
		fundingEndMonth = startMonth
	}

	count := (fundingEndMonth-startMonth)/intervalMonths + 1
	if count < 1 {
		count = 1
	}

	share := loanAmount / float64(count)
	slabs := make([]Slab, 0, count)
	month := startMonth
	for i := 0; i < count; i++ {
		amount := share
		if i == count-1 {
			// Remainder goes to the last slab so the total is exact.
			amount = loanAmount - share*float64(count-1)
		}
		slabs = append(slabs, Slab{
			Number:       i + 1,
			ReleaseMonth: month,
			Amount:       amount,
		})
		month += intervalMonths
	}

	if len(slabs) == 0 {
		slabs = append(slabs, Slab{Number: 1, ReleaseMonth: startMonth, Amount: loanAmount})
	}
	return slabs
}
