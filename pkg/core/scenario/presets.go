package scenario

// Payment-plan selectors accepted on Input.PaymentPlan.
const (
	PlanConstructionLinked = "construction-linked"
	Plan2080               = "20-80"
	Plan4060               = "40-60"
	PlanReadyToMove        = "ready-to-move"
	PlanCustom             = "custom"
)

// FundingShares is the percentage split of the total cost across the
// four financing sources. The four fields sum to 100 for every preset.
type FundingShares struct {
	HomeLoanPct      float64 `json:"home_loan_pct"`
	PersonalLoan1Pct float64 `json:"personal_loan1_pct"`
	PersonalLoan2Pct float64 `json:"personal_loan2_pct"`
	DownPaymentPct   float64 `json:"down_payment_pct"`
}

var planPresets = map[string]FundingShares{
	PlanConstructionLinked: {HomeLoanPct: 85, PersonalLoan1Pct: 10, DownPaymentPct: 5},
	Plan2080:               {HomeLoanPct: 80, PersonalLoan1Pct: 20},
	Plan4060:               {HomeLoanPct: 60, PersonalLoan1Pct: 30, DownPaymentPct: 10},
	PlanReadyToMove:        {HomeLoanPct: 75, PersonalLoan1Pct: 15, DownPaymentPct: 10},
}

// ResolveShares maps a plan selector to its funding split. Custom (or
// any unrecognized selector) reads the explicit shares off the
// assumptions instead.
func ResolveShares(plan string, a Assumptions) FundingShares {
	if preset, ok := planPresets[plan]; ok {
		return preset
	}
	return FundingShares{
		HomeLoanPct:      a.HomeLoanShare,
		PersonalLoan1Pct: a.PersonalLoan1Share,
		PersonalLoan2Pct: a.PersonalLoan2Share,
		DownPaymentPct:   a.DownPaymentShare,
	}
}
