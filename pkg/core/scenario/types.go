// Package scenario evaluates one property-purchase scenario: it splits
// the cost across financing sources, prices every loan, runs the
// disbursement ledger, and projects profit at one or more exit prices.
package scenario

import (
	"resale_valuation/pkg/core/disburse"
	"resale_valuation/pkg/core/ledger"
	"resale_valuation/pkg/core/money"
)

// Holding-period units accepted on Assumptions.
const (
	UnitMonths = "months"
	UnitYears  = "years"
)

// Assumptions are the per-request knobs that stay fixed across the
// exit-price sweep. Every numeric field is user-supplied and may
// arrive as 0 after coercion; the evaluator treats 0 as "unset" only
// where a documented fallback exists (funding window, intervals).
type Assumptions struct {
	HomeLoanRate      float64 `json:"home_loan_rate" yaml:"home_loan_rate"`
	HomeLoanTermYears float64 `json:"home_loan_term_years" yaml:"home_loan_term_years"`

	PersonalLoan1Rate       float64 `json:"personal_loan1_rate" yaml:"personal_loan1_rate"`
	PersonalLoan1TermYears  float64 `json:"personal_loan1_term_years" yaml:"personal_loan1_term_years"`
	PersonalLoan1StartMonth float64 `json:"personal_loan1_start_month" yaml:"personal_loan1_start_month"`

	PersonalLoan2Rate       float64 `json:"personal_loan2_rate" yaml:"personal_loan2_rate"`
	PersonalLoan2TermYears  float64 `json:"personal_loan2_term_years" yaml:"personal_loan2_term_years"`
	PersonalLoan2StartMonth float64 `json:"personal_loan2_start_month" yaml:"personal_loan2_start_month"`

	// Custom funding shares (percent of total cost). Only read when the
	// payment plan is PlanCustom.
	HomeLoanShare      float64 `json:"home_loan_share" yaml:"home_loan_share"`
	PersonalLoan1Share float64 `json:"personal_loan1_share" yaml:"personal_loan1_share"`
	PersonalLoan2Share float64 `json:"personal_loan2_share" yaml:"personal_loan2_share"`
	DownPaymentShare   float64 `json:"down_payment_share" yaml:"down_payment_share"`

	// ManualLoanStart switches the EMI start month from the derived
	// value (funding end + offset + 1) to HomeLoanStartMonth verbatim.
	ManualLoanStart      bool    `json:"manual_loan_start" yaml:"manual_loan_start"`
	HomeLoanStartMonth   float64 `json:"home_loan_start_month" yaml:"home_loan_start_month"`
	EMIStartOffsetMonths float64 `json:"emi_start_offset_months" yaml:"emi_start_offset_months"`

	HoldingPeriod     float64 `json:"holding_period" yaml:"holding_period"`
	HoldingPeriodUnit string  `json:"holding_period_unit" yaml:"holding_period_unit"`

	ConstructionMonths         float64 `json:"construction_months" yaml:"construction_months"`
	DisbursementStartMonth     float64 `json:"disbursement_start_month" yaml:"disbursement_start_month"`
	DisbursementIntervalMonths float64 `json:"disbursement_interval_months" yaml:"disbursement_interval_months"`
	LastDisbursementMonth      float64 `json:"last_disbursement_month" yaml:"last_disbursement_month"`
}

// Property identifies the unit being bought.
type Property struct {
	SizeSqft        float64 `json:"size_sqft"`
	PossessionMonth float64 `json:"possession_month"`
}

// Input is one complete scenario as submitted by the form.
type Input struct {
	PurchasePricePerSqft float64     `json:"purchase_price_per_sqft"`
	StampDutyPct         float64     `json:"stamp_duty_pct"`
	GSTPct               float64     `json:"gst_pct"`
	OtherCharges         float64     `json:"other_charges"`
	PaymentPlan          string      `json:"payment_plan"`
	Property             Property    `json:"property"`
	ExitPricePerSqft     float64     `json:"exit_price_per_sqft"`
	ComparePrices        []float64   `json:"compare_prices"`
	Assumptions          Assumptions `json:"assumptions"`
}

// LoanSummary is the exit-time position of one loan.
type LoanSummary struct {
	Amount       float64 `json:"amount"`
	EMI          float64 `json:"emi"`
	PaymentsMade int     `json:"payments_made"`
	Outstanding  float64 `json:"outstanding"`
	InterestPaid float64 `json:"interest_paid"`
	TotalPaid    float64 `json:"total_paid"`
}

// SweepEntry is one exit price's summary, comparable across the sweep.
type SweepEntry struct {
	ExitPricePerSqft float64 `json:"exit_price_per_sqft"`
	SaleValue        float64 `json:"sale_value"`
	NetProfit        float64 `json:"net_profit"`
	ROI              float64 `json:"roi"`
	LeftoverCash     float64 `json:"leftover_cash"`
	Selected         bool    `json:"selected"`
}

// StageItem is one pre-formatted label/value pair for display.
type StageItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Stage is one display grouping of the breakdown.
type Stage struct {
	Title string      `json:"title"`
	Items []StageItem `json:"items"`
}

// Breakdown is the full result for one scenario at its selected exit
// price, plus the comparison sweep and display stages.
type Breakdown struct {
	BaseCost     float64 `json:"base_cost"`
	StampDuty    float64 `json:"stamp_duty"`
	GST          float64 `json:"gst"`
	OtherCharges float64 `json:"other_charges"`
	TotalCost    float64 `json:"total_cost"`

	Shares      FundingShares `json:"shares"`
	DownPayment float64       `json:"down_payment"`

	HomeLoan      LoanSummary `json:"home_loan"`
	PersonalLoan1 LoanSummary `json:"personal_loan1"`
	PersonalLoan2 LoanSummary `json:"personal_loan2"`

	FundingEndMonth int `json:"funding_end_month"`
	EMIStartMonth   int `json:"emi_start_month"`
	HoldingMonths   int `json:"holding_months"`

	Ledger      []ledger.Row    `json:"ledger"`
	IDC         disburse.Report `json:"idc"`
	IDCPaid     float64         `json:"idc_paid"`
	PeakOutflow float64         `json:"peak_outflow"`

	ExitPricePerSqft float64 `json:"exit_price_per_sqft"`
	SaleValue        float64 `json:"sale_value"`
	TotalOutstanding float64 `json:"total_outstanding"`
	TotalPaid        float64 `json:"total_paid"`
	NetProfit        float64 `json:"net_profit"`
	ROI              float64 `json:"roi"`
	LeftoverCash     float64 `json:"leftover_cash"`

	Sweep  []SweepEntry `json:"sweep"`
	Stages []Stage      `json:"stages"`
}

// sanitized returns a copy with every numeric field passed through the
// safe-number rule, so evaluation is total for any coercible input.
func (in Input) sanitized() Input {
	s := money.Safe
	in.PurchasePricePerSqft = s(in.PurchasePricePerSqft)
	in.StampDutyPct = s(in.StampDutyPct)
	in.GSTPct = s(in.GSTPct)
	in.OtherCharges = s(in.OtherCharges)
	in.Property.SizeSqft = s(in.Property.SizeSqft)
	in.Property.PossessionMonth = s(in.Property.PossessionMonth)
	in.ExitPricePerSqft = s(in.ExitPricePerSqft)
	if len(in.ComparePrices) > 0 {
		prices := make([]float64, len(in.ComparePrices))
		for i, p := range in.ComparePrices {
			prices[i] = s(p)
		}
		in.ComparePrices = prices
	}

	a := &in.Assumptions
	a.HomeLoanRate = s(a.HomeLoanRate)
	a.HomeLoanTermYears = s(a.HomeLoanTermYears)
	a.PersonalLoan1Rate = s(a.PersonalLoan1Rate)
	a.PersonalLoan1TermYears = s(a.PersonalLoan1TermYears)
	a.PersonalLoan1StartMonth = s(a.PersonalLoan1StartMonth)
	a.PersonalLoan2Rate = s(a.PersonalLoan2Rate)
	a.PersonalLoan2TermYears = s(a.PersonalLoan2TermYears)
	a.PersonalLoan2StartMonth = s(a.PersonalLoan2StartMonth)
	a.HomeLoanShare = s(a.HomeLoanShare)
	a.PersonalLoan1Share = s(a.PersonalLoan1Share)
	a.PersonalLoan2Share = s(a.PersonalLoan2Share)
	a.DownPaymentShare = s(a.DownPaymentShare)
	a.HomeLoanStartMonth = s(a.HomeLoanStartMonth)
	a.EMIStartOffsetMonths = s(a.EMIStartOffsetMonths)
	a.HoldingPeriod = s(a.HoldingPeriod)
	a.ConstructionMonths = s(a.ConstructionMonths)
	a.DisbursementStartMonth = s(a.DisbursementStartMonth)
	a.DisbursementIntervalMonths = s(a.DisbursementIntervalMonths)
	a.LastDisbursementMonth = s(a.LastDisbursementMonth)
	return in
}
