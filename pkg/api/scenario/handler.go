// Package scenario is the HTTP face of the evaluator: it decodes the
// form's JSON (tolerating string/null numerics), enforces the two
// mandatory fields, and returns the full breakdown.
package scenario

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"resale_valuation/pkg/core/config"
	"resale_valuation/pkg/core/money"
	core "resale_valuation/pkg/core/scenario"
)

// Request mirrors core.Input with every numeric field coercible: the
// form is allowed to send numbers, numeric strings, empty strings, or
// null, and they all land as safe float64s.
type Request struct {
	PurchasePricePerSqft money.FlexFloat `json:"purchase_price_per_sqft"`
	StampDutyPct         money.FlexFloat `json:"stamp_duty_pct"`
	GSTPct               money.FlexFloat `json:"gst_pct"`
	OtherCharges         money.FlexFloat `json:"other_charges"`
	PaymentPlan          string          `json:"payment_plan"`

	Property struct {
		SizeSqft        money.FlexFloat `json:"size_sqft"`
		PossessionMonth money.FlexFloat `json:"possession_month"`
	} `json:"property"`

	ExitPricePerSqft money.FlexFloat   `json:"exit_price_per_sqft"`
	ComparePrices    []money.FlexFloat `json:"compare_prices"`

	Assumptions struct {
		HomeLoanRate      money.FlexFloat `json:"home_loan_rate"`
		HomeLoanTermYears money.FlexFloat `json:"home_loan_term_years"`

		PersonalLoan1Rate       money.FlexFloat `json:"personal_loan1_rate"`
		PersonalLoan1TermYears  money.FlexFloat `json:"personal_loan1_term_years"`
		PersonalLoan1StartMonth money.FlexFloat `json:"personal_loan1_start_month"`

		PersonalLoan2Rate       money.FlexFloat `json:"personal_loan2_rate"`
		PersonalLoan2TermYears  money.FlexFloat `json:"personal_loan2_term_years"`
		PersonalLoan2StartMonth money.FlexFloat `json:"personal_loan2_start_month"`

		HomeLoanShare      money.FlexFloat `json:"home_loan_share"`
		PersonalLoan1Share money.FlexFloat `json:"personal_loan1_share"`
		PersonalLoan2Share money.FlexFloat `json:"personal_loan2_share"`
		DownPaymentShare   money.FlexFloat `json:"down_payment_share"`

		ManualLoanStart      bool            `json:"manual_loan_start"`
		HomeLoanStartMonth   money.FlexFloat `json:"home_loan_start_month"`
		EMIStartOffsetMonths money.FlexFloat `json:"emi_start_offset_months"`

		HoldingPeriod     money.FlexFloat `json:"holding_period"`
		HoldingPeriodUnit string          `json:"holding_period_unit"`

		ConstructionMonths         money.FlexFloat `json:"construction_months"`
		DisbursementStartMonth     money.FlexFloat `json:"disbursement_start_month"`
		DisbursementIntervalMonths money.FlexFloat `json:"disbursement_interval_months"`
		LastDisbursementMonth      money.FlexFloat `json:"last_disbursement_month"`
	} `json:"assumptions"`
}

// Response wraps the breakdown with request bookkeeping.
type Response struct {
	ReportID  string         `json:"report_id"`
	ElapsedMS int64          `json:"elapsed_ms"`
	Breakdown core.Breakdown `json:"breakdown"`
}

type Handler struct {
	log      *logrus.Logger
	defaults *config.Defaults
}

// NewHandler wires the evaluator behind HTTP. defaults may be nil when
// no defaults file is configured.
func NewHandler(log *logrus.Logger, defaults *config.Defaults) *Handler {
	return &Handler{log: log, defaults: defaults}
}

// HandleEvaluate serves POST /api/scenario/evaluate.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The only rejections the caller owns: a scenario without a price
	// or a property is meaningless.
	if req.PurchasePricePerSqft.Float64() <= 0 {
		http.Error(w, "purchase_price_per_sqft is required", http.StatusBadRequest)
		return
	}
	if req.Property.SizeSqft.Float64() <= 0 {
		http.Error(w, "property.size_sqft is required", http.StatusBadRequest)
		return
	}

	input := req.toCore()
	h.defaults.ApplyTo(&input.Assumptions)

	start := time.Now()
	breakdown := core.Evaluate(input)
	elapsed := time.Since(start)

	resp := Response{
		ReportID:  uuid.NewString(),
		ElapsedMS: elapsed.Milliseconds(),
		Breakdown: breakdown,
	}

	h.log.WithFields(logrus.Fields{
		"report_id":  resp.ReportID,
		"plan":       input.PaymentPlan,
		"total_cost": breakdown.TotalCost,
		"prices":     len(breakdown.Sweep),
		"elapsed":    elapsed,
	}).Info("scenario evaluated")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (req Request) toCore() core.Input {
	in := core.Input{
		PurchasePricePerSqft: req.PurchasePricePerSqft.Float64(),
		StampDutyPct:         req.StampDutyPct.Float64(),
		GSTPct:               req.GSTPct.Float64(),
		OtherCharges:         req.OtherCharges.Float64(),
		PaymentPlan:          req.PaymentPlan,
		Property: core.Property{
			SizeSqft:        req.Property.SizeSqft.Float64(),
			PossessionMonth: req.Property.PossessionMonth.Float64(),
		},
		ExitPricePerSqft: req.ExitPricePerSqft.Float64(),
	}
	for _, p := range req.ComparePrices {
		in.ComparePrices = append(in.ComparePrices, p.Float64())
	}

	a := req.Assumptions
	in.Assumptions = core.Assumptions{
		HomeLoanRate:      a.HomeLoanRate.Float64(),
		HomeLoanTermYears: a.HomeLoanTermYears.Float64(),

		PersonalLoan1Rate:       a.PersonalLoan1Rate.Float64(),
		PersonalLoan1TermYears:  a.PersonalLoan1TermYears.Float64(),
		PersonalLoan1StartMonth: a.PersonalLoan1StartMonth.Float64(),

		PersonalLoan2Rate:       a.PersonalLoan2Rate.Float64(),
		PersonalLoan2TermYears:  a.PersonalLoan2TermYears.Float64(),
		PersonalLoan2StartMonth: a.PersonalLoan2StartMonth.Float64(),

		HomeLoanShare:      a.HomeLoanShare.Float64(),
		PersonalLoan1Share: a.PersonalLoan1Share.Float64(),
		PersonalLoan2Share: a.PersonalLoan2Share.Float64(),
		DownPaymentShare:   a.DownPaymentShare.Float64(),

		ManualLoanStart:      a.ManualLoanStart,
		HomeLoanStartMonth:   a.HomeLoanStartMonth.Float64(),
		EMIStartOffsetMonths: a.EMIStartOffsetMonths.Float64(),

		HoldingPeriod:     a.HoldingPeriod.Float64(),
		HoldingPeriodUnit: a.HoldingPeriodUnit,

		ConstructionMonths:         a.ConstructionMonths.Float64(),
		DisbursementStartMonth:     a.DisbursementStartMonth.Float64(),
		DisbursementIntervalMonths: a.DisbursementIntervalMonths.Float64(),
		LastDisbursementMonth:      a.LastDisbursementMonth.Float64(),
	}
	return in
}
