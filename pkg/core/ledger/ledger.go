// Package ledger runs the month-by-month simulation of the holding
// period up to possession: slab releases land on the outstanding
// balance, pre-EMI interest accrues on whatever has been disbursed,
// and from the EMI start month the loan amortizes normally.
package ledger

import "resale_valuation/pkg/core/disburse"

// Row is one month of the simulation. Month numbers start at 0 (the
// purchase month); the sequence is dense with length possession + 1.
type Row struct {
	Month                  int     `json:"month"`
	Disbursement           float64 `json:"disbursement"`
	CumulativeDisbursement float64 `json:"cumulative_disbursement"`
	Outstanding            float64 `json:"outstanding"`
	Payment                float64 `json:"payment"`
	Interest               float64 `json:"interest"`
	Principal              float64 `json:"principal"`
	FullEMI                bool    `json:"full_emi"`
	PersonalLoan1EMI       float64 `json:"personal_loan1_emi"`
	TotalOutflow           float64 `json:"total_outflow"`
}

// Input describes one home-loan simulation.
type Input struct {
	Schedule          []disburse.Slab
	AnnualRatePercent float64
	EMI               float64
	EMIStartMonth     int
	// ManualStart mirrors the form's "I know my EMI start date" mode:
	// pre-EMI months show a zero payment instead of the interest-only
	// accrual (the interest is carried, just not booked as outflow).
	ManualStart             bool
	PossessionMonth         int
	PersonalLoan1EMI        float64
	PersonalLoan1StartMonth int
}

// Result is the full ledger plus the figures derived while walking it.
type Result struct {
	Rows        []Row   `json:"rows"`
	IDCTotal    float64 `json:"idc_total"`
	PeakOutflow float64 `json:"peak_outflow"`
}

// Simulate walks months 0..possession. Each month is either pre-EMI
// (interest-only on the disbursed balance) or full-EMI (fixed
// installment split into interest and principal); the transition at
// EMIStartMonth is permanent. The personal-loan installment joins the
// outflow from its own start month regardless of home-loan phase.
func Simulate(in Input) Result {
	if in.PossessionMonth < 0 {
		in.PossessionMonth = 0
	}

	releases := make(map[int]float64, len(in.Schedule))
	for _, slab := range in.Schedule {
		releases[slab.ReleaseMonth] += slab.Amount
	}

	monthlyRate := in.AnnualRatePercent / 100.0 / 12.0

	res := Result{Rows: make([]Row, 0, in.PossessionMonth+1)}
	balance := 0.0
	cumulative := 0.0

	for m := 0; m <= in.PossessionMonth; m++ {
		row := Row{Month: m}

		if amt, ok := releases[m]; ok {
			row.Disbursement = amt
			balance += amt
			cumulative += amt
		}
		row.CumulativeDisbursement = cumulative

		if m >= in.EMIStartMonth {
			row.FullEMI = true
			row.Payment = in.EMI
			row.Interest = balance * monthlyRate
			row.Principal = in.EMI - row.Interest
			balance -= row.Principal
			if balance < 0 {
				balance = 0
			}
		} else if !in.ManualStart {
			// Classic IDC: the month's outflow is pure interest carry.
			row.Payment = balance * monthlyRate
			row.Interest = row.Payment
			res.IDCTotal += row.Payment
		}
		row.Outstanding = balance

		if m >= in.PersonalLoan1StartMonth {
			row.PersonalLoan1EMI = in.PersonalLoan1EMI
		}
		row.TotalOutflow = row.Payment + row.PersonalLoan1EMI
		if row.TotalOutflow > res.PeakOutflow {
			res.PeakOutflow = row.TotalOutflow
		}

		res.Rows = append(res.Rows, row)
	}
	return res
}
