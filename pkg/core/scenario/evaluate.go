package scenario

import (
	"math"

	"resale_valuation/pkg/core/amort"
	"resale_valuation/pkg/core/disburse"
	"resale_valuation/pkg/core/ledger"
)

// Evaluate produces the full breakdown for one scenario: the detailed
// result at the selected exit price, the comparison sweep, and the
// display stages. It is total — any numeric-coercible input yields a
// result, degenerate inputs yield degenerate (zero) figures.
func Evaluate(in Input) Breakdown {
	in = in.sanitized()

	breakdown := evaluateAt(in, in.ExitPricePerSqft)
	breakdown.Sweep = buildSweep(in)
	breakdown.Stages = buildStages(breakdown)
	return breakdown
}

// evaluateAt runs the single-price evaluation. The ledger does not
// depend on the exit price, but recomputing it per price keeps each
// evaluation self-contained; a sweep only covers a handful of prices.
func evaluateAt(in Input, exitPrice float64) Breakdown {
	a := in.Assumptions
	size := in.Property.SizeSqft
	possession := toMonth(in.Property.PossessionMonth)

	// 1. Property cost.
	baseCost := in.PurchasePricePerSqft * size
	stampDuty := baseCost * in.StampDutyPct / 100.0
	gst := baseCost * in.GSTPct / 100.0
	totalCost := baseCost + stampDuty + gst + in.OtherCharges

	// 2. Funding split. The down payment takes the remainder so the
	// four sources always reconstruct the total exactly.
	shares := ResolveShares(in.PaymentPlan, a)
	homeAmount := totalCost * shares.HomeLoanPct / 100.0
	pl1Amount := totalCost * shares.PersonalLoan1Pct / 100.0
	pl2Amount := totalCost * shares.PersonalLoan2Pct / 100.0
	downPayment := totalCost - homeAmount - pl1Amount - pl2Amount
	if downPayment < 0 {
		downPayment = 0
	}

	// 3. Installments.
	homeEMI := amort.EMI(homeAmount, a.HomeLoanRate, a.HomeLoanTermYears)
	pl1EMI := amort.EMI(pl1Amount, a.PersonalLoan1Rate, a.PersonalLoan1TermYears)

	holdingMonths := toMonth(a.HoldingPeriod)
	if a.HoldingPeriodUnit == UnitYears {
		holdingMonths = toMonth(a.HoldingPeriod * 12)
	}

	// 4. Disbursement window and EMI cutover.
	fundingEnd := resolveFundingEnd(a, possession)
	emiStart := toMonth(a.HomeLoanStartMonth)
	if !a.ManualLoanStart {
		emiStart = fundingEnd + toMonth(a.EMIStartOffsetMonths) + 1
	}

	schedule := disburse.BuildSchedule(homeAmount,
		toMonth(a.DisbursementStartMonth),
		toMonth(a.DisbursementIntervalMonths),
		fundingEnd)
	idc := disburse.AnnotateInterest(schedule, a.HomeLoanRate, emiStart-1)

	sim := ledger.Simulate(ledger.Input{
		Schedule:                schedule,
		AnnualRatePercent:       a.HomeLoanRate,
		EMI:                     homeEMI,
		EMIStartMonth:           emiStart,
		ManualStart:             a.ManualLoanStart,
		PossessionMonth:         possession,
		PersonalLoan1EMI:        pl1EMI,
		PersonalLoan1StartMonth: toMonth(a.PersonalLoan1StartMonth),
	})

	// In manual mode the pre-EMI interest is carried, not paid out.
	idcPaid := idc.TotalInterest
	if a.ManualLoanStart {
		idcPaid = 0
	}

	// 5. Exit-time loan positions. The home loan amortizes only from
	// its EMI start month; personal loans disburse in full at their
	// start months, so the closed forms apply directly.
	homePayments := clampPayments(holdingMonths-emiStart, a.HomeLoanTermYears)
	home := LoanSummary{
		Amount:       homeAmount,
		EMI:          homeEMI,
		PaymentsMade: homePayments,
		Outstanding:  amort.OutstandingAfterPayments(homeAmount, a.HomeLoanRate, a.HomeLoanTermYears, homePayments),
		InterestPaid: amort.TotalInterestPaid(homeAmount, a.HomeLoanRate, a.HomeLoanTermYears, homePayments),
		TotalPaid:    homeEMI*float64(homePayments) + idcPaid,
	}

	pl1 := personalLoanAt(pl1Amount, a.PersonalLoan1Rate, a.PersonalLoan1TermYears,
		toMonth(a.PersonalLoan1StartMonth), holdingMonths)
	pl2 := personalLoanAt(pl2Amount, a.PersonalLoan2Rate, a.PersonalLoan2TermYears,
		toMonth(a.PersonalLoan2StartMonth), holdingMonths)

	// 6. Exit economics.
	saleValue := exitPrice * size
	totalOutstanding := home.Outstanding + pl1.Outstanding + pl2.Outstanding
	totalPaid := home.TotalPaid + pl1.TotalPaid + pl2.TotalPaid
	netProfit := saleValue - totalOutstanding - totalPaid - downPayment

	roi := 0.0
	if invested := downPayment + totalPaid; invested > 0 {
		roi = netProfit / invested * 100.0
	}

	return Breakdown{
		BaseCost:     baseCost,
		StampDuty:    stampDuty,
		GST:          gst,
		OtherCharges: in.OtherCharges,
		TotalCost:    totalCost,

		Shares:      shares,
		DownPayment: downPayment,

		HomeLoan:      home,
		PersonalLoan1: pl1,
		PersonalLoan2: pl2,

		FundingEndMonth: fundingEnd,
		EMIStartMonth:   emiStart,
		HoldingMonths:   holdingMonths,

		Ledger:      sim.Rows,
		IDC:         idc,
		IDCPaid:     idcPaid,
		PeakOutflow: sim.PeakOutflow,

		ExitPricePerSqft: exitPrice,
		SaleValue:        saleValue,
		TotalOutstanding: totalOutstanding,
		TotalPaid:        totalPaid,
		NetProfit:        netProfit,
		ROI:              roi,
		LeftoverCash:     saleValue - totalOutstanding,
	}
}

// resolveFundingEnd picks the last disbursement month: an explicit
// user value wins, then the construction duration, then possession.
func resolveFundingEnd(a Assumptions, possession int) int {
	end := possession
	if a.LastDisbursementMonth > 0 {
		end = toMonth(a.LastDisbursementMonth)
	} else if a.ConstructionMonths > 0 {
		end = toMonth(a.ConstructionMonths)
	}
	if start := toMonth(a.DisbursementStartMonth); end < start {
		end = start
	}
	return end
}

// personalLoanAt prices a lump-sum loan's position at the exit month.
func personalLoanAt(amount, ratePercent, termYears float64, startMonth, holdingMonths int) LoanSummary {
	emi := amort.EMI(amount, ratePercent, termYears)
	payments := clampPayments(holdingMonths-startMonth, termYears)
	summary := LoanSummary{
		Amount:       amount,
		EMI:          emi,
		PaymentsMade: payments,
		Outstanding:  amort.OutstandingAfterPayments(amount, ratePercent, termYears, payments),
		InterestPaid: amort.TotalInterestPaid(amount, ratePercent, termYears, payments),
		TotalPaid:    emi * float64(payments),
	}
	return summary
}

// clampPayments bounds an elapsed-payment count to [0, term months].
func clampPayments(elapsed int, termYears float64) int {
	if elapsed < 0 {
		return 0
	}
	if n := toMonth(termYears * 12); elapsed > n {
		return n
	}
	return elapsed
}

// toMonth rounds a coerced numeric to a non-negative month count.
func toMonth(v float64) int {
	m := int(math.Round(v))
	if m < 0 {
		return 0
	}
	return m
}
