// Package amort provides the annuity primitives every loan in the
// system is priced with: fixed installment (EMI), remaining balance
// after k payments, and cumulative interest after k payments.
package amort

import "math"

// monthlyRate converts an annual percentage rate to a monthly fraction.
func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100.0 / 12.0
}

// months converts a term in years to a whole payment count.
func months(termYears float64) int {
	return int(math.Round(termYears * 12))
}

// EMI calculates the equated monthly installment.
//
// FORMULA: EMI = P·r·(1+r)^n / ((1+r)^n − 1)
//
// Where r is the monthly rate and n the number of payments. A zero
// rate degrades to straight-line division P/n rather than hitting the
// 0/0 in the formula.
func EMI(principal, annualRatePercent, termYears float64) float64 {
	if principal <= 0 || termYears <= 0 {
		return 0
	}
	r := monthlyRate(annualRatePercent)
	if r == 0 {
		return principal / (termYears * 12)
	}
	n := float64(months(termYears))
	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}

// OutstandingAfterPayments returns the remaining balance after the
// given number of installments.
//
// FORMULA: B_k = P·((1+r)^n − (1+r)^k) / ((1+r)^n − 1)
//
// Zero payments leave the principal untouched; a fully paid (or
// overpaid) loan is 0. The result is clamped at 0 to absorb float
// drift near payoff.
func OutstandingAfterPayments(principal, annualRatePercent, termYears float64, paymentsMade int) float64 {
	if paymentsMade <= 0 {
		return principal
	}
	if principal <= 0 || termYears <= 0 {
		return 0
	}
	n := months(termYears)
	if paymentsMade >= n {
		return 0
	}

	r := monthlyRate(annualRatePercent)
	if r == 0 {
		// Linear amortization.
		return principal * (1 - float64(paymentsMade)/float64(n))
	}

	growthN := math.Pow(1+r, float64(n))
	growthK := math.Pow(1+r, float64(paymentsMade))
	balance := principal * (growthN - growthK) / (growthN - 1)
	if balance < 0 {
		return 0
	}
	return balance
}

// TotalInterestPaid accumulates the interest portion of the first
// paymentsMade installments. This walks month by month instead of
// using a closed form: the interest/principal split shifts with the
// remaining balance, and the figure must match the ledger exactly.
func TotalInterestPaid(principal, annualRatePercent, termYears float64, paymentsMade int) float64 {
	if principal <= 0 || termYears <= 0 || paymentsMade <= 0 {
		return 0
	}
	n := months(termYears)
	if paymentsMade > n {
		paymentsMade = n
	}

	r := monthlyRate(annualRatePercent)
	installment := EMI(principal, annualRatePercent, termYears)

	remaining := principal
	total := 0.0
	for k := 0; k < paymentsMade; k++ {
		interest := remaining * r
		total += interest
		remaining -= installment - interest
		if remaining < 0 {
			remaining = 0
		}
	}
	return total
}
