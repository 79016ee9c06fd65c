package amort

import (
	"math"
	"testing"
)

func TestEMIZeroRateIsStraightLine(t *testing.T) {
	// emi(p, 0, t) must equal p / (t*12) exactly, not via the formula.
	p := 1200000.0
	got := EMI(p, 0, 10)
	want := p / (10 * 12)
	if got != want {
		t.Errorf("Expected straight-line EMI %f, got %f", want, got)
	}
}

func TestEMIStandardFormula(t *testing.T) {
	// 8,000,000 at 8.5% over 20 years.
	// r = 0.085/12, n = 240
	// EMI = P*r*(1+r)^n / ((1+r)^n - 1)
	r := 8.5 / 100 / 12
	n := 240.0
	growth := math.Pow(1+r, n)
	want := 8000000 * r * growth / (growth - 1)

	got := EMI(8000000, 8.5, 20)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Expected EMI %f, got %f", want, got)
	}
	// Sanity: ~69,426 for these terms.
	if got < 69000 || got > 70000 {
		t.Errorf("EMI out of expected band: %f", got)
	}
}

func TestEMIGuards(t *testing.T) {
	if EMI(0, 8.5, 20) != 0 {
		t.Error("Zero principal should give zero EMI")
	}
	if EMI(-100, 8.5, 20) != 0 {
		t.Error("Negative principal should give zero EMI")
	}
	if EMI(100000, 8.5, 0) != 0 {
		t.Error("Zero term should give zero EMI")
	}
}

func TestOutstandingBoundaries(t *testing.T) {
	p := 2000000.0
	if got := OutstandingAfterPayments(p, 11, 5, 0); got != p {
		t.Errorf("Zero payments should leave principal untouched, got %f", got)
	}
	if got := OutstandingAfterPayments(p, 11, 5, 60); got != 0 {
		t.Errorf("Full term should leave zero balance, got %f", got)
	}
	if got := OutstandingAfterPayments(p, 11, 5, 61); got != 0 {
		t.Errorf("Overpaid loan should leave zero balance, got %f", got)
	}
}

func TestOutstandingMonotonicNonIncreasing(t *testing.T) {
	prev := math.Inf(1)
	for k := 0; k <= 240; k++ {
		bal := OutstandingAfterPayments(8000000, 8.5, 20, k)
		if bal < 0 {
			t.Fatalf("Negative balance at k=%d: %f", k, bal)
		}
		if bal > prev {
			t.Fatalf("Balance increased at k=%d: %f -> %f", k, prev, bal)
		}
		prev = bal
	}
}

func TestOutstandingZeroRateLinear(t *testing.T) {
	got := OutstandingAfterPayments(120000, 0, 10, 30)
	want := 120000 * (1 - 30.0/120.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected linear balance %f, got %f", want, got)
	}
}

func TestTotalInterestGuards(t *testing.T) {
	if TotalInterestPaid(0, 8.5, 20, 12) != 0 {
		t.Error("Zero principal should accrue no interest")
	}
	if TotalInterestPaid(100000, 8.5, 20, 0) != 0 {
		t.Error("Zero payments should accrue no interest")
	}
	if TotalInterestPaid(100000, 0, 10, 12) != 0 {
		t.Error("Zero rate should accrue no interest")
	}
}

func TestTotalInterestMatchesClosedFormOverFullTerm(t *testing.T) {
	// Over the whole term, interest = EMI*n - principal. The iterative
	// walk must agree with that identity to float tolerance.
	p := 2000000.0
	n := 60
	emi := EMI(p, 11, 5)
	want := emi*float64(n) - p

	got := TotalInterestPaid(p, 11, 5, n)
	if math.Abs(got-want) > 1.0 { // rupee-level agreement after 60 rounding steps
		t.Errorf("Expected total interest ~%f, got %f", want, got)
	}
}

func TestTotalInterestConsistentWithBalanceDrop(t *testing.T) {
	// After k payments: paid = EMI*k, principal repaid = P - B_k,
	// so interest = EMI*k - (P - B_k).
	p := 8000000.0
	k := 36
	emi := EMI(p, 8.5, 20)
	balance := OutstandingAfterPayments(p, 8.5, 20, k)
	want := emi*float64(k) - (p - balance)

	got := TotalInterestPaid(p, 8.5, 20, k)
	if math.Abs(got-want) > 1.0 {
		t.Errorf("Iterative interest %f disagrees with closed form %f", got, want)
	}
}
