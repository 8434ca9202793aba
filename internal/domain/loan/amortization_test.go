package loan

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"loan-origination-backend/pkg/money"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestMonthlyPayment_StandardFormula(t *testing.T) {
	// 10000 at 12% over 36 months -> 332.14
	got, err := MonthlyPayment(dec(t, "10000"), dec(t, "12"), 36)
	if err != nil {
		t.Fatalf("MonthlyPayment: %v", err)
	}
	if got.String() != "332.14" {
		t.Fatalf("payment = %s, want 332.14", got)
	}
}

func TestMonthlyPayment_ZeroRate_ExactSplit(t *testing.T) {
	// rate == 0 -> principal / term exactly, no compounding
	got, err := MonthlyPayment(dec(t, "1200"), decimal.Zero, 12)
	if err != nil {
		t.Fatalf("MonthlyPayment: %v", err)
	}
	if !got.Equal(dec(t, "100")) {
		t.Fatalf("payment = %s, want 100", got)
	}
}

func TestMonthlyPayment_ZeroRate_Rounds(t *testing.T) {
	got, err := MonthlyPayment(dec(t, "10000"), decimal.Zero, 36)
	if err != nil {
		t.Fatalf("MonthlyPayment: %v", err)
	}
	if got.String() != "277.78" {
		t.Fatalf("payment = %s, want 277.78", got)
	}
}

func TestMonthlyPayment_Deterministic(t *testing.T) {
	p, rate := dec(t, "35000.55"), dec(t, "17.25")
	first, err := MonthlyPayment(p, rate, 120)
	if err != nil {
		t.Fatalf("MonthlyPayment: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := MonthlyPayment(p, rate, 120)
		if err != nil {
			t.Fatalf("MonthlyPayment run %d: %v", i, err)
		}
		if again.String() != first.String() {
			t.Fatalf("run %d: %s != %s", i, again, first)
		}
	}
}

func TestMonthlyPayment_NonNegative(t *testing.T) {
	cases := []struct {
		principal string
		rate      string
		term      int
	}{
		{"0.01", "0", 1},
		{"1", "100", 600},
		{"999999.99", "0.01", 1},
		{"5000", "20", 12},
	}
	for _, tc := range cases {
		got, err := MonthlyPayment(dec(t, tc.principal), dec(t, tc.rate), tc.term)
		if err != nil {
			t.Fatalf("MonthlyPayment(%s,%s,%d): %v", tc.principal, tc.rate, tc.term, err)
		}
		if got.IsNegative() {
			t.Fatalf("MonthlyPayment(%s,%s,%d) = %s, negative", tc.principal, tc.rate, tc.term, got)
		}
	}
}

func TestMonthlyPayment_BadTerm(t *testing.T) {
	for _, term := range []int{0, -1} {
		_, err := MonthlyPayment(dec(t, "1000"), dec(t, "10"), term)
		if !errors.Is(err, money.ErrNumeric) {
			t.Fatalf("term %d: err = %v, want money.ErrNumeric", term, err)
		}
	}
}

func TestMonthlyPayment_IndependentOfEligibility(t *testing.T) {
	// A request that fails eligibility can still be quoted a payment.
	income := dec(t, "60000")
	score := 700
	principal := dec(t, "40000")

	elig := EvaluateEligibility(Applicant{AnnualIncome: &income, CreditScore: &score}, principal)
	if elig.Qualifies {
		t.Fatalf("expected rejection for principal %s on income %s", principal, income)
	}

	pay, err := MonthlyPayment(principal, dec(t, "12"), 36)
	if err != nil {
		t.Fatalf("MonthlyPayment: %v", err)
	}
	if !pay.IsPositive() {
		t.Fatalf("payment = %s, want positive", pay)
	}
}
