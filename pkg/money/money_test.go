package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	d, err := Parse("1234.56")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !d.Equal(decimal.NewFromFloat(1234.56)) {
		t.Fatalf("got %s", d)
	}

	if _, err := Parse("not-a-number"); err == nil {
		t.Fatal("expected error for junk input")
	}
}

func TestDiv_ByZero(t *testing.T) {
	_, err := Div(decimal.NewFromInt(10), decimal.Zero)
	if !errors.Is(err, ErrNumeric) {
		t.Fatalf("err = %v, want ErrNumeric", err)
	}
}

func TestDiv_Exact(t *testing.T) {
	got, err := Div(decimal.NewFromInt(10000), decimal.NewFromInt(12))
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if Round(got).String() != "833.33" {
		t.Fatalf("got %s", Round(got))
	}
}

func TestPowInt(t *testing.T) {
	base := MustParse("1.01")
	got, err := PowInt(base, 2)
	if err != nil {
		t.Fatalf("PowInt: %v", err)
	}
	if got.String() != "1.0201" {
		t.Fatalf("got %s", got)
	}
}

func TestPowInt_BadExponent(t *testing.T) {
	for _, n := range []int{-1, maxExponent + 1} {
		if _, err := PowInt(decimal.NewFromInt(2), n); !errors.Is(err, ErrNumeric) {
			t.Fatalf("exponent %d: err = %v, want ErrNumeric", n, err)
		}
	}
}

func TestMonthlyRate(t *testing.T) {
	// 12% annual -> 0.01 monthly, exactly.
	r := MonthlyRate(decimal.NewFromInt(12))
	if !r.Equal(MustParse("0.01")) {
		t.Fatalf("got %s", r)
	}
	if !MonthlyRate(decimal.Zero).IsZero() {
		t.Fatal("zero annual rate must give zero monthly rate")
	}
}
