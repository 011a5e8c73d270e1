package billing

import (
	"testing"

	"guesthouse/internal/domain"
)

func TestQuoteMultipliesRateByNights(t *testing.T) {
	calc := Calculator{USDRate: 3700}

	charge, err := calc.Quote(50_000, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if charge.AmountUGX != 150_000 {
		t.Fatalf("amount UGX wrong: got %d want 150000", charge.AmountUGX)
	}
	if charge.Nights != 3 {
		t.Fatalf("nights wrong: got %d", charge.Nights)
	}
	wantUSD := 150_000.0 / 3700.0
	if charge.AmountUSD != wantUSD {
		t.Fatalf("amount USD wrong: got %f want %f", charge.AmountUSD, wantUSD)
	}
}

func TestQuoteSingleNightIsExact(t *testing.T) {
	calc := Calculator{USDRate: 3700}

	charge, err := calc.Quote(50_000, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if charge.AmountUGX != 50_000 {
		t.Fatalf("amount UGX wrong: got %d want 50000", charge.AmountUGX)
	}
}

func TestQuoteRejectsNegativeRate(t *testing.T) {
	calc := Calculator{USDRate: 3700}

	if _, err := calc.Quote(-1, 2); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuoteRejectsNonPositiveNights(t *testing.T) {
	calc := Calculator{USDRate: 3700}

	if _, err := calc.Quote(50_000, 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for zero nights, got %v", err)
	}
	if _, err := calc.Quote(50_000, -3); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for negative nights, got %v", err)
	}
}

func TestToUSDWithoutRateIsZero(t *testing.T) {
	calc := Calculator{}

	if usd := calc.ToUSD(100_000); usd != 0 {
		t.Fatalf("expected 0 without a rate, got %f", usd)
	}
}
