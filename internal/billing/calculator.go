package billing

import "guesthouse/internal/domain"

// Calculator turns a nightly rate and a night count into a dual-currency
// charge. USDRate is UGX per one USD, threaded in from configuration.
type Calculator struct {
	USDRate float64
}

// Charge keeps the UGX amount exact; the USD figure is informational and
// never persisted.
type Charge struct {
	Nights    int     `json:"nights"`
	AmountUGX int64   `json:"amount_ugx"`
	AmountUSD float64 `json:"amount_usd"`
}

func (c Calculator) Quote(nightlyRate int64, nights int) (Charge, error) {
	if nightlyRate < 0 {
		return Charge{}, domain.ValidationError{Field: "rate", Msg: "must not be negative"}
	}
	if nights < 1 {
		return Charge{}, domain.ValidationError{Field: "nights", Msg: "must be at least 1"}
	}
	amount := nightlyRate * int64(nights)
	return Charge{
		Nights:    nights,
		AmountUGX: amount,
		AmountUSD: c.ToUSD(amount),
	}, nil
}

// ToUSD converts a UGX amount at the configured rate; 0 when no rate is set.
func (c Calculator) ToUSD(amountUGX int64) float64 {
	if c.USDRate <= 0 {
		return 0
	}
	return float64(amountUGX) / c.USDRate
}
