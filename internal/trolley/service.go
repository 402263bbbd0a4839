package trolley

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Calculator computes a total price for a validated trolley. Implementations
// must not mutate the trolley.
type Calculator interface {
	Total(ctx context.Context, t *Trolley) (decimal.Decimal, error)
}

// LocalCalculator prices trolleys in-process using the pricing engine.
type LocalCalculator struct {
	Logger zerolog.Logger
}

// Total implements Calculator.
func (c LocalCalculator) Total(_ context.Context, t *Trolley) (decimal.Decimal, error) {
	c.Logger.Debug().
		Int("products", len(t.Products)).
		Int("specials", len(t.Specials)).
		Int("quantities", len(t.Quantities)).
		Msg("starting trolley total calculation")

	total, err := Total(t)
	if err != nil {
		return decimal.Zero, err
	}
	c.Logger.Info().Str("total", total.String()).Msg("calculated trolley total")
	return total, nil
}
