package trolley

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when the trolley or a required collection is absent.
	ErrMissingField = errors.New("trolley: required field missing")
	// ErrInconsistentTrolley is returned when quantities or specials reference
	// unknown products, or a requested quantity is not strictly positive.
	ErrInconsistentTrolley = errors.New("trolley: inconsistent state")
)

// Validate checks the structural invariants of a trolley before any pricing
// attempt. On success it returns the trolley unchanged; it is a guard, not a
// transform. A trolley that fails validation must never reach a calculator.
func Validate(t *Trolley) (*Trolley, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: trolley", ErrMissingField)
	}
	if t.Products == nil {
		return nil, fmt.Errorf("%w: products", ErrMissingField)
	}
	if t.Quantities == nil {
		return nil, fmt.Errorf("%w: quantities", ErrMissingField)
	}

	known := make(map[string]struct{}, len(t.Products))
	for _, p := range t.Products {
		known[p.Name] = struct{}{}
	}

	for _, q := range t.Quantities {
		if _, ok := known[q.Name]; !ok {
			return nil, fmt.Errorf("%w: products and quantities are out of sync", ErrInconsistentTrolley)
		}
	}
	for _, s := range t.Specials {
		for _, q := range s.Quantities {
			if _, ok := known[q.Name]; !ok {
				return nil, fmt.Errorf("%w: products and specials are out of sync", ErrInconsistentTrolley)
			}
		}
	}
	for _, q := range t.Quantities {
		if q.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantities must be positive", ErrInconsistentTrolley)
		}
	}
	return t, nil
}
