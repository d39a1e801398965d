// Package pricing suggests prices for scrap items. The service treats a
// Suggester as an opaque collaborator: one round trip, no retries.
package pricing

import (
	"context"
	"errors"
	"math/rand"

	"github.com/shopspring/decimal"
)

// ErrNoSuggestion means the collaborator answered but had no usable price.
var ErrNoSuggestion = errors.New("could not suggest a price for this item")

type Suggester interface {
	Suggest(ctx context.Context, itemName string) (decimal.Decimal, error)
}

// Placeholder returns a uniformly random price below ten. It stands in for a
// real price source and carries no pricing logic.
type Placeholder struct {
	rand func() float64
}

func NewPlaceholder() *Placeholder {
	return &Placeholder{rand: rand.Float64}
}

func (p *Placeholder) Suggest(ctx context.Context, itemName string) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	return usable(decimal.NewFromFloat(p.rand() * 10))
}

// usable applies the collaborator contract: unknown items come back as -1 or
// zero and are not a price.
func usable(price decimal.Decimal) (decimal.Decimal, error) {
	price = price.Round(2)
	if !price.IsPositive() {
		return decimal.Zero, ErrNoSuggestion
	}
	return price, nil
}
