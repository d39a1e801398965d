package lifecycle

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/epicircle/scrap-pickups/internal/model"
)

const (
	// MaxPriceDigits matches the integer part of NUMERIC(18,2).
	MaxPriceDigits = 16
	maxPriceInput  = 32
)

var maxPrice = decimal.New(1, MaxPriceDigits)

// ParsePrice accepts a non-negative decimal below 10^16 with at most two
// decimal places. Empty input is reported as a missing field.
func ParsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, validationError(CodeMissingFields, MsgMissingFields)
	}
	if len(raw) > maxPriceInput {
		return decimal.Zero, validationError(CodeInvalidPrice, MsgInvalidPrice)
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, validationError(CodeInvalidPrice, MsgInvalidPrice)
	}
	// Exponent bounds keep the comparisons below from rescaling huge values.
	exp := price.Exponent()
	if exp > MaxPriceDigits || exp < -maxPriceInput {
		return decimal.Zero, validationError(CodeInvalidPrice, MsgInvalidPrice)
	}
	if price.GreaterThanOrEqual(maxPrice) || !price.Equal(price.Truncate(2)) {
		return decimal.Zero, validationError(CodeInvalidPrice, MsgInvalidPrice)
	}
	return price, nil
}

// AppendItem validates the item fields and returns a new collection with the
// item appended. The input slice is never modified.
func AppendItem(items []model.ScrapItem, name, quantity, price string) ([]model.ScrapItem, model.ScrapItem, error) {
	name = strings.TrimSpace(name)
	quantity = strings.TrimSpace(quantity)
	if name == "" || quantity == "" || strings.TrimSpace(price) == "" {
		return items, model.ScrapItem{}, validationError(CodeMissingFields, MsgMissingFields)
	}
	parsed, err := ParsePrice(price)
	if err != nil {
		return items, model.ScrapItem{}, err
	}

	item := model.ScrapItem{
		ID:       uuid.NewString(),
		Name:     name,
		Quantity: quantity,
		Price:    parsed,
	}
	out := make([]model.ScrapItem, 0, len(items)+1)
	out = append(out, items...)
	out = append(out, item)
	return out, item, nil
}

// DropItem returns a new collection without the item with the given id.
// An unknown id yields an equal copy.
func DropItem(items []model.ScrapItem, itemID string) []model.ScrapItem {
	out := make([]model.ScrapItem, 0, len(items))
	for _, item := range items {
		if item.ID == itemID {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Total is the exact sum of item prices rounded to cents.
func Total(items []model.ScrapItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total.Round(2)
}

// FormatTotal renders Total with exactly two decimals.
func FormatTotal(items []model.ScrapItem) string {
	return Total(items).StringFixed(2)
}
