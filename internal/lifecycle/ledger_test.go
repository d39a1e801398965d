package lifecycle

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicircle/scrap-pickups/internal/model"
)

func idSet(items []model.ScrapItem) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item.ID] = struct{}{}
	}
	return set
}

func TestAppendItemValidation(t *testing.T) {
	cases := []struct {
		name     string
		itemName string
		quantity string
		price    string
		code     Code
	}{
		{"missing name", "", "5 kg", "1", CodeMissingFields},
		{"blank name", "   ", "5 kg", "1", CodeMissingFields},
		{"missing quantity", "Copper", "", "1", CodeMissingFields},
		{"missing price", "Copper", "5 kg", "", CodeMissingFields},
		{"negative price", "Copper", "5 kg", "-1", CodeInvalidPrice},
		{"not a number", "Copper", "5 kg", "abc", CodeInvalidPrice},
		{"not finite", "Copper", "5 kg", "NaN", CodeInvalidPrice},
		{"huge exponent", "Copper", "5 kg", "1e10000000", CodeInvalidPrice},
		{"sub-cent", "Copper", "5 kg", "0.005", CodeInvalidPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := []model.ScrapItem{}
			after, _, err := AppendItem(before, tc.itemName, tc.quantity, tc.price)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			lerr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tc.code, lerr.Code)
			assert.Empty(t, after)
		})
	}
}

func TestParsePrice(t *testing.T) {
	valid := []struct {
		raw  string
		want string
	}{
		{"25.50", "25.50"},
		{" 7 ", "7.00"},
		{"0.500", "0.50"},
		{"1.5e1", "15.00"},
		{"9999999999999999.99", "9999999999999999.99"},
	}
	for _, tc := range valid {
		price, err := ParsePrice(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, price.StringFixed(2), tc.raw)
	}

	invalid := []string{
		"1e10000000",
		"1e-10000000",
		"1e16",
		"10000000000000000",
		"0.005",
		"1.001",
		"123456789012345678901234567890123",
	}
	for _, raw := range invalid {
		_, err := ParsePrice(raw)
		lerr, ok := AsError(err)
		require.True(t, ok, raw)
		assert.Equal(t, CodeInvalidPrice, lerr.Code, raw)
	}
}

func TestAppendItemPreservesOrder(t *testing.T) {
	var items []model.ScrapItem
	var err error
	names := []string{"Copper Wire", "Aluminium Cans", "Newspaper"}
	for _, name := range names {
		items, _, err = AppendItem(items, name, "1 kg", "2.10")
		require.NoError(t, err)
	}
	require.Len(t, items, 3)
	for i, name := range names {
		assert.Equal(t, name, items[i].Name)
		assert.NotEmpty(t, items[i].ID)
	}
	assert.Len(t, idSet(items), 3, "ids must be unique")
}

func TestAppendThenDropRestoresIDSet(t *testing.T) {
	items, _, err := AppendItem(nil, "Iron", "3 kg", "4")
	require.NoError(t, err)
	items, _, err = AppendItem(items, "Brass", "1 kg", "7.25")
	require.NoError(t, err)
	before := idSet(items)

	withNew, added, err := AppendItem(items, "Copper Wire", "5 kg", "25.50")
	require.NoError(t, err)
	assert.Len(t, withNew, 3)

	after := DropItem(withNew, added.ID)
	assert.Equal(t, before, idSet(after))
}

func TestDropUnknownItemIsNoop(t *testing.T) {
	items, _, err := AppendItem(nil, "Iron", "3 kg", "4")
	require.NoError(t, err)
	out := DropItem(items, "missing")
	assert.Equal(t, items, out)
}

func TestTotal(t *testing.T) {
	assert.True(t, Total(nil).Equal(decimal.Zero))
	assert.Equal(t, "0.00", FormatTotal(nil))

	items := []model.ScrapItem{
		{ID: "a", Price: decimal.RequireFromString("0.10")},
		{ID: "b", Price: decimal.RequireFromString("0.20")},
		{ID: "c", Price: decimal.RequireFromString("25.50")},
	}
	assert.True(t, Total(items).Equal(decimal.RequireFromString("25.80")))
	assert.Equal(t, "25.80", FormatTotal(items))
}

func TestTotalRoundsToCents(t *testing.T) {
	items := []model.ScrapItem{
		{ID: "a", Price: decimal.RequireFromString("1.005")},
		{ID: "b", Price: decimal.RequireFromString("2.001")},
	}
	assert.Equal(t, "3.01", FormatTotal(items))
}
