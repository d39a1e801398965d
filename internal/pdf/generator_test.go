package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epicircle/scrap-pickups/internal/model"
)

func TestGenerateReceipt(t *testing.T) {
	receipt := model.Receipt{
		Pickup: model.Pickup{
			ID:                "PU-1004",
			Customer:          model.Customer{Name: "Vikram Singh", Phone: "9012345678"},
			Address:           "3 Civil Lines, Delhi",
			ScheduledDate:     "2026-10-15",
			ScheduledTimeSlot: "9 AM - 12 PM",
			Status:            model.PickupStatusPendingApproval,
			Items: []model.ScrapItem{
				{ID: "a", Name: "Copper Wire", Quantity: "5 kg", Price: decimal.RequireFromString("25.50")},
				{ID: "b", Name: "Café Tins", Quantity: "2 kg", Price: decimal.RequireFromString("1.25")},
			},
		},
		Total:    decimal.RequireFromString("26.75"),
		IssuedAt: time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC),
	}

	out, err := NewGenerator().Generate(receipt)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestGenerateReceiptWithoutItems(t *testing.T) {
	out, err := NewGenerator().Generate(model.Receipt{Pickup: model.Pickup{ID: "PU-1"}})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
