package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/epicircle/scrap-pickups/internal/model"
)

func TestGenerateOrderHistory(t *testing.T) {
	created := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	history := model.OrderHistory{
		Owner: model.User{Name: "Priya", Phone: "9876543210"},
		Requests: []model.PickupRequest{
			{ID: "2", Category: "Metals", Quantity: "5 kg", Date: "June 1 2025", TimeSlot: "9 AM - 12 PM", Address: "123 Main St", Status: model.RequestStatusPendingApproval, PickupCode: "AB12CD", CreatedAt: created.UnixMilli()},
			{ID: "1", Category: "Paper & Cardboard", Quantity: "2 bags", Date: "May 3, 2025", TimeSlot: "3 PM - 6 PM", Address: "123 Main St", Status: model.RequestStatusApproved, PickupCode: "ZZ99YY", CreatedAt: created.Add(-time.Hour).UnixMilli()},
			{ID: "0", Category: "Metals", Quantity: "1 kg", Date: "May 1, 2025", TimeSlot: "12 PM - 3 PM", Address: "123 Main St", Status: model.RequestStatusApproved, PickupCode: "QQ11WW", CreatedAt: created.Add(-2 * time.Hour).UnixMilli()},
		},
		GeneratedAt: created,
	}

	out, err := NewGenerator().Generate(history)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Orders", "Metals", "Paper & Cardboard"}, file.GetSheetList())

	count, err := file.GetCellValue("Orders", "B4")
	require.NoError(t, err)
	assert.Equal(t, "3", count)

	code, err := file.GetCellValue("Orders", "H7")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", code)

	style, err := file.GetCellStyle("Orders", "G7")
	require.NoError(t, err)
	assert.NotZero(t, style)

	rows, err := file.GetRows("Metals")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestBuildSheetName(t *testing.T) {
	used := map[string]struct{}{"Orders": {}}
	assert.Equal(t, "E-Waste", buildSheetName("E-Waste", used))
	assert.Equal(t, "Orders-2", buildSheetName("Orders", used))
	assert.Equal(t, "a-b", buildSheetName("a/b", used))
	assert.Equal(t, "Category", buildSheetName("  ", used))
}
