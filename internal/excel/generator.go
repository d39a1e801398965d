package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/epicircle/scrap-pickups/internal/model"
)

const summarySheet = "Orders"

var badgeFills = map[string]string{
	"yellow": "FFF3C4",
	"blue":   "DBEAFE",
	"green":  "DCFCE7",
	"red":    "FEE2E2",
	"gray":   "E5E7EB",
}

var orderHeaders = []string{
	"Created",
	"Category",
	"Quantity",
	"Date",
	"Time slot",
	"Address",
	"Status",
	"Pickup code",
}

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes the order history: one summary sheet with every request,
// then one sheet per category in first-seen order.
func (g *Generator) Generate(history model.OrderHistory) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	g.writeSummary(file, history)

	used := map[string]struct{}{summarySheet: {}}
	for _, category := range categoriesOf(history.Requests) {
		sheet := buildSheetName(category, used)
		used[sheet] = struct{}{}

		if _, err := file.NewSheet(sheet); err != nil {
			return nil, err
		}
		g.writeOrders(file, sheet, 1, filterCategory(history.Requests, category))
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, history model.OrderHistory) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(summarySheet, cell, value)
	}

	set("A1", "Customer")
	set("B1", history.Owner.Name)
	set("A2", "Phone")
	set("B2", history.Owner.Phone)
	set("A3", "Generated")
	set("B3", formatDateTime(history.GeneratedAt))
	set("A4", "Requests")
	set("B4", len(history.Requests))

	g.writeOrders(file, summarySheet, 6, history.Requests)
}

func (g *Generator) writeOrders(file *excelize.File, sheet string, headerRow int, requests []model.PickupRequest) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	for i, header := range orderHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, header)
	}

	styles := make(map[string]int)
	for i, request := range requests {
		row := headerRow + 1 + i
		set(fmt.Sprintf("A%d", row), formatDateTime(time.UnixMilli(request.CreatedAt)))
		set(fmt.Sprintf("B%d", row), request.Category)
		set(fmt.Sprintf("C%d", row), request.Quantity)
		set(fmt.Sprintf("D%d", row), request.Date)
		set(fmt.Sprintf("E%d", row), request.TimeSlot)
		set(fmt.Sprintf("F%d", row), request.Address)
		set(fmt.Sprintf("G%d", row), string(request.Status))
		set(fmt.Sprintf("H%d", row), request.PickupCode)

		if style, ok := badgeStyle(file, styles, request.Status.Badge()); ok {
			cell := fmt.Sprintf("G%d", row)
			_ = file.SetCellStyle(sheet, cell, cell, style)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "C", 18)
	_ = file.SetColWidth(sheet, "D", "E", 18)
	_ = file.SetColWidth(sheet, "F", "F", 40)
	_ = file.SetColWidth(sheet, "G", "H", 20)
}

func badgeStyle(file *excelize.File, cache map[string]int, badge string) (int, bool) {
	if id, ok := cache[badge]; ok {
		return id, true
	}
	color, ok := badgeFills[badge]
	if !ok {
		return 0, false
	}
	id, err := file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
	if err != nil {
		return 0, false
	}
	cache[badge] = id
	return id, true
}

func categoriesOf(requests []model.PickupRequest) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, request := range requests {
		if _, ok := seen[request.Category]; ok {
			continue
		}
		seen[request.Category] = struct{}{}
		out = append(out, request.Category)
	}
	return out
}

func filterCategory(requests []model.PickupRequest, category string) []model.PickupRequest {
	var out []model.PickupRequest
	for _, request := range requests {
		if request.Category == category {
			out = append(out, request)
		}
	}
	return out
}

func buildSheetName(name string, used map[string]struct{}) string {
	base := sanitizeSheetName(name)
	if len(base) > 31 {
		base = base[:31]
	}

	candidate := base
	counter := 2
	for {
		if _, exists := used[candidate]; !exists {
			return candidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		candidate = trimmed + suffix
		counter++
	}
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Category"
	}
	return value
}

func formatDateTime(t time.Time) string {
	if t.IsZero() || t.UnixMilli() == 0 {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
