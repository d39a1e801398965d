package repository

import (
	"github.com/shopspring/decimal"

	"github.com/epicircle/scrap-pickups/internal/model"
)

func mapsLink(query string) *string {
	link := "https://maps.google.com/?q=" + query
	return &link
}

// DemoPickups is the collection a fresh partner dashboard starts with.
func DemoPickups() []model.Pickup {
	return []model.Pickup{
		{
			ID:                "PU-1001",
			Customer:          model.Customer{Name: "Priya Sharma", Phone: "9876543210"},
			Address:           "12 MG Road, Bengaluru",
			GoogleMapsLink:    mapsLink("12+MG+Road+Bengaluru"),
			ScheduledDate:     "2026-10-20",
			ScheduledTimeSlot: "9 AM - 12 PM",
			Status:            model.PickupStatusScheduled,
			PickupCode:        "AB12CD",
			Items:             []model.ScrapItem{},
		},
		{
			ID:                "PU-1002",
			Customer:          model.Customer{Name: "Rahul Verma", Phone: "9123456780"},
			Address:           "44 Park Street, Kolkata",
			ScheduledDate:     "2026-10-21",
			ScheduledTimeSlot: "12 PM - 3 PM",
			Status:            model.PickupStatusAccepted,
			PickupCode:        "XY34ZQ",
			Items:             []model.ScrapItem{},
		},
		{
			ID:                "PU-1003",
			Customer:          model.Customer{Name: "Anita Desai", Phone: "9988776655"},
			Address:           "7 Linking Road, Mumbai",
			GoogleMapsLink:    mapsLink("7+Linking+Road+Mumbai"),
			ScheduledDate:     "2026-10-18",
			ScheduledTimeSlot: "3 PM - 6 PM",
			Status:            model.PickupStatusInProcess,
			PickupCode:        "QW56ER",
			Items: []model.ScrapItem{
				{ID: "item-1003-1", Name: "Newspaper", Quantity: "10 kg", Price: decimal.RequireFromString("12.00")},
			},
		},
		{
			ID:                "PU-1004",
			Customer:          model.Customer{Name: "Vikram Singh", Phone: "9012345678"},
			Address:           "3 Civil Lines, Delhi",
			ScheduledDate:     "2026-10-15",
			ScheduledTimeSlot: "9 AM - 12 PM",
			Status:            model.PickupStatusPendingApproval,
			PickupCode:        "TY78UI",
			Items: []model.ScrapItem{
				{ID: "item-1004-1", Name: "Copper Wire", Quantity: "5 kg", Price: decimal.RequireFromString("25.50")},
				{ID: "item-1004-2", Name: "Aluminium Cans", Quantity: "3 kg", Price: decimal.RequireFromString("6.75")},
			},
		},
		{
			ID:                "PU-1005",
			Customer:          model.Customer{Name: "Meera Iyer", Phone: "9345678120"},
			Address:           "21 Anna Salai, Chennai",
			ScheduledDate:     "2026-10-10",
			ScheduledTimeSlot: "12 PM - 3 PM",
			Status:            model.PickupStatusCompleted,
			PickupCode:        "OP90AS",
			Items: []model.ScrapItem{
				{ID: "item-1005-1", Name: "Cardboard", Quantity: "8 kg", Price: decimal.RequireFromString("9.60")},
			},
		},
	}
}
