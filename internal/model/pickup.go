package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type PickupStatus string

const (
	PickupStatusScheduled       PickupStatus = "SCHEDULED"
	PickupStatusAccepted        PickupStatus = "ACCEPTED"
	PickupStatusInProcess       PickupStatus = "IN_PROCESS"
	PickupStatusPendingApproval PickupStatus = "PENDING_APPROVAL"
	PickupStatusCompleted       PickupStatus = "COMPLETED"
	PickupStatusCancelled       PickupStatus = "CANCELLED"
)

// Valid reports whether s is one of the declared pickup states.
func (s PickupStatus) Valid() bool {
	switch s {
	case PickupStatusScheduled,
		PickupStatusAccepted,
		PickupStatusInProcess,
		PickupStatusPendingApproval,
		PickupStatusCompleted,
		PickupStatusCancelled:
		return true
	}
	return false
}

func (s PickupStatus) Terminal() bool {
	return s == PickupStatusCompleted || s == PickupStatusCancelled
}

// Describe returns the text shown to the partner for the pickup's current state.
func (s PickupStatus) Describe() string {
	switch s {
	case PickupStatusScheduled:
		return "This pickup is scheduled. Accept it to proceed."
	case PickupStatusAccepted:
		return "Pickup accepted. Enter the customer's code to start."
	case PickupStatusInProcess:
		return "Pickup in process. Add items and submit for approval."
	case PickupStatusPendingApproval:
		return "Waiting for customer approval."
	case PickupStatusCompleted:
		return "This pickup has been successfully completed."
	case PickupStatusCancelled:
		return "This pickup was cancelled."
	default:
		return "Unknown pickup status."
	}
}

// ShowsItems reports whether the item table is part of the pickup view.
func (s PickupStatus) ShowsItems() bool {
	switch s {
	case PickupStatusInProcess, PickupStatusPendingApproval, PickupStatusCompleted:
		return true
	case PickupStatusScheduled, PickupStatusAccepted, PickupStatusCancelled:
		return false
	default:
		return false
	}
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ScrapItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity string          `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Pickup is a value snapshot. Use Clone before handing it to code that may
// keep a reference to Items.
type Pickup struct {
	ID                string       `json:"id"`
	Customer          Customer     `json:"customer"`
	Address           string       `json:"address"`
	GoogleMapsLink    *string      `json:"googleMapsLink,omitempty"`
	ScheduledDate     string       `json:"scheduledDate"`
	ScheduledTimeSlot string       `json:"scheduledTimeSlot"`
	Status            PickupStatus `json:"status"`
	PickupCode        string       `json:"pickupCode"`
	Items             []ScrapItem  `json:"items"`
}

func (p Pickup) Clone() Pickup {
	out := p
	out.Items = make([]ScrapItem, len(p.Items))
	copy(out.Items, p.Items)
	if p.GoogleMapsLink != nil {
		link := *p.GoogleMapsLink
		out.GoogleMapsLink = &link
	}
	return out
}
