package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is what the partner hands over once items are recorded.
type Receipt struct {
	Pickup   Pickup
	Total    decimal.Decimal
	IssuedAt time.Time
}

// OrderHistory is the customer's exported list of pickup requests.
type OrderHistory struct {
	Owner       User
	Requests    []PickupRequest
	GeneratedAt time.Time
}
