// Package lifecycle holds the pickup state machine and the item ledger.
//
// Every event takes a pickup snapshot and returns the next snapshot. A
// rejected event returns the input snapshot together with an *Error; nothing
// here panics or touches storage.
package lifecycle

import (
	"github.com/epicircle/scrap-pickups/internal/model"
	"github.com/epicircle/scrap-pickups/internal/pickupcode"
)

type edge struct {
	from     model.PickupStatus
	to       model.PickupStatus
	external bool
}

// transitions lists every edge of the pickup lifecycle. External edges are
// driven by actors outside the partner workflow and have no event here.
var transitions = []edge{
	{model.PickupStatusScheduled, model.PickupStatusAccepted, false},
	{model.PickupStatusAccepted, model.PickupStatusInProcess, false},
	{model.PickupStatusInProcess, model.PickupStatusPendingApproval, false},
	{model.PickupStatusPendingApproval, model.PickupStatusCompleted, true},
	{model.PickupStatusScheduled, model.PickupStatusCancelled, true},
	{model.PickupStatusAccepted, model.PickupStatusCancelled, true},
	{model.PickupStatusInProcess, model.PickupStatusCancelled, true},
	{model.PickupStatusPendingApproval, model.PickupStatusCancelled, true},
}

// Allowed reports whether the lifecycle declares an edge from one state to
// another, and whether that edge is external.
func Allowed(from, to model.PickupStatus) (bool, bool) {
	for _, e := range transitions {
		if e.from == from && e.to == to {
			return true, e.external
		}
	}
	return false, false
}

func Accept(p model.Pickup) (model.Pickup, error) {
	if p.Status != model.PickupStatusScheduled {
		return p, wrongState("accept", p.Status)
	}
	return moveTo(p, model.PickupStatusAccepted), nil
}

func StartWithCode(p model.Pickup, code string) (model.Pickup, error) {
	if p.Status != model.PickupStatusAccepted {
		return p, wrongState("start", p.Status)
	}
	if !pickupcode.Match(p.PickupCode, code) {
		return p, validationError(CodeInvalidCode, MsgInvalidCode)
	}
	return moveTo(p, model.PickupStatusInProcess), nil
}

func SubmitForApproval(p model.Pickup) (model.Pickup, error) {
	if p.Status != model.PickupStatusInProcess {
		return p, wrongState("submit", p.Status)
	}
	if len(p.Items) == 0 {
		return p, validationError(CodeNoItems, MsgNoItems)
	}
	return moveTo(p, model.PickupStatusPendingApproval), nil
}

// AddItem applies the ledger to a pickup that is being itemized.
func AddItem(p model.Pickup, name, quantity, price string) (model.Pickup, model.ScrapItem, error) {
	if p.Status != model.PickupStatusInProcess {
		return p, model.ScrapItem{}, wrongState("add items to", p.Status)
	}
	items, item, err := AppendItem(p.Items, name, quantity, price)
	if err != nil {
		return p, model.ScrapItem{}, err
	}
	next := p.Clone()
	next.Items = items
	return next, item, nil
}

func RemoveItem(p model.Pickup, itemID string) (model.Pickup, error) {
	if p.Status != model.PickupStatusInProcess {
		return p, wrongState("remove items from", p.Status)
	}
	next := p.Clone()
	next.Items = DropItem(p.Items, itemID)
	return next, nil
}

func moveTo(p model.Pickup, status model.PickupStatus) model.Pickup {
	next := p.Clone()
	next.Status = status
	return next
}
