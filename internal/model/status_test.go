package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickupStatus(t *testing.T) {
	all := []PickupStatus{
		PickupStatusScheduled,
		PickupStatusAccepted,
		PickupStatusInProcess,
		PickupStatusPendingApproval,
		PickupStatusCompleted,
		PickupStatusCancelled,
	}
	for _, s := range all {
		assert.True(t, s.Valid(), s)
		assert.NotEqual(t, "Unknown pickup status.", s.Describe(), s)
	}
	assert.False(t, PickupStatus("LOST").Valid())
	assert.Equal(t, "Unknown pickup status.", PickupStatus("LOST").Describe())

	assert.True(t, PickupStatusCompleted.Terminal())
	assert.True(t, PickupStatusCancelled.Terminal())
	assert.False(t, PickupStatusPendingApproval.Terminal())

	assert.True(t, PickupStatusInProcess.ShowsItems())
	assert.False(t, PickupStatusAccepted.ShowsItems())
}

func TestRequestBadge(t *testing.T) {
	assert.Equal(t, "yellow", RequestStatusPendingApproval.Badge())
	assert.Equal(t, "blue", RequestStatusApproved.Badge())
	assert.Equal(t, "green", RequestStatusPickedUp.Badge())
	assert.Equal(t, "red", RequestStatusCancelled.Badge())
	assert.Equal(t, "gray", RequestStatus("Lost").Badge())
}

func TestCloneDoesNotAlias(t *testing.T) {
	link := "https://maps.google.com/?q=x"
	p := Pickup{ID: "PU-1", GoogleMapsLink: &link, Items: []ScrapItem{{ID: "a", Name: "Tin"}}}

	c := p.Clone()
	c.Items[0].Name = "Brass"
	*c.GoogleMapsLink = "changed"

	assert.Equal(t, "Tin", p.Items[0].Name)
	assert.Equal(t, "https://maps.google.com/?q=x", *p.GoogleMapsLink)
}
