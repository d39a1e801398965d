package model

type RequestStatus string

const (
	RequestStatusPendingApproval RequestStatus = "Pending for Approval"
	RequestStatusApproved        RequestStatus = "Approved"
	RequestStatusPickedUp        RequestStatus = "Picked Up"
	RequestStatusCancelled       RequestStatus = "Cancelled"
)

// Badge returns the colour used for the status badge in the order history.
func (s RequestStatus) Badge() string {
	switch s {
	case RequestStatusPendingApproval:
		return "yellow"
	case RequestStatusApproved:
		return "blue"
	case RequestStatusPickedUp:
		return "green"
	case RequestStatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

// PickupRequest is a customer-created scheduling request. The JSON field
// names are the persisted local state format.
type PickupRequest struct {
	ID         string        `json:"id"`
	Category   string        `json:"category"`
	Quantity   string        `json:"quantity"`
	Date       string        `json:"date"`
	TimeSlot   string        `json:"timeSlot"`
	Address    string        `json:"address"`
	MapLink    string        `json:"mapLink,omitempty"`
	Status     RequestStatus `json:"status"`
	PickupCode string        `json:"pickupCode"`
	CreatedAt  int64         `json:"createdAt"`
}

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var Categories = []Category{
	{ID: "paper", Label: "Paper & Cardboard"},
	{ID: "plastic", Label: "Plastics"},
	{ID: "metal", Label: "Metals"},
	{ID: "ewaste", Label: "E-Waste"},
	{ID: "other", Label: "Other"},
}

var TimeSlots = []string{
	"9 AM - 12 PM",
	"12 PM - 3 PM",
	"3 PM - 6 PM",
}
