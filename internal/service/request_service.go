package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/epicircle/scrap-pickups/internal/model"
	"github.com/epicircle/scrap-pickups/internal/pickupcode"
)

const (
	DashboardRecent = 3

	isoDate = "2006-01-02"
)

type WizardStep string

const (
	StepCategory WizardStep = "CATEGORY"
	StepQuantity WizardStep = "QUANTITY"
	StepSchedule WizardStep = "SCHEDULE"
	StepSummary  WizardStep = "SUMMARY"
)

// StepError names the first wizard step whose fields are not filled in.
type StepError struct {
	Step    WizardStep
	Message string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Message)
}

func (e *StepError) Unwrap() error {
	return ErrInvalidInput
}

type RequestStore interface {
	List(ctx context.Context, owner string) ([]model.PickupRequest, error)
	Update(ctx context.Context, owner string, fn func([]model.PickupRequest) ([]model.PickupRequest, error)) error
}

type HistoryExporter interface {
	Generate(history model.OrderHistory) ([]byte, error)
}

type ScheduleInput struct {
	Category string
	Quantity string
	Date     string
	TimeSlot string
	Address  string
	MapLink  string
}

type ExportResult struct {
	FileName string
	Content  []byte
}

type RequestService struct {
	store RequestStore
	excel HistoryExporter
	now   func() time.Time
}

func NewRequestService(store RequestStore, excel HistoryExporter) *RequestService {
	return &RequestService{
		store: store,
		excel: excel,
		now:   time.Now,
	}
}

func (s *RequestService) Schedule(ctx context.Context, principal model.Principal, input ScheduleInput) (*model.PickupRequest, error) {
	if !principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}

	now := s.now()
	request, err := s.buildRequest(input, now)
	if err != nil {
		return nil, err
	}

	err = s.store.Update(ctx, principal.Phone, func(current []model.PickupRequest) ([]model.PickupRequest, error) {
		next := make([]model.PickupRequest, 0, len(current)+1)
		next = append(next, *request)
		return append(next, current...), nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (s *RequestService) buildRequest(input ScheduleInput, now time.Time) (*model.PickupRequest, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, &StepError{Step: StepCategory, Message: "Please select a category."}
	}
	quantity := strings.TrimSpace(input.Quantity)
	if quantity == "" {
		return nil, &StepError{Step: StepQuantity, Message: "Please enter an approximate quantity."}
	}
	date := strings.TrimSpace(input.Date)
	timeSlot := strings.TrimSpace(input.TimeSlot)
	address := strings.TrimSpace(input.Address)
	if date == "" || timeSlot == "" || address == "" {
		return nil, &StepError{Step: StepSchedule, Message: "Please fill out all schedule details."}
	}
	if !validTimeSlot(timeSlot) {
		return nil, &StepError{Step: StepSchedule, Message: "Please pick one of the available time slots."}
	}

	if day, err := time.ParseInLocation(isoDate, date, now.Location()); err == nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if day.Before(today) {
			return nil, &StepError{Step: StepSchedule, Message: "Please select a date from today onwards."}
		}
		date = displayDate(day)
	}

	code, err := pickupcode.New()
	if err != nil {
		return nil, err
	}

	return &model.PickupRequest{
		ID:         uuid.NewString(),
		Category:   categoryLabel(category),
		Quantity:   quantity,
		Date:       date,
		TimeSlot:   timeSlot,
		Address:    address,
		MapLink:    strings.TrimSpace(input.MapLink),
		Status:     model.RequestStatusPendingApproval,
		PickupCode: code,
		CreatedAt:  now.UnixMilli(),
	}, nil
}

// List returns the owner's requests, newest first.
func (s *RequestService) List(ctx context.Context, principal model.Principal) ([]model.PickupRequest, error) {
	if !principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}
	requests, err := s.store.List(ctx, principal.Phone)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt > requests[j].CreatedAt
	})
	return requests, nil
}

func (s *RequestService) Recent(ctx context.Context, principal model.Principal, n int) ([]model.PickupRequest, error) {
	requests, err := s.List(ctx, principal)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(requests) > n {
		requests = requests[:n]
	}
	return requests, nil
}

// Approve confirms a request that is pending for approval. Any other status
// is left untouched.
func (s *RequestService) Approve(ctx context.Context, principal model.Principal, id string) (*model.PickupRequest, error) {
	if !principal.IsCustomer() {
		return nil, ErrPermissionDenied
	}

	var approved model.PickupRequest
	err := s.store.Update(ctx, principal.Phone, func(current []model.PickupRequest) ([]model.PickupRequest, error) {
		for i := range current {
			if current[i].ID != id {
				continue
			}
			if current[i].Status != model.RequestStatusPendingApproval {
				return nil, fmt.Errorf("%w: request is %s and cannot be approved", ErrInvalidInput, current[i].Status)
			}
			current[i].Status = model.RequestStatusApproved
			approved = current[i]
			return current, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &approved, nil
}

func (s *RequestService) Export(ctx context.Context, principal model.Principal) (*ExportResult, error) {
	requests, err := s.List(ctx, principal)
	if err != nil {
		return nil, err
	}

	now := s.now()
	content, err := s.excel.Generate(model.OrderHistory{
		Owner:       model.User{Name: principal.Name, Phone: principal.Phone},
		Requests:    requests,
		GeneratedAt: now,
	})
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: fmt.Sprintf("order_history_%s.xlsx", now.Format("20060102")),
		Content:  content,
	}, nil
}

// categoryLabel maps a category id to its label. Known labels pass through;
// anything else is filed under Other.
func categoryLabel(value string) string {
	for _, c := range model.Categories {
		if c.ID == value || c.Label == value {
			return c.Label
		}
	}
	return "Other"
}

func validTimeSlot(slot string) bool {
	for _, s := range model.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// displayDate renders a day the way the scheduling form shows it,
// e.g. "June 1st, 2025".
func displayDate(day time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", day.Month(), day.Day(), ordinalSuffix(day.Day()), day.Year())
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
