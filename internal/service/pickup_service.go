package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/epicircle/scrap-pickups/internal/lifecycle"
	"github.com/epicircle/scrap-pickups/internal/model"
	"github.com/epicircle/scrap-pickups/internal/pricing"
)

type PickupStore interface {
	ListPickups(ctx context.Context) ([]model.Pickup, error)
	GetPickup(ctx context.Context, id string) (*model.Pickup, error)
	SavePickup(ctx context.Context, pickup model.Pickup) error
	Seed(ctx context.Context, pickups []model.Pickup) error
}

type ReceiptGenerator interface {
	Generate(receipt model.Receipt) ([]byte, error)
}

type PickupView struct {
	model.Pickup
	Total       string `json:"total"`
	Description string `json:"description"`
	ShowItems   bool   `json:"showItems"`
	Closed      bool   `json:"closed"`
}

type ItemInput struct {
	Name     string
	Quantity string
	Price    string
}

type ReceiptResult struct {
	FileName string
	Content  []byte
}

type PickupService struct {
	store     PickupStore
	suggester pricing.Suggester
	pdf       ReceiptGenerator
	log       zerolog.Logger
	now       func() time.Time
}

func NewPickupService(store PickupStore, suggester pricing.Suggester, pdf ReceiptGenerator, log zerolog.Logger) *PickupService {
	return &PickupService{
		store:     store,
		suggester: suggester,
		pdf:       pdf,
		log:       log,
		now:       time.Now,
	}
}

func (s *PickupService) List(ctx context.Context, principal model.Principal) ([]PickupView, error) {
	if !principal.IsPartner() {
		return nil, ErrPermissionDenied
	}
	pickups, err := s.store.ListPickups(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]PickupView, 0, len(pickups))
	for _, p := range pickups {
		views = append(views, newView(p))
	}
	return views, nil
}

func (s *PickupService) Get(ctx context.Context, principal model.Principal, id string) (*PickupView, error) {
	if !principal.IsPartner() {
		return nil, ErrPermissionDenied
	}
	pickup, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	view := newView(*pickup)
	return &view, nil
}

func (s *PickupService) Accept(ctx context.Context, principal model.Principal, id string) (*PickupView, error) {
	return s.apply(ctx, principal, id, "accept", lifecycle.Accept)
}

func (s *PickupService) Start(ctx context.Context, principal model.Principal, id, code string) (*PickupView, error) {
	return s.apply(ctx, principal, id, "start", func(p model.Pickup) (model.Pickup, error) {
		return lifecycle.StartWithCode(p, code)
	})
}

func (s *PickupService) Submit(ctx context.Context, principal model.Principal, id string) (*PickupView, error) {
	return s.apply(ctx, principal, id, "submit", lifecycle.SubmitForApproval)
}

func (s *PickupService) AddItem(ctx context.Context, principal model.Principal, id string, input ItemInput) (*PickupView, *model.ScrapItem, error) {
	var added model.ScrapItem
	view, err := s.apply(ctx, principal, id, "add_item", func(p model.Pickup) (model.Pickup, error) {
		next, item, err := lifecycle.AddItem(p, input.Name, input.Quantity, input.Price)
		added = item
		return next, err
	})
	if err != nil {
		return nil, nil, err
	}
	return view, &added, nil
}

func (s *PickupService) RemoveItem(ctx context.Context, principal model.Principal, id, itemID string) (*PickupView, error) {
	return s.apply(ctx, principal, id, "remove_item", func(p model.Pickup) (model.Pickup, error) {
		return lifecycle.RemoveItem(p, itemID)
	})
}

// SuggestPrice asks the pricing collaborator for a per-item price. The result
// is only returned; it is never written into an item.
func (s *PickupService) SuggestPrice(ctx context.Context, principal model.Principal, itemName string) (decimal.Decimal, error) {
	if !principal.IsPartner() {
		return decimal.Zero, ErrPermissionDenied
	}
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return decimal.Zero, fmt.Errorf("%w: item name is required to suggest a price", ErrInvalidInput)
	}

	price, err := s.suggester.Suggest(ctx, itemName)
	if err != nil {
		if errors.Is(err, pricing.ErrNoSuggestion) {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrSuggestionFailed, pricing.ErrNoSuggestion)
		}
		s.log.Warn().Err(err).Str("item", itemName).Msg("price suggestion failed")
		return decimal.Zero, fmt.Errorf("%w: pricing service unavailable", ErrSuggestionFailed)
	}
	return price, nil
}

func (s *PickupService) Receipt(ctx context.Context, principal model.Principal, id string) (*ReceiptResult, error) {
	if !principal.IsPartner() {
		return nil, ErrPermissionDenied
	}
	pickup, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(model.Receipt{
		Pickup:   *pickup,
		Total:    lifecycle.Total(pickup.Items),
		IssuedAt: s.now(),
	})
	if err != nil {
		return nil, err
	}
	return &ReceiptResult{
		FileName: fmt.Sprintf("receipt_%s.pdf", pickup.ID),
		Content:  content,
	}, nil
}

func (s *PickupService) apply(
	ctx context.Context,
	principal model.Principal,
	id string,
	event string,
	transition func(model.Pickup) (model.Pickup, error),
) (*PickupView, error) {
	if !principal.IsPartner() {
		return nil, ErrPermissionDenied
	}
	current, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := transition(*current)
	if err != nil {
		return nil, mapLifecycleError(err)
	}
	if err := s.store.SavePickup(ctx, next); err != nil {
		return nil, mapStoreError(err)
	}

	s.log.Info().
		Str("pickup_id", next.ID).
		Str("event", event).
		Str("from", string(current.Status)).
		Str("to", string(next.Status)).
		Msg("pickup updated")

	view := newView(next)
	return &view, nil
}

func (s *PickupService) load(ctx context.Context, id string) (*model.Pickup, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: pickup id is required", ErrInvalidInput)
	}
	pickup, err := s.store.GetPickup(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return pickup, nil
}

func newView(p model.Pickup) PickupView {
	if p.Items == nil {
		p.Items = []model.ScrapItem{}
	}
	return PickupView{
		Pickup:      p,
		Total:       lifecycle.FormatTotal(p.Items),
		Description: p.Status.Describe(),
		ShowItems:   p.Status.ShowsItems(),
		Closed:      p.Status.Terminal(),
	}
}
