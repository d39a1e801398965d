package localstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/epicircle/scrap-pickups/internal/model"
)

// EncodeRequests renders the persisted pickupRequests document.
func EncodeRequests(requests []model.PickupRequest) ([]byte, error) {
	if requests == nil {
		requests = []model.PickupRequest{}
	}
	return json.Marshal(requests)
}

// DecodeRequests parses a pickupRequests document. Empty input is an empty list.
func DecodeRequests(raw []byte) ([]model.PickupRequest, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []model.PickupRequest{}, nil
	}
	var requests []model.PickupRequest
	if err := json.Unmarshal(raw, &requests); err != nil {
		return nil, fmt.Errorf("decode pickup requests: %w", err)
	}
	if requests == nil {
		requests = []model.PickupRequest{}
	}
	return requests, nil
}

// Requests stores each owner's pickup requests as one JSON document.
type Requests struct {
	kv KV
	mu sync.Mutex
}

func NewRequests(kv KV) *Requests {
	return &Requests{kv: kv}
}

func (r *Requests) List(ctx context.Context, owner string) ([]model.PickupRequest, error) {
	raw, _, err := r.kv.Get(ctx, owner, KeyPickupRequests)
	if err != nil {
		return nil, err
	}
	return DecodeRequests(raw)
}

// Update runs fn over the owner's current list and stores what it returns.
// Updates are serialised so concurrent writers cannot lose each other's records.
func (r *Requests) Update(ctx context.Context, owner string, fn func([]model.PickupRequest) ([]model.PickupRequest, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.List(ctx, owner)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	raw, err := EncodeRequests(next)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, owner, KeyPickupRequests, raw)
}

// Sessions records the token issued at login. The presence of the key is what
// keeps a token usable; logout removes it.
type Sessions struct {
	kv KV
}

func NewSessions(kv KV) *Sessions {
	return &Sessions{kv: kv}
}

func (s *Sessions) SaveUser(ctx context.Context, user model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.kv.Set(ctx, user.Phone, KeyUser, raw)
}

func (s *Sessions) User(ctx context.Context, phone string) (model.User, bool, error) {
	raw, ok, err := s.kv.Get(ctx, phone, KeyUser)
	if err != nil || !ok || len(bytes.TrimSpace(raw)) == 0 {
		return model.User{}, false, err
	}
	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return model.User{}, false, fmt.Errorf("decode user: %w", err)
	}
	return user, true, nil
}

func (s *Sessions) SavePartnerToken(ctx context.Context, phone, token string) error {
	return s.kv.Set(ctx, phone, KeyPartnerToken, []byte(token))
}

func (s *Sessions) PartnerToken(ctx context.Context, phone string) (string, bool, error) {
	raw, ok, err := s.kv.Get(ctx, phone, KeyPartnerToken)
	if err != nil || !ok {
		return "", false, err
	}
	return string(raw), len(raw) > 0, nil
}

// Active reports whether token is the one currently recorded for the owner.
func (s *Sessions) Active(ctx context.Context, principal model.Principal, token string) (bool, error) {
	switch principal.Role {
	case model.RoleCustomer:
		user, ok, err := s.User(ctx, principal.Phone)
		if err != nil || !ok {
			return false, err
		}
		return user.Token == token, nil
	case model.RolePartner:
		stored, ok, err := s.PartnerToken(ctx, principal.Phone)
		if err != nil || !ok {
			return false, err
		}
		return stored == token, nil
	default:
		return false, nil
	}
}

func (s *Sessions) Clear(ctx context.Context, principal model.Principal) error {
	switch principal.Role {
	case model.RoleCustomer:
		return s.kv.Delete(ctx, principal.Phone, KeyUser)
	case model.RolePartner:
		return s.kv.Delete(ctx, principal.Phone, KeyPartnerToken)
	default:
		return nil
	}
}
