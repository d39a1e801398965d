package repository

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/epicircle/scrap-pickups/internal/model"
)

// MemoryPickupRepository keeps pickups in process. Every read and write goes
// through Clone, so callers never share item slices with the store.
type MemoryPickupRepository struct {
	mu      sync.RWMutex
	order   []string
	pickups map[string]model.Pickup
}

func NewMemoryPickupRepository() *MemoryPickupRepository {
	return &MemoryPickupRepository{pickups: make(map[string]model.Pickup)}
}

func (r *MemoryPickupRepository) ListPickups(_ context.Context) ([]model.Pickup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]model.Pickup, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.pickups[id].Clone())
	}
	return result, nil
}

func (r *MemoryPickupRepository) GetPickup(_ context.Context, id string) (*model.Pickup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pickup, ok := r.pickups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := pickup.Clone()
	return &clone, nil
}

func (r *MemoryPickupRepository) SavePickup(_ context.Context, pickup model.Pickup) error {
	if !pickup.Status.Valid() {
		return fmt.Errorf("save pickup %s: unknown status %q", pickup.ID, pickup.Status)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pickups[pickup.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.pickups[pickup.ID] = pickup.Clone()
	return nil
}

func (r *MemoryPickupRepository) Seed(_ context.Context, pickups []model.Pickup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, pickup := range pickups {
		if _, ok := r.pickups[pickup.ID]; ok {
			continue
		}
		r.order = append(r.order, pickup.ID)
		r.pickups[pickup.ID] = pickup.Clone()
	}
	return nil
}
