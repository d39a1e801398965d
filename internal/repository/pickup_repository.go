package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/epicircle/scrap-pickups/internal/model"
)

type PickupRepository struct {
	db *gorm.DB
}

func NewPickupRepository(db *gorm.DB) *PickupRepository {
	return &PickupRepository{db: db}
}

type pickupRow struct {
	ID                string
	CustomerName      string
	CustomerPhone     string
	Address           string
	GoogleMapsLink    *string
	ScheduledDate     string
	ScheduledTimeSlot string
	Status            model.PickupStatus
	PickupCode        string
}

type itemRow struct {
	ID       string
	PickupID string
	Name     string
	Quantity string
	Price    decimal.Decimal
}

const selectPickup = `
	SELECT
		id,
		customer_name,
		customer_phone,
		address,
		google_maps_link,
		scheduled_date,
		scheduled_time_slot,
		status,
		pickup_code
	FROM pickups
`

func (r *PickupRepository) ListPickups(ctx context.Context) ([]model.Pickup, error) {
	var rows []pickupRow
	if err := r.db.WithContext(ctx).Raw(selectPickup + ` ORDER BY created_at ASC, id ASC`).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []model.Pickup{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	items, err := r.listItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	pickups := make([]model.Pickup, 0, len(rows))
	for _, row := range rows {
		pickups = append(pickups, row.toModel(items[row.ID]))
	}
	return pickups, nil
}

func (r *PickupRepository) GetPickup(ctx context.Context, id string) (*model.Pickup, error) {
	var row pickupRow
	if err := r.db.WithContext(ctx).Raw(selectPickup+` WHERE id = ? LIMIT 1`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}

	items, err := r.listItems(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	pickup := row.toModel(items[id])
	return &pickup, nil
}

// SavePickup writes the snapshot's status and replaces its item list.
func (r *PickupRepository) SavePickup(ctx context.Context, pickup model.Pickup) error {
	if !pickup.Status.Valid() {
		return fmt.Errorf("save pickup %s: unknown status %q", pickup.ID, pickup.Status)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
			UPDATE pickups
			SET status = ?, updated_at = NOW()
			WHERE id = ?
		`, pickup.Status, pickup.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Exec(`DELETE FROM pickup_items WHERE pickup_id = ?`, pickup.ID).Error; err != nil {
			return err
		}
		return insertItems(tx, pickup)
	})
}

// Seed inserts pickups that do not exist yet. Existing rows are left alone.
func (r *PickupRepository) Seed(ctx context.Context, pickups []model.Pickup) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, pickup := range pickups {
			res := tx.Exec(`
				INSERT INTO pickups (
					id,
					customer_name,
					customer_phone,
					address,
					google_maps_link,
					scheduled_date,
					scheduled_time_slot,
					status,
					pickup_code
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (id) DO NOTHING
			`,
				pickup.ID,
				pickup.Customer.Name,
				pickup.Customer.Phone,
				pickup.Address,
				pickup.GoogleMapsLink,
				pickup.ScheduledDate,
				pickup.ScheduledTimeSlot,
				pickup.Status,
				pickup.PickupCode,
			)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue
			}
			if err := insertItems(tx, pickup); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertItems(tx *gorm.DB, pickup model.Pickup) error {
	for i, item := range pickup.Items {
		if err := tx.Exec(`
			INSERT INTO pickup_items (id, pickup_id, position, name, quantity, price)
			VALUES (?, ?, ?, ?, ?, ?)
		`, item.ID, pickup.ID, i, item.Name, item.Quantity, item.Price).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *PickupRepository) listItems(ctx context.Context, pickupIDs []string) (map[string][]model.ScrapItem, error) {
	var rows []itemRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, pickup_id, name, quantity, price
		FROM pickup_items
		WHERE pickup_id IN ?
		ORDER BY pickup_id, position ASC
	`, pickupIDs).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string][]model.ScrapItem, len(pickupIDs))
	for _, row := range rows {
		result[row.PickupID] = append(result[row.PickupID], model.ScrapItem{
			ID:       row.ID,
			Name:     row.Name,
			Quantity: row.Quantity,
			Price:    row.Price,
		})
	}
	return result, nil
}

func (row pickupRow) toModel(items []model.ScrapItem) model.Pickup {
	if items == nil {
		items = []model.ScrapItem{}
	}
	return model.Pickup{
		ID: row.ID,
		Customer: model.Customer{
			Name:  row.CustomerName,
			Phone: row.CustomerPhone,
		},
		Address:           row.Address,
		GoogleMapsLink:    row.GoogleMapsLink,
		ScheduledDate:     row.ScheduledDate,
		ScheduledTimeSlot: row.ScheduledTimeSlot,
		Status:            row.Status,
		PickupCode:        row.PickupCode,
		Items:             items,
	}
}
