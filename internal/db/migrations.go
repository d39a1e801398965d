package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'pickup_status') THEN
			CREATE TYPE pickup_status AS ENUM ('SCHEDULED', 'ACCEPTED', 'IN_PROCESS', 'PENDING_APPROVAL', 'COMPLETED', 'CANCELLED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS pickups (
		id VARCHAR(64) PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_phone VARCHAR(32) NOT NULL,
		address TEXT NOT NULL,
		google_maps_link TEXT,
		scheduled_date VARCHAR(64) NOT NULL,
		scheduled_time_slot VARCHAR(64) NOT NULL,
		status pickup_status NOT NULL DEFAULT 'SCHEDULED',
		pickup_code VARCHAR(16) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS pickup_items (
		id VARCHAR(64) PRIMARY KEY,
		pickup_id VARCHAR(64) NOT NULL REFERENCES pickups(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		quantity TEXT NOT NULL,
		price NUMERIC(18,2) NOT NULL CHECK (price >= 0)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_pickups_status ON pickups (status);`,
	`CREATE INDEX IF NOT EXISTS idx_pickup_items_pickup_id ON pickup_items (pickup_id, position);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
