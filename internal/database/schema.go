package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied statement by statement; the driver runs without
// multiStatements.
//
// seats.active_location is NULL for soft-deleted rows, so the unique key on
// (venue_id, active_location) only constrains active seats and historical
// rows may share a location with a live one.  chk_seats_hold forbids hold
// metadata on a seat that is not held.
//
// Actor ids and seat types compare byte for byte (utf8mb4_bin), so "Bob"
// never matches a hold owned by "bob".  The trailing ALTER brings tables
// created without these collations in line.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name       VARCHAR(255)    NOT NULL,
		is_active  TINYINT(1)      NOT NULL DEFAULT 1,
		created_at DATETIME(3)     NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at DATETIME(3)     NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS seats (
		id              BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		venue_id        BIGINT UNSIGNED NOT NULL,
		seat_row        VARCHAR(3)      NOT NULL,
		seat_column     INT UNSIGNED    NOT NULL,
		location        VARCHAR(16)     NOT NULL,
		seat_type       VARCHAR(32) COLLATE utf8mb4_bin NOT NULL,
		price           DECIMAL(12,2)   NOT NULL,
		is_vacant       TINYINT(1)      NOT NULL DEFAULT 1,
		is_held         TINYINT(1)      NOT NULL DEFAULT 0,
		held_by         VARCHAR(64) COLLATE utf8mb4_bin NULL,
		held_until      DATETIME(3)     NULL,
		is_active       TINYINT(1)      NOT NULL DEFAULT 1,
		active_location VARCHAR(16) AS (IF(is_active = 1, location, NULL)) STORED,
		created_by      VARCHAR(64) COLLATE utf8mb4_bin NOT NULL,
		created_at      DATETIME(3)     NOT NULL,
		updated_by      VARCHAR(64) COLLATE utf8mb4_bin NOT NULL,
		updated_at      DATETIME(3)     NOT NULL,
		UNIQUE KEY uq_seats_venue_active_location (venue_id, active_location),
		KEY idx_seats_venue_active (venue_id, is_active),
		KEY idx_seats_hold_expiry (is_held, held_until),
		CONSTRAINT fk_seats_venue FOREIGN KEY (venue_id) REFERENCES venues (id),
		CONSTRAINT chk_seats_price CHECK (price >= 0),
		CONSTRAINT chk_seats_hold CHECK (
			(is_held = 0 AND held_by IS NULL AND held_until IS NULL) OR
			(is_held = 1 AND held_by IS NOT NULL AND held_until IS NOT NULL))
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`ALTER TABLE seats
		MODIFY seat_type  VARCHAR(32) COLLATE utf8mb4_bin NOT NULL,
		MODIFY held_by    VARCHAR(64) COLLATE utf8mb4_bin NULL,
		MODIFY created_by VARCHAR(64) COLLATE utf8mb4_bin NOT NULL,
		MODIFY updated_by VARCHAR(64) COLLATE utf8mb4_bin NOT NULL`,
}

// Migrate creates the tables the inventory engine owns when they are missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i+1, err)
		}
	}
	return nil
}
