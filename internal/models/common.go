package models

import "time"

// Timestamps holds the standard row lifecycle columns. DeletedAt is the
// soft-delete marker; rows with a non-null DeletedAt never leave the
// repository layer.
type Timestamps struct {
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}
