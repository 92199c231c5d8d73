// Package entity provides base types for all domain records.
package entity

import (
	"context"
	"time"

	"eventum/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Base contains common fields for all records.
// Identity is assigned at creation and never reused; soft delete is the
// default removal path.
type Base struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`

	// DeletionMark indicates a soft-deleted record
	DeletionMark bool `db:"deletion_mark" json:"deletionMark"`

	// Version for optimistic locking (incremented on each update)
	Version int `db:"version" json:"version"`

	// Audit stamps
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// GetBase returns the embedded Base. Lets generic code reach the common
// fields of any entity.
func (b *Base) GetBase() *Base {
	return b
}

// NewBase creates a new Base with generated ID and timestamps.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        id.New(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the UpdatedAt timestamp and increments version.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
	b.Version++
}

// MarkDeleted sets the deletion mark.
func (b *Base) MarkDeleted() {
	b.DeletionMark = true
}

// Undelete clears the deletion mark.
func (b *Base) Undelete() {
	b.DeletionMark = false
}

// SetVersion updates the version number (used by the repository after sync).
func (b *Base) SetVersion(v int) {
	b.Version = v
}
