// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"eventum/internal/core/entity"
	"eventum/internal/core/id"
	"eventum/internal/listing"
)

// --- List Response ---

// ListResponse wraps a rendered list view: the current page of items,
// navigation state and summary stats over the whole collection.
type ListResponse struct {
	Items         any                        `json:"items"`
	Page          int                        `json:"page"`
	PageSize      int                        `json:"pageSize"`
	TotalPages    int                        `json:"totalPages"`
	FilteredCount int                        `json:"filteredCount"`
	TotalCount    int                        `json:"totalCount"`
	HasPrev       bool                       `json:"hasPrev"`
	HasNext       bool                       `json:"hasNext"`
	Stats         map[string]decimal.Decimal `json:"stats,omitempty"`
}

// NewListResponse builds a ListResponse from a listing view with the
// items already mapped to DTOs.
func NewListResponse[T any](view listing.View[T], items any) ListResponse {
	return ListResponse{
		Items:         items,
		Page:          view.Page,
		PageSize:      view.PageSize,
		TotalPages:    view.TotalPages,
		FilteredCount: view.FilteredCount,
		TotalCount:    view.TotalCount,
		HasPrev:       view.HasPrev,
		HasNext:       view.HasNext,
		Stats:         view.Stats,
	}
}

// --- Base DTOs ---

// BaseResponse contains common response fields.
type BaseResponse struct {
	ID           string    `json:"id"`
	DeletionMark bool      `json:"deletionMark"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromBase creates BaseResponse from entity.Base.
func FromBase(b entity.Base) BaseResponse {
	return BaseResponse{
		ID:           b.ID.String(),
		DeletionMark: b.DeletionMark,
		Version:      b.Version,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// --- Deletion ---

type SetDeletionMarkRequest struct {
	Marked bool `json:"marked"`
}
