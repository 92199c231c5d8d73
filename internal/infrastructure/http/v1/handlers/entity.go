// Package handlers provides HTTP request handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventum/internal/core/apperror"
	"eventum/internal/core/entity"
	"eventum/internal/core/id"
	"eventum/internal/domain"
	"eventum/internal/infrastructure/http/v1/dto"
	"eventum/internal/listing"
)

// EntityService is the surface of domain.EntityService the generic
// handler needs.
type EntityService[T entity.Validatable] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, entityID id.ID) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, entityID id.ID) error
	SetDeletionMark(ctx context.Context, entityID id.ID, marked bool) error
	List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[T], error)
}

// EntityHandler provides generic HTTP handlers for domain entities.
// List loads the full collection and runs the in-memory listing pipeline:
// search, categorical filters, pagination and stats are all evaluated per
// request over the loaded records.
type EntityHandler[T entity.Validatable, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service    EntityService[T]
	descriptor listing.Descriptor[T]
	entityName string

	// Mapper functions
	mapCreateDTO func(dto CreateDTO) (T, error)
	mapUpdateDTO func(dto UpdateDTO, existing T) (T, error)
	mapToDTO     func(entity T) any
}

// EntityHandlerConfig configures the entity handler.
type EntityHandlerConfig[T entity.Validatable, CreateDTO any, UpdateDTO any] struct {
	Service      EntityService[T]
	Descriptor   listing.Descriptor[T]
	EntityName   string
	MapCreateDTO func(dto CreateDTO) (T, error)
	MapUpdateDTO func(dto UpdateDTO, existing T) (T, error)
	MapToDTO     func(entity T) any
}

// NewEntityHandler creates a new entity handler.
func NewEntityHandler[T entity.Validatable, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg EntityHandlerConfig[T, CreateDTO, UpdateDTO],
) *EntityHandler[T, CreateDTO, UpdateDTO] {
	return &EntityHandler[T, CreateDTO, UpdateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		descriptor:   cfg.Descriptor,
		entityName:   cfg.EntityName,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
		mapToDTO:     cfg.MapToDTO,
	}
}

// List handles GET /{entity} - search, filters, pagination and stats.
func (h *EntityHandler[T, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	listEntities(c, h.BaseHandler, h.service, h.descriptor, h.mapToDTO)
}

// listEntities loads the full collection and runs the in-memory listing
// pipeline over it: search, categorical filters, pagination and stats are
// all evaluated per request against the loaded records.
func listEntities[T entity.Validatable](
	c *gin.Context,
	base *BaseHandler,
	service EntityService[T],
	descriptor listing.Descriptor[T],
	mapToDTO func(T) any,
) {
	ctx := c.Request.Context()

	filter := domain.DefaultListFilter()
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	result, err := service.List(ctx, filter)
	if err != nil {
		base.Error(c, err)
		return
	}

	ctrl := listing.NewController(listing.ControllerConfig[T]{
		Descriptor: descriptor,
		PageSize:   base.ParseIntQuery(c, "pageSize", listing.DefaultPageSize),
	})
	ctrl.SetCollection(result.Items)
	ctrl.SetSearch(c.Query("search"))

	filters := listing.FilterSpec{}
	for key := range descriptor.FilterFields {
		if val := c.Query(key); val != "" {
			filters[key] = val
		}
	}
	ctrl.SetFilters(filters)
	ctrl.SetPage(base.ParseIntQuery(c, "page", 1))

	view := ctrl.View()

	items := make([]any, len(view.Items))
	for i, item := range view.Items {
		items[i] = mapToDTO(item)
	}

	base.OK(c, dto.NewListResponse(view, items))
}

// Get handles GET /{entity}/:id - get single entity.
func (h *EntityHandler[T, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	entity, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(entity))
}

// Create handles POST /{entity} - create new entity.
func (h *EntityHandler[T, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	entity, err := h.mapCreateDTO(req)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(ctx, entity); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.mapToDTO(entity))
}

// Update handles PUT /{entity}/:id - update existing entity.
func (h *EntityHandler[T, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, entityID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated, err := h.mapUpdateDTO(req, existing)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(updated))
}

// Delete handles DELETE /{entity}/:id - soft delete entity.
func (h *EntityHandler[T, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, entityID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// SetDeletionMark handles POST /{entity}/:id/deletion-mark.
func (h *EntityHandler[T, CreateDTO, UpdateDTO]) SetDeletionMark(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.SetDeletionMarkRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetDeletionMark(ctx, entityID, req.Marked); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "deletion mark updated")
}
