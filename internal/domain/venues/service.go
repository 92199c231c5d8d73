package venues

import (
	"context"

	"eventum/internal/core/tx"
	"eventum/internal/domain"
)

// Service provides business logic for venues.
type Service struct {
	*domain.EntityService[*Venue]
	repo Repository
}

// NewService creates a new venue service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewEntityService(domain.EntityServiceConfig[*Venue]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "venue",
	})
	return &Service{EntityService: base, repo: repo}
}

// GetByName retrieves a venue by name.
func (s *Service) GetByName(ctx context.Context, name string) (*Venue, error) {
	return s.repo.GetByName(ctx, name)
}
