package resources

import (
	"eventum/internal/core/tx"
	"eventum/internal/domain"
)

// Service provides business logic for resources.
type Service struct {
	*domain.EntityService[*Resource]
	repo Repository
}

// NewService creates a new resource service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewEntityService(domain.EntityServiceConfig[*Resource]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "resource",
	})
	return &Service{EntityService: base, repo: repo}
}
