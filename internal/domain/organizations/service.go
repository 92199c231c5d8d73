package organizations

import (
	"eventum/internal/core/tx"
	"eventum/internal/domain"
)

// Service provides business logic for organizations.
type Service struct {
	*domain.EntityService[*Organization]
	repo Repository
}

// NewService creates a new organization service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewEntityService(domain.EntityServiceConfig[*Organization]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "organization",
	})
	return &Service{EntityService: base, repo: repo}
}
