package entity_repo

import (
	"eventum/internal/domain/resources"
	"eventum/internal/infrastructure/storage/postgres"
)

const resourcesTable = "resources"

// ResourceRepo implements resources.Repository.
type ResourceRepo struct {
	*BaseEntityRepo[*resources.Resource]
}

// NewResourceRepo creates a new resource repository.
func NewResourceRepo(txManager *postgres.TxManager) *ResourceRepo {
	return &ResourceRepo{
		BaseEntityRepo: NewBaseEntityRepo(
			txManager,
			resourcesTable,
			postgres.ExtractDBColumns[resources.Resource](),
			func() *resources.Resource { return &resources.Resource{} },
		),
	}
}
