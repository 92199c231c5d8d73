package entity_repo

import (
	"eventum/internal/domain/organizations"
	"eventum/internal/infrastructure/storage/postgres"
)

const organizationsTable = "organizations"

// OrganizationRepo implements organizations.Repository.
type OrganizationRepo struct {
	*BaseEntityRepo[*organizations.Organization]
}

// NewOrganizationRepo creates a new organization repository.
func NewOrganizationRepo(txManager *postgres.TxManager) *OrganizationRepo {
	return &OrganizationRepo{
		BaseEntityRepo: NewBaseEntityRepo(
			txManager,
			organizationsTable,
			postgres.ExtractDBColumns[organizations.Organization](),
			func() *organizations.Organization { return &organizations.Organization{} },
		),
	}
}
