package repository

import (
	"context"

	"backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=catalog_repo.go -destination=mocks/catalog_repo_mock.go -package=mocks

type CatalogRepository interface {
	Create(ctx context.Context, tenantID uuid.UUID, svc *model.CatalogService) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.CatalogService, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Create(ctx context.Context, tenantID uuid.UUID, svc *model.CatalogService) error {
	return createRow(ctx, r.db, tenantID, svc)
}

func (r *catalogRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*model.CatalogService, error) {
	db, err := tenantDB(ctx, r.db, tenantID)
	if err != nil {
		return nil, err
	}

	var svc model.CatalogService
	if err := db.First(&svc, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "service", id)
	}
	return &svc, nil
}
