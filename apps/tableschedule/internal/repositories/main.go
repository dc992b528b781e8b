package repositories

import (
	"context"
	"errors"

	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/models"
	"github.com/o-mit/imt-timetable-app/internal/config"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

var ErrCatalogNotFound = errors.New("course catalog not found")

type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.Course, error)
}

type Repositories struct {
	Catalog CatalogRepository
}

// New reads the catalog from postgres when configured to, otherwise from the
// csv file at cfg.CatalogPath. db may be nil for the csv source.
func New(cfg config.Config, db postgres.DB) *Repositories {
	var catalog CatalogRepository = NewCSVCatalogRepository(cfg.CatalogPath)
	if cfg.CatalogSource == config.PostgresCatalog {
		catalog = &PostgresCatalogRepository{db: db}
	}

	return &Repositories{
		Catalog: catalog,
	}
}
