package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/models"
	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/repositories"
)

var ErrCatalogNotLoaded = errors.New("course catalog not loaded")

// CatalogService holds the catalog loaded at startup. It is never reloaded.
type CatalogService struct {
	logger  *slog.Logger
	repo    repositories.CatalogRepository
	loaded  bool
	catalog models.Catalog
	err     error
}

func NewCatalogService(
	logger *slog.Logger,
	repo repositories.CatalogRepository,
) *CatalogService {
	return &CatalogService{
		logger:  logger,
		repo:    repo,
		loaded:  false,
		catalog: models.NewCatalog(nil),
		err:     ErrCatalogNotLoaded,
	}
}

// Load reads the catalog once, later calls return the first result.
func (service *CatalogService) Load(ctx context.Context) error {
	if service.loaded {
		return service.err
	}
	service.loaded = true

	courses, err := service.repo.GetAll(ctx)
	if err != nil {
		service.err = fmt.Errorf("loading course catalog: %w", err)
		return service.err
	}

	service.catalog = models.NewCatalog(courses)
	service.err = nil

	service.logger.Info(
		"loaded course catalog",
		slog.Int("courses", service.catalog.Len()),
	)

	return nil
}

func (service *CatalogService) Get() (models.Catalog, error) {
	return service.catalog, service.err
}
