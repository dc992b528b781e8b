package services

import (
	"log/slog"

	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/repositories"
	"github.com/o-mit/imt-timetable-app/pkg/pdfextract"
)

type Services struct {
	Catalog  *CatalogService
	Schedule *ScheduleService
}

func New(
	logger *slog.Logger,
	repos *repositories.Repositories,
	extractor pdfextract.Extractor,
) *Services {
	return &Services{
		Catalog:  NewCatalogService(logger, repos.Catalog),
		Schedule: &ScheduleService{logger: logger, extractor: extractor},
	}
}
