package services

import (
	"log/slog"

	"github.com/o-mit/imt-timetable-app/pkg/pdfextract"
)

type Services struct {
	Schedule *ScheduleService
}

func New(
	logger *slog.Logger,
	extractor pdfextract.Extractor,
) *Services {
	return &Services{
		Schedule: &ScheduleService{logger: logger, extractor: extractor},
	}
}
