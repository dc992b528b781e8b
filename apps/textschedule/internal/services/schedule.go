package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/o-mit/imt-timetable-app/apps/textschedule/internal/dtos"
	"github.com/o-mit/imt-timetable-app/apps/textschedule/internal/helper"
	"github.com/o-mit/imt-timetable-app/apps/textschedule/internal/models"
	"github.com/o-mit/imt-timetable-app/pkg/pdfextract"
)

type ScheduleService struct {
	logger    *slog.Logger
	extractor pdfextract.Extractor
}

// Personalize extracts all classes from the uploaded timetable and keeps the
// ones matching the selected sections.
func (service *ScheduleService) Personalize(
	upload *dtos.UploadDto,
) ([]models.ClassEntry, error) {
	uploadID := uuid.NewString()
	logger := service.logger.With(
		slog.String("upload", uploadID),
		slog.String("file", upload.FileName),
	)

	text, err := service.extractor.Text(upload.Data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", upload.FileName, err)
	}

	classes := helper.ExtractClasses(text)
	logger.Debug(fmt.Sprintf("found %d classes", len(classes)))

	filtered := helper.FilterBySelection(classes, upload.Sections)
	logger.Info(
		"personalized timetable",
		slog.Int("classes", len(classes)),
		slog.Int("kept", len(filtered)),
	)

	return filtered, nil
}
