package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/dtos"
	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/helper"
	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/models"
	"github.com/o-mit/imt-timetable-app/pkg/pdfextract"
)

type ScheduleService struct {
	logger    *slog.Logger
	extractor pdfextract.Extractor
}

// Build parses every timetable grid in the upload and returns the selected
// entries ordered by weekday.
func (service *ScheduleService) Build(
	upload *dtos.UploadDto,
	catalog models.Catalog,
) (models.Schedule, error) {
	schedule := models.Schedule{
		Rows:    []models.ScheduleRow{},
		Tables:  0,
		Entries: 0,
	}

	logger := service.logger.With(
		slog.String("upload", uuid.NewString()),
		slog.String("file", upload.FileName),
	)

	tables, err := service.extractor.Tables(upload.Data)
	if err != nil {
		return schedule, fmt.Errorf("reading %s: %w", upload.FileName, err)
	}
	schedule.Tables = len(tables)

	entries := []models.ScheduleEntry{}
	for _, table := range tables {
		tableEntries := helper.ParseTable(table)
		logger.Debug(
			fmt.Sprintf("found %d entries on page %d", len(tableEntries), table.Page),
		)
		entries = append(entries, tableEntries...)
	}
	schedule.Entries = len(entries)

	selected := helper.SortByDay(
		helper.FilterBySelection(entries, models.NewSelectionSet(upload.Selection...)),
	)
	for _, entry := range selected {
		schedule.Rows = append(schedule.Rows, models.ScheduleRow{
			Entry:      entry,
			CourseName: catalog.FullName(entry.Course),
		})
	}

	logger.Info(
		"built timetable",
		slog.Int("tables", schedule.Tables),
		slog.Int("entries", schedule.Entries),
		slog.Int("kept", len(schedule.Rows)),
	)

	return schedule, nil
}
