package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/dtos"
	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/models"
	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/repositories"
	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/services"
	"github.com/o-mit/imt-timetable-app/internal/mocks"
	"github.com/o-mit/imt-timetable-app/pkg/pdfextract"
	"github.com/stretchr/testify/assert"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

type countingRepository struct {
	calls   int
	courses []models.Course
	err     error
}

func (repo *countingRepository) GetAll(_ context.Context) ([]models.Course, error) {
	repo.calls++
	return repo.courses, repo.err
}

func TestCatalogServiceLoadsOnce(t *testing.T) {
	repo := &countingRepository{
		calls: 0,
		courses: []models.Course{
			{Abbreviation: "MFS", Name: "Managerial Finance", Sections: []string{"A"}},
		},
		err: nil,
	}
	service := services.NewCatalogService(logging.NewNopLogger(), repo)

	_, err := service.Get()
	assert.True(t, errors.Is(err, services.ErrCatalogNotLoaded))

	assert.Nil(t, service.Load(context.Background()))
	assert.Nil(t, service.Load(context.Background()))
	assert.Equal(t, 1, repo.calls)

	catalog, err := service.Get()
	assert.Nil(t, err)
	assert.Equal(t, "Managerial Finance", catalog.FullName("MFS"))
}

func TestCatalogServiceMissingFile(t *testing.T) {
	service := services.NewCatalogService(
		logging.NewNopLogger(),
		repositories.NewCSVCatalogRepository("missing.csv"),
	)

	err := service.Load(context.Background())
	assert.True(t, errors.Is(err, repositories.ErrCatalogNotFound))

	_, err = service.Get()
	assert.True(t, errors.Is(err, repositories.ErrCatalogNotFound))
}

func TestScheduleServiceBuild(t *testing.T) {
	tables := []pdfextract.Table{
		{
			Page: 1,
			Rows: [][]string{
				{"", "9:00", "11:00"},
				{"Thursday", "ET-B(2)- CD {D - 101}", ""},
				{"Tuesday", "", "ET-B(3)- CD {D - 102}"},
				{"", "MFS-A(1)- AB {C - 1}", "XYZ-B(1)- ZZ {Z - 1}"},
			},
		},
	}
	repos := &repositories.Repositories{
		Catalog: &countingRepository{calls: 0, courses: nil, err: nil},
	}
	svc := services.New(logging.NewNopLogger(), repos, mocks.NewMockExtractor("", tables))

	catalog := models.NewCatalog([]models.Course{
		{Abbreviation: "ET", Name: "Entrepreneurship", Sections: []string{"B"}},
	})
	upload := dtos.UploadDto{
		FileName:  "timetable.pdf",
		Data:      []byte("%PDF"),
		Selection: []string{"ET - B", "XYZ - B"},
	}

	schedule, err := svc.Schedule.Build(&upload, catalog)

	assert.Nil(t, err)
	assert.Equal(t, 1, schedule.Tables)
	assert.Equal(t, 4, schedule.Entries)
	assert.Len(t, schedule.Rows, 3)

	assert.Equal(t, "Tuesday", schedule.Rows[0].Entry.Day)
	assert.Equal(t, "D - 102", schedule.Rows[0].Entry.Venue)
	assert.Equal(t, "11:00", schedule.Rows[0].Entry.Time)
	assert.Equal(t, "Entrepreneurship", schedule.Rows[0].CourseName)

	assert.Equal(t, "Tuesday", schedule.Rows[1].Entry.Day)
	assert.Equal(t, "XYZ", schedule.Rows[1].CourseName)

	assert.Equal(t, "Thursday", schedule.Rows[2].Entry.Day)
	assert.Equal(t, "D - 101", schedule.Rows[2].Entry.Venue)
}

func TestScheduleServiceExtractionError(t *testing.T) {
	repos := &repositories.Repositories{
		Catalog: &countingRepository{calls: 0, courses: nil, err: nil},
	}
	svc := services.New(
		logging.NewNopLogger(),
		repos,
		mocks.NewFailingExtractor(pdfextract.ErrExtraction),
	)

	//nolint:exhaustruct //no data needed
	upload := dtos.UploadDto{FileName: "broken.pdf", Selection: []string{"ET - B"}}

	_, err := svc.Schedule.Build(&upload, models.NewCatalog(nil))
	assert.True(t, errors.Is(err, pdfextract.ErrExtraction))
}
