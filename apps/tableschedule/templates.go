package tableschedule

import (
	"net/http"

	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/dtos"
	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/models"
	"github.com/o-mit/imt-timetable-app/internal/upload"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
)

const catalogMissing = "The course catalog could not be loaded. Please contact the administrator."

type pageData struct {
	Options   []models.CourseOption
	Selected  map[string]bool
	Submitted bool
	Rows      []models.ScheduleRow
	Catalog   bool
	Info      string
	Warning   string
	Error     string
}

func newPageData(catalog models.Catalog) pageData {
	//nolint:exhaustruct //other fields are set per request
	return pageData{
		Options:  catalog.Options(),
		Selected: map[string]bool{},
		Rows:     []models.ScheduleRow{},
		Catalog:  true,
	}
}

func (app *TableSchedule) renderCatalogError(w http.ResponseWriter, err error) {
	app.logger.Error("course catalog unavailable", logging.ErrAttr(err))

	data := newPageData(models.NewCatalog(nil))
	data.Catalog = false
	data.Error = catalogMissing

	w.WriteHeader(http.StatusInternalServerError)
	tpltools.RenderWithPanic(app.tpl, w, "index.html", data)
}

func (app *TableSchedule) indexHandler(w http.ResponseWriter, _ *http.Request) {
	catalog, err := app.services.Catalog.Get()
	if err != nil {
		app.renderCatalogError(w, err)
		return
	}

	tpltools.RenderWithPanic(app.tpl, w, "index.html", newPageData(catalog))
}

func (app *TableSchedule) scheduleHandler(w http.ResponseWriter, r *http.Request) {
	catalog, err := app.services.Catalog.Get()
	if err != nil {
		app.renderCatalogError(w, err)
		return
	}

	file, err := upload.ReadFile(w, r, app.config.MaxUploadBytes())
	if err != nil {
		app.logger.Error("failed to read upload", logging.ErrAttr(err))
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	uploadDto := dtos.UploadDto{
		FileName:  file.Name,
		Data:      file.Data,
		Selection: upload.Values(r, "selection"),
	}

	if ok, errs := uploadDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	data := newPageData(catalog)
	data.Submitted = true
	for _, selection := range uploadDto.Selection {
		data.Selected[selection] = true
	}

	if len(uploadDto.Selection) == 0 {
		data.Info = "Please select at least one course-section to filter your schedule."
		tpltools.RenderWithPanic(app.tpl, w, "index.html", data)
		return
	}

	schedule, err := app.services.Schedule.Build(&uploadDto, catalog)
	if err != nil {
		app.logger.Error("failed to build timetable", logging.ErrAttr(err))
		data.Error = "The uploaded file could not be read as a timetable PDF."
		w.WriteHeader(http.StatusUnprocessableEntity)
		tpltools.RenderWithPanic(app.tpl, w, "index.html", data)
		return
	}

	data.Rows = schedule.Rows
	switch {
	case schedule.Tables == 0:
		data.Info = "No timetable tables were found in the uploaded PDF."
	case len(schedule.Rows) == 0:
		data.Warning = "No matching classes found for selected sections."
	}

	tpltools.RenderWithPanic(app.tpl, w, "index.html", data)
}
