package textschedule

import (
	"net/http"

	"github.com/o-mit/imt-timetable-app/apps/textschedule/internal/dtos"
	"github.com/o-mit/imt-timetable-app/apps/textschedule/internal/models"
	"github.com/o-mit/imt-timetable-app/internal/upload"
	httptools "github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	tpltools "github.com/xdoubleu/essentia/v2/pkg/tpl"
)

type pageData struct {
	Sections  []string
	Selected  map[string]bool
	Custom    string
	Submitted bool
	Classes   []models.ClassEntry
	Info      string
	Warning   string
	Error     string
}

func (app *TextSchedule) newPageData() pageData {
	//nolint:exhaustruct //other fields are set per request
	return pageData{
		Sections: app.config.Sections,
		Selected: map[string]bool{},
		Classes:  []models.ClassEntry{},
	}
}

func (app *TextSchedule) indexHandler(w http.ResponseWriter, _ *http.Request) {
	tpltools.RenderWithPanic(app.tpl, w, "index.html", app.newPageData())
}

func (app *TextSchedule) scheduleHandler(w http.ResponseWriter, r *http.Request) {
	file, err := upload.ReadFile(w, r, app.config.MaxUploadBytes())
	if err != nil {
		app.logger.Error("failed to read upload", logging.ErrAttr(err))
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}

	uploadDto := dtos.UploadDto{
		FileName: file.Name,
		Data:     file.Data,
		Sections: append(upload.Values(r, "section"), upload.Values(r, "custom")...),
	}

	if ok, errs := uploadDto.Validate(); !ok {
		httptools.FailedValidationResponse(w, r, errs)
		return
	}

	data := app.newPageData()
	data.Submitted = true
	data.Custom = r.FormValue("custom")
	for _, section := range uploadDto.Sections {
		data.Selected[section] = true
	}

	if len(uploadDto.Sections) == 0 {
		data.Info = "Please select at least one course-section to filter your schedule."
		tpltools.RenderWithPanic(app.tpl, w, "index.html", data)
		return
	}

	classes, err := app.services.Schedule.Personalize(&uploadDto)
	if err != nil {
		app.logger.Error("failed to personalize timetable", logging.ErrAttr(err))
		data.Error = "The uploaded file could not be read as a timetable PDF."
		w.WriteHeader(http.StatusUnprocessableEntity)
		tpltools.RenderWithPanic(app.tpl, w, "index.html", data)
		return
	}

	data.Classes = classes
	if len(classes) == 0 {
		data.Warning = "No matching classes found for selected sections."
	}

	tpltools.RenderWithPanic(app.tpl, w, "index.html", data)
}
