package textschedule

import (
	"fmt"
	"net/http"
)

func (app *TextSchedule) Routes(prefix string, mux *http.ServeMux) {
	mux.HandleFunc(
		fmt.Sprintf("GET /%s/{$}", prefix),
		app.indexHandler,
	)
	mux.HandleFunc(
		fmt.Sprintf("POST /%s/schedule", prefix),
		app.scheduleHandler,
	)
}
