package textschedule

import (
	"context"
	"embed"
	"html/template"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/o-mit/imt-timetable-app/apps/textschedule/internal/services"
	"github.com/o-mit/imt-timetable-app/internal/config"
	"github.com/o-mit/imt-timetable-app/pkg/pdfextract"
)

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type TextSchedule struct {
	logger   *slog.Logger
	config   config.Config
	services *services.Services
	tpl      *template.Template
}

func New(
	logger *slog.Logger,
	cfg config.Config,
) *TextSchedule {
	return NewInner(logger, cfg, pdfextract.New(logger))
}

func NewInner(
	logger *slog.Logger,
	cfg config.Config,
	extractor pdfextract.Extractor,
) *TextSchedule {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	return &TextSchedule{
		logger:   logger,
		config:   cfg,
		tpl:      tpl,
		services: services.New(logger, extractor),
	}
}

func (app *TextSchedule) ApplyMigrations(_ *pgxpool.Pool) error {
	return nil
}

func (app *TextSchedule) Init(_ context.Context) error {
	return nil
}

func (app *TextSchedule) GetName() string {
	return "textschedule"
}
