package tableschedule

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/repositories"
	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/services"
	"github.com/o-mit/imt-timetable-app/internal/config"
	"github.com/o-mit/imt-timetable-app/pkg/pdfextract"
	"github.com/pressly/goose/v3"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

//go:embed templates/html/**/*html
var htmlTemplates embed.FS

type TableSchedule struct {
	logger   *slog.Logger
	config   config.Config
	services *services.Services
	tpl      *template.Template
}

// New wires the real pdf extractor. db is only used when the catalog is read
// from postgres and may be nil otherwise.
func New(
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
) *TableSchedule {
	return NewInner(
		logger,
		cfg,
		pdfextract.New(logger),
		repositories.New(cfg, db),
	)
}

func NewInner(
	logger *slog.Logger,
	cfg config.Config,
	extractor pdfextract.Extractor,
	repos *repositories.Repositories,
) *TableSchedule {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/**/*.html"))

	return &TableSchedule{
		logger:   logger,
		config:   cfg,
		tpl:      tpl,
		services: services.New(logger, repos, extractor),
	}
}

func (app *TableSchedule) ApplyMigrations(db *pgxpool.Pool) error {
	if app.config.CatalogSource != config.PostgresCatalog {
		return nil
	}

	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}

// Init loads the course catalog. A missing or broken catalog file is shown on
// the page instead of stopping the server, database errors are returned.
func (app *TableSchedule) Init(ctx context.Context) error {
	err := app.services.Catalog.Load(ctx)
	if err == nil {
		return nil
	}

	app.logger.Error("failed to load course catalog", logging.ErrAttr(err))

	if app.config.CatalogSource == config.PostgresCatalog &&
		!errors.Is(err, repositories.ErrCatalogNotFound) {
		return err
	}

	return nil
}

func (app *TableSchedule) GetName() string {
	return "tableschedule"
}
