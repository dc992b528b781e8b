package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/o-mit/imt-timetable-app/internal/config"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	"github.com/xhit/go-str2duration/v2"
)

//go:embed templates/html/*.html
var htmlTemplates embed.FS

type Application struct {
	logger *slog.Logger
	config config.Config
	apps   *Apps
	tpl    *template.Template
}

func main() {
	cfg := config.New(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout, nil)))

	var db *pgxpool.Pool
	if cfg.CatalogSource == config.PostgresCatalog {
		var err error
		db, err = postgres.Connect(
			logger,
			cfg.DBDsn,
			25, //nolint:mnd //no magic number
			"15m",
			60,             //nolint:mnd //no magic number
			10*time.Second, //nolint:mnd //no magic number
			5*time.Minute,  //nolint:mnd //no magic number
		)
		if err != nil {
			panic(err)
		}
		defer db.Close()
	}

	app := NewApplication(logger, cfg, db)

	readTimeout, err := str2duration.ParseDuration(cfg.ReadTimeout)
	if err != nil {
		panic(fmt.Errorf("invalid READ_TIMEOUT: %w", err))
	}

	writeTimeout, err := str2duration.ParseDuration(cfg.WriteTimeout)
	if err != nil {
		panic(fmt.Errorf("invalid WRITE_TIMEOUT: %w", err))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
	err = httptools.Serve(logger, srv, cfg.Env)
	if err != nil {
		logger.Error("failed to serve server", logging.ErrAttr(err))
	}
}

// NewApplication builds every app, applies their migrations when a database
// is available and loads their startup data. db may be nil.
func NewApplication(
	logger *slog.Logger,
	config config.Config,
	db *pgxpool.Pool,
) *Application {
	tpl := template.Must(template.ParseFS(htmlTemplates, "templates/html/*.html"))

	//nolint:exhaustruct //other fields are optional
	app := &Application{
		logger: logger,
		config: config,
		tpl:    tpl,
	}

	var database postgres.DB
	if db != nil {
		database = db
	}

	apps := NewApps(logger, config, database)

	if db != nil {
		err := apps.ApplyMigrations(db)
		if err != nil {
			panic(err)
		}
	}

	err := apps.Init(context.Background())
	if err != nil {
		panic(err)
	}

	app.apps = apps

	return app
}
