//nolint:mnd //no magic number
package config

import (
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xdoubleu/essentia/v2/pkg/config"
)

const (
	CSVCatalog      = "csv"
	PostgresCatalog = "postgres"
)

type Config struct {
	Env           string
	Port          int
	WebURL        string
	SentryDsn     string
	SampleRate    float64
	Release       string
	ReadTimeout   string
	WriteTimeout  string
	MaxUploadMB   int
	DBDsn         string
	CatalogSource string
	CatalogPath   string
	Sections      []string
}

func New(logger *slog.Logger) Config {
	var cfg Config

	// a local .env file is optional
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded environment from .env")
	}

	parser := config.New(logger)

	cfg.Env = parser.EnvStr("ENV", config.ProdEnv)
	cfg.Port = parser.EnvInt("PORT", 8000)
	cfg.WebURL = parser.EnvStr("WEB_URL", "http://localhost:8000")
	cfg.SentryDsn = parser.EnvStr("SENTRY_DSN", "")
	cfg.SampleRate = parser.EnvFloat("SAMPLE_RATE", 1.0)
	cfg.Release = parser.EnvStr("RELEASE", config.DevEnv)

	// uploads are slower than the usual form post
	cfg.ReadTimeout = parser.EnvStr("READ_TIMEOUT", "30s")
	cfg.WriteTimeout = parser.EnvStr("WRITE_TIMEOUT", "30s")
	cfg.MaxUploadMB = parser.EnvInt("MAX_UPLOAD_MB", 20)

	cfg.DBDsn = parser.EnvStr("DB_DSN", "postgres://postgres@localhost/postgres")
	cfg.CatalogSource = parser.EnvStr("CATALOG_SOURCE", CSVCatalog)
	cfg.CatalogPath = parser.EnvStr("CATALOG_PATH", "data/courses.csv")

	cfg.Sections = splitList(
		parser.EnvStr("SECTIONS", "MFS-A,ET-B,BRM-Exc,SCMO-A,DIGM-A"),
	)

	return cfg
}

func (cfg Config) MaxUploadBytes() int64 {
	return int64(cfg.MaxUploadMB) << 20
}

func splitList(value string) []string {
	result := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}
