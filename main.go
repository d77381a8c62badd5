package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"strings"

	"coilmap/adapters/excel"
	"coilmap/adapters/postgres"
	"coilmap/app"
	"coilmap/internal"
	"coilmap/internal/config"
	"coilmap/internal/errors"
	"coilmap/internal/migration"
	"coilmap/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	url := appConfig.Database.URL
	if !strings.Contains(url, "sslmode=") {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url += sep + "sslmode=" + appConfig.Database.SSLMode
	}

	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	gin.SetMode(appConfig.Server.GinMode)

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	// Optional pprof endpoint for profiling resistance sweeps
	if appConfig.Profiling.Enabled {
		go func() {
			addr := "localhost:" + appConfig.Profiling.Port
			logger.Info("pprof listening on http://%s/debug/pprof", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.Warn("pprof server stopped: %v", err)
			}
		}()
	}

	sessions := postgres.NewSessionRepository(db)
	writer := excel.NewPlanWriter(appConfig.Export.Dir)
	analysisService := app.NewAnalysisService(logger)
	exportService := app.NewExportService(sessions, writer, logger)
	guide := app.NewSolderingGuide()

	server := ui.NewServer(analysisService, exportService, guide, sessions, logger)
	if err := server.Start("0.0.0.0:" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
