// Package app wires configuration, clients and services into one unit shared
// by the server entrypoint and tests.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/PuneetFusion/portfolioanalyzer/internal/clients/eodhd"
	"github.com/PuneetFusion/portfolioanalyzer/internal/clients/gemini"
	"github.com/PuneetFusion/portfolioanalyzer/internal/common"
	"github.com/PuneetFusion/portfolioanalyzer/internal/interfaces"
	"github.com/PuneetFusion/portfolioanalyzer/internal/services/analyzer"
	"github.com/PuneetFusion/portfolioanalyzer/internal/services/summary"
)

// App holds all initialized services and clients.
type App struct {
	Config          *common.Config
	Logger          *common.Logger
	MarketClient    interfaces.MarketDataClient
	AnalyzerService interfaces.AnalyzerService
	SummaryService  interfaces.SummaryService
	StartupTime     time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, clients and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	// Config resolution: provided path, FOLIO_CONFIG, binary dir, dev fallback.
	if configPath == "" {
		configPath = os.Getenv("FOLIO_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "folio.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/folio.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	// Market data client is optional; without it the analyzer uses the
	// static asset-class model.
	var marketClient interfaces.MarketDataClient
	if config.Clients.EODHD.APIKey != "" {
		marketClient = eodhd.NewClient(config.Clients.EODHD.APIKey,
			eodhd.WithBaseURL(config.Clients.EODHD.BaseURL),
			eodhd.WithLogger(logger),
			eodhd.WithRateLimit(config.Clients.EODHD.RateLimit),
			eodhd.WithTimeout(config.Clients.EODHD.GetTimeout()),
		)
	} else {
		logger.Warn().Msg("EODHD API key not configured - using static asset-class assumptions")
	}

	// The Gemini handle is constructed lazily on first summary request and
	// cached for the life of the process.
	var generative interfaces.GenerativeClient
	if config.Clients.Gemini.APIKey != "" {
		generative = gemini.NewLazyClient(config.Clients.Gemini.APIKey,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithLogger(logger),
		)
	} else {
		logger.Warn().Msg("Gemini API key not configured - summaries will be template-based")
	}

	analyzerService := analyzer.NewService(marketClient, logger)
	summaryService := summary.NewService(generative, logger)

	a := &App{
		Config:          config,
		Logger:          logger,
		MarketClient:    marketClient,
		AnalyzerService: analyzerService,
		SummaryService:  summaryService,
		StartupTime:     startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}
