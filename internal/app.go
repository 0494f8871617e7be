// Package internal provides the App struct that wires the alertgen
// components together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/alertgen/internal/cli"
	"github.com/valter-silva-au/alertgen/internal/core"
	"github.com/valter-silva-au/alertgen/internal/observability"
	"github.com/valter-silva-au/alertgen/internal/storage"
	"github.com/valter-silva-au/alertgen/pkg/models"
	"go.uber.org/zap"
)

// HomeEnvVar overrides the directory searched for .alertconfig.
const HomeEnvVar = "ALERTGEN_HOME"

// App holds all service dependencies for alertgen.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager
	Config    *models.GeneratorConfig

	Logger *zap.Logger

	// Storage layer
	SchemaReader storage.SchemaReader
	DocWriter    storage.DocumentWriter

	// Core services
	UIDGen    core.UIDGenerator
	Extractor core.TypeExtractor
	Builder   core.AlertDocumentBuilder
	Generator core.AlertGenerator
}

// NewApp loads configuration from basePath and wires all components.
// An invalid .alertconfig is an error; a missing one means defaults.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := app.ConfigMgr.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Observability ---
	app.Logger, err = observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	// --- Storage layer ---
	app.SchemaReader = storage.NewSchemaReader()
	app.DocWriter = storage.NewDocumentWriter()

	// --- Core services ---
	app.UIDGen = core.NewUIDGenerator()
	app.Extractor = core.NewTypeExtractor(cfg.Schema.RootType)
	app.Builder = core.NewAlertDocumentBuilder(core.RuleTemplateFromConfig(cfg), app.UIDGen)
	app.Generator = core.NewAlertGenerator(app.SchemaReader, app.DocWriter, app.Extractor, app.Builder, app.Logger)

	// --- Wire CLI package-level variables ---
	cli.Config = app.Config
	cli.Logger = app.Logger
	cli.Extractor = app.Extractor
	cli.Builder = app.Builder
	cli.Generator = app.Generator

	app.Logger.Debug("app initialized", zap.String("base_path", basePath))

	return app, nil
}

// Close flushes the logger.
func (a *App) Close() error {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return nil
}

// ResolveBasePath determines where to look for .alertconfig. It checks
// ALERTGEN_HOME, then walks up from the working directory to the first
// directory holding a config file, then falls back to the working directory.
func ResolveBasePath() string {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if hasConfigFile(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}

func hasConfigFile(dir string) bool {
	for _, name := range []string{core.ConfigFileName, core.ConfigFileName + ".yaml", core.ConfigFileName + ".yml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
