package cli

import (
	"github.com/valter-silva-au/alertgen/internal/core"
	"github.com/valter-silva-au/alertgen/pkg/models"
	"go.uber.org/zap"
)

// Service instances, set during app initialization in app.go.
var (
	Config    *models.GeneratorConfig
	Logger    *zap.Logger
	Extractor core.TypeExtractor
	Builder   core.AlertDocumentBuilder
	Generator core.AlertGenerator
)
