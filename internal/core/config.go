// Package core contains the alert generation logic: schema type extraction,
// rule templating, the generation pipeline and its configuration.
package core

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/alertgen/pkg/models"
)

// ConfigFileName is the optional configuration file looked up in the base path.
const ConfigFileName = ".alertconfig"

// identifierPattern matches a GraphQL type name.
var identifierPattern = regexp.MustCompile(`^\w+$`)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ConfigurationManager loads and validates generator configuration.
type ConfigurationManager interface {
	LoadConfig() (*models.GeneratorConfig, error)
	ValidateConfig(cfg *models.GeneratorConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper.
type viperConfigManager struct {
	// basePath is the directory where .alertconfig resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// .alertconfig from basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns the configuration used when no .alertconfig exists.
func DefaultConfig() *models.GeneratorConfig {
	tmpl := DefaultRuleTemplate()
	return &models.GeneratorConfig{
		Schema: models.SchemaConfig{
			Path:     "schema.graphql",
			RootType: DefaultRootType,
		},
		Output: models.OutputConfig{
			Path: "../grafana-stack/alerts/alerts.yaml",
		},
		Group: models.GroupConfig{
			Name:     tmpl.GroupName,
			Folder:   tmpl.Folder,
			Interval: tmpl.Interval,
			OrgID:    tmpl.OrgID,
		},
		Rule: models.RuleConfig{
			DatasourceUID:    tmpl.DatasourceUID,
			Receiver:         tmpl.Receiver,
			ThresholdSeconds: tmpl.ThresholdSeconds,
		},
		Log: models.LogConfig{
			Level: "warn",
		},
	}
}

// LoadConfig reads .alertconfig from the base path. Keys that are absent
// keep their defaults; a missing file yields DefaultConfig.
func (cm *viperConfigManager) LoadConfig() (*models.GeneratorConfig, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("schema.path", cfg.Schema.Path)
	v.SetDefault("schema.root_type", cfg.Schema.RootType)
	v.SetDefault("output.path", cfg.Output.Path)
	v.SetDefault("group.name", cfg.Group.Name)
	v.SetDefault("group.folder", cfg.Group.Folder)
	v.SetDefault("group.interval", cfg.Group.Interval)
	v.SetDefault("group.org_id", cfg.Group.OrgID)
	v.SetDefault("rule.datasource_uid", cfg.Rule.DatasourceUID)
	v.SetDefault("rule.receiver", cfg.Rule.Receiver)
	v.SetDefault("rule.threshold_seconds", cfg.Rule.ThresholdSeconds)
	v.SetDefault("log.level", cfg.Log.Level)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ConfigFileName, err)
	}

	return cfg, nil
}

// ValidateConfig reports every invalid field in one error.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GeneratorConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.Schema.Path == "" {
		errs = append(errs, "schema.path must not be empty")
	}
	if cfg.Output.Path == "" {
		errs = append(errs, "output.path must not be empty")
	}
	if !identifierPattern.MatchString(cfg.Schema.RootType) {
		errs = append(errs, fmt.Sprintf("schema.root_type %q is not a valid type name", cfg.Schema.RootType))
	}
	if cfg.Group.Name == "" {
		errs = append(errs, "group.name must not be empty")
	}
	if cfg.Group.Folder == "" {
		errs = append(errs, "group.folder must not be empty")
	}
	if d, err := time.ParseDuration(cfg.Group.Interval); err != nil || d <= 0 {
		errs = append(errs, fmt.Sprintf("group.interval %q must be a positive duration like 1m", cfg.Group.Interval))
	}
	if cfg.Group.OrgID < 1 {
		errs = append(errs, fmt.Sprintf("group.org_id must be positive, got %d", cfg.Group.OrgID))
	}
	if cfg.Rule.DatasourceUID == "" {
		errs = append(errs, "rule.datasource_uid must not be empty")
	}
	if cfg.Rule.Receiver == "" {
		errs = append(errs, "rule.receiver must not be empty")
	}
	if cfg.Rule.ThresholdSeconds <= 0 {
		errs = append(errs, fmt.Sprintf("rule.threshold_seconds must be positive, got %g", cfg.Rule.ThresholdSeconds))
	}
	if !validLogLevels[cfg.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level %q is invalid, must be one of: debug, info, warn, error", cfg.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
