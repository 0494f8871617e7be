package models

// SchemaConfig locates the GraphQL schema and names its root operation type.
type SchemaConfig struct {
	Path     string `yaml:"path" mapstructure:"path"`
	RootType string `yaml:"root_type" mapstructure:"root_type"`
}

// OutputConfig locates the generated provisioning file.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// GroupConfig holds the rule group envelope settings.
type GroupConfig struct {
	Name     string `yaml:"name" mapstructure:"name"`
	Folder   string `yaml:"folder" mapstructure:"folder"`
	Interval string `yaml:"interval" mapstructure:"interval"`
	OrgID    int    `yaml:"org_id" mapstructure:"org_id"`
}

// RuleConfig holds the settings shared by every generated rule.
type RuleConfig struct {
	DatasourceUID    string  `yaml:"datasource_uid" mapstructure:"datasource_uid"`
	Receiver         string  `yaml:"receiver" mapstructure:"receiver"`
	ThresholdSeconds float64 `yaml:"threshold_seconds" mapstructure:"threshold_seconds"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// GeneratorConfig is the full configuration read from .alertconfig via Viper.
type GeneratorConfig struct {
	Schema SchemaConfig `yaml:"schema" mapstructure:"schema"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Group  GroupConfig  `yaml:"group" mapstructure:"group"`
	Rule   RuleConfig   `yaml:"rule" mapstructure:"rule"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}
