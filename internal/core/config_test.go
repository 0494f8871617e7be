package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/alertgen/pkg/models"
)

// --- Helper ---

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// --- LoadConfig tests ---

func TestLoadConfig_Defaults_WhenNoFile(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())

	cfg, err := cm.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Schema.Path != "schema.graphql" {
		t.Errorf("Schema.Path = %q, want schema.graphql", cfg.Schema.Path)
	}
	if cfg.Schema.RootType != "Query" {
		t.Errorf("Schema.RootType = %q, want Query", cfg.Schema.RootType)
	}
	if cfg.Output.Path != "../grafana-stack/alerts/alerts.yaml" {
		t.Errorf("Output.Path = %q", cfg.Output.Path)
	}
	if cfg.Rule.Receiver != "grafana-default-email" {
		t.Errorf("Rule.Receiver = %q", cfg.Rule.Receiver)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if err := cm.ValidateConfig(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadConfig_ReadsAlertconfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".alertconfig.yaml", `
schema:
  path: api/schema.graphql
  root_type: RootQuery
output:
  path: out/alerts.yaml
group:
  name: API Latency
  org_id: 3
rule:
  receiver: oncall
  threshold_seconds: 2
log:
  level: debug
`)

	cm := NewConfigurationManager(dir)
	cfg, err := cm.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Schema.Path != "api/schema.graphql" {
		t.Errorf("Schema.Path = %q", cfg.Schema.Path)
	}
	if cfg.Schema.RootType != "RootQuery" {
		t.Errorf("Schema.RootType = %q", cfg.Schema.RootType)
	}
	if cfg.Output.Path != "out/alerts.yaml" {
		t.Errorf("Output.Path = %q", cfg.Output.Path)
	}
	if cfg.Group.Name != "API Latency" || cfg.Group.OrgID != 3 {
		t.Errorf("Group = %+v", cfg.Group)
	}
	if cfg.Rule.Receiver != "oncall" || cfg.Rule.ThresholdSeconds != 2 {
		t.Errorf("Rule = %+v", cfg.Rule)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".alertconfig.yaml", "rule:\n  datasource_uid: mimir\n")

	cfg, err := NewConfigurationManager(dir).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Rule.DatasourceUID != "mimir" {
		t.Errorf("Rule.DatasourceUID = %q, want mimir", cfg.Rule.DatasourceUID)
	}
	if cfg.Group.Folder != "GraphQL" {
		t.Errorf("Group.Folder = %q, want default GraphQL", cfg.Group.Folder)
	}
	if cfg.Rule.ThresholdSeconds != 1 {
		t.Errorf("Rule.ThresholdSeconds = %v, want default 1", cfg.Rule.ThresholdSeconds)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".alertconfig.yaml", "schema: [unterminated\n")

	if _, err := NewConfigurationManager(dir).LoadConfig(); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

// --- ValidateConfig tests ---

func TestValidateConfig_Nil(t *testing.T) {
	if err := NewConfigurationManager(".").ValidateConfig(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestValidateConfig_InvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *models.GeneratorConfig)
		want   string
	}{
		{"empty schema path", func(c *models.GeneratorConfig) { c.Schema.Path = "" }, "schema.path"},
		{"empty output path", func(c *models.GeneratorConfig) { c.Output.Path = "" }, "output.path"},
		{"bad root type", func(c *models.GeneratorConfig) { c.Schema.RootType = "Query Type" }, "schema.root_type"},
		{"empty group name", func(c *models.GeneratorConfig) { c.Group.Name = "" }, "group.name"},
		{"empty folder", func(c *models.GeneratorConfig) { c.Group.Folder = "" }, "group.folder"},
		{"bad interval", func(c *models.GeneratorConfig) { c.Group.Interval = "soon" }, "group.interval"},
		{"zero org", func(c *models.GeneratorConfig) { c.Group.OrgID = 0 }, "group.org_id"},
		{"empty datasource", func(c *models.GeneratorConfig) { c.Rule.DatasourceUID = "" }, "rule.datasource_uid"},
		{"empty receiver", func(c *models.GeneratorConfig) { c.Rule.Receiver = "" }, "rule.receiver"},
		{"zero threshold", func(c *models.GeneratorConfig) { c.Rule.ThresholdSeconds = 0 }, "rule.threshold_seconds"},
		{"bad log level", func(c *models.GeneratorConfig) { c.Log.Level = "trace" }, "log.level"},
	}

	cm := NewConfigurationManager(".")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cm.ValidateConfig(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %s, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidateConfig_ReportsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Schema.Path = ""
	cfg.Rule.Receiver = ""

	err := NewConfigurationManager(".").ValidateConfig(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "schema.path") || !strings.Contains(err.Error(), "rule.receiver") {
		t.Errorf("expected both problems reported, got: %v", err)
	}
}
