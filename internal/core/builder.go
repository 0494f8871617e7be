package core

import (
	"fmt"
	"strconv"

	"github.com/valter-silva-au/alertgen/pkg/models"
)

const (
	// ProvisioningAPIVersion is the Grafana alerting provisioning file version.
	ProvisioningAPIVersion = 1

	latencyMetric   = "traces_spanmetrics_latency_bucket"
	typeLabel       = "graphql_field_type"
	expressionUID   = "__expr__"
	lookbackSeconds = 600
	intervalMs      = 1000
	maxDataPoints   = 43200

	// maxUIDAttempts bounds redraws when a generated UID collides with one
	// already used in the same document.
	maxUIDAttempts = 8
)

// RuleTemplate holds every value shared by the rules of one document.
type RuleTemplate struct {
	GroupName        string
	Folder           string
	Interval         string
	OrgID            int
	DatasourceUID    string
	Receiver         string
	ThresholdSeconds float64
}

// DefaultRuleTemplate returns the stock GraphQL latency alert settings.
func DefaultRuleTemplate() RuleTemplate {
	return RuleTemplate{
		GroupName:        "GraphQL Latency Alerts",
		Folder:           "GraphQL",
		Interval:         "1m",
		OrgID:            1,
		DatasourceUID:    "prometheus",
		Receiver:         "grafana-default-email",
		ThresholdSeconds: 1,
	}
}

// RuleTemplateFromConfig maps the group and rule sections of a
// GeneratorConfig onto a RuleTemplate.
func RuleTemplateFromConfig(cfg *models.GeneratorConfig) RuleTemplate {
	return RuleTemplate{
		GroupName:        cfg.Group.Name,
		Folder:           cfg.Group.Folder,
		Interval:         cfg.Group.Interval,
		OrgID:            cfg.Group.OrgID,
		DatasourceUID:    cfg.Rule.DatasourceUID,
		Receiver:         cfg.Rule.Receiver,
		ThresholdSeconds: cfg.Rule.ThresholdSeconds,
	}
}

// AlertDocumentBuilder turns an ordered list of type names into an alert
// provisioning document.
type AlertDocumentBuilder interface {
	Build(types []string) (*models.AlertDocument, error)
}

type alertDocumentBuilder struct {
	tmpl RuleTemplate
	uids UIDGenerator
}

// NewAlertDocumentBuilder creates an AlertDocumentBuilder. A nil uids uses
// the crypto-random generator.
func NewAlertDocumentBuilder(tmpl RuleTemplate, uids UIDGenerator) AlertDocumentBuilder {
	if uids == nil {
		uids = NewUIDGenerator()
	}
	return &alertDocumentBuilder{tmpl: tmpl, uids: uids}
}

// Build emits one rule per type name in input order, wrapped in a single
// rule group. Type names are not filtered or deduplicated here.
func (b *alertDocumentBuilder) Build(types []string) (*models.AlertDocument, error) {
	rules := make([]models.AlertRule, 0, len(types))
	used := make(map[string]bool, len(types))

	for _, graphqlType := range types {
		uid, err := b.uniqueUID(used)
		if err != nil {
			return nil, fmt.Errorf("building rule for %s: %w", graphqlType, err)
		}
		rules = append(rules, b.rule(uid, graphqlType))
	}

	return &models.AlertDocument{
		APIVersion: ProvisioningAPIVersion,
		Groups: []models.RuleGroup{
			{
				OrgID:    b.tmpl.OrgID,
				Name:     b.tmpl.GroupName,
				Folder:   b.tmpl.Folder,
				Interval: b.tmpl.Interval,
				Rules:    rules,
			},
		},
	}, nil
}

func (b *alertDocumentBuilder) uniqueUID(used map[string]bool) (string, error) {
	for range maxUIDAttempts {
		uid, err := b.uids.NewUID()
		if err != nil {
			return "", err
		}
		if !used[uid] {
			used[uid] = true
			return uid, nil
		}
	}
	return "", fmt.Errorf("no unique uid after %d attempts", maxUIDAttempts)
}

func (b *alertDocumentBuilder) rule(uid, graphqlType string) models.AlertRule {
	return models.AlertRule{
		UID:       uid,
		Title:     RuleTitle(graphqlType, b.tmpl.ThresholdSeconds),
		Condition: "C",
		Data: []models.AlertQuery{
			{
				RefID:             "A",
				RelativeTimeRange: &models.RelativeTimeRange{From: lookbackSeconds, To: 0},
				DatasourceUID:     b.tmpl.DatasourceUID,
				Model: &models.PrometheusQueryModel{
					EditorMode:    "code",
					Expr:          LatencyExpr(graphqlType),
					Instant:       true,
					IntervalMs:    intervalMs,
					LegendFormat:  "__auto",
					MaxDataPoints: maxDataPoints,
					Range:         false,
					RefID:         "A",
				},
			},
			{
				RefID:         "C",
				DatasourceUID: expressionUID,
				Model: &models.ThresholdModel{
					Conditions: []models.ThresholdCondition{
						{
							Evaluator: models.Evaluator{Params: []float64{b.tmpl.ThresholdSeconds}, Type: "gt"},
							Operator:  models.TypedParam{Type: "and"},
							Query:     models.ConditionQuery{Params: []string{"C"}},
							Reducer:   models.Evaluator{Params: []float64{}, Type: "last"},
							Type:      "query",
						},
					},
					Datasource:    models.ExpressionDatasource{Type: expressionUID, UID: expressionUID},
					Expression:    "A",
					IntervalMs:    intervalMs,
					MaxDataPoints: maxDataPoints,
					RefID:         "C",
					Type:          "threshold",
				},
			},
		},
		NoDataState:  "NoData",
		ExecErrState: "Error",
		For:          "1m",
		Annotations:  map[string]string{},
		Labels:       map[string]string{},
		IsPaused:     false,
		NotificationSettings: models.NotificationSettings{
			Receiver: b.tmpl.Receiver,
		},
	}
}

// RuleTitle formats the rule title. The type name is used as found, so list
// types keep their brackets.
func RuleTitle(graphqlType string, thresholdSeconds float64) string {
	return fmt.Sprintf("p95 %s Query above %ss", graphqlType, strconv.FormatFloat(thresholdSeconds, 'g', -1, 64))
}

// LatencyExpr returns the PromQL p95 latency query for one GraphQL type.
func LatencyExpr(graphqlType string) string {
	return fmt.Sprintf(`histogram_quantile(0.95, sum(rate(%s{%s="%s"}[1m])) by (le))`, latencyMetric, typeLabel, graphqlType)
}
