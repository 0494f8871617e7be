package models

// AlertDocument is a Grafana alerting provisioning file. Field order here is
// the key order of the serialized YAML.
type AlertDocument struct {
	APIVersion int         `yaml:"apiVersion" json:"apiVersion"`
	Groups     []RuleGroup `yaml:"groups" json:"groups"`
}

// RuleGroup is a named, foldered set of alert rules evaluated together.
type RuleGroup struct {
	OrgID    int         `yaml:"orgId" json:"orgId"`
	Name     string      `yaml:"name" json:"name"`
	Folder   string      `yaml:"folder" json:"folder"`
	Interval string      `yaml:"interval" json:"interval"`
	Rules    []AlertRule `yaml:"rules" json:"rules"`
}

// AlertRule is a single p95 latency rule for one GraphQL type.
type AlertRule struct {
	UID                  string               `yaml:"uid" json:"uid"`
	Title                string               `yaml:"title" json:"title"`
	Condition            string               `yaml:"condition" json:"condition"`
	Data                 []AlertQuery         `yaml:"data" json:"data"`
	NoDataState          string               `yaml:"noDataState" json:"noDataState"`
	ExecErrState         string               `yaml:"execErrState" json:"execErrState"`
	For                  string               `yaml:"for" json:"for"`
	Annotations          map[string]string    `yaml:"annotations" json:"annotations"`
	Labels               map[string]string    `yaml:"labels" json:"labels"`
	IsPaused             bool                 `yaml:"isPaused" json:"isPaused"`
	NotificationSettings NotificationSettings `yaml:"notification_settings" json:"notification_settings"`
}

// AlertQuery is one stage of a rule's evaluation pipeline. Model holds either
// a *PrometheusQueryModel or a *ThresholdModel.
type AlertQuery struct {
	RefID             string             `yaml:"refId" json:"refId"`
	RelativeTimeRange *RelativeTimeRange `yaml:"relativeTimeRange,omitempty" json:"relativeTimeRange,omitempty"`
	DatasourceUID     string             `yaml:"datasourceUid" json:"datasourceUid"`
	Model             any                `yaml:"model" json:"model"`
}

// RelativeTimeRange is a lookback window in seconds relative to now.
type RelativeTimeRange struct {
	From int `yaml:"from" json:"from"`
	To   int `yaml:"to" json:"to"`
}

// PrometheusQueryModel is the data-fetch stage of a rule.
type PrometheusQueryModel struct {
	EditorMode    string `yaml:"editorMode" json:"editorMode"`
	Expr          string `yaml:"expr" json:"expr"`
	Instant       bool   `yaml:"instant" json:"instant"`
	IntervalMs    int    `yaml:"intervalMs" json:"intervalMs"`
	LegendFormat  string `yaml:"legendFormat" json:"legendFormat"`
	MaxDataPoints int    `yaml:"maxDataPoints" json:"maxDataPoints"`
	Range         bool   `yaml:"range" json:"range"`
	RefID         string `yaml:"refId" json:"refId"`
}

// ThresholdModel is the server-side expression stage that decides firing.
type ThresholdModel struct {
	Conditions    []ThresholdCondition `yaml:"conditions" json:"conditions"`
	Datasource    ExpressionDatasource `yaml:"datasource" json:"datasource"`
	Expression    string               `yaml:"expression" json:"expression"`
	IntervalMs    int                  `yaml:"intervalMs" json:"intervalMs"`
	MaxDataPoints int                  `yaml:"maxDataPoints" json:"maxDataPoints"`
	RefID         string               `yaml:"refId" json:"refId"`
	Type          string               `yaml:"type" json:"type"`
}

// ThresholdCondition compares the reduced series against the evaluator params.
type ThresholdCondition struct {
	Evaluator Evaluator      `yaml:"evaluator" json:"evaluator"`
	Operator  TypedParam     `yaml:"operator" json:"operator"`
	Query     ConditionQuery `yaml:"query" json:"query"`
	Reducer   Evaluator      `yaml:"reducer" json:"reducer"`
	Type      string         `yaml:"type" json:"type"`
}

// Evaluator is a typed operation with numeric parameters.
type Evaluator struct {
	Params []float64 `yaml:"params" json:"params"`
	Type   string    `yaml:"type" json:"type"`
}

// TypedParam carries a single type discriminator.
type TypedParam struct {
	Type string `yaml:"type" json:"type"`
}

// ConditionQuery names the stages a condition reads from.
type ConditionQuery struct {
	Params []string `yaml:"params" json:"params"`
}

// ExpressionDatasource identifies Grafana's built-in expression engine.
type ExpressionDatasource struct {
	Type string `yaml:"type" json:"type"`
	UID  string `yaml:"uid" json:"uid"`
}

// NotificationSettings routes firing alerts to a contact point.
type NotificationSettings struct {
	Receiver string `yaml:"receiver" json:"receiver"`
}

// RuleCount returns the total number of rules across all groups.
func (d *AlertDocument) RuleCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, g := range d.Groups {
		n += len(g.Rules)
	}
	return n
}
