package model

// Risk categories produced by the risk scorer.
const (
	RiskCategoryLow    = "Low"
	RiskCategoryMedium = "Medium"
	RiskCategoryHigh   = "High"
)

// Fraud alert reason codes.
const (
	ReasonDuplicateRefund     = "DUPLICATE_REFUND"
	ReasonRepeatedChargeback  = "REPEATED_CHARGEBACK"
	ReasonUnusualRefundAmount = "UNUSUAL_REFUND_AMOUNT"
)

// Department anomaly severities, ordered least to most severe.
const (
	SeverityNormal   = "normal"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// RiskScore is the derived delinquency risk for a single account.
// Recomputed from the current snapshot on every request, never cached.
type RiskScore struct {
	AccountID             string  `json:"account_id"`
	RiskScore             float64 `json:"risk_score"`
	RiskCategory          string  `json:"risk_category"`
	CollectionProbability float64 `json:"expected_collection_probability"`
	PatientBalance        float64 `json:"patient_balance"`
	TotalCharges          float64 `json:"total_charges"`
	DaysPastDue           int     `json:"days_past_due"`
	PayerType             string  `json:"payer_type"`
	ServiceCategory       string  `json:"service_category"`
}

// FraudAlert flags a suspicious transaction. TransactionID may be a
// comma-joined list when one alert covers a duplicate-refund or
// repeated-chargeback group.
type FraudAlert struct {
	TransactionID string  `json:"transaction_id"`
	AccountID     string  `json:"account_id"`
	FraudRiskFlag bool    `json:"fraud_risk_flag"`
	Confidence    float64 `json:"confidence_score"`
	ReasonCode    string  `json:"reason_code"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
}

// HeatmapRow is the per-department aggregate behind the anomaly heatmap.
type HeatmapRow struct {
	Department      string  `json:"department"`
	AvgBalance      float64 `json:"avg_balance"`
	AvgDaysPastDue  float64 `json:"avg_days_past_due"`
	AvgLatePayments float64 `json:"avg_late_payments"`
	HighRiskPct     float64 `json:"high_risk_pct"`
	TotalAtRisk     float64 `json:"total_at_risk"`
	RefundCount     int     `json:"refund_count"`
	ChargebackCount int     `json:"chargeback_count"`
	RiskScore       float64 `json:"risk_score"`
	Severity        string  `json:"severity"`
}

// AnomalyAlert is raised when a department deviates from the overall pattern.
type AnomalyAlert struct {
	AlertID     string `json:"alert_id"`
	Department  string `json:"department"`
	AnomalyType string `json:"anomaly_type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// SeverityRank is one entry of the department severity ranking,
// ordered descending by risk score.
type SeverityRank struct {
	Department string  `json:"department"`
	RiskScore  float64 `json:"risk_score"`
	Severity   string  `json:"severity"`
}

// AnomalyResult bundles the three anomaly detector outputs.
type AnomalyResult struct {
	Alerts          []AnomalyAlert `json:"anomaly_alerts"`
	Heatmap         []HeatmapRow   `json:"department_heatmap"`
	SeverityRanking []SeverityRank `json:"severity_ranking"`
}

// ForecastPoint is one period of the projected risk series.
type ForecastPoint struct {
	Period               string  `json:"month"`
	ProjectedRisk        float64 `json:"projected_risk"`
	ProjectedCollections float64 `json:"projected_collections"`
	NetRisk              float64 `json:"net_risk"`
}

// ForecastResult holds macro revenue-risk metrics plus a six-period series.
type ForecastResult struct {
	ProjectedDelinquency30D float64         `json:"projected_delinquency_30d"`
	EstimatedBadDebt        float64         `json:"estimated_bad_debt"`
	ExpectedCollectionRate  float64         `json:"expected_collection_rate"`
	RevenueAtRisk           float64         `json:"revenue_at_risk"`
	TotalOutstanding        float64         `json:"total_outstanding"`
	TotalCharges            float64         `json:"total_charges"`
	HighRiskCount           int             `json:"high_risk_count"`
	TotalAccounts           int             `json:"total_accounts"`
	Series                  []ForecastPoint `json:"forecast_series"`
}

// PaymentPlan is an installment recommendation for one account balance.
type PaymentPlan struct {
	PlanLengthMonths      int     `json:"plan_length_months"`
	MonthlyPayment        float64 `json:"monthly_payment"`
	FirstPayment          float64 `json:"first_payment"`
	CollectionProbability float64 `json:"expected_collection_probability"`
	ProjectedRevenue      float64 `json:"projected_revenue"`
}

// AccountPlan pairs a recommended plan with the risk context it was derived from.
type AccountPlan struct {
	AccountID      string  `json:"account_id"`
	RiskScore      float64 `json:"risk_score"`
	RiskCategory   string  `json:"risk_category"`
	PatientBalance float64 `json:"patient_balance"`
	PaymentPlan
}

// AccessAlert flags a suspicious access pattern in the audit log.
type AccessAlert struct {
	AlertID     string `json:"alert_id"`
	UserID      string `json:"user_id"`
	Reason      string `json:"reason"`
	Severity    string `json:"severity"`
	ActionCount int    `json:"action_count"`
}
