package model

// Account is one patient account row from accounts.csv (or accounts.parquet).
// Loaded wholesale at snapshot build time and immutable thereafter.
type Account struct {
	AccountID           string  `json:"account_id" parquet:"account_id"`
	PatientBalance      float64 `json:"patient_balance" parquet:"patient_balance"`
	TotalCharges        float64 `json:"total_charges" parquet:"total_charges"`
	InsurancePaid       float64 `json:"insurance_paid" parquet:"insurance_paid"`
	LatePayments12M     int     `json:"historical_late_payments_12m" parquet:"historical_late_payments_12m"`
	DaysPastDue         int     `json:"days_past_due" parquet:"days_past_due"`
	ServiceCategory     string  `json:"service_category" parquet:"service_category"`
	PayerType           string  `json:"payer_type" parquet:"payer_type"`
	DeductibleRemaining float64 `json:"deductible_remaining_est" parquet:"deductible_remaining_est,optional"`
}

// Payment is one posted patient payment.
type Payment struct {
	TransactionID string  `json:"transaction_id"`
	AccountID     string  `json:"account_id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	Method        string  `json:"payment_method"`
}

// Refund is one issued refund. Amount carries the refund_amount column.
type Refund struct {
	TransactionID string  `json:"transaction_id"`
	AccountID     string  `json:"account_id"`
	Amount        float64 `json:"refund_amount"`
	RefundDate    string  `json:"refund_date"`
	Reason        string  `json:"reason"`
}

// Chargeback is one payer or card chargeback against an account.
type Chargeback struct {
	TransactionID  string  `json:"transaction_id"`
	AccountID      string  `json:"account_id"`
	Amount         float64 `json:"amount"`
	ChargebackDate string  `json:"chargeback_date"`
	Reason         string  `json:"reason"`
}

// Claim is one insurance claim row from the optional claims.csv table.
// Claims are carried for file listing and drill-down only; no engine reads them.
type Claim struct {
	ClaimID       string  `json:"claim_id"`
	AccountID     string  `json:"account_id"`
	ClaimAmount   float64 `json:"claim_amount"`
	Status        string  `json:"status"`
	SubmittedDate string  `json:"submitted_date"`
}

// AuditEntry is one access-log row from audit_log.csv.
type AuditEntry struct {
	LogID     string `json:"log_id"`
	UserID    string `json:"user_id"`
	Action    string `json:"action"`
	Resource  string `json:"resource"`
	Timestamp string `json:"timestamp"`
}
