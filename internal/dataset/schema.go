package dataset

// Canonical dataset file names.
const (
	FileAccounts    = "accounts.csv"
	FilePayments    = "payments.csv"
	FileRefunds     = "refunds.csv"
	FileChargebacks = "chargebacks.csv"
	FileClaims      = "claims.csv"
	FileAuditLog    = "audit_log.csv"
)

// TableNames lists all dataset tables in canonical order.
var TableNames = []string{
	FileAccounts,
	FilePayments,
	FileRefunds,
	FileChargebacks,
	FileClaims,
	FileAuditLog,
}

// RequiredFiles must all be present in an upload; claims.csv is optional.
var RequiredFiles = []string{
	FileAccounts,
	FilePayments,
	FileRefunds,
	FileChargebacks,
	FileAuditLog,
}

// Schemas maps each file to its expected header columns.
// deductible_remaining_est is tolerated but not required on accounts.
var Schemas = map[string][]string{
	FileAccounts: {
		"account_id",
		"patient_balance",
		"total_charges",
		"insurance_paid",
		"historical_late_payments_12m",
		"days_past_due",
		"service_category",
		"payer_type",
	},
	FilePayments: {
		"transaction_id",
		"account_id",
		"amount",
		"payment_date",
		"payment_method",
	},
	FileRefunds: {
		"transaction_id",
		"account_id",
		"refund_amount",
		"refund_date",
		"reason",
	},
	FileChargebacks: {
		"transaction_id",
		"account_id",
		"amount",
		"chargeback_date",
		"reason",
	},
	FileClaims: {
		"claim_id",
		"account_id",
		"claim_amount",
		"status",
		"submitted_date",
	},
	FileAuditLog: {
		"log_id",
		"user_id",
		"action",
		"resource",
		"timestamp",
	},
}
