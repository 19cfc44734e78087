// Package audit reads the access log table: listings, export history, and a
// suspicious-access heuristic. Detectors never write here.
package audit

import (
	"fmt"

	"github.com/gyeh/revguard/internal/model"
)

// Suspicious-access thresholds.
const (
	highFrequencyMin = 4 // actions per user before flagging
	criticalMin      = 6 // actions per user before escalating to critical
	bulkExportMin    = 2 // exports per user before flagging
)

// ExportLogs returns the audit entries recording data exports.
func ExportLogs(entries []model.AuditEntry) []model.AuditEntry {
	out := []model.AuditEntry{}
	for _, e := range entries {
		if e.Action == "export" {
			out = append(out, e)
		}
	}
	return out
}

// UserActivity returns all audit entries for one user, in log order.
func UserActivity(entries []model.AuditEntry, userID string) []model.AuditEntry {
	out := []model.AuditEntry{}
	for _, e := range entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// SuspiciousAccess flags users with high-frequency access or repeated bulk
// exports. Users are reported in first-seen log order.
func SuspiciousAccess(entries []model.AuditEntry) []model.AccessAlert {
	actionCounts := make(map[string]int)
	exportCounts := make(map[string]int)
	var order []string
	for _, e := range entries {
		if _, seen := actionCounts[e.UserID]; !seen {
			order = append(order, e.UserID)
		}
		actionCounts[e.UserID]++
		if e.Action == "export" {
			exportCounts[e.UserID]++
		}
	}

	alerts := []model.AccessAlert{}
	for _, user := range order {
		if count := actionCounts[user]; count >= highFrequencyMin {
			severity := model.SeverityWarning
			if count >= criticalMin {
				severity = model.SeverityCritical
			}
			alerts = append(alerts, model.AccessAlert{
				AlertID:     "SEC-" + user,
				UserID:      user,
				Reason:      fmt.Sprintf("High-frequency access: %d actions logged", count),
				Severity:    severity,
				ActionCount: count,
			})
		}
	}
	for _, user := range order {
		if count := exportCounts[user]; count >= bulkExportMin {
			alerts = append(alerts, model.AccessAlert{
				AlertID:     "SEC-EXP-" + user,
				UserID:      user,
				Reason:      fmt.Sprintf("Multiple data exports: %d exports", count),
				Severity:    model.SeverityWarning,
				ActionCount: count,
			})
		}
	}
	return alerts
}
