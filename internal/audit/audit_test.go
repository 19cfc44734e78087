package audit

import (
	"testing"

	"github.com/gyeh/revguard/internal/model"
)

func entries() []model.AuditEntry {
	return []model.AuditEntry{
		{LogID: "L1", UserID: "u1", Action: "view", Resource: "risk_scores"},
		{LogID: "L2", UserID: "u2", Action: "view", Resource: "heatmap"},
		{LogID: "L3", UserID: "u1", Action: "export", Resource: "accounts.csv"},
		{LogID: "L4", UserID: "u1", Action: "view", Resource: "fraud_alerts"},
		{LogID: "L5", UserID: "u1", Action: "export", Resource: "payments.csv"},
		{LogID: "L6", UserID: "u3", Action: "view", Resource: "forecast"},
	}
}

func TestExportLogs(t *testing.T) {
	got := ExportLogs(entries())
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].LogID != "L3" || got[1].LogID != "L5" {
		t.Errorf("unexpected export entries: %+v", got)
	}
}

func TestExportLogs_Empty(t *testing.T) {
	if got := ExportLogs(nil); got == nil || len(got) != 0 {
		t.Errorf("expected initialized empty slice, got %v", got)
	}
}

func TestUserActivity(t *testing.T) {
	got := UserActivity(entries(), "u1")
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].LogID < got[i-1].LogID {
			t.Errorf("entries not in log order: %+v", got)
		}
	}
	if got := UserActivity(entries(), "nobody"); len(got) != 0 {
		t.Errorf("expected no entries, got %+v", got)
	}
}

func TestSuspiciousAccess(t *testing.T) {
	alerts := SuspiciousAccess(entries())
	// u1: 4 actions (warning) and 2 exports.
	if len(alerts) != 2 {
		t.Fatalf("len(alerts) = %d, want 2: %+v", len(alerts), alerts)
	}
	if alerts[0].AlertID != "SEC-u1" || alerts[0].Severity != model.SeverityWarning {
		t.Errorf("frequency alert wrong: %+v", alerts[0])
	}
	if alerts[0].ActionCount != 4 {
		t.Errorf("ActionCount = %d, want 4", alerts[0].ActionCount)
	}
	if alerts[1].AlertID != "SEC-EXP-u1" || alerts[1].Severity != model.SeverityWarning {
		t.Errorf("export alert wrong: %+v", alerts[1])
	}
}

func TestSuspiciousAccess_CriticalEscalation(t *testing.T) {
	var es []model.AuditEntry
	for i := 0; i < 6; i++ {
		es = append(es, model.AuditEntry{UserID: "u9", Action: "view"})
	}
	alerts := SuspiciousAccess(es)
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1", len(alerts))
	}
	if alerts[0].Severity != model.SeverityCritical {
		t.Errorf("Severity = %q, want critical", alerts[0].Severity)
	}
}

func TestSuspiciousAccess_Quiet(t *testing.T) {
	es := []model.AuditEntry{
		{UserID: "u1", Action: "view"},
		{UserID: "u2", Action: "export"},
	}
	if alerts := SuspiciousAccess(es); len(alerts) != 0 {
		t.Errorf("expected no alerts, got %+v", alerts)
	}
}
