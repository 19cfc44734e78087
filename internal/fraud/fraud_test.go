package fraud

import (
	"errors"
	"testing"

	"github.com/gyeh/revguard/internal/model"
)

func TestDetect_DuplicateRefunds(t *testing.T) {
	refunds := []model.Refund{
		{TransactionID: "R1", AccountID: "A", Amount: 100},
		{TransactionID: "R2", AccountID: "A", Amount: 100},
		{TransactionID: "R3", AccountID: "A", Amount: 100},
	}
	alerts := Detect(nil, refunds, nil)
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1", len(alerts))
	}
	a := alerts[0]
	if a.TransactionID != "R1, R2, R3" {
		t.Errorf("TransactionID = %q", a.TransactionID)
	}
	if a.ReasonCode != model.ReasonDuplicateRefund {
		t.Errorf("ReasonCode = %q", a.ReasonCode)
	}
	// 0.5 + 0.15*3 = 0.95, exactly the cap.
	if a.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", a.Confidence)
	}
	if a.Amount != 100 {
		t.Errorf("Amount = %v, want 100", a.Amount)
	}
}

func TestDetect_RepeatedChargebacks(t *testing.T) {
	chargebacks := []model.Chargeback{
		{TransactionID: "C1", AccountID: "B", Amount: 50},
		{TransactionID: "C2", AccountID: "B", Amount: 75},
		{TransactionID: "C3", AccountID: "B", Amount: 25},
		{TransactionID: "C4", AccountID: "OTHER", Amount: 10},
	}
	alerts := Detect(nil, nil, chargebacks)
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1", len(alerts))
	}
	a := alerts[0]
	if a.AccountID != "B" {
		t.Errorf("AccountID = %q, want B", a.AccountID)
	}
	// 0.6 + 0.1*3 = 0.9.
	if a.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", a.Confidence)
	}
	if a.Amount != 150 {
		t.Errorf("Amount = %v, want summed 150", a.Amount)
	}
	if a.ReasonCode != model.ReasonRepeatedChargeback {
		t.Errorf("ReasonCode = %q", a.ReasonCode)
	}
}

func TestDetect_RefundOutlier(t *testing.T) {
	refunds := []model.Refund{
		{TransactionID: "R1", AccountID: "A", Amount: 100},
		{TransactionID: "R2", AccountID: "B", Amount: 110},
		{TransactionID: "R3", AccountID: "C", Amount: 90},
		{TransactionID: "R4", AccountID: "D", Amount: 105},
		{TransactionID: "R5", AccountID: "E", Amount: 5000},
	}
	alerts := Detect(nil, refunds, nil)
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1: %v", len(alerts), alerts)
	}
	a := alerts[0]
	if a.TransactionID != "R5" {
		t.Errorf("TransactionID = %q, want R5", a.TransactionID)
	}
	if a.ReasonCode != model.ReasonUnusualRefundAmount {
		t.Errorf("ReasonCode = %q", a.ReasonCode)
	}
	if a.Confidence <= 0 || a.Confidence > 0.95 {
		t.Errorf("Confidence out of range: %v", a.Confidence)
	}
}

func TestDetect_IdenticalRefundsNoOutliers(t *testing.T) {
	// Zero standard deviation must not divide by zero or flag anything
	// beyond the duplicate group.
	refunds := []model.Refund{
		{TransactionID: "R1", AccountID: "A", Amount: 50},
		{TransactionID: "R2", AccountID: "A", Amount: 50},
		{TransactionID: "R3", AccountID: "A", Amount: 50},
	}
	alerts := Detect(nil, refunds, nil)
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1", len(alerts))
	}
	if alerts[0].ReasonCode != model.ReasonDuplicateRefund {
		t.Errorf("ReasonCode = %q", alerts[0].ReasonCode)
	}
}

func TestDetect_UniqueTransactionIDs(t *testing.T) {
	refunds := []model.Refund{
		{TransactionID: "R1", AccountID: "A", Amount: 200},
		{TransactionID: "R2", AccountID: "A", Amount: 200},
		{TransactionID: "R3", AccountID: "B", Amount: 10},
		{TransactionID: "R4", AccountID: "C", Amount: 12},
	}
	chargebacks := []model.Chargeback{
		{TransactionID: "C1", AccountID: "A", Amount: 30},
		{TransactionID: "C2", AccountID: "A", Amount: 40},
	}
	alerts := Detect(nil, refunds, chargebacks)
	seen := make(map[string]bool)
	for _, a := range alerts {
		if seen[a.TransactionID] {
			t.Fatalf("duplicate transaction id %q", a.TransactionID)
		}
		seen[a.TransactionID] = true
	}
	for i := 1; i < len(alerts); i++ {
		if alerts[i].Confidence > alerts[i-1].Confidence {
			t.Fatalf("alerts not descending by confidence: %v", alerts)
		}
	}
}

func TestDetect_ConfidenceCap(t *testing.T) {
	var refunds []model.Refund
	for i := 0; i < 10; i++ {
		refunds = append(refunds, model.Refund{
			TransactionID: string(rune('a' + i)),
			AccountID:     "A",
			Amount:        300,
		})
	}
	alerts := Detect(nil, refunds, nil)
	for _, a := range alerts {
		if a.Confidence > 0.95 {
			t.Errorf("confidence %v exceeds cap", a.Confidence)
		}
	}
}

func TestDetect_Empty(t *testing.T) {
	if got := Detect(nil, nil, nil); len(got) != 0 {
		t.Errorf("expected no alerts, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	alerts := []model.FraudAlert{
		{TransactionID: "R1, R2", Confidence: 0.8},
		{TransactionID: "C7", Confidence: 0.7},
	}
	a, err := Lookup(alerts, "C7")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if a.Confidence != 0.7 {
		t.Errorf("Confidence = %v", a.Confidence)
	}
	// Members of a joined group id do not match individually.
	if _, err := Lookup(alerts, "R1"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
