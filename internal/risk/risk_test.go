package risk

import (
	"errors"
	"testing"

	"github.com/gyeh/revguard/internal/model"
)

func TestScoreAccount_MaxedFactors(t *testing.T) {
	a := model.Account{
		AccountID:           "ACC-1",
		PatientBalance:      1000,
		TotalCharges:        1000,
		LatePayments12M:     6,
		DaysPastDue:         120,
		PayerType:           "self_pay",
		DeductibleRemaining: 500,
	}
	s := ScoreAccount(a)
	// 30 + 25 + 20 + 13.5 + 10
	if s.RiskScore != 98.5 {
		t.Errorf("RiskScore = %v, want 98.5", s.RiskScore)
	}
	if s.RiskCategory != model.RiskCategoryHigh {
		t.Errorf("RiskCategory = %q, want High", s.RiskCategory)
	}
	// Collection probability is floored at 5.
	if s.CollectionProbability != 5 {
		t.Errorf("CollectionProbability = %v, want 5", s.CollectionProbability)
	}
}

func TestScoreAccount_ZeroAccount(t *testing.T) {
	s := ScoreAccount(model.Account{AccountID: "ACC-2"})
	// Only the unknown-payer factor contributes: 50 * 0.15.
	if s.RiskScore != 7.5 {
		t.Errorf("RiskScore = %v, want 7.5", s.RiskScore)
	}
	if s.RiskCategory != model.RiskCategoryLow {
		t.Errorf("RiskCategory = %q, want Low", s.RiskCategory)
	}
	if s.CollectionProbability != 92.5 {
		t.Errorf("CollectionProbability = %v, want 92.5", s.CollectionProbability)
	}
}

func TestScoreAccount_ZeroChargesGuard(t *testing.T) {
	a := model.Account{
		AccountID:      "ACC-3",
		PatientBalance: 500,
		TotalCharges:   0,
		PayerType:      "commercial",
	}
	s := ScoreAccount(a)
	// Ratio factor saturates at 100; payer commercial adds 20*0.15.
	if s.RiskScore != 23 {
		t.Errorf("RiskScore = %v, want 23", s.RiskScore)
	}
}

func TestScoreAccount_PayerCaseInsensitive(t *testing.T) {
	lower := ScoreAccount(model.Account{AccountID: "a", PayerType: "medicare"})
	upper := ScoreAccount(model.Account{AccountID: "a", PayerType: " MEDICARE "})
	if lower.RiskScore != upper.RiskScore {
		t.Errorf("case-sensitive payer lookup: %v vs %v", lower.RiskScore, upper.RiskScore)
	}
}

func TestScoreAll_Ordering(t *testing.T) {
	accounts := []model.Account{
		{AccountID: "LOW", PayerType: "commercial"},
		{AccountID: "HIGH", DaysPastDue: 120, LatePayments12M: 6, PayerType: "self_pay", PatientBalance: 900, TotalCharges: 1000, DeductibleRemaining: 500},
		{AccountID: "MID", DaysPastDue: 60, PayerType: "medicaid"},
	}
	scores := ScoreAll(accounts)
	if len(scores) != 3 {
		t.Fatalf("len = %d, want 3", len(scores))
	}
	for i := 1; i < len(scores); i++ {
		if scores[i].RiskScore > scores[i-1].RiskScore {
			t.Fatalf("scores not descending: %v", scores)
		}
	}
	if scores[0].AccountID != "HIGH" {
		t.Errorf("top account = %s, want HIGH", scores[0].AccountID)
	}
}

func TestScoreAll_Empty(t *testing.T) {
	if got := ScoreAll(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestScoreAll_Bounds(t *testing.T) {
	accounts := []model.Account{
		{AccountID: "a", DaysPastDue: 10000, LatePayments12M: 99, PatientBalance: 1e9, TotalCharges: 1, PayerType: "self_pay", DeductibleRemaining: 1e6},
		{AccountID: "b", PatientBalance: -50, DaysPastDue: -3},
	}
	for _, s := range ScoreAll(accounts) {
		if s.RiskScore < 0 || s.RiskScore > 100 {
			t.Errorf("score out of range for %s: %v", s.AccountID, s.RiskScore)
		}
		if s.CollectionProbability < 5 || s.CollectionProbability > 100 {
			t.Errorf("collection probability out of range for %s: %v", s.AccountID, s.CollectionProbability)
		}
	}
}

func TestLookup(t *testing.T) {
	accounts := []model.Account{{AccountID: "ACC-9", PayerType: "medicare"}}
	s, err := Lookup(accounts, "ACC-9")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if s.AccountID != "ACC-9" {
		t.Errorf("AccountID = %s", s.AccountID)
	}
	if _, err := Lookup(accounts, "NOPE"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
