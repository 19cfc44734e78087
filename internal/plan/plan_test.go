package plan

import (
	"errors"
	"testing"

	"github.com/gyeh/revguard/internal/model"
	"github.com/gyeh/revguard/internal/risk"
)

func TestRecommend_ZeroBalance(t *testing.T) {
	for _, balance := range []float64{0, -150} {
		p := Recommend(80, model.RiskCategoryHigh, balance)
		if p.PlanLengthMonths != 0 || p.MonthlyPayment != 0 || p.FirstPayment != 0 {
			t.Errorf("balance %v: expected degenerate plan, got %+v", balance, p)
		}
		if p.CollectionProbability != 100 {
			t.Errorf("balance %v: CollectionProbability = %v, want 100", balance, p.CollectionProbability)
		}
	}
}

func TestRecommend_Low(t *testing.T) {
	p := Recommend(20, model.RiskCategoryLow, 1000)
	if p.PlanLengthMonths != 2 {
		t.Errorf("PlanLengthMonths = %d, want 2", p.PlanLengthMonths)
	}
	if p.FirstPayment != 500 {
		t.Errorf("FirstPayment = %v, want 500", p.FirstPayment)
	}
	// Remaining 500 over max(2-1, 1) = 1 month.
	if p.MonthlyPayment != 500 {
		t.Errorf("MonthlyPayment = %v, want 500", p.MonthlyPayment)
	}
	if p.CollectionProbability != 95 {
		t.Errorf("CollectionProbability = %v, want 95", p.CollectionProbability)
	}
	if p.ProjectedRevenue != 950 {
		t.Errorf("ProjectedRevenue = %v, want 950", p.ProjectedRevenue)
	}
}

func TestRecommend_Medium(t *testing.T) {
	// round(50/10) = 5 months, within [3, 6].
	p := Recommend(50, model.RiskCategoryMedium, 2000)
	if p.PlanLengthMonths != 5 {
		t.Errorf("PlanLengthMonths = %d, want 5", p.PlanLengthMonths)
	}
	if p.FirstPayment != 600 {
		t.Errorf("FirstPayment = %v, want 600", p.FirstPayment)
	}
	if p.MonthlyPayment != 350 {
		t.Errorf("MonthlyPayment = %v, want 350", p.MonthlyPayment)
	}
	if p.CollectionProbability != 75 {
		t.Errorf("CollectionProbability = %v, want 75", p.CollectionProbability)
	}
}

func TestRecommend_High(t *testing.T) {
	// round(80/8) = 10 months, within [6, 12].
	p := Recommend(80, model.RiskCategoryHigh, 1000)
	if p.PlanLengthMonths != 10 {
		t.Errorf("PlanLengthMonths = %d, want 10", p.PlanLengthMonths)
	}
	if p.FirstPayment != 150 {
		t.Errorf("FirstPayment = %v, want 150", p.FirstPayment)
	}
	// (1000-150)/9 = 94.44
	if p.MonthlyPayment != 94.44 {
		t.Errorf("MonthlyPayment = %v, want 94.44", p.MonthlyPayment)
	}
	if p.CollectionProbability != 50 {
		t.Errorf("CollectionProbability = %v, want 50", p.CollectionProbability)
	}
}

func TestRecommend_MonthClamps(t *testing.T) {
	if p := Recommend(35, model.RiskCategoryMedium, 100); p.PlanLengthMonths != 4 {
		t.Errorf("Medium 35: months = %d, want 4", p.PlanLengthMonths)
	}
	if p := Recommend(100, model.RiskCategoryMedium, 100); p.PlanLengthMonths != 6 {
		t.Errorf("Medium 100: months = %d, want clamp 6", p.PlanLengthMonths)
	}
	if p := Recommend(100, model.RiskCategoryHigh, 100); p.PlanLengthMonths != 12 {
		t.Errorf("High 100: months = %d, want 12", p.PlanLengthMonths)
	}
	if p := Recommend(65, model.RiskCategoryHigh, 100); p.PlanLengthMonths != 8 {
		t.Errorf("High 65: months = %d, want 8", p.PlanLengthMonths)
	}
}

func TestRecommendAll_MatchesDirect(t *testing.T) {
	accounts := []model.Account{
		{AccountID: "A", PatientBalance: 1000, TotalCharges: 2000, DaysPastDue: 100, LatePayments12M: 5, PayerType: "self_pay"},
		{AccountID: "B", PatientBalance: 400, TotalCharges: 800, PayerType: "commercial"},
	}
	scores := risk.ScoreAll(accounts)
	plans := RecommendAll(scores)
	if len(plans) != len(scores) {
		t.Fatalf("len(plans) = %d, want %d", len(plans), len(scores))
	}
	for i, p := range plans {
		s := scores[i]
		if p.AccountID != s.AccountID || p.RiskScore != s.RiskScore {
			t.Errorf("plans[%d] out of order: %+v vs %+v", i, p, s)
		}
		want := Recommend(s.RiskScore, s.RiskCategory, s.PatientBalance)
		if p.PaymentPlan != want {
			t.Errorf("plans[%d] = %+v, want %+v", i, p.PaymentPlan, want)
		}
	}
}

func TestForAccount(t *testing.T) {
	accounts := []model.Account{
		{AccountID: "A", PatientBalance: 1000, TotalCharges: 2000, PayerType: "medicare"},
	}
	p, err := ForAccount(accounts, "A")
	if err != nil {
		t.Fatalf("ForAccount: %v", err)
	}
	if p.AccountID != "A" || p.PatientBalance != 1000 {
		t.Errorf("unexpected plan %+v", p)
	}
	if _, err := ForAccount(accounts, "MISSING"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
