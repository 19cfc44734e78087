// Package plan recommends installment plans from risk scorer output.
package plan

import (
	"math"

	"github.com/gyeh/revguard/internal/model"
	"github.com/gyeh/revguard/internal/normalize"
	"github.com/gyeh/revguard/internal/risk"
)

// Recommend maps a risk score, category, and balance to an installment plan.
// A non-positive balance yields a degenerate zero-length plan with 100%
// collection probability.
func Recommend(riskScore float64, riskCategory string, balance float64) model.PaymentPlan {
	if balance <= 0 {
		return model.PaymentPlan{CollectionProbability: 100}
	}

	var months int
	var firstPct, collectionProb float64
	switch riskCategory {
	case model.RiskCategoryLow:
		months = 2
		firstPct = 0.50
		collectionProb = 95
	case model.RiskCategoryMedium:
		months = clampInt(int(math.Round(riskScore/10)), 3, 6)
		firstPct = 0.30
		collectionProb = 75
	default: // High
		months = clampInt(int(math.Round(riskScore/8)), 6, 12)
		firstPct = 0.15
		collectionProb = 50
	}

	firstPayment := normalize.Round2(balance * firstPct)
	monthly := normalize.Round2((balance - firstPayment) / float64(max(months-1, 1)))

	return model.PaymentPlan{
		PlanLengthMonths:      months,
		MonthlyPayment:        monthly,
		FirstPayment:          firstPayment,
		CollectionProbability: collectionProb,
		ProjectedRevenue:      normalize.Round2(balance * collectionProb / 100),
	}
}

// RecommendAll applies Recommend to every scored account, preserving the
// risk scorer's descending-score ordering.
func RecommendAll(scores []model.RiskScore) []model.AccountPlan {
	plans := make([]model.AccountPlan, 0, len(scores))
	for _, s := range scores {
		plans = append(plans, model.AccountPlan{
			AccountID:      s.AccountID,
			RiskScore:      s.RiskScore,
			RiskCategory:   s.RiskCategory,
			PatientBalance: s.PatientBalance,
			PaymentPlan:    Recommend(s.RiskScore, s.RiskCategory, s.PatientBalance),
		})
	}
	return plans
}

// ForAccount scores the given accounts and recommends a plan for one of
// them, or returns model.ErrNotFound.
func ForAccount(accounts []model.Account, accountID string) (model.AccountPlan, error) {
	s, err := risk.Lookup(accounts, accountID)
	if err != nil {
		return model.AccountPlan{}, err
	}
	return model.AccountPlan{
		AccountID:      s.AccountID,
		RiskScore:      s.RiskScore,
		RiskCategory:   s.RiskCategory,
		PatientBalance: s.PatientBalance,
		PaymentPlan:    Recommend(s.RiskScore, s.RiskCategory, s.PatientBalance),
	}, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
