// Package risk scores patient accounts for payment delinquency.
//
// Each account gets five normalized sub-scores (days past due, late payment
// history, balance-to-charges ratio, payer type, remaining deductible)
// combined by fixed weights into a 0-100 score and a Low/Medium/High band.
package risk

import (
	"math"
	"sort"

	"github.com/gyeh/revguard/internal/model"
	"github.com/gyeh/revguard/internal/normalize"
)

// Payer-type risk multipliers, higher = riskier.
var payerRisk = map[string]float64{
	"commercial": 0.2,
	"medicare":   0.3,
	"medicaid":   0.4,
	"self_pay":   0.9,
}

// Unknown or missing payer types score in the middle.
const defaultPayerRisk = 0.5

// Sub-score weights.
const (
	weightDPD          = 0.30
	weightLatePayments = 0.25
	weightBalanceRatio = 0.20
	weightPayerType    = 0.15
	weightDeductible   = 0.10
)

// Category thresholds: >=65 High, >=35 Medium, else Low.
const (
	thresholdHigh   = 65
	thresholdMedium = 35
)

// ScoreAccount computes the weighted risk score for a single account.
func ScoreAccount(a model.Account) model.RiskScore {
	dpd := min(float64(a.DaysPastDue)/120*100, 100)
	late := min(float64(a.LatePayments12M)/6*100, 100)

	totalCharges := a.TotalCharges
	if totalCharges == 0 {
		totalCharges = 1
	}
	balanceRatio := min(a.PatientBalance/totalCharges*100, 100)

	mult, ok := payerRisk[normalize.PayerType(a.PayerType)]
	if !ok {
		mult = defaultPayerRisk
	}
	payer := mult * 100

	deductible := min(a.DeductibleRemaining/500*100, 100)

	score := dpd*weightDPD +
		late*weightLatePayments +
		balanceRatio*weightBalanceRatio +
		payer*weightPayerType +
		deductible*weightDeductible
	score = normalize.Round1(min(max(score, 0), 100))

	category := model.RiskCategoryLow
	switch {
	case score >= thresholdHigh:
		category = model.RiskCategoryHigh
	case score >= thresholdMedium:
		category = model.RiskCategoryMedium
	}

	return model.RiskScore{
		AccountID:             a.AccountID,
		RiskScore:             score,
		RiskCategory:          category,
		CollectionProbability: normalize.Round1(math.Max(100-score, 5)),
		PatientBalance:        a.PatientBalance,
		TotalCharges:          a.TotalCharges,
		DaysPastDue:           a.DaysPastDue,
		PayerType:             a.PayerType,
		ServiceCategory:       a.ServiceCategory,
	}
}

// ScoreAll scores every account and returns the results ordered descending
// by risk score. Empty input yields an empty result.
func ScoreAll(accounts []model.Account) []model.RiskScore {
	scores := make([]model.RiskScore, 0, len(accounts))
	for _, a := range accounts {
		scores = append(scores, ScoreAccount(a))
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].RiskScore > scores[j].RiskScore
	})
	return scores
}

// Lookup scores all accounts and returns the entry for one account id,
// or model.ErrNotFound.
func Lookup(accounts []model.Account, accountID string) (model.RiskScore, error) {
	for _, s := range ScoreAll(accounts) {
		if s.AccountID == accountID {
			return s, nil
		}
	}
	return model.RiskScore{}, model.ErrNotFound
}
