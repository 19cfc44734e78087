// Package forecast rolls account balances up into macro delinquency and
// bad-debt metrics plus a six-period projected risk series.
package forecast

import (
	"fmt"

	"github.com/gyeh/revguard/internal/model"
	"github.com/gyeh/revguard/internal/normalize"
)

// Series length and growth assumptions.
const (
	seriesPeriods  = 6
	riskGrowthRate = 0.08 // projected risk grows 8% per period if unaddressed
	collectionRate = 0.15 // collections recover 15% of base risk per period
)

// Masks: delinquency is DPD>30 or 3+ late payments; bad debt is DPD>90 or
// a self-pay account with 5+ late payments.
const (
	delinquentDPD     = 30
	delinquentLateMin = 3
	badDebtDPD        = 90
	badDebtLateMin    = 5
)

// Forecast computes revenue-at-risk metrics over all accounts.
// Empty input yields an all-zero result with an empty series.
func Forecast(accounts []model.Account) model.ForecastResult {
	res := model.ForecastResult{Series: []model.ForecastPoint{}}
	if len(accounts) == 0 {
		return res
	}

	var totalOutstanding, totalCharges, insurancePaid float64
	var delinquentBalance, badDebt float64
	var highRiskCount int
	for _, a := range accounts {
		totalOutstanding += a.PatientBalance
		totalCharges += a.TotalCharges
		insurancePaid += a.InsurancePaid

		if a.DaysPastDue > delinquentDPD || a.LatePayments12M >= delinquentLateMin {
			delinquentBalance += a.PatientBalance
			highRiskCount++
		}
		if a.DaysPastDue > badDebtDPD ||
			(a.LatePayments12M >= badDebtLateMin && normalize.PayerType(a.PayerType) == "self_pay") {
			badDebt += a.PatientBalance
		}
	}

	var collectionPct float64
	if totalCharges != 0 {
		collectionPct = insurancePaid / totalCharges * 100
	}

	revenueAtRisk := normalize.Round2(delinquentBalance + badDebt*0.5)

	res.ProjectedDelinquency30D = normalize.Round2(delinquentBalance)
	res.EstimatedBadDebt = normalize.Round2(badDebt)
	res.ExpectedCollectionRate = normalize.Round1(collectionPct)
	res.RevenueAtRisk = revenueAtRisk
	res.TotalOutstanding = normalize.Round2(totalOutstanding)
	res.TotalCharges = normalize.Round2(totalCharges)
	res.HighRiskCount = highRiskCount
	res.TotalAccounts = len(accounts)

	for m := 1; m <= seriesPeriods; m++ {
		projected := normalize.Round2(revenueAtRisk * (1 + riskGrowthRate*float64(m)))
		collected := normalize.Round2(revenueAtRisk * collectionRate * float64(m))
		if collected > projected {
			collected = projected
		}
		res.Series = append(res.Series, model.ForecastPoint{
			Period:               fmt.Sprintf("Month %d", m),
			ProjectedRisk:        projected,
			ProjectedCollections: collected,
			NetRisk:              normalize.Round2(projected - collected),
		})
	}
	return res
}
