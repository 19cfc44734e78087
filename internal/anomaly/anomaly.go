// Package anomaly aggregates accounts by department and flags departments
// whose balance or aging deviates from the overall pattern.
package anomaly

import (
	"fmt"
	"math"
	"sort"

	"github.com/gyeh/revguard/internal/model"
	"github.com/gyeh/revguard/internal/normalize"
)

// Severity bands: >=60 critical, >=35 warning, else normal.
const (
	thresholdCritical = 60
	thresholdWarning  = 35
)

// Alert trigger thresholds.
const (
	balanceDevAlert = 0.3 // dept avg balance >30% above overall mean
	dpdDevAlert     = 0.5 // dept avg DPD >50% above overall mean
	refundAlertMin  = 2   // refunds attributable to dept accounts
)

// Detect groups accounts by service category and returns department alerts,
// a heatmap ordered descending by risk score, and a severity ranking.
// Empty account input yields all-empty outputs.
func Detect(accounts []model.Account, refunds []model.Refund, chargebacks []model.Chargeback) model.AnomalyResult {
	res := model.AnomalyResult{
		Alerts:          []model.AnomalyAlert{},
		Heatmap:         []model.HeatmapRow{},
		SeverityRanking: []model.SeverityRank{},
	}
	if len(accounts) == 0 {
		return res
	}

	groups := make(map[string][]model.Account)
	for _, a := range accounts {
		groups[a.ServiceCategory] = append(groups[a.ServiceCategory], a)
	}
	depts := make([]string, 0, len(groups))
	for d := range groups {
		depts = append(depts, d)
	}
	sort.Strings(depts)

	var balanceSum, dpdSum float64
	for _, a := range accounts {
		balanceSum += a.PatientBalance
		dpdSum += float64(a.DaysPastDue)
	}
	overallMeanBalance := balanceSum / float64(len(accounts))
	overallMeanDPD := dpdSum / float64(len(accounts))

	for _, dept := range depts {
		group := groups[dept]
		n := float64(len(group))

		var avgBalance, avgDPD, avgLate, totalAtRisk float64
		var highRisk int
		deptIDs := make(map[string]bool, len(group))
		for _, a := range group {
			avgBalance += a.PatientBalance
			avgDPD += float64(a.DaysPastDue)
			avgLate += float64(a.LatePayments12M)
			totalAtRisk += a.PatientBalance
			if a.DaysPastDue > 30 {
				highRisk++
			}
			deptIDs[a.AccountID] = true
		}
		avgBalance /= n
		avgDPD /= n
		avgLate /= n
		highRiskPct := float64(highRisk) / n * 100

		var refundCount, chargebackCount int
		for _, r := range refunds {
			if deptIDs[r.AccountID] {
				refundCount++
			}
		}
		for _, cb := range chargebacks {
			if deptIDs[cb.AccountID] {
				chargebackCount++
			}
		}

		balanceDev := (avgBalance - overallMeanBalance) / orOne(overallMeanBalance)
		dpdDev := (avgDPD - overallMeanDPD) / orOne(overallMeanDPD)

		score := math.Abs(balanceDev)*40 + math.Abs(dpdDev)*30 + highRiskPct*0.3
		score = normalize.Round1(min(max(score, 0), 100))

		severity := model.SeverityNormal
		switch {
		case score >= thresholdCritical:
			severity = model.SeverityCritical
		case score >= thresholdWarning:
			severity = model.SeverityWarning
		}

		res.Heatmap = append(res.Heatmap, model.HeatmapRow{
			Department:      dept,
			AvgBalance:      normalize.Round2(avgBalance),
			AvgDaysPastDue:  normalize.Round1(avgDPD),
			AvgLatePayments: normalize.Round1(avgLate),
			HighRiskPct:     normalize.Round1(highRiskPct),
			TotalAtRisk:     normalize.Round2(totalAtRisk),
			RefundCount:     refundCount,
			ChargebackCount: chargebackCount,
			RiskScore:       score,
			Severity:        severity,
		})

		if balanceDev > balanceDevAlert {
			res.Alerts = append(res.Alerts, model.AnomalyAlert{
				AlertID:     "ANM-BAL-" + dept,
				Department:  dept,
				AnomalyType: "High Average Balance",
				Severity:    severity,
				Description: fmt.Sprintf("Avg balance $%.2f is %.0f%% above overall mean",
					avgBalance, balanceDev*100),
			})
		}
		if dpdDev > dpdDevAlert {
			res.Alerts = append(res.Alerts, model.AnomalyAlert{
				AlertID:     "ANM-DPD-" + dept,
				Department:  dept,
				AnomalyType: "High Days Past Due",
				Severity:    severity,
				Description: fmt.Sprintf("Avg DPD %.0f days is %.0f%% above overall mean",
					avgDPD, dpdDev*100),
			})
		}
		if refundCount >= refundAlertMin {
			res.Alerts = append(res.Alerts, model.AnomalyAlert{
				AlertID:     "ANM-REF-" + dept,
				Department:  dept,
				AnomalyType: "Elevated Refund Rate",
				Severity:    model.SeverityWarning,
				Description: fmt.Sprintf("%d refunds detected for %s accounts", refundCount, dept),
			})
		}
	}

	sort.SliceStable(res.Heatmap, func(i, j int) bool {
		return res.Heatmap[i].RiskScore > res.Heatmap[j].RiskScore
	})
	for _, h := range res.Heatmap {
		res.SeverityRanking = append(res.SeverityRanking, model.SeverityRank{
			Department: h.Department,
			RiskScore:  h.RiskScore,
			Severity:   h.Severity,
		})
	}
	return res
}

// Department returns the heatmap row for one department, or model.ErrNotFound.
func Department(result model.AnomalyResult, name string) (model.HeatmapRow, error) {
	for _, h := range result.Heatmap {
		if h.Department == name {
			return h, nil
		}
	}
	return model.HeatmapRow{}, model.ErrNotFound
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
