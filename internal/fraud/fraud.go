// Package fraud scans transaction tables for suspicious activity.
//
// Three independent rule passes (duplicate refunds, repeated chargebacks,
// refund amount outliers) are merged into at most one alert per transaction
// id, keeping the highest confidence on collision.
package fraud

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gyeh/revguard/internal/model"
	"github.com/gyeh/revguard/internal/normalize"
)

// Confidence never exceeds this cap.
const maxConfidence = 0.95

// Refunds more than this many sample standard deviations from the mean are outliers.
const outlierZ = 1.5

// Detect runs all rule passes over the transaction tables and returns alerts
// ordered descending by confidence, unique by transaction id. Payments are
// part of the contract for future velocity rules; the current passes read
// refunds and chargebacks only.
func Detect(payments []model.Payment, refunds []model.Refund, chargebacks []model.Chargeback) []model.FraudAlert {
	_ = payments

	var alerts []model.FraudAlert
	alerts = append(alerts, duplicateRefunds(refunds)...)
	alerts = append(alerts, repeatedChargebacks(chargebacks)...)
	alerts = append(alerts, refundOutliers(refunds, alerts)...)
	return merge(alerts)
}

// Lookup finds the alert for one transaction id, or model.ErrNotFound.
// Group alerts match only on their full joined id string.
func Lookup(alerts []model.FraudAlert, transactionID string) (model.FraudAlert, error) {
	for _, a := range alerts {
		if a.TransactionID == transactionID {
			return a, nil
		}
	}
	return model.FraudAlert{}, model.ErrNotFound
}

// duplicateRefunds flags groups of two or more refunds sharing an account
// and an amount. One alert covers the whole group with a joined id list.
func duplicateRefunds(refunds []model.Refund) []model.FraudAlert {
	type key struct {
		account string
		amount  float64
	}
	groups := make(map[key][]model.Refund)
	var order []key
	for _, r := range refunds {
		k := key{r.AccountID, r.Amount}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	var alerts []model.FraudAlert
	for _, k := range order {
		group := groups[k]
		if len(group) < 2 {
			continue
		}
		ids := make([]string, len(group))
		for i, r := range group {
			ids[i] = r.TransactionID
		}
		joined := strings.Join(ids, ", ")
		count := len(group)
		alerts = append(alerts, model.FraudAlert{
			TransactionID: joined,
			AccountID:     k.account,
			FraudRiskFlag: true,
			Confidence:    normalize.Round2(min(0.5+0.15*float64(count), maxConfidence)),
			ReasonCode:    model.ReasonDuplicateRefund,
			Amount:        k.amount,
			Description: fmt.Sprintf("Duplicate refund of $%.2f seen %dx (transactions: %s)",
				k.amount, count, joined),
		})
	}
	return alerts
}

// repeatedChargebacks flags accounts with two or more chargebacks.
func repeatedChargebacks(chargebacks []model.Chargeback) []model.FraudAlert {
	groups := make(map[string][]model.Chargeback)
	var order []string
	for _, cb := range chargebacks {
		if _, seen := groups[cb.AccountID]; !seen {
			order = append(order, cb.AccountID)
		}
		groups[cb.AccountID] = append(groups[cb.AccountID], cb)
	}

	var alerts []model.FraudAlert
	for _, account := range order {
		group := groups[account]
		if len(group) < 2 {
			continue
		}
		ids := make([]string, len(group))
		var total float64
		for i, cb := range group {
			ids[i] = cb.TransactionID
			total += cb.Amount
		}
		count := len(group)
		alerts = append(alerts, model.FraudAlert{
			TransactionID: strings.Join(ids, ", "),
			AccountID:     account,
			FraudRiskFlag: true,
			Confidence:    normalize.Round2(min(0.6+0.1*float64(count), maxConfidence)),
			ReasonCode:    model.ReasonRepeatedChargeback,
			Amount:        total,
			Description: fmt.Sprintf("Account %s has %d chargebacks totaling $%.2f",
				account, count, total),
		})
	}
	return alerts
}

// refundOutliers z-scores refund amounts and flags |z| > outlierZ.
// Requires at least 3 refunds and nonzero sample standard deviation.
// Transactions already flagged by an earlier pass are skipped.
func refundOutliers(refunds []model.Refund, prior []model.FraudAlert) []model.FraudAlert {
	if len(refunds) < 3 {
		return nil
	}

	var sum float64
	for _, r := range refunds {
		sum += r.Amount
	}
	mean := sum / float64(len(refunds))

	var sqDiff float64
	for _, r := range refunds {
		d := r.Amount - mean
		sqDiff += d * d
	}
	std := math.Sqrt(sqDiff / float64(len(refunds)-1))
	if std == 0 {
		return nil
	}

	flagged := make(map[string]bool, len(prior))
	for _, a := range prior {
		flagged[a.TransactionID] = true
	}

	var alerts []model.FraudAlert
	for _, r := range refunds {
		z := (r.Amount - mean) / std
		if math.Abs(z) <= outlierZ || flagged[r.TransactionID] {
			continue
		}
		alerts = append(alerts, model.FraudAlert{
			TransactionID: r.TransactionID,
			AccountID:     r.AccountID,
			FraudRiskFlag: true,
			Confidence:    normalize.Round2(min(math.Abs(z)*0.3, maxConfidence)),
			ReasonCode:    model.ReasonUnusualRefundAmount,
			Amount:        r.Amount,
			Description: fmt.Sprintf("Refund amount $%.2f is %.1f std devs from mean",
				r.Amount, math.Abs(z)),
		})
	}
	return alerts
}

// merge de-duplicates by transaction id, keeping the alert with strictly
// greater confidence on collision, then sorts descending by confidence.
func merge(alerts []model.FraudAlert) []model.FraudAlert {
	byID := make(map[string]model.FraudAlert, len(alerts))
	var order []string
	for _, a := range alerts {
		cur, seen := byID[a.TransactionID]
		if !seen {
			order = append(order, a.TransactionID)
			byID[a.TransactionID] = a
			continue
		}
		if a.Confidence > cur.Confidence {
			byID[a.TransactionID] = a
		}
	}

	out := make([]model.FraudAlert, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}
