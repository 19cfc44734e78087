package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gyeh/revguard/internal/anomaly"
	"github.com/gyeh/revguard/internal/forecast"
	"github.com/gyeh/revguard/internal/fraud"
	"github.com/gyeh/revguard/internal/model"
	"github.com/gyeh/revguard/internal/plan"
	"github.com/gyeh/revguard/internal/risk"
)

func (s *Server) handleRiskScores(c *gin.Context) {
	scores := risk.ScoreAll(s.store.Current().Accounts)
	var high, medium, low int
	for _, sc := range scores {
		switch sc.RiskCategory {
		case model.RiskCategoryHigh:
			high++
		case model.RiskCategoryMedium:
			medium++
		default:
			low++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"scores":      scores,
		"total":       len(scores),
		"high_risk":   high,
		"medium_risk": medium,
		"low_risk":    low,
	})
}

func (s *Server) handleAccountRisk(c *gin.Context) {
	score, err := risk.Lookup(s.store.Current().Accounts, c.Param("account_id"))
	if err != nil {
		notFound(c, "Account not found")
		return
	}
	c.JSON(http.StatusOK, score)
}

func (s *Server) handleFraudAlerts(c *gin.Context) {
	snap := s.store.Current()
	alerts := fraud.Detect(snap.Payments, snap.Refunds, snap.Chargebacks)
	highConfidence := 0
	for _, a := range alerts {
		if a.Confidence >= 0.7 {
			highConfidence++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"alerts":          alerts,
		"total_flagged":   len(alerts),
		"high_confidence": highConfidence,
	})
}

func (s *Server) handleFraudDetail(c *gin.Context) {
	snap := s.store.Current()
	alerts := fraud.Detect(snap.Payments, snap.Refunds, snap.Chargebacks)
	alert, err := fraud.Lookup(alerts, c.Param("transaction_id"))
	if err != nil {
		notFound(c, "Transaction not found or not flagged")
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (s *Server) handleAnomalyAlerts(c *gin.Context) {
	snap := s.store.Current()
	result := anomaly.Detect(snap.Accounts, snap.Refunds, snap.Chargebacks)
	c.JSON(http.StatusOK, gin.H{
		"anomalies": result.Alerts,
		"total":     len(result.Alerts),
	})
}

func (s *Server) handleHeatmap(c *gin.Context) {
	snap := s.store.Current()
	result := anomaly.Detect(snap.Accounts, snap.Refunds, snap.Chargebacks)
	c.JSON(http.StatusOK, gin.H{
		"heatmap":          result.Heatmap,
		"severity_ranking": result.SeverityRanking,
	})
}

func (s *Server) handleDepartmentDetail(c *gin.Context) {
	name := c.Query("name")
	snap := s.store.Current()
	result := anomaly.Detect(snap.Accounts, snap.Refunds, snap.Chargebacks)
	summary, err := anomaly.Department(result, name)
	if err != nil {
		notFound(c, "Department '"+name+"' not found")
		return
	}

	accounts := []model.Account{}
	for _, a := range snap.Accounts {
		if a.ServiceCategory == name {
			accounts = append(accounts, a)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"department":     name,
		"summary":        summary,
		"accounts":       accounts,
		"total_accounts": len(accounts),
	})
}

func (s *Server) handleForecast(c *gin.Context) {
	c.JSON(http.StatusOK, forecast.Forecast(s.store.Current().Accounts))
}

func (s *Server) handleAllPlans(c *gin.Context) {
	plans := plan.RecommendAll(risk.ScoreAll(s.store.Current().Accounts))
	c.JSON(http.StatusOK, gin.H{
		"plans": plans,
		"total": len(plans),
	})
}

func (s *Server) handleAccountPlan(c *gin.Context) {
	p, err := plan.ForAccount(s.store.Current().Accounts, c.Param("account_id"))
	if err != nil {
		notFound(c, "Account not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handlePaymentHistory(c *gin.Context) {
	accountID := c.Param("account_id")
	payments := s.store.Current().PaymentsByAccount(accountID)
	if payments == nil {
		payments = []model.Payment{}
	}
	c.JSON(http.StatusOK, gin.H{
		"account_id": accountID,
		"payments":   payments,
		"total":      len(payments),
	})
}
