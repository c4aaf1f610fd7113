package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/calculations"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/metrics"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/validators"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AmortizationScheduleHandler обрабатывает запрос на график погашения кредита
func AmortizationScheduleHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "amortization_schedule", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		principal, err := floatParam(params, "principal")
		if err != nil {
			return nil, err
		}
		annualRate, err := floatParam(params, "annual_rate")
		if err != nil {
			return nil, err
		}
		months, err := intParam(params, "months")
		if err != nil {
			return nil, err
		}

		span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Float64("annual_rate", annualRate),
			attribute.Int("months", months),
		)

		if err := validators.CheckPrincipal(d.Config, principal); err != nil {
			return nil, invalid(err)
		}
		if err := validators.CheckRate(d.Config, annualRate); err != nil {
			return nil, invalid(err)
		}
		if err := validators.CheckMonths(d.Config, months); err != nil {
			return nil, invalid(err)
		}

		key := fmt.Sprintf("amortization:%g:%g:%d", principal, annualRate, months)
		if d.Cache != nil {
			if cached, ok := d.Cache.Get(ctx, key); ok {
				var result calculations.AmortizationResult
				if err := json.Unmarshal([]byte(cached), &result); err == nil {
					metrics.CacheLookups.WithLabelValues("hit").Inc()
					span.SetAttributes(attribute.Bool("cache_hit", true))
					return &result, nil
				}
			}
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		}

		result, err := calculations.Amortize(principal, annualRate, months)
		if err != nil {
			return nil, failed(err)
		}

		span.SetAttributes(
			attribute.Float64("monthly_payment", result.Summary.MonthlyPayment),
			attribute.Float64("total_paid", result.Summary.TotalPaid),
		)

		if d.Cache != nil {
			if data, err := json.Marshal(result); err == nil {
				if err := d.Cache.Set(ctx, key, string(data), d.Config.CacheTTL); err != nil {
					d.Logger.Warn("failed to cache amortization schedule", "key", key, "error", err)
				}
			}
		}
		return result, nil
	})
}

// CompoundGrowthHandler обрабатывает запрос на моделирование роста вклада
func CompoundGrowthHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "compound_growth", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		balance, err := floatParam(params, "balance")
		if err != nil {
			return nil, err
		}
		contribution, err := floatParam(params, "monthly_contribution")
		if err != nil {
			return nil, err
		}
		months, err := intParam(params, "months")
		if err != nil {
			return nil, err
		}
		apy, err := floatParam(params, "apy")
		if err != nil {
			return nil, err
		}

		span.SetAttributes(
			attribute.Float64("balance", balance),
			attribute.Float64("monthly_contribution", contribution),
			attribute.Int("months", months),
			attribute.Float64("apy", apy),
		)

		if err := validators.CheckInitialAmount(d.Config, balance); err != nil {
			return nil, invalid(err)
		}
		if err := validators.CheckContribution(d.Config, contribution); err != nil {
			return nil, invalid(err)
		}
		if err := validators.CheckHorizon(d.Config, months); err != nil {
			return nil, invalid(err)
		}
		if err := validators.CheckRate(d.Config, apy); err != nil {
			return nil, invalid(err)
		}

		result := calculations.CompoundGrowth(balance, contribution, months, apy)
		if result.FinalValue > validators.BalanceCap(d.Config) {
			return nil, failed(fmt.Errorf("итоговый баланс превысил верхнюю границу (проверьте ставку/срок/взносы)"))
		}

		span.SetAttributes(attribute.Float64("final_value", result.FinalValue))
		return result, nil
	})
}

// PortfolioGrowthHandler обрабатывает запрос на прогноз стоимости портфеля
func PortfolioGrowthHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "portfolio_growth", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		startValue, err := floatParam(params, "start_value")
		if err != nil {
			return nil, err
		}
		months, err := intParam(params, "months")
		if err != nil {
			return nil, err
		}
		weights, err := weightsParam(params, "weights")
		if err != nil {
			return nil, err
		}

		span.SetAttributes(
			attribute.Float64("start_value", startValue),
			attribute.Int("months", months),
			attribute.Float64("weights_sum", weights.Sum()),
		)

		if err := validators.CheckPrincipal(d.Config, startValue); err != nil {
			return nil, invalid(err)
		}
		if err := validators.CheckHorizon(d.Config, months); err != nil {
			return nil, invalid(err)
		}
		if err := validators.CheckWeights(weights); err != nil {
			return nil, invalid(err)
		}

		result := calculations.PortfolioGrowth(startValue, months, weights)
		span.SetAttributes(attribute.Float64("final_value", result.FinalValue))
		return result, nil
	})
}

// CreditScoreHandler обрабатывает запрос на кредитный скоринг
func CreditScoreHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "credit_score", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		var profile calculations.CreditProfile
		fields := []struct {
			key string
			dst *float64
		}{
			{"income", &profile.Income},
			{"debts", &profile.Debts},
			{"assets", &profile.Assets},
			{"expenses", &profile.Expenses},
		}
		for _, f := range fields {
			v, err := floatParam(params, f.key)
			if err != nil {
				return nil, err
			}
			*f.dst = v
		}

		result, err := calculations.CreditScore(profile)
		if err != nil {
			return nil, err
		}

		span.SetAttributes(
			attribute.Int("score", result.Score),
			attribute.Bool("eligible", result.Eligible),
		)
		return result, nil
	})
}

// LoanApprovalHandler обрабатывает запрос на оценку одобрения кредита
func LoanApprovalHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "loan_approval", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		amount, err := floatParam(params, "amount")
		if err != nil {
			return nil, err
		}
		income, err := floatParam(params, "income")
		if err != nil {
			return nil, err
		}
		score, err := intParam(params, "credit_score")
		if err != nil {
			return nil, err
		}

		span.SetAttributes(
			attribute.Float64("amount", amount),
			attribute.Float64("income", income),
			attribute.Int("credit_score", score),
		)

		if err := validators.CheckPrincipal(d.Config, amount); err != nil {
			return nil, invalid(err)
		}
		if err := validators.CheckMoney(d.Config, "income", income); err != nil {
			return nil, invalid(err)
		}
		if err := validators.ValidateIntRange("credit_score", score, calculations.MinCreditScore, calculations.MaxCreditScore); err != nil {
			return nil, invalid(err)
		}

		result := calculations.LoanApproval(amount, income, score)
		span.SetAttributes(attribute.Bool("approved", result.Approved))
		return result, nil
	})
}

// RiskAllocationHandler обрабатывает запрос на целевое распределение по риск-профилю
func RiskAllocationHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "risk_allocation", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		score, err := floatParam(params, "score")
		if err != nil {
			return nil, err
		}
		span.SetAttributes(attribute.Float64("score", score))
		return calculations.RiskToAllocation(score), nil
	})
}

// FraudCheckHandler обрабатывает запрос на проверку транзакций антифрод-правилами
func FraudCheckHandler(d Deps) ToolHandler {
	return instrument(d.Tracer, "fraud_check", func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error) {
		transactions, err := transactionsParam(params, "transactions")
		if err != nil {
			return nil, err
		}

		alerts := calculations.EvaluateFraudRules(transactions)
		for _, a := range alerts {
			metrics.FraudAlerts.WithLabelValues(string(a.Level)).Inc()
		}

		span.SetAttributes(
			attribute.Int("transactions", len(transactions)),
			attribute.Int("alerts", len(alerts)),
		)
		return alerts, nil
	})
}
