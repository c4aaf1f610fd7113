package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/cache"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/calculations"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/config"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/ledger"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// ErrInvalidParams ошибка разбора или валидации параметров
var ErrInvalidParams = errors.New("неверные параметры")

// Deps зависимости обработчиков
type Deps struct {
	Config  *config.Config
	Tracer  trace.Tracer
	Ledger  *ledger.Ledger
	Wallets *ledger.Wallets
	Prices  ledger.PriceSource
	Cache   cache.Repository
	Logger  *slog.Logger
}

// Registry возвращает все обработчики по именам инструментов
func Registry(d Deps) map[string]ToolHandler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return map[string]ToolHandler{
		"amortization_schedule": AmortizationScheduleHandler(d),
		"compound_growth":       CompoundGrowthHandler(d),
		"portfolio_growth":      PortfolioGrowthHandler(d),
		"credit_score":          CreditScoreHandler(d),
		"loan_approval":         LoanApprovalHandler(d),
		"risk_allocation":       RiskAllocationHandler(d),
		"fraud_check":           FraudCheckHandler(d),
		"position_buy":          PositionBuyHandler(d),
		"position_sell":         PositionSellHandler(d),
		"positions_list":        PositionsListHandler(d),
		"positions_revalue":     PositionsRevalueHandler(d),
		"wallet_open":           WalletOpenHandler(d),
		"wallet_deposit":        WalletDepositHandler(d),
		"wallet_withdraw":       WalletWithdrawHandler(d),
		"transactions_list":     TransactionsListHandler(d),
	}
}

// Names возвращает отсортированные имена инструментов
func Names(registry map[string]ToolHandler) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type toolFunc func(ctx context.Context, span trace.Span, params map[string]interface{}) (interface{}, error)

// instrument оборачивает расчет в span и счетчики вызовов
func instrument(tracer trace.Tracer, toolName string, fn toolFunc) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		ctx, span := tracer.Start(ctx, toolName)
		defer span.End()

		metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

		result, err := fn(ctx, span, params)
		if err != nil {
			kind := ErrorKind(err)
			span.SetAttributes(attribute.String("error", kind+"_error"))
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			status := "error"
			if kind == "validation" {
				status = "validation_error"
			}
			metrics.ToolCalls.WithLabelValues(toolName, status).Inc()
			metrics.CalculationErrors.WithLabelValues(toolName, kind).Inc()
			metrics.APICalls.WithLabelValues("mcp", toolName, "error").Inc()
			return nil, err
		}

		span.SetAttributes(attribute.Bool("success", true))
		metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
		metrics.APICalls.WithLabelValues("mcp", toolName, "success").Inc()
		return result, nil
	}
}

// ErrorKind классифицирует ошибку обработчика: validation, not_found, rejected или calculation
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidParams),
		errors.Is(err, calculations.ErrInvalidLoanTerms),
		errors.Is(err, calculations.ErrInvalidCreditProfile),
		errors.Is(err, ledger.ErrMissingField),
		errors.Is(err, ledger.ErrSharesRequired),
		errors.Is(err, ledger.ErrInvalidQuantity),
		errors.Is(err, ledger.ErrUnknownAsset):
		return "validation"
	case errors.Is(err, ledger.ErrPositionNotFound),
		errors.Is(err, ledger.ErrWalletNotFound):
		return "not_found"
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "rejected"
	default:
		return "calculation"
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidParams, err)
}

func failed(err error) error {
	return fmt.Errorf("ошибка при выполнении расчета: %w", err)
}
