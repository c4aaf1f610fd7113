package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls счетчик вызовов API
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_calls_total",
			Help: "Вызовы API инструментов",
		},
		[]string{"service", "endpoint", "status"},
	)

	// LedgerOperations счетчик операций с позициями
	LedgerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Операции покупки и продажи в реестре позиций",
		},
		[]string{"operation", "asset_class", "status"},
	)

	// FraudAlerts счетчик антифрод-сигналов по уровням
	FraudAlerts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fraud_alerts_total",
			Help: "Сигналы антифрод-правил",
		},
		[]string{"level"},
	)

	// CacheLookups счетчик обращений к кэшу расчетов
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Попадания и промахи кэша расчетов",
		},
		[]string{"result"},
	)

	// RateLimited счетчик запросов, отклоненных ограничителем
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Запросы, отклоненные ограничителем частоты",
		},
	)
)
