package calculations

// HomeCountry метка внутренней транзакции
const HomeCountry = "home"

// FraudRule одно независимое правило: предикат и выдаваемый сигнал
type FraudRule struct {
	Name    string
	Level   AlertLevel
	Message string
	Match   func(TransactionSample) bool
}

// DefaultFraudRules набор правил в порядке объявления
var DefaultFraudRules = []FraudRule{
	{
		Name:    "large_amount",
		Level:   AlertHigh,
		Message: "Large transaction detected",
		Match:   func(tx TransactionSample) bool { return tx.Amount > 10000 },
	},
	{
		Name:    "abroad_amount",
		Level:   AlertMedium,
		Message: "Abroad transaction > $2k",
		Match:   func(tx TransactionSample) bool { return tx.Country != HomeCountry && tx.Amount > 2000 },
	},
	{
		Name:    "retries",
		Level:   AlertLow,
		Message: "Multiple retries",
		Match:   func(tx TransactionSample) bool { return tx.Retries > 3 },
	},
}

// EvaluateFraudRules проверяет транзакции набором правил по умолчанию
func EvaluateFraudRules(transactions []TransactionSample) []FraudAlert {
	return EvaluateRules(DefaultFraudRules, transactions)
}

// EvaluateRules применяет каждое правило к каждой транзакции.
// Правила не исключают друг друга: одна транзакция может дать несколько сигналов.
func EvaluateRules(rules []FraudRule, transactions []TransactionSample) []FraudAlert {
	alerts := make([]FraudAlert, 0)
	for _, tx := range transactions {
		for _, rule := range rules {
			if rule.Match(tx) {
				alerts = append(alerts, FraudAlert{
					Level:   rule.Level,
					Message: rule.Message,
					TxID:    tx.ID,
				})
			}
		}
	}
	return alerts
}
