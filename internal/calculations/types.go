package calculations

// Installment представляет одну строку графика погашения кредита
type Installment struct {
	Index     int     `json:"index"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal      float64 `json:"principal"`
	AnnualRate     float64 `json:"annual_rate"`
	Months         int     `json:"months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
}

// AmortizationResult объединяет график и сводку
type AmortizationResult struct {
	Summary  LoanSummary   `json:"summary"`
	Schedule []Installment `json:"schedule"`
}

// GrowthPoint представляет значение на конец месяца
type GrowthPoint struct {
	Month int     `json:"month"`
	Value float64 `json:"value"`
}

// GrowthResult представляет результат моделирования роста
type GrowthResult struct {
	FinalValue float64       `json:"final_value"`
	History    []GrowthPoint `json:"history"`
}

// CompoundingAccount описывает счет с ежемесячной капитализацией
type CompoundingAccount struct {
	Balance             float64 `json:"balance"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	APY                 float64 `json:"apy"`
}

// AllocationWeights доли портфеля по классам активов, в сумме 1.0
type AllocationWeights struct {
	Stocks     float64 `json:"stocks"`
	Bonds      float64 `json:"bonds"`
	RealEstate float64 `json:"real_estate"`
	Crypto     float64 `json:"crypto"`
}

// Sum возвращает сумму долей
func (w AllocationWeights) Sum() float64 {
	return w.Stocks + w.Bonds + w.RealEstate + w.Crypto
}

// CreditProfile исходные финансовые данные заемщика
type CreditProfile struct {
	Income   float64 `json:"income"`
	Debts    float64 `json:"debts"`
	Assets   float64 `json:"assets"`
	Expenses float64 `json:"expenses"`
}

// CreditScoreResult результат кредитного скоринга
type CreditScoreResult struct {
	Score                int     `json:"score"`
	ProbabilityOfDefault float64 `json:"probability_of_default"`
	Eligible             bool    `json:"eligible"`
}

// LoanDecision результат оценки заявки на кредит
type LoanDecision struct {
	Approved            bool    `json:"approved"`
	ApprovalProbability float64 `json:"approval_probability"`
}

// TransactionSample транзакция для проверки антифрод-правилами
type TransactionSample struct {
	ID      string  `json:"id"`
	Amount  float64 `json:"amount"`
	Country string  `json:"country"`
	Retries int     `json:"retries"`
}

// AlertLevel уровень антифрод-сигнала
type AlertLevel string

const (
	AlertLow    AlertLevel = "low"
	AlertMedium AlertLevel = "medium"
	AlertHigh   AlertLevel = "high"
)

// FraudAlert сигнал, выданный одним правилом для одной транзакции
type FraudAlert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
	TxID    string     `json:"tx_id"`
}
