package calculations

import "github.com/Suproteek-Banerjee/one-fourth-finance-sub000/pkg/utils"

// Ежемесячная доходность по классам активов
const (
	StocksMonthlyReturn     = 0.006
	BondsMonthlyReturn      = 0.002
	RealEstateMonthlyReturn = 0.003
	CryptoMonthlyReturn     = 0.015
)

// CompoundGrowth моделирует рост баланса с ежемесячной капитализацией.
// Взнос зачисляется до начисления процентов за месяц.
func CompoundGrowth(balance, monthlyContribution float64, months int, apy float64) GrowthResult {
	r := apy / 12.0
	value := balance

	history := make([]GrowthPoint, 0, max(months, 0))
	for m := 1; m <= months; m++ {
		value = (value + monthlyContribution) * (1.0 + r)
		history = append(history, GrowthPoint{Month: m, Value: utils.Round2(value)})
	}

	return GrowthResult{
		FinalValue: finalValue(history, balance),
		History:    history,
	}
}

// ProjectAccount применяет CompoundGrowth к параметрам счета
func ProjectAccount(account CompoundingAccount, months int) GrowthResult {
	return CompoundGrowth(account.Balance, account.MonthlyContribution, months, account.APY)
}

// PortfolioGrowth прогнозирует стоимость портфеля по фиксированным доходностям классов.
// Доли используются как есть, без нормировки.
func PortfolioGrowth(startValue float64, months int, weights AllocationWeights) GrowthResult {
	value := startValue

	history := make([]GrowthPoint, 0, max(months, 0))
	for m := 1; m <= months; m++ {
		growth := value*weights.Stocks*StocksMonthlyReturn +
			value*weights.Bonds*BondsMonthlyReturn +
			value*weights.RealEstate*RealEstateMonthlyReturn +
			value*weights.Crypto*CryptoMonthlyReturn
		value += growth
		history = append(history, GrowthPoint{Month: m, Value: utils.Round2(value)})
	}

	return GrowthResult{
		FinalValue: finalValue(history, startValue),
		History:    history,
	}
}

func finalValue(history []GrowthPoint, start float64) float64 {
	if len(history) == 0 {
		return utils.Round2(start)
	}
	return history[len(history)-1].Value
}
