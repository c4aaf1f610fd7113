package calculations

import "github.com/Suproteek-Banerjee/one-fourth-finance-sub000/pkg/utils"

// Целевые распределения от консервативного к агрессивному
var (
	ConservativeAllocation = AllocationWeights{Stocks: 0.2, Bonds: 0.6, RealEstate: 0.15, Crypto: 0.05}
	ModerateAllocation     = AllocationWeights{Stocks: 0.4, Bonds: 0.4, RealEstate: 0.15, Crypto: 0.05}
	GrowthAllocation       = AllocationWeights{Stocks: 0.6, Bonds: 0.25, RealEstate: 0.1, Crypto: 0.05}
	AggressiveAllocation   = AllocationWeights{Stocks: 0.7, Bonds: 0.1, RealEstate: 0.05, Crypto: 0.15}
)

// RiskToAllocation сопоставляет риск-профиль 0..100 одному из четырех распределений
func RiskToAllocation(score float64) AllocationWeights {
	s := utils.Clamp(score, 0, 100)
	switch {
	case s < 25:
		return ConservativeAllocation
	case s < 50:
		return ModerateAllocation
	case s < 75:
		return GrowthAllocation
	default:
		return AggressiveAllocation
	}
}
