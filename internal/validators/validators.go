package validators

import (
	"fmt"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/calculations"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/config"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 1e-9, cfg.MaxPrincipal)
}

// CheckRate проверяет годовую ставку (доля, 0.18 = 18%)
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate", rate, 0.0, cfg.MaxRate)
}

// CheckMonths проверяет срок кредита в месяцах
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("months", months, 1, cfg.MaxMonths)
}

// CheckHorizon проверяет горизонт моделирования; ноль допустим
func CheckHorizon(cfg *config.Config, months int) error {
	return ValidateIntRange("months", months, 0, cfg.MaxMonths)
}

// CheckInitialAmount проверяет начальную сумму
func CheckInitialAmount(cfg *config.Config, amount float64) error {
	return ValidatePositiveNumber("initial_amount", amount, 0.0, cfg.MaxPrincipal)
}

// CheckContribution проверяет ежемесячный взнос
func CheckContribution(cfg *config.Config, contribution float64) error {
	return ValidatePositiveNumber("monthly_contribution", contribution, 0.0, cfg.MaxContribution)
}

// CheckMoney проверяет неотрицательную денежную величину
func CheckMoney(cfg *config.Config, name string, amount float64) error {
	return ValidatePositiveNumber(name, amount, 0.0, cfg.MaxBalanceCap)
}

// CheckWeights проверяет, что каждая доля лежит в [0; 1]
func CheckWeights(w calculations.AllocationWeights) error {
	for name, v := range map[string]float64{
		"stocks":      w.Stocks,
		"bonds":       w.Bonds,
		"real_estate": w.RealEstate,
		"crypto":      w.Crypto,
	} {
		if err := ValidatePositiveNumber(name, v, 0, 1); err != nil {
			return err
		}
	}
	return nil
}

// BalanceCap возвращает максимальный баланс
func BalanceCap(cfg *config.Config) float64 {
	if cfg == nil {
		return 1e12 // Значение по умолчанию
	}
	return cfg.BalanceCap()
}
