package calculations

import (
	"fmt"
	"math"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/pkg/utils"
)

const (
	MinCreditScore      = 300
	MaxCreditScore      = 850
	EligibleCreditScore = 620
	PrimeCreditScore    = 700
)

// CreditScore переводит финансовый профиль в скоринговый балл и вероятность дефолта
func CreditScore(profile CreditProfile) (CreditScoreResult, error) {
	fields := []struct {
		name  string
		value float64
	}{
		{"income", profile.Income},
		{"debts", profile.Debts},
		{"assets", profile.Assets},
		{"expenses", profile.Expenses},
	}
	for _, f := range fields {
		if f.value < 0 || !utils.IsFinite(f.value) {
			return CreditScoreResult{}, fmt.Errorf("%w: %s = %v", ErrInvalidCreditProfile, f.name, f.value)
		}
	}

	dti := (profile.Debts + profile.Expenses) / math.Max(1, profile.Income)
	netWorth := profile.Assets - profile.Debts
	raw := 700 - dti*300 + math.Min(200, netWorth/1000)

	score := int(utils.Clamp(math.Round(raw), MinCreditScore, MaxCreditScore))
	pd := utils.Round2(1 - float64(score-MinCreditScore)/float64(MaxCreditScore-MinCreditScore))

	return CreditScoreResult{
		Score:                score,
		ProbabilityOfDefault: pd,
		Eligible:             score >= EligibleCreditScore,
	}, nil
}

// LoanApproval оценивает вероятность одобрения по баллу и доступности платежа
func LoanApproval(amount, income float64, creditScore int) LoanDecision {
	var base float64
	switch {
	case creditScore >= PrimeCreditScore:
		base = 0.85
	case creditScore >= EligibleCreditScore:
		base = 0.6
	default:
		base = 0.25
	}

	var affordability float64
	switch {
	case income > amount/2:
		affordability = 0.2
	case income > amount/3:
		affordability = 0.1
	default:
		affordability = -0.1
	}

	probability := utils.Round2(utils.Clamp(base+affordability, 0, 1))
	return LoanDecision{
		Approved:            probability > 0.5,
		ApprovalProbability: probability,
	}
}
