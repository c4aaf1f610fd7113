package calculations

import (
	"fmt"
	"math"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/pkg/utils"
)

// AmortizationSchedule рассчитывает график погашения кредита с фиксированным платежом.
// annualRate задается долей (0.18 = 18% годовых).
func AmortizationSchedule(principal, annualRate float64, months int) ([]Installment, error) {
	if months <= 0 {
		return nil, fmt.Errorf("%w: срок должен быть > 0, получено %d", ErrInvalidLoanTerms, months)
	}
	if principal <= 0 || !utils.IsFinite(principal) {
		return nil, fmt.Errorf("%w: сумма должна быть > 0, получено %v", ErrInvalidLoanTerms, principal)
	}

	P := principal
	n := months
	r := annualRate / 12.0

	// остаток и основной долг каждого месяца считаются в замкнутой форме,
	// без накопления вычитаний
	var payment, logGrowth, growthMinusOne float64
	if r == 0.0 {
		payment = P / float64(n)
	} else {
		logGrowth = math.Log1p(r)
		growthMinusOne = math.Expm1(float64(n) * logGrowth)
		payment = P * r * (growthMinusOne + 1.0) / growthMinusOne
	}

	balanceAfter := func(m int) float64 {
		switch {
		case m >= n:
			return 0
		case r == 0.0:
			return P * float64(n-m) / float64(n)
		default:
			return P * (growthMinusOne - math.Expm1(float64(m)*logGrowth)) / growthMinusOne
		}
	}

	schedule := make([]Installment, 0, n)
	remaining := P

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := payment - interest
		if r != 0.0 {
			principalComponent = P * r * math.Exp(float64(m-1)*logGrowth) / growthMinusOne
		}
		rowPayment := payment
		if m == n {
			// последний платеж гасит остаток целиком
			principalComponent = remaining
			rowPayment = interest + remaining
		}
		remaining = balanceAfter(m)

		schedule = append(schedule, Installment{
			Index:     m,
			Payment:   utils.Round2(rowPayment),
			Principal: utils.Round2(principalComponent),
			Interest:  utils.Round2(interest),
			Balance:   utils.Round2(remaining),
		})
	}

	return schedule, nil
}

// Summarize строит сводку по уже рассчитанному графику
func Summarize(principal, annualRate float64, schedule []Installment) LoanSummary {
	summary := LoanSummary{
		Principal:  utils.Round2(principal),
		AnnualRate: annualRate,
		Months:     len(schedule),
	}
	if len(schedule) == 0 {
		return summary
	}

	totalPaid := 0.0
	totalInterest := 0.0
	for _, row := range schedule {
		totalPaid += row.Payment
		totalInterest += row.Interest
	}

	summary.MonthlyPayment = schedule[0].Payment
	summary.TotalPaid = utils.Round2(totalPaid)
	summary.TotalInterest = utils.Round2(totalInterest)
	return summary
}

// Amortize возвращает график вместе со сводкой
func Amortize(principal, annualRate float64, months int) (*AmortizationResult, error) {
	schedule, err := AmortizationSchedule(principal, annualRate, months)
	if err != nil {
		return nil, err
	}
	return &AmortizationResult{
		Summary:  Summarize(principal, annualRate, schedule),
		Schedule: schedule,
	}, nil
}
