package calculations

import "errors"

var (
	// ErrInvalidLoanTerms возвращается при неположительной сумме или сроке кредита
	ErrInvalidLoanTerms = errors.New("некорректные условия кредита")
	// ErrInvalidCreditProfile возвращается при отрицательных полях профиля
	ErrInvalidCreditProfile = errors.New("некорректный кредитный профиль")
)
