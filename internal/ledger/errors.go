package ledger

import "errors"

var (
	ErrMissingField      = errors.New("не заполнено обязательное поле")
	ErrSharesRequired    = errors.New("для акций требуется количество бумаг")
	ErrPositionNotFound  = errors.New("позиция не найдена")
	ErrInvalidQuantity   = errors.New("некорректное количество")
	ErrUnknownAsset      = errors.New("неизвестный актив")
	ErrWalletNotFound    = errors.New("кошелек не найден")
	ErrInsufficientFunds = errors.New("недостаточно средств")
)
