package ledger

import "time"

// AssetClass класс инвестиционного актива
type AssetClass string

const (
	Stock  AssetClass = "stock"
	Bond   AssetClass = "bond"
	Crypto AssetClass = "crypto"
)

// Valid сообщает, поддерживается ли класс актива
func (c AssetClass) Valid() bool {
	switch c {
	case Stock, Bond, Crypto:
		return true
	}
	return false
}

// Position одна строка реестра: количество актива и его средняя цена.
// Для акций Quantity хранит число бумаг, для облигаций и крипты сумму или количество единиц.
type Position struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	AssetClass   AssetClass `json:"asset_class"`
	Symbol       string     `json:"symbol"`
	Quantity     float64    `json:"quantity"`
	AvgPrice     float64    `json:"avg_price"`
	CurrentPrice float64    `json:"current_price"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MarketValue текущая стоимость позиции
func (p Position) MarketValue() float64 {
	return p.Quantity * p.CurrentPrice
}

// Типы и статусы записей журнала
const (
	TxInvestment = "investment"
	TxDeposit    = "deposit"
	TxWithdrawal = "withdrawal"

	StatusCompleted = "completed"
)

// TransactionRecord запись журнала операций, после создания не меняется
type TransactionRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Currency  string    `json:"currency"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Wallet кошелек пользователя с балансами по валютам
type Wallet struct {
	UserID    string              `json:"user_id"`
	Address   string              `json:"address"`
	Balances  map[string]float64  `json:"balances"`
	History   []TransactionRecord `json:"history"`
	CreatedAt time.Time           `json:"created_at"`
}

// Clone возвращает независимую копию кошелька
func (w Wallet) Clone() Wallet {
	out := w
	out.Balances = make(map[string]float64, len(w.Balances))
	for k, v := range w.Balances {
		out.Balances[k] = v
	}
	out.History = append([]TransactionRecord(nil), w.History...)
	return out
}
