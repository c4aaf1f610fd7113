package ledger

// Reader доступ на чтение к позициям, кошелькам и журналу
type Reader interface {
	Position(userID, positionID string) (Position, bool)
	Positions(userID string) []Position
	Wallet(userID string) (Wallet, bool)
	Transactions() []TransactionRecord
}

// Tx набор изменений, применяемых вместе или не применяемых вовсе
type Tx interface {
	Reader
	PutPosition(p Position)
	DeletePosition(userID, positionID string)
	PutWallet(w Wallet)
	AppendTransaction(r TransactionRecord)
}

// Store хранилище реестра. Update фиксирует изменения, только если fn вернула nil.
type Store interface {
	View(fn func(r Reader) error) error
	Update(fn func(tx Tx) error) error
}
