package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletSynchronizer отражает изменения крипто-позиций в кошельке пользователя
type WalletSynchronizer struct {
	now   func() time.Time
	newID func() string
}

// NewWalletSynchronizer создает синхронизатор
func NewWalletSynchronizer(now func() time.Time) *WalletSynchronizer {
	if now == nil {
		now = time.Now
	}
	return &WalletSynchronizer{now: now, newID: uuid.NewString}
}

// Credit зачисляет quantity на баланс символа. Без кошелька ничего не делает.
func (s *WalletSynchronizer) Credit(tx Tx, userID, symbol string, quantity float64) {
	s.apply(tx, userID, symbol, quantity)
}

// Debit списывает quantity с баланса символа, не опуская его ниже нуля
func (s *WalletSynchronizer) Debit(tx Tx, userID, symbol string, quantity float64) {
	s.apply(tx, userID, symbol, -quantity)
}

func (s *WalletSynchronizer) apply(tx Tx, userID, symbol string, delta float64) {
	w, ok := tx.Wallet(userID)
	if !ok || !utils.IsFinite(delta) {
		return
	}

	before := decimal.NewFromFloat(w.Balances[symbol])
	after := before.Add(decimal.NewFromFloat(delta))
	if after.IsNegative() {
		after = decimal.Zero
	}
	if after.Equal(before) {
		return
	}
	w.Balances[symbol] = after.InexactFloat64()

	record := TransactionRecord{
		ID:        s.newID(),
		UserID:    userID,
		Type:      TxInvestment,
		Currency:  symbol,
		Amount:    after.Sub(before).InexactFloat64(),
		Status:    StatusCompleted,
		Timestamp: s.now(),
	}
	w.History = append(w.History, record)

	tx.PutWallet(w)
	tx.AppendTransaction(record)
}

// Wallets операции с кошельками вне реестра позиций
type Wallets struct {
	store Store
	now   func() time.Time
	newID func() string
}

// NewWallets создает сервис кошельков поверх хранилища
func NewWallets(store Store, now func() time.Time) *Wallets {
	if now == nil {
		now = time.Now
	}
	return &Wallets{store: store, now: now, newID: uuid.NewString}
}

// Open возвращает кошелек пользователя, создавая его при первом обращении
func (ws *Wallets) Open(userID string) (Wallet, error) {
	if userID == "" {
		return Wallet{}, fmt.Errorf("%w: user_id", ErrMissingField)
	}

	var out Wallet
	err := ws.store.Update(func(tx Tx) error {
		if w, ok := tx.Wallet(userID); ok {
			out = w
			return nil
		}
		out = Wallet{
			UserID:    userID,
			Address:   "0x" + strings.ReplaceAll(ws.newID(), "-", ""),
			Balances:  make(map[string]float64),
			CreatedAt: ws.now(),
		}
		tx.PutWallet(out)
		return nil
	})
	return out, err
}

// Get возвращает существующий кошелек
func (ws *Wallets) Get(userID string) (Wallet, error) {
	var out Wallet
	err := ws.store.View(func(r Reader) error {
		w, ok := r.Wallet(userID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrWalletNotFound, userID)
		}
		out = w
		return nil
	})
	return out, err
}

// Deposit зачисляет средства на кошелек
func (ws *Wallets) Deposit(userID, currency string, amount float64) (Wallet, error) {
	return ws.move(userID, currency, amount, TxDeposit)
}

// Withdraw списывает средства; отрицательный остаток не допускается
func (ws *Wallets) Withdraw(userID, currency string, amount float64) (Wallet, error) {
	return ws.move(userID, currency, amount, TxWithdrawal)
}

func (ws *Wallets) move(userID, currency string, amount float64, kind string) (Wallet, error) {
	if currency == "" {
		return Wallet{}, fmt.Errorf("%w: currency", ErrMissingField)
	}
	if !utils.IsFinite(amount) || amount <= 0 {
		return Wallet{}, fmt.Errorf("%w: сумма должна быть > 0, получено %v", ErrInvalidQuantity, amount)
	}
	delta := amount
	if kind == TxWithdrawal {
		delta = -amount
	}

	var out Wallet
	err := ws.store.Update(func(tx Tx) error {
		w, ok := tx.Wallet(userID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrWalletNotFound, userID)
		}

		after := decimal.NewFromFloat(w.Balances[currency]).Add(decimal.NewFromFloat(delta))
		if after.IsNegative() {
			return fmt.Errorf("%w: %s %v", ErrInsufficientFunds, currency, w.Balances[currency])
		}
		w.Balances[currency] = after.InexactFloat64()

		record := TransactionRecord{
			ID:        ws.newID(),
			UserID:    userID,
			Type:      kind,
			Currency:  currency,
			Amount:    delta,
			Status:    StatusCompleted,
			Timestamp: ws.now(),
		}
		w.History = append(w.History, record)
		tx.PutWallet(w)
		tx.AppendTransaction(record)

		out = w
		return nil
	})
	return out, err
}

// Transactions возвращает записи журнала пользователя в порядке добавления
func (ws *Wallets) Transactions(userID string) ([]TransactionRecord, error) {
	var out []TransactionRecord
	err := ws.store.View(func(r Reader) error {
		for _, rec := range r.Transactions() {
			if rec.UserID == userID {
				out = append(out, rec)
			}
		}
		return nil
	})
	return out, err
}
