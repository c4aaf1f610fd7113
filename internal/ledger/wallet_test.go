package ledger

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestWalletsOpenIsLazyAndIdempotent(t *testing.T) {
	ws := NewWallets(NewMemoryStore(), nil)

	if _, err := ws.Get("u1"); !errors.Is(err, ErrWalletNotFound) {
		t.Fatalf("Get() error = %v, want ErrWalletNotFound", err)
	}

	first, err := ws.Open("u1")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !strings.HasPrefix(first.Address, "0x") || len(first.Address) != 34 {
		t.Errorf("unexpected address %q", first.Address)
	}

	second, _ := ws.Open("u1")
	if second.Address != first.Address {
		t.Errorf("Open() created a second wallet: %q vs %q", second.Address, first.Address)
	}

	if _, err := ws.Open(""); !errors.Is(err, ErrMissingField) {
		t.Errorf("Open(\"\") error = %v, want ErrMissingField", err)
	}
}

func TestWalletsDepositWithdraw(t *testing.T) {
	ws := NewWallets(NewMemoryStore(), nil)
	_, _ = ws.Open("u1")

	if _, err := ws.Deposit("u1", "USD", 100); err != nil {
		t.Fatalf("Deposit() error = %v", err)
	}
	w, err := ws.Withdraw("u1", "USD", 30.25)
	if err != nil {
		t.Fatalf("Withdraw() error = %v", err)
	}
	if w.Balances["USD"] != 69.75 {
		t.Errorf("expected 69.75, got %v", w.Balances["USD"])
	}

	if _, err := ws.Withdraw("u1", "USD", 70); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Withdraw() error = %v, want ErrInsufficientFunds", err)
	}
	if _, err := ws.Deposit("u1", "USD", -5); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Deposit() error = %v, want ErrInvalidQuantity", err)
	}
	if _, err := ws.Deposit("nobody", "USD", 5); !errors.Is(err, ErrWalletNotFound) {
		t.Errorf("Deposit() error = %v, want ErrWalletNotFound", err)
	}

	log, _ := ws.Transactions("u1")
	if len(log) != 2 {
		t.Fatalf("expected 2 records, got %d", len(log))
	}
	if log[0].Type != TxDeposit || log[1].Type != TxWithdrawal || log[1].Amount != -30.25 {
		t.Errorf("unexpected records: %+v", log)
	}

	w, _ = ws.Get("u1")
	if w.Balances["USD"] != 69.75 || len(w.History) != 2 {
		t.Errorf("failed withdraw changed the wallet: %+v", w)
	}
}

func TestWalletSynchronizerFloorsAtZero(t *testing.T) {
	store := NewMemoryStore()
	ws := NewWallets(store, nil)
	_, _ = ws.Open("u1")
	sync := NewWalletSynchronizer(nil)

	_ = store.Update(func(tx Tx) error {
		sync.Credit(tx, "u1", "ETH", 1.5)
		sync.Debit(tx, "u1", "ETH", 4)
		return nil
	})

	w, _ := ws.Get("u1")
	if w.Balances["ETH"] != 0 {
		t.Errorf("expected 0, got %v", w.Balances["ETH"])
	}
	if len(w.History) != 2 || w.History[1].Amount != -1.5 {
		t.Errorf("unexpected history: %+v", w.History)
	}
}

func TestWalletsRejectNonFiniteAmounts(t *testing.T) {
	ws := NewWallets(NewMemoryStore(), nil)
	_, _ = ws.Open("u1")

	tests := []struct {
		name   string
		move   func(userID, currency string, amount float64) (Wallet, error)
		amount float64
	}{
		{"deposit NaN", ws.Deposit, math.NaN()},
		{"deposit +Inf", ws.Deposit, math.Inf(1)},
		{"withdraw NaN", ws.Withdraw, math.NaN()},
		{"withdraw -Inf", ws.Withdraw, math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.move("u1", "USD", tt.amount); !errors.Is(err, ErrInvalidQuantity) {
				t.Errorf("error = %v, want ErrInvalidQuantity", err)
			}
		})
	}

	w, _ := ws.Get("u1")
	if len(w.History) != 0 || len(w.Balances) != 0 {
		t.Errorf("rejected moves changed the wallet: %+v", w)
	}
}

func TestWalletSynchronizerSkipsNoopDebit(t *testing.T) {
	store := NewMemoryStore()
	ws := NewWallets(store, nil)
	_, _ = ws.Open("u1")
	sync := NewWalletSynchronizer(nil)

	_ = store.Update(func(tx Tx) error {
		sync.Debit(tx, "u1", "BTC", 2)
		sync.Credit(tx, "u1", "BTC", math.NaN())
		return nil
	})

	w, _ := ws.Get("u1")
	if len(w.History) != 0 {
		t.Errorf("expected no records for a debit of an empty balance, got %+v", w.History)
	}
	if log, _ := ws.Transactions("u1"); len(log) != 0 {
		t.Errorf("expected empty log, got %+v", log)
	}
}

func TestPriceBook(t *testing.T) {
	book := NewPriceBook()
	if p, err := book.Quote(Stock, "aapl"); err != nil || p != 175 {
		t.Errorf("Quote(aapl) = %v, %v", p, err)
	}
	if _, err := book.Quote(Bond, "AAPL"); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("Quote(bond AAPL) error = %v, want ErrUnknownAsset", err)
	}
	book.Set("commodity", "GOLD", 2300)
	if p, _ := book.Quote("commodity", "gold"); p != 2300 {
		t.Errorf("Quote(gold) = %v", p)
	}
}
