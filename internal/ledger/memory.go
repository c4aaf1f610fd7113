package ledger

import "sync"

// MemoryStore хранит реестр в памяти процесса под одной блокировкой
type MemoryStore struct {
	mu        sync.RWMutex
	positions map[string][]Position
	wallets   map[string]Wallet
	log       []TransactionRecord
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		positions: make(map[string][]Position),
		wallets:   make(map[string]Wallet),
	}
}

// View выполняет fn на согласованном снимке
func (s *MemoryStore) View(fn func(r Reader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&memTx{store: s})
}

// Update выполняет fn на промежуточной транзакции и фиксирует ее при успехе
func (s *MemoryStore) Update(fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		store:     s,
		positions: make(map[string][]Position),
		wallets:   make(map[string]Wallet),
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// memTx накапливает изменения поверх хранилища (copy-on-write по пользователю)
type memTx struct {
	store     *MemoryStore
	positions map[string][]Position
	wallets   map[string]Wallet
	log       []TransactionRecord
}

func (t *memTx) userPositions(userID string) []Position {
	if ps, ok := t.positions[userID]; ok {
		return ps
	}
	return t.store.positions[userID]
}

func (t *memTx) Position(userID, positionID string) (Position, bool) {
	for _, p := range t.userPositions(userID) {
		if p.ID == positionID {
			return p, true
		}
	}
	return Position{}, false
}

func (t *memTx) Positions(userID string) []Position {
	return append([]Position(nil), t.userPositions(userID)...)
}

func (t *memTx) Wallet(userID string) (Wallet, bool) {
	if w, ok := t.wallets[userID]; ok {
		return w.Clone(), true
	}
	w, ok := t.store.wallets[userID]
	if !ok {
		return Wallet{}, false
	}
	return w.Clone(), true
}

func (t *memTx) Transactions() []TransactionRecord {
	out := make([]TransactionRecord, 0, len(t.store.log)+len(t.log))
	out = append(out, t.store.log...)
	return append(out, t.log...)
}

func (t *memTx) PutPosition(p Position) {
	ps := t.Positions(p.UserID)
	for i := range ps {
		if ps[i].ID == p.ID {
			ps[i] = p
			t.positions[p.UserID] = ps
			return
		}
	}
	t.positions[p.UserID] = append(ps, p)
}

func (t *memTx) DeletePosition(userID, positionID string) {
	current := t.userPositions(userID)
	ps := make([]Position, 0, len(current))
	for _, p := range current {
		if p.ID != positionID {
			ps = append(ps, p)
		}
	}
	t.positions[userID] = ps
}

func (t *memTx) PutWallet(w Wallet) {
	t.wallets[w.UserID] = w.Clone()
}

func (t *memTx) AppendTransaction(r TransactionRecord) {
	t.log = append(t.log, r)
}

func (t *memTx) commit() {
	for userID, ps := range t.positions {
		if len(ps) == 0 {
			delete(t.store.positions, userID)
			continue
		}
		t.store.positions[userID] = ps
	}
	for userID, w := range t.wallets {
		t.store.wallets[userID] = w
	}
	t.store.log = append(t.store.log, t.log...)
}
