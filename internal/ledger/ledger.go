package ledger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BuyRequest параметры покупки.
// Quantity: число бумаг для акций, сумма или количество единиц для облигаций и крипты.
// Нулевая PricePerUnit означает цену из справочника.
type BuyRequest struct {
	UserID       string
	AssetClass   AssetClass
	Symbol       string
	Quantity     *float64
	PricePerUnit float64
}

// SellRequest параметры продажи
type SellRequest struct {
	UserID     string
	PositionID string
	Quantity   *float64
}

// Ledger единственный источник изменений инвестиционных позиций
type Ledger struct {
	store  Store
	prices PriceSource
	sync   *WalletSynchronizer
	merge  bool
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option настраивает Ledger
type Option func(*Ledger)

// WithPrices задает справочник цен для покупок без явной цены
func WithPrices(p PriceSource) Option {
	return func(l *Ledger) { l.prices = p }
}

// WithMergeBySymbol включает слияние покупок в существующую позицию того же символа
func WithMergeBySymbol(merge bool) Option {
	return func(l *Ledger) { l.merge = merge }
}

// WithClock подменяет источник времени
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

// New создает реестр поверх хранилища
func New(store Store, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.sync = NewWalletSynchronizer(l.now)
	return l
}

// Buy открывает новую позицию (или пополняет существующую при включенном слиянии)
func (l *Ledger) Buy(req BuyRequest) (Position, error) {
	quantity, price, err := l.validateBuy(req)
	if err != nil {
		l.logger.Warn("buy rejected", "user_id", req.UserID, "asset_class", req.AssetClass,
			"symbol", req.Symbol, "error", err)
		return Position{}, err
	}

	var out Position
	err = l.store.Update(func(tx Tx) error {
		now := l.now()

		if existing, ok := l.mergeTarget(tx, req); ok {
			total := decimal.NewFromFloat(existing.Quantity).Add(quantity)
			cost := decimal.NewFromFloat(existing.AvgPrice).Mul(decimal.NewFromFloat(existing.Quantity)).
				Add(price.Mul(quantity))
			existing.Quantity = total.InexactFloat64()
			existing.AvgPrice = cost.Div(total).InexactFloat64()
			existing.CurrentPrice = price.InexactFloat64()
			existing.UpdatedAt = now
			out = existing
		} else {
			out = Position{
				ID:           l.newID(),
				UserID:       req.UserID,
				AssetClass:   req.AssetClass,
				Symbol:       req.Symbol,
				Quantity:     quantity.InexactFloat64(),
				AvgPrice:     price.InexactFloat64(),
				CurrentPrice: price.InexactFloat64(),
				CreatedAt:    now,
				UpdatedAt:    now,
			}
		}
		tx.PutPosition(out)

		if req.AssetClass == Crypto {
			l.sync.Credit(tx, req.UserID, req.Symbol, quantity.InexactFloat64())
		}
		return nil
	})
	if err != nil {
		return Position{}, err
	}

	l.logger.Debug("position bought", "user_id", out.UserID, "position_id", out.ID,
		"asset_class", out.AssetClass, "symbol", out.Symbol, "quantity", out.Quantity)
	return out, nil
}

func (l *Ledger) validateBuy(req BuyRequest) (decimal.Decimal, decimal.Decimal, error) {
	switch {
	case req.UserID == "":
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: user_id", ErrMissingField)
	case req.AssetClass == "":
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: asset_class", ErrMissingField)
	case req.Symbol == "":
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: symbol", ErrMissingField)
	case !req.AssetClass.Valid():
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: класс %q", ErrUnknownAsset, req.AssetClass)
	}

	if req.Quantity == nil {
		if req.AssetClass == Stock {
			return decimal.Zero, decimal.Zero, ErrSharesRequired
		}
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: quantity", ErrMissingField)
	}
	if !utils.IsFinite(*req.Quantity) || *req.Quantity <= 0 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidQuantity, *req.Quantity)
	}

	price := req.PricePerUnit
	if !utils.IsFinite(price) || price < 0 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: цена %v", ErrInvalidQuantity, price)
	}
	if price == 0 {
		if l.prices == nil {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: нет цены для %s/%s", ErrUnknownAsset, req.AssetClass, req.Symbol)
		}
		quote, err := l.prices.Quote(req.AssetClass, req.Symbol)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		if !utils.IsFinite(quote) || quote <= 0 {
			return decimal.Zero, decimal.Zero, fmt.Errorf("%w: некорректная котировка %v для %s/%s", ErrUnknownAsset, quote, req.AssetClass, req.Symbol)
		}
		price = quote
	}

	return decimal.NewFromFloat(*req.Quantity), decimal.NewFromFloat(price), nil
}

func (l *Ledger) mergeTarget(tx Tx, req BuyRequest) (Position, bool) {
	if !l.merge {
		return Position{}, false
	}
	for _, p := range tx.Positions(req.UserID) {
		if p.AssetClass == req.AssetClass && p.Symbol == req.Symbol {
			return p, true
		}
	}
	return Position{}, false
}

// Sell закрывает часть позиции. Возвращает nil, если позиция продана полностью.
func (l *Ledger) Sell(req SellRequest) (*Position, error) {
	var out *Position
	err := l.store.Update(func(tx Tx) error {
		pos, ok := tx.Position(req.UserID, req.PositionID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrPositionNotFound, req.PositionID)
		}
		if req.Quantity == nil {
			return fmt.Errorf("%w: quantity не задано", ErrInvalidQuantity)
		}
		if !utils.IsFinite(*req.Quantity) {
			return fmt.Errorf("%w: %v", ErrInvalidQuantity, *req.Quantity)
		}

		sold := decimal.NewFromFloat(*req.Quantity)
		held := decimal.NewFromFloat(pos.Quantity)
		if !sold.IsPositive() || sold.GreaterThan(held) {
			return fmt.Errorf("%w: продажа %v при остатке %v", ErrInvalidQuantity, *req.Quantity, pos.Quantity)
		}

		if pos.AssetClass == Crypto {
			l.sync.Debit(tx, req.UserID, pos.Symbol, sold.InexactFloat64())
		}

		if sold.Equal(held) {
			tx.DeletePosition(req.UserID, req.PositionID)
			return nil
		}

		remaining := held.Sub(sold)
		if pos.AssetClass == Stock {
			// цена проданного лота вмешивается в среднюю оставшихся бумаг
			avg := decimal.NewFromFloat(pos.AvgPrice).Mul(remaining).
				Add(decimal.NewFromFloat(pos.CurrentPrice).Mul(sold)).
				Div(remaining.Add(sold))
			pos.AvgPrice = avg.InexactFloat64()
		}
		pos.Quantity = remaining.InexactFloat64()
		pos.UpdatedAt = l.now()
		tx.PutPosition(pos)

		out = &pos
		return nil
	})
	if err != nil {
		l.logger.Warn("sell rejected", "user_id", req.UserID, "position_id", req.PositionID, "error", err)
		return nil, err
	}

	l.logger.Debug("position sold", "user_id", req.UserID, "position_id", req.PositionID,
		"quantity", *req.Quantity, "liquidated", out == nil)
	return out, nil
}

// Position возвращает позицию пользователя
func (l *Ledger) Position(userID, positionID string) (Position, error) {
	var out Position
	err := l.store.View(func(r Reader) error {
		p, ok := r.Position(userID, positionID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrPositionNotFound, positionID)
		}
		out = p
		return nil
	})
	return out, err
}

// Positions возвращает все позиции пользователя в порядке открытия
func (l *Ledger) Positions(userID string) ([]Position, error) {
	var out []Position
	err := l.store.View(func(r Reader) error {
		out = r.Positions(userID)
		return nil
	})
	return out, err
}

// Revalue обновляет текущие цены всех позиций пользователя.
// Если хотя бы один актив не котируется, ничего не меняется.
func (l *Ledger) Revalue(userID string, prices PriceSource) ([]Position, error) {
	if prices == nil {
		prices = l.prices
	}
	if prices == nil {
		return nil, fmt.Errorf("%w: справочник цен не задан", ErrUnknownAsset)
	}

	var out []Position
	err := l.store.Update(func(tx Tx) error {
		now := l.now()
		for _, p := range tx.Positions(userID) {
			quote, err := prices.Quote(p.AssetClass, p.Symbol)
			if err != nil {
				return err
			}
			if !utils.IsFinite(quote) || quote < 0 {
				return fmt.Errorf("%w: некорректная котировка %v для %s/%s", ErrUnknownAsset, quote, p.AssetClass, p.Symbol)
			}
			p.CurrentPrice = quote
			p.UpdatedAt = now
			tx.PutPosition(p)
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
