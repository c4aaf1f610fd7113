package ledger

import (
	"fmt"
	"strings"
	"sync"
)

// PriceSource отдает цену единицы актива
type PriceSource interface {
	Quote(class AssetClass, symbol string) (float64, error)
}

// PriceBook фиксированные котировки демо-окружения
type PriceBook struct {
	mu     sync.RWMutex
	quotes map[AssetClass]map[string]float64
}

// NewPriceBook создает справочник с котировками по умолчанию
func NewPriceBook() *PriceBook {
	return &PriceBook{
		quotes: map[AssetClass]map[string]float64{
			Stock: {
				"AAPL":  175,
				"MSFT":  410,
				"GOOGL": 140,
				"AMZN":  180,
				"TSLA":  240,
				"NVDA":  880,
			},
			Bond: {
				"US10Y": 1,
				"US2Y":  1,
				"CORP":  1,
			},
			Crypto: {
				"BTC": 65000,
				"ETH": 3200,
				"SOL": 150,
			},
		},
	}
}

// Quote возвращает котировку или ErrUnknownAsset
func (b *PriceBook) Quote(class AssetClass, symbol string) (float64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	price, ok := b.quotes[class][strings.ToUpper(symbol)]
	if !ok {
		return 0, fmt.Errorf("%w: %s/%s", ErrUnknownAsset, class, symbol)
	}
	return price, nil
}

// Set задает котировку
func (b *PriceBook) Set(class AssetClass, symbol string, price float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.quotes[class] == nil {
		b.quotes[class] = make(map[string]float64)
	}
	b.quotes[class][strings.ToUpper(symbol)] = price
}
