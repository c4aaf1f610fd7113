package main

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatMoney печатает сумму в основной валюте с учетом разрядности валюты
func formatMoney(v float64, currency string) string {
	cur := *money.New(0, currency).Currency()
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

func formatPercent(v float64) string {
	return decimal.NewFromFloat(v).Shift(2).Round(2).String() + "%"
}
