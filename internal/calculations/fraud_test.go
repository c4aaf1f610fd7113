package calculations

import (
	"reflect"
	"testing"
)

func TestEvaluateFraudRules(t *testing.T) {
	tests := []struct {
		name         string
		transactions []TransactionSample
		want         []FraudAlert
	}{
		{
			name:         "large abroad transaction fires two rules",
			transactions: []TransactionSample{{ID: "tx-1", Amount: 15000, Country: "abroad", Retries: 0}},
			want: []FraudAlert{
				{Level: AlertHigh, Message: "Large transaction detected", TxID: "tx-1"},
				{Level: AlertMedium, Message: "Abroad transaction > $2k", TxID: "tx-1"},
			},
		},
		{
			name:         "all three rules",
			transactions: []TransactionSample{{ID: "tx-2", Amount: 20000, Country: "abroad", Retries: 5}},
			want: []FraudAlert{
				{Level: AlertHigh, Message: "Large transaction detected", TxID: "tx-2"},
				{Level: AlertMedium, Message: "Abroad transaction > $2k", TxID: "tx-2"},
				{Level: AlertLow, Message: "Multiple retries", TxID: "tx-2"},
			},
		},
		{
			name:         "clean home transaction",
			transactions: []TransactionSample{{ID: "tx-3", Amount: 9000, Country: HomeCountry, Retries: 3}},
			want:         []FraudAlert{},
		},
		{
			name: "input order preserved",
			transactions: []TransactionSample{
				{ID: "a", Amount: 100, Country: HomeCountry, Retries: 4},
				{ID: "b", Amount: 2500, Country: "abroad"},
				{ID: "c", Amount: 10001, Country: HomeCountry},
			},
			want: []FraudAlert{
				{Level: AlertLow, Message: "Multiple retries", TxID: "a"},
				{Level: AlertMedium, Message: "Abroad transaction > $2k", TxID: "b"},
				{Level: AlertHigh, Message: "Large transaction detected", TxID: "c"},
			},
		},
		{
			name:         "thresholds are exclusive",
			transactions: []TransactionSample{{ID: "edge", Amount: 10000, Country: "abroad", Retries: 3}},
			want: []FraudAlert{
				{Level: AlertMedium, Message: "Abroad transaction > $2k", TxID: "edge"},
			},
		},
		{
			name: "empty input",
			want: []FraudAlert{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateFraudRules(tt.transactions)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EvaluateFraudRules() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEvaluateRulesCustom(t *testing.T) {
	rules := []FraudRule{{
		Name:    "round_amount",
		Level:   AlertLow,
		Message: "Round amount",
		Match:   func(tx TransactionSample) bool { return tx.Amount == 1000 },
	}}
	got := EvaluateRules(rules, []TransactionSample{{ID: "x", Amount: 1000}, {ID: "y", Amount: 999}})
	if len(got) != 1 || got[0].TxID != "x" {
		t.Errorf("EvaluateRules() = %+v", got)
	}
}
