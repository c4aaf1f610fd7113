package calculations

import "testing"

func TestCompoundGrowth(t *testing.T) {
	result := CompoundGrowth(5000, 200, 1, 0.08)
	if result.FinalValue != 5234.67 {
		t.Errorf("expected final value 5234.67, got %v", result.FinalValue)
	}
	if len(result.History) != 1 || result.History[0].Month != 1 {
		t.Fatalf("unexpected history: %+v", result.History)
	}
}

func TestCompoundGrowthContributionBeforeGrowth(t *testing.T) {
	// (0 + 100) * 1.01 = 101, затем (101 + 100) * 1.01 = 203.01
	result := CompoundGrowth(0, 100, 2, 0.12)
	if result.History[0].Value != 101 {
		t.Errorf("month 1: expected 101, got %v", result.History[0].Value)
	}
	if result.FinalValue != 203.01 {
		t.Errorf("month 2: expected 203.01, got %v", result.FinalValue)
	}
}

func TestCompoundGrowthNonDecreasing(t *testing.T) {
	cases := []struct {
		balance      float64
		contribution float64
		months       int
		apy          float64
	}{
		{0, 0, 12, 0},
		{1000, 0, 120, 0.05},
		{0, 50, 36, 0},
		{25000, 500, 240, 0.07},
		{10, 1, 600, 0.3},
	}

	for _, c := range cases {
		result := CompoundGrowth(c.balance, c.contribution, c.months, c.apy)
		if len(result.History) != c.months {
			t.Errorf("expected %d entries, got %d", c.months, len(result.History))
		}
		prev := c.balance
		for _, p := range result.History {
			if p.Value < prev-0.005 {
				t.Errorf("%+v: month %d decreased from %v to %v", c, p.Month, prev, p.Value)
			}
			prev = p.Value
		}
		if c.months > 0 && result.FinalValue != result.History[c.months-1].Value {
			t.Errorf("final value %v differs from last entry", result.FinalValue)
		}
	}
}

func TestCompoundGrowthZeroMonths(t *testing.T) {
	result := CompoundGrowth(1234.567, 100, 0, 0.05)
	if len(result.History) != 0 {
		t.Errorf("expected empty history, got %d entries", len(result.History))
	}
	if result.FinalValue != 1234.57 {
		t.Errorf("expected final value 1234.57, got %v", result.FinalValue)
	}
}

func TestProjectAccount(t *testing.T) {
	account := CompoundingAccount{Balance: 5000, MonthlyContribution: 200, APY: 0.08}
	if got := ProjectAccount(account, 1).FinalValue; got != 5234.67 {
		t.Errorf("expected 5234.67, got %v", got)
	}
}

func TestPortfolioGrowth(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		months  int
		weights AllocationWeights
		want    float64
	}{
		{
			name:    "all stocks one month",
			start:   10000,
			months:  1,
			weights: AllocationWeights{Stocks: 1},
			want:    10060,
		},
		{
			name:    "all crypto one month",
			start:   10000,
			months:  1,
			weights: AllocationWeights{Crypto: 1},
			want:    10150,
		},
		{
			name:    "mixed one month",
			start:   10000,
			months:  1,
			weights: ModerateAllocation,
			// 10000*(0.4*0.006 + 0.4*0.002 + 0.15*0.003 + 0.05*0.015) = 44
			want: 10044,
		},
		{
			name:    "weights are not normalized",
			start:   1000,
			months:  1,
			weights: AllocationWeights{Stocks: 2},
			want:    1012,
		},
		{
			name:    "no months",
			start:   1000,
			months:  0,
			weights: AggressiveAllocation,
			want:    1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PortfolioGrowth(tt.start, tt.months, tt.weights)
			if got.FinalValue != tt.want {
				t.Errorf("PortfolioGrowth() final = %v, want %v", got.FinalValue, tt.want)
			}
			if len(got.History) != tt.months {
				t.Errorf("expected %d entries, got %d", tt.months, len(got.History))
			}
		})
	}
}

func TestPortfolioGrowthCompounds(t *testing.T) {
	result := PortfolioGrowth(10000, 2, AllocationWeights{Stocks: 1})
	// 10000 * 1.006^2 = 10120.36
	if result.FinalValue != 10120.36 {
		t.Errorf("expected 10120.36, got %v", result.FinalValue)
	}
}
