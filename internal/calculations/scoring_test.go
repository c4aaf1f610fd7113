package calculations

import (
	"errors"
	"testing"
)

func TestCreditScore(t *testing.T) {
	tests := []struct {
		name    string
		profile CreditProfile
		want    CreditScoreResult
		wantErr error
	}{
		{
			name:    "thin margin profile",
			profile: CreditProfile{Income: 3000, Debts: 500, Assets: 10000, Expenses: 1200},
			want:    CreditScoreResult{Score: 540, ProbabilityOfDefault: 0.56, Eligible: false},
		},
		{
			name:    "strong profile clamps at max",
			profile: CreditProfile{Income: 10000, Debts: 0, Assets: 500000, Expenses: 0},
			want:    CreditScoreResult{Score: 850, ProbabilityOfDefault: 0, Eligible: true},
		},
		{
			name:    "overleveraged profile clamps at min",
			profile: CreditProfile{Income: 1000, Debts: 5000, Assets: 0, Expenses: 2000},
			want:    CreditScoreResult{Score: 300, ProbabilityOfDefault: 1, Eligible: false},
		},
		{
			name:    "zero income guarded",
			profile: CreditProfile{Income: 0, Debts: 0, Assets: 0, Expenses: 0},
			want:    CreditScoreResult{Score: 700, ProbabilityOfDefault: 0.27, Eligible: true},
		},
		{
			name:    "negative debts rejected",
			profile: CreditProfile{Income: 1000, Debts: -1},
			wantErr: ErrInvalidCreditProfile,
		},
		{
			name:    "negative income rejected",
			profile: CreditProfile{Income: -1},
			wantErr: ErrInvalidCreditProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreditScore(tt.profile)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreditScore() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("CreditScore() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCreditScoreBounds(t *testing.T) {
	values := []float64{0, 1, 250, 1000, 3333, 12000, 250000, 1e7}
	for _, income := range values {
		for _, debts := range values {
			for _, assets := range values {
				p := CreditProfile{Income: income, Debts: debts, Assets: assets, Expenses: debts / 2}
				got, err := CreditScore(p)
				if err != nil {
					t.Fatalf("CreditScore(%+v) error = %v", p, err)
				}
				if got.Score < MinCreditScore || got.Score > MaxCreditScore {
					t.Errorf("CreditScore(%+v) score %d out of range", p, got.Score)
				}
				if got.ProbabilityOfDefault < 0 || got.ProbabilityOfDefault > 1 {
					t.Errorf("CreditScore(%+v) pd %v out of range", p, got.ProbabilityOfDefault)
				}
				if got.Eligible != (got.Score >= EligibleCreditScore) {
					t.Errorf("CreditScore(%+v) eligibility mismatch", p)
				}
			}
		}
	}
}

func TestLoanApproval(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		income      float64
		creditScore int
		want        LoanDecision
	}{
		{"prime affordable", 10000, 6000, 720, LoanDecision{Approved: true, ApprovalProbability: 1}},
		{"prime stretched", 10000, 4000, 700, LoanDecision{Approved: true, ApprovalProbability: 0.95}},
		{"prime unaffordable", 10000, 1000, 750, LoanDecision{Approved: true, ApprovalProbability: 0.75}},
		{"near prime affordable", 10000, 6000, 650, LoanDecision{Approved: true, ApprovalProbability: 0.8}},
		{"near prime unaffordable", 10000, 1000, 620, LoanDecision{Approved: false, ApprovalProbability: 0.5}},
		{"subprime affordable", 10000, 6000, 550, LoanDecision{Approved: false, ApprovalProbability: 0.45}},
		{"subprime unaffordable", 10000, 1000, 400, LoanDecision{Approved: false, ApprovalProbability: 0.15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LoanApproval(tt.amount, tt.income, tt.creditScore)
			if got != tt.want {
				t.Errorf("LoanApproval() = %+v, want %+v", got, tt.want)
			}
			if again := LoanApproval(tt.amount, tt.income, tt.creditScore); again != got {
				t.Errorf("LoanApproval() not deterministic: %+v vs %+v", got, again)
			}
		})
	}
}

func TestRiskToAllocation(t *testing.T) {
	tests := []struct {
		score float64
		want  AllocationWeights
	}{
		{-10, ConservativeAllocation},
		{0, ConservativeAllocation},
		{24.9, ConservativeAllocation},
		{25, ModerateAllocation},
		{49, ModerateAllocation},
		{50, GrowthAllocation},
		{74.99, GrowthAllocation},
		{75, AggressiveAllocation},
		{100, AggressiveAllocation},
		{250, AggressiveAllocation},
	}

	for _, tt := range tests {
		got := RiskToAllocation(tt.score)
		if got != tt.want {
			t.Errorf("RiskToAllocation(%v) = %+v, want %+v", tt.score, got, tt.want)
		}
	}
}

func TestAllocationTiersSumToOne(t *testing.T) {
	tiers := map[string]AllocationWeights{
		"conservative": ConservativeAllocation,
		"moderate":     ModerateAllocation,
		"growth":       GrowthAllocation,
		"aggressive":   AggressiveAllocation,
	}
	for name, w := range tiers {
		if w.Sum() != 1.0 {
			t.Errorf("%s weights sum to %v", name, w.Sum())
		}
	}
}
