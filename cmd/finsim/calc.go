package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/calculations"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/config"
	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/validators"
	"github.com/google/subcommands"
)

var stdout io.Writer = os.Stdout

type amortizeCmd struct {
	principal float64
	rate      float64
	months    int
	currency  string
}

func (*amortizeCmd) Name() string     { return "amortize" }
func (*amortizeCmd) Synopsis() string { return "print a fixed-payment amortization schedule" }
func (*amortizeCmd) Usage() string {
	return `finsim amortize -principal <amount> -rate <annual> -months <n>

  Prints every installment with its interest and principal split and the
  remaining balance. The rate is a fraction, 0.18 means 18% a year.
`
}

func (c *amortizeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "Loan principal.")
	f.Float64Var(&c.rate, "rate", 0, "Annual interest rate as a fraction.")
	f.IntVar(&c.months, "months", 12, "Number of monthly installments.")
	f.StringVar(&c.currency, "currency", "USD", "Currency code used for display.")
}

func (c *amortizeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Default()
	for _, check := range []error{
		validators.CheckPrincipal(cfg, c.principal),
		validators.CheckRate(cfg, c.rate),
		validators.CheckMonths(cfg, c.months),
	} {
		if check != nil {
			fmt.Fprintln(os.Stderr, check)
			return subcommands.ExitUsageError
		}
	}

	result, err := calculations.Amortize(c.principal, c.rate, c.months)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printSchedule(stdout, result, c.currency)
	return subcommands.ExitSuccess
}

func printSchedule(w io.Writer, result *calculations.AmortizationResult, currency string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tPayment\tInterest\tPrincipal\tBalance\t")
	for _, row := range result.Schedule {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			row.Index,
			formatMoney(row.Payment, currency),
			formatMoney(row.Interest, currency),
			formatMoney(row.Principal, currency),
			formatMoney(row.Balance, currency),
		)
	}
	tw.Flush()

	s := result.Summary
	fmt.Fprintf(w, "\nMonthly payment: %s\nTotal paid:      %s\nTotal interest:  %s\n",
		formatMoney(s.MonthlyPayment, currency),
		formatMoney(s.TotalPaid, currency),
		formatMoney(s.TotalInterest, currency),
	)
}

type compoundCmd struct {
	balance      float64
	contribution float64
	months       int
	apy          float64
	currency     string
	history      bool
}

func (*compoundCmd) Name() string     { return "compound" }
func (*compoundCmd) Synopsis() string { return "project a savings balance with monthly contributions" }
func (*compoundCmd) Usage() string {
	return `finsim compound -balance <amount> -contribution <amount> -months <n> -apy <rate>

  Each month the contribution is added first, then the balance grows by apy/12.
`
}

func (c *compoundCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.balance, "balance", 0, "Starting balance.")
	f.Float64Var(&c.contribution, "contribution", 0, "Monthly contribution.")
	f.IntVar(&c.months, "months", 12, "Projection horizon in months.")
	f.Float64Var(&c.apy, "apy", 0, "Annual percentage yield as a fraction.")
	f.StringVar(&c.currency, "currency", "USD", "Currency code used for display.")
	f.BoolVar(&c.history, "history", false, "Print the value after every month.")
}

func (c *compoundCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Default()
	for _, check := range []error{
		validators.CheckInitialAmount(cfg, c.balance),
		validators.CheckContribution(cfg, c.contribution),
		validators.CheckHorizon(cfg, c.months),
		validators.CheckRate(cfg, c.apy),
	} {
		if check != nil {
			fmt.Fprintln(os.Stderr, check)
			return subcommands.ExitUsageError
		}
	}

	result := calculations.CompoundGrowth(c.balance, c.contribution, c.months, c.apy)
	if c.history {
		for _, p := range result.History {
			fmt.Fprintf(stdout, "%4d  %s\n", p.Month, formatMoney(p.Value, c.currency))
		}
	}
	fmt.Fprintf(stdout, "Final value: %s\n", formatMoney(result.FinalValue, c.currency))
	return subcommands.ExitSuccess
}

type creditCmd struct {
	profile calculations.CreditProfile
	amount  float64
}

func (*creditCmd) Name() string     { return "credit" }
func (*creditCmd) Synopsis() string { return "score a credit profile and optionally a loan request" }
func (*creditCmd) Usage() string {
	return `finsim credit -income <n> -debts <n> -assets <n> -expenses <n> [-amount <loan>]
`
}

func (c *creditCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.profile.Income, "income", 0, "Monthly income.")
	f.Float64Var(&c.profile.Debts, "debts", 0, "Outstanding debts.")
	f.Float64Var(&c.profile.Assets, "assets", 0, "Total assets.")
	f.Float64Var(&c.profile.Expenses, "expenses", 0, "Monthly expenses.")
	f.Float64Var(&c.amount, "amount", 0, "Requested loan amount; 0 skips the approval check.")
}

func (c *creditCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	result, err := calculations.CreditScore(c.profile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(stdout, "Score: %d\nProbability of default: %s\nEligible: %t\n",
		result.Score, formatPercent(result.ProbabilityOfDefault), result.Eligible)

	if c.amount > 0 {
		decision := calculations.LoanApproval(c.amount, c.profile.Income, result.Score)
		fmt.Fprintf(stdout, "Loan %s: approved=%t (probability %s)\n",
			formatMoney(c.amount, "USD"), decision.Approved, formatPercent(decision.ApprovalProbability))
	}
	return subcommands.ExitSuccess
}

type allocateCmd struct {
	score float64
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "map a 0-100 risk score to portfolio weights" }
func (*allocateCmd) Usage() string {
	return `finsim allocate -score <0..100>
`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.score, "score", 50, "Risk appetite score; values outside 0..100 are clamped.")
}

func (c *allocateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w := calculations.RiskToAllocation(c.score)
	fmt.Fprintf(stdout, "stocks       %s\nbonds        %s\nreal estate  %s\ncrypto       %s\n",
		formatPercent(w.Stocks), formatPercent(w.Bonds), formatPercent(w.RealEstate), formatPercent(w.Crypto))
	return subcommands.ExitSuccess
}
