package main

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func execute(t *testing.T, cmd subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd.Execute(context.Background(), fs), buf.String()
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{137.52, "$137.52"},
		{5234.666, "$5,234.67"},
		{0, "$0.00"},
	}
	for _, tt := range tests {
		if got := formatMoney(tt.value, "USD"); got != tt.want {
			t.Errorf("formatMoney(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestAmortizeCmd(t *testing.T) {
	status, out := execute(t, &amortizeCmd{}, "-principal", "1500", "-rate", "0.18", "-months", "12")
	if status != subcommands.ExitSuccess {
		t.Fatalf("expected success, got %v", status)
	}
	if !strings.Contains(out, "Monthly payment: $137.52") {
		t.Errorf("expected monthly payment in output:\n%s", out)
	}
}

func TestAmortizeCmd_InvalidPrincipal(t *testing.T) {
	status, _ := execute(t, &amortizeCmd{}, "-principal", "0", "-rate", "0.18")
	if status != subcommands.ExitUsageError {
		t.Errorf("expected usage error, got %v", status)
	}
}

func TestCompoundCmd(t *testing.T) {
	status, out := execute(t, &compoundCmd{}, "-balance", "5000", "-contribution", "200", "-months", "1", "-apy", "0.08")
	if status != subcommands.ExitSuccess {
		t.Fatalf("expected success, got %v", status)
	}
	if !strings.Contains(out, "Final value: $5,234.67") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCreditCmd(t *testing.T) {
	status, out := execute(t, &creditCmd{}, "-income", "3000", "-debts", "500", "-assets", "10000", "-expenses", "1200")
	if status != subcommands.ExitSuccess {
		t.Fatalf("expected success, got %v", status)
	}
	for _, want := range []string{"Score: 540", "Probability of default: 56%", "Eligible: false"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestAllocateCmd(t *testing.T) {
	status, out := execute(t, &allocateCmd{}, "-score", "90")
	if status != subcommands.ExitSuccess {
		t.Fatalf("expected success, got %v", status)
	}
	if !strings.Contains(out, "crypto       15%") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
