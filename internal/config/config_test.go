package config

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.SavingsNumber != "S123" || cfg.SavingsHolder != "Mark Ke" {
		t.Fatalf("savings defaults: %+v", cfg)
	}
	if cfg.CurrentNumber != "C456" || cfg.CurrentHolder != "Ginny Ke" {
		t.Fatalf("current defaults: %+v", cfg)
	}
	if cfg.TransferMode != ModeDebit || cfg.ApplyInterest || cfg.StatementPath != "" {
		t.Fatalf("script defaults: %+v", cfg)
	}

	a, err := cfg.Amounts()
	if err != nil {
		t.Fatal(err)
	}
	checks := map[string][2]decimal.Decimal{
		"savings balance": {a.SavingsBalance, decimal.NewFromInt(100000)},
		"interest rate":   {a.InterestRate, decimal.RequireFromString("0.02")},
		"current balance": {a.CurrentBalance, decimal.NewFromInt(500000)},
		"overdraft limit": {a.OverdraftLimit, decimal.NewFromInt(500)},
		"deposit":         {a.Deposit, decimal.NewFromInt(500)},
		"withdraw":        {a.Withdraw, decimal.NewFromInt(1000)},
		"transfer":        {a.Transfer, decimal.NewFromInt(300)},
	}
	for name, c := range checks {
		if !c[0].Equal(c[1]) {
			t.Errorf("%s=%s want=%s", name, c[0], c[1])
		}
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{"-mode", "transfer", "-interest", "-statement", "out.json"})
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.TransferMode != ModeTransfer || !cfg.ApplyInterest || cfg.StatementPath != "out.json" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestLoadEnvOverridesFlags(t *testing.T) {
	t.Setenv("TRANSFER_MODE", "Transfer")
	t.Setenv("SAVINGS_HOLDER", "Ada")
	t.Setenv("CURRENT_OVERDRAFT_LIMIT", "750.50")

	cfg, err := Load([]string{"-mode", "debit"})
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.TransferMode != ModeTransfer || cfg.SavingsHolder != "Ada" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	a, _ := cfg.Amounts()
	if !a.OverdraftLimit.Equal(decimal.RequireFromString("750.5")) {
		t.Fatalf("limit=%s want=750.5", a.OverdraftLimit)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("amount", func(t *testing.T) {
		t.Setenv("DEPOSIT_AMOUNT", "five hundred")
		if _, err := Load(nil); err == nil {
			t.Fatal("want parse error")
		}
	})
	t.Run("negative overdraft", func(t *testing.T) {
		t.Setenv("CURRENT_OVERDRAFT_LIMIT", "-1")
		if _, err := Load(nil); !errors.Is(err, ErrNegativeOverdraft) {
			t.Fatalf("want ErrNegativeOverdraft, got %v", err)
		}
	})
	t.Run("mode", func(t *testing.T) {
		if _, err := Load([]string{"-mode", "wire"}); err == nil {
			t.Fatal("want mode error")
		}
	})
	t.Run("log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		if _, err := Load(nil); err == nil {
			t.Fatal("want level error")
		}
	})
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	if err != nil || l != slog.LevelDebug {
		t.Fatalf("level=%v err=%v", l, err)
	}
}
