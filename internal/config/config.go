package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	ModeDebit    = "debit"
	ModeTransfer = "transfer"
)

var ErrNegativeOverdraft = errors.New("overdraft limit must not be negative")

// Config describes the demonstration scenario. Defaults reproduce the classic run.
type Config struct {
	SavingsNumber  string `env:"SAVINGS_NUMBER" env-default:"S123"`
	SavingsHolder  string `env:"SAVINGS_HOLDER" env-default:"Mark Ke"`
	SavingsBalance string `env:"SAVINGS_BALANCE" env-default:"100000"`
	InterestRate   string `env:"SAVINGS_INTEREST_RATE" env-default:"0.02"`

	CurrentNumber  string `env:"CURRENT_NUMBER" env-default:"C456"`
	CurrentHolder  string `env:"CURRENT_HOLDER" env-default:"Ginny Ke"`
	CurrentBalance string `env:"CURRENT_BALANCE" env-default:"500000"`
	OverdraftLimit string `env:"CURRENT_OVERDRAFT_LIMIT" env-default:"500"`

	DepositAmount  string `env:"DEPOSIT_AMOUNT" env-default:"500"`
	WithdrawAmount string `env:"WITHDRAW_AMOUNT" env-default:"1000"`
	TransferAmount string `env:"TRANSFER_AMOUNT" env-default:"300"`

	TransferMode  string `env:"TRANSFER_MODE"`
	ApplyInterest bool   `env:"APPLY_INTEREST"`
	StatementPath string `env:"STATEMENT_PATH"`
	LogLevel      string `env:"LOG_LEVEL" env-default:"warn"`
}

// Amounts holds the parsed monetary values of a Config.
type Amounts struct {
	SavingsBalance decimal.Decimal
	InterestRate   decimal.Decimal
	CurrentBalance decimal.Decimal
	OverdraftLimit decimal.Decimal
	Deposit        decimal.Decimal
	Withdraw       decimal.Decimal
	Transfer       decimal.Decimal
}

// Load reads a .env file if present, then flags from args, then the environment.
// Environment variables win over flags.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, relying on environment")
	}

	cfg := &Config{}

	fs := flag.NewFlagSet("accounts", flag.ContinueOnError)
	fs.StringVar(&cfg.TransferMode, "mode", ModeDebit, "how the script moves money from savings to current: debit or transfer")
	fs.BoolVar(&cfg.ApplyInterest, "interest", false, "apply savings interest at the end of the script")
	fs.StringVar(&cfg.StatementPath, "statement", "", "write a JSON statement to this path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	cfg.TransferMode = strings.ToLower(strings.TrimSpace(cfg.TransferMode))
	if cfg.TransferMode != ModeDebit && cfg.TransferMode != ModeTransfer {
		return nil, fmt.Errorf("unknown transfer mode %q", cfg.TransferMode)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if _, err := cfg.Amounts(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Amounts parses every monetary field.
func (c *Config) Amounts() (Amounts, error) {
	var (
		a   Amounts
		err error
	)
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"SAVINGS_BALANCE", c.SavingsBalance, &a.SavingsBalance},
		{"SAVINGS_INTEREST_RATE", c.InterestRate, &a.InterestRate},
		{"CURRENT_BALANCE", c.CurrentBalance, &a.CurrentBalance},
		{"CURRENT_OVERDRAFT_LIMIT", c.OverdraftLimit, &a.OverdraftLimit},
		{"DEPOSIT_AMOUNT", c.DepositAmount, &a.Deposit},
		{"WITHDRAW_AMOUNT", c.WithdrawAmount, &a.Withdraw},
		{"TRANSFER_AMOUNT", c.TransferAmount, &a.Transfer},
	}
	for _, f := range fields {
		if *f.dst, err = decimal.NewFromString(strings.TrimSpace(f.raw)); err != nil {
			return Amounts{}, fmt.Errorf("parse %s=%q: %w", f.name, f.raw, err)
		}
	}
	if a.OverdraftLimit.IsNegative() {
		return Amounts{}, fmt.Errorf("CURRENT_OVERDRAFT_LIMIT=%s: %w", a.OverdraftLimit, ErrNegativeOverdraft)
	}
	return a, nil
}

// ParseLevel maps a LOG_LEVEL value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parse LOG_LEVEL=%q: %w", s, err)
	}
	return l, nil
}
