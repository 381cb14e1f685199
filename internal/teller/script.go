package teller

import (
	"errors"

	"accounts/internal/bank"

	"github.com/shopspring/decimal"
)

// Mode selects how the script moves money from savings to current.
type Mode string

const (
	// ModeDebit debits both accounts with the shorthand and credits neither.
	ModeDebit Mode = "debit"
	// ModeTransfer performs one real transfer from savings to current.
	ModeTransfer Mode = "transfer"
)

// Script is the fixed demonstration sequence.
type Script struct {
	Savings       string
	Current       string
	Deposit       decimal.Decimal
	Withdraw      decimal.Decimal
	Transfer      decimal.Decimal
	Mode          Mode
	ApplyInterest bool
}

// Run prints both accounts, deposits into savings, withdraws from current,
// moves money according to Mode and prints both accounts again.
// Rejected withdrawals are reported on the console and do not fail the run.
func (t *Teller) Run(s Script) error {
	steps := []func() error{
		func() error { return t.Show(s.Savings) },
		func() error { return t.Show(s.Current) },
		func() error { return t.heading("Account Details After Deposit and Withdrawal: ") },
		func() error { return t.Deposit(s.Savings, s.Deposit) },
		func() error { return t.Withdraw(s.Current, s.Withdraw) },
		func() error { return t.Show(s.Savings) },
		func() error { return t.Show(s.Current) },
	}

	if s.Mode == ModeTransfer {
		steps = append(steps,
			func() error { return t.Transfer(s.Savings, s.Current, s.Transfer) },
		)
	} else {
		steps = append(steps,
			func() error { return t.Debit(s.Savings, s.Transfer) },
			func() error { return t.Debit(s.Current, s.Transfer) },
		)
	}

	steps = append(steps,
		func() error { return t.heading("Account Details after Transfer: ") },
		func() error { return t.Show(s.Savings) },
		func() error { return t.Show(s.Current) },
	)

	if s.ApplyInterest {
		steps = append(steps,
			func() error { return t.ApplyInterest(s.Savings) },
			func() error { return t.heading("Account Details after Interest: ") },
			func() error { return t.Show(s.Savings) },
		)
	}

	for _, step := range steps {
		if err := step(); err != nil && !errors.Is(err, bank.ErrInsufficient) {
			return err
		}
	}
	return t.Err()
}

// heading prints a blank line followed by title.
func (t *Teller) heading(title string) error {
	t.out.printf("\n%s\n", title)
	return t.out.err
}
