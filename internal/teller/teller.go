// internal/teller/teller.go
//
// Package teller 為 bank 模組的主控台介面。
// 每個操作僅負責：
//  1. 依帳號向 Bank 取得帳戶
//  2. 呼叫 bank 層執行商業邏輯
//  3. 將結果（成功或 ErrInsufficient）轉為使用者看到的通知訊息
//
// bank 層不做任何輸出；teller 不做任何餘額判斷。
package teller

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"accounts/internal/bank"

	"github.com/shopspring/decimal"
)

// ErrNotSavings 代表對非儲蓄帳戶執行計息。
var ErrNotSavings = errors.New("interest applies to savings accounts only")

// Teller 持有 Bank 與輸出目的地。
type Teller struct {
	Bank *bank.Bank
	out  *output
	log  *slog.Logger
}

// New 建立 Teller；logger 為 nil 時使用 slog.Default()。
func New(b *bank.Bank, w io.Writer, logger *slog.Logger) *Teller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Teller{Bank: b, out: &output{w: w}, log: logger}
}

// Err 回傳第一個輸出錯誤。
func (t *Teller) Err() error { return t.out.err }

// Show 輸出帳戶明細並接一個空行。
func (t *Teller) Show(number string) error {
	a, err := t.Bank.Get(number)
	if err != nil {
		return err
	}
	t.out.printf("%s\n", a)
	return t.out.err
}

// Deposit 存款，不產生通知。
func (t *Teller) Deposit(number string, amount decimal.Decimal) error {
	a, err := t.Bank.Get(number)
	if err != nil {
		return err
	}
	a.Deposit(amount)
	t.log.Debug("deposit", "account", number, "amount", amount, "balance", a.Balance())
	return nil
}

// Withdraw 提款並輸出成功或失敗通知。
// 餘額不足時回傳的錯誤滿足 errors.Is(err, bank.ErrInsufficient)。
func (t *Teller) Withdraw(number string, amount decimal.Decimal) error {
	a, err := t.Bank.Get(number)
	if err != nil {
		return err
	}
	return t.notifyWithdraw(a, amount, a.Withdraw(amount))
}

// Debit 為「帳戶 + 金額」簡寫：只扣款，不入帳到任何其他帳戶。
func (t *Teller) Debit(number string, amount decimal.Decimal) error {
	a, err := t.Bank.Get(number)
	if err != nil {
		return err
	}
	a, err = bank.Debit(a, amount)
	return t.notifyWithdraw(a, amount, err)
}

// Transfer 由 from 轉帳至 to 並輸出通知。
func (t *Teller) Transfer(from, to string, amount decimal.Decimal) error {
	src, err := t.Bank.Get(from)
	if err != nil {
		return err
	}
	dst, err := t.Bank.Get(to)
	if err != nil {
		return err
	}

	err = bank.Transfer(src, dst, amount)
	switch {
	case err == nil:
		t.out.printf("Transferred $%s from Account %s to Account %s\n", money(amount), from, to)
		t.log.Debug("transfer", "from", from, "to", to, "amount", amount)
	case errors.Is(err, bank.ErrInsufficient):
		t.out.printf("Insufficient funds in Account %s for transfer.\n", from)
		t.logRejected("transfer rejected", err)
	}
	return err
}

// ApplyInterest 對儲蓄帳戶計息。
func (t *Teller) ApplyInterest(number string) error {
	a, err := t.Bank.Get(number)
	if err != nil {
		return err
	}
	s, ok := a.(*bank.SavingsAccount)
	if !ok {
		return fmt.Errorf("%s: %w", number, ErrNotSavings)
	}
	s.ApplyInterest()
	t.log.Debug("interest applied", "account", number, "rate", s.InterestRate(), "balance", s.Balance())
	return nil
}

func (t *Teller) notifyWithdraw(a bank.Account, amount decimal.Decimal, err error) error {
	switch {
	case err == nil:
		t.out.printf("Withdrawn $%s from %s.\n", money(amount), a.Kind())
		t.log.Debug("withdraw", "account", a.Number(), "amount", amount, "balance", a.Balance())
	case errors.Is(err, bank.ErrInsufficient):
		t.out.println(rejection(a.Kind()))
		t.logRejected("withdraw rejected", err)
	}
	return err
}

// rejection 回傳各帳戶種類的提款失敗訊息。
func rejection(k bank.Kind) string {
	if k == bank.KindCurrent {
		return "Withdrawal exceeds overdraft limit in Current Account."
	}
	return fmt.Sprintf("Insufficient funds in %s.", k)
}

func (t *Teller) logRejected(msg string, err error) {
	var ife *bank.InsufficientFundsError
	if errors.As(err, &ife) {
		t.log.Warn(msg, "account", ife.Number, "requested", ife.Requested, "available", ife.Available)
		return
	}
	t.log.Warn(msg, "error", err)
}
