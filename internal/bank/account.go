// internal/bank/account.go

// Package bank 定義核心領域模型與業務規則。
// 本檔定義 Account 介面、兩種帳戶共用的資料紀錄 (base) 與交易 Log 結構，
// 不含任何主控台輸出或儲存細節。
// 金額一律以 decimal.Decimal 表示，避免浮點誤差。
package bank

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind 為帳戶種類的顯示標籤。
type Kind string

const (
	KindSavings Kind = "Savings Account"
	KindCurrent Kind = "Current Account"
)

// Account 為帳戶的多型契約，僅由 SavingsAccount 與 CurrentAccount 實作。
// 餘額只能透過 Deposit / Withdraw / Transfer（以及儲蓄帳戶的 ApplyInterest）變動。
type Account interface {
	Number() string
	Holder() string
	Kind() Kind
	Balance() decimal.Decimal

	// Available 回傳目前可提領的上限（活存帳戶含透支額度）。
	Available() decimal.Decimal
	// CanWithdraw 為各帳戶種類的提款可負擔性檢查。
	CanWithdraw(amount decimal.Decimal) bool

	Deposit(amount decimal.Decimal)
	Withdraw(amount decimal.Decimal) error

	Logs() []Log
	String() string

	// core 封閉此介面，並讓 Transfer 能直接寫入雙方紀錄。
	core() *base
	// detail 回傳種類專屬的第五行明細（利率或透支額度）。
	detail() string
}

// Log represents a journal entry.
type Log struct {
	ID        uuid.UUID       `json:"id"`
	Time      time.Time       `json:"time"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction"`
	CounterID string          `json:"counter_account,omitempty"`
	Note      string          `json:"note"`
}

// base 為兩種帳戶共用的資料紀錄。
// number 與 holder 建立後不可變；balance 只由 credit / debit 修改。
type base struct {
	number  string
	holder  string
	balance decimal.Decimal
	logs    []Log
}

func newBase(number, holder string, balance decimal.Decimal) base {
	return base{number: number, holder: holder, balance: balance}
}

func (b *base) Number() string           { return b.number }
func (b *base) Holder() string           { return b.holder }
func (b *base) Balance() decimal.Decimal { return b.balance }
func (b *base) core() *base              { return b }

// Deposit 存款：無條件將 amount 加入餘額。
// 不檢查正負號，負數存款會直接減少餘額。
func (b *base) Deposit(amount decimal.Decimal) {
	b.credit(amount, "", "deposit")
}

// Logs 回傳交易日誌的值拷貝，避免外部修改內部切片。
func (b *base) Logs() []Log {
	out := make([]Log, len(b.logs))
	copy(out, b.logs)
	return out
}

func (b *base) credit(amount decimal.Decimal, counter, note string) {
	b.balance = b.balance.Add(amount)
	b.record(amount, "in", counter, note)
}

func (b *base) debit(amount decimal.Decimal, counter, note string) {
	b.balance = b.balance.Sub(amount)
	b.record(amount, "out", counter, note)
}

func (b *base) record(amount decimal.Decimal, direction, counter, note string) {
	b.logs = append(b.logs, Log{
		ID:        uuid.New(),
		Time:      time.Now(),
		Amount:    amount,
		Direction: direction,
		CounterID: counter,
		Note:      note,
	})
}

// Details 產生帳戶明細：標題、種類、持有人、餘額（兩位小數），
// 以及種類專屬的第五行。每行以換行結尾。
func Details(a Account) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Account Details for %s (ID: %s):\n", a.Kind(), a.Number())
	fmt.Fprintf(&sb, "   Type: %s\n", a.Kind())
	fmt.Fprintf(&sb, "   Holder: %s\n", a.Holder())
	fmt.Fprintf(&sb, "   Balance: $%s\n", a.Balance().StringFixed(2))
	if d := a.detail(); d != "" {
		fmt.Fprintf(&sb, "   %s\n", d)
	}
	return sb.String()
}

// withdraw 為兩種帳戶共用的提款流程；可負擔性規則由呼叫端的帳戶提供。
func withdraw(a Account, amount decimal.Decimal) error {
	if !a.CanWithdraw(amount) {
		return &InsufficientFundsError{
			Number:    a.Number(),
			Kind:      a.Kind(),
			Requested: amount,
			Available: a.Available(),
		}
	}
	a.core().debit(amount, "", "withdraw")
	return nil
}
