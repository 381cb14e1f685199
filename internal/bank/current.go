package bank

import "github.com/shopspring/decimal"

// CurrentAccount 允許餘額透支至 -overdraftLimit。
type CurrentAccount struct {
	base
	overdraftLimit decimal.Decimal
}

// NewCurrentAccount 建立活存帳戶；limit 應為非負數（由設定層檢查）。
func NewCurrentAccount(number, holder string, balance, limit decimal.Decimal) *CurrentAccount {
	return &CurrentAccount{base: newBase(number, holder, balance), overdraftLimit: limit}
}

func (c *CurrentAccount) Kind() Kind { return KindCurrent }

func (c *CurrentAccount) OverdraftLimit() decimal.Decimal { return c.overdraftLimit }

// Available 為 balance + overdraftLimit。
func (c *CurrentAccount) Available() decimal.Decimal {
	return c.balance.Add(c.overdraftLimit)
}

// CanWithdraw: balance + overdraftLimit - amount >= 0
func (c *CurrentAccount) CanWithdraw(amount decimal.Decimal) bool {
	return !c.Available().Sub(amount).IsNegative()
}

func (c *CurrentAccount) Withdraw(amount decimal.Decimal) error {
	return withdraw(c, amount)
}

func (c *CurrentAccount) String() string { return Details(c) }

func (c *CurrentAccount) detail() string {
	return "Overdraft Limit: $" + c.overdraftLimit.StringFixed(2)
}
