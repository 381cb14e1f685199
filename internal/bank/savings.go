package bank

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SavingsAccount 不允許透支，並可依固定利率手動計息。
type SavingsAccount struct {
	base
	interestRate decimal.Decimal
}

// NewSavingsAccount 建立儲蓄帳戶；rate 為小數利率（0.02 即 2%）。
func NewSavingsAccount(number, holder string, balance, rate decimal.Decimal) *SavingsAccount {
	return &SavingsAccount{base: newBase(number, holder, balance), interestRate: rate}
}

func (s *SavingsAccount) Kind() Kind { return KindSavings }

func (s *SavingsAccount) InterestRate() decimal.Decimal { return s.interestRate }

func (s *SavingsAccount) Available() decimal.Decimal { return s.balance }

// CanWithdraw: balance - amount >= 0
func (s *SavingsAccount) CanWithdraw(amount decimal.Decimal) bool {
	return !s.balance.Sub(amount).IsNegative()
}

// Withdraw 提款；餘額不足時回傳 *InsufficientFundsError 且不變更餘額。
func (s *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	return withdraw(s, amount)
}

// ApplyInterest 以 balance += balance * rate 計息。
// 無時間限制，可重複呼叫。
func (s *SavingsAccount) ApplyInterest() {
	s.credit(s.balance.Mul(s.interestRate), "", "interest")
}

func (s *SavingsAccount) String() string { return Details(s) }

func (s *SavingsAccount) detail() string {
	return "Interest Rate: " + s.interestRate.Mul(hundred).StringFixed(2) + "%"
}
