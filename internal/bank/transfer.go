// internal/bank/transfer.go

package bank

import "github.com/shopspring/decimal"

// Transfer 由 from 轉出 amount 至 to。
// 可負擔性以轉出方自身的提款規則判斷（活存帳戶可動用透支額度），
// 與 Withdraw 一致。失敗時雙方皆不變更，回傳 *InsufficientFundsError。
// 成功時雙方日誌各追加一筆，並記錄對方帳號。
func Transfer(from, to Account, amount decimal.Decimal) error {
	if !from.CanWithdraw(amount) {
		return &InsufficientFundsError{
			Number:    from.Number(),
			Kind:      from.Kind(),
			Requested: amount,
			Available: from.Available(),
		}
	}
	from.core().debit(amount, to.Number(), "transfer")
	to.core().credit(amount, from.Number(), "transfer")
	return nil
}

// Debit 為「帳戶 + 金額」簡寫：對 a 提款後回傳同一個 a。
// 只扣款，不會存入任何其他帳戶。
func Debit(a Account, amount decimal.Decimal) (Account, error) {
	return a, a.Withdraw(amount)
}
