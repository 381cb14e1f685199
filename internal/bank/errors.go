// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 提款與轉帳的失敗不再只以輸出訊息表達，而是回傳可比對的錯誤值，
// 由上層（teller）決定如何呈現給使用者。

package bank

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficient 代表餘額（含透支額度）不足，提款或轉帳未執行。
	ErrInsufficient = errors.New("insufficient balance")

	// ErrNotFound 代表帳號不存在於 Bank 中。
	ErrNotFound = errors.New("account not found")

	// ErrDuplicate 代表帳號已開立過。
	ErrDuplicate = errors.New("account already open")
)

// InsufficientFundsError 描述一次被拒絕的提款或轉帳。
// 可用 errors.Is(err, ErrInsufficient) 判斷，或以 errors.As 取出金額。
type InsufficientFundsError struct {
	Number    string
	Kind      Kind
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s %s: requested %s, available %s: %v",
		e.Kind, e.Number, e.Requested.StringFixed(2), e.Available.StringFixed(2), ErrInsufficient)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficient }
