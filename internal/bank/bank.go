// internal/bank/bank.go

// Bank 為帳戶登記簿：依帳號索引帳戶，並保留開戶順序供列出與匯出。
// 程式為單執行緒，Bank 不提供並行保護。
package bank

import (
	"fmt"

	"accounts/internal/statement"
)

// Bank 管理已開立的帳戶。
// - accts：帳號 → Account
// - order：開戶順序，List 與 Snapshot 依此輸出
type Bank struct {
	accts map[string]Account
	order []string
}

// NewBank 建立空白銀行實例。
func NewBank() *Bank {
	return &Bank{accts: make(map[string]Account)}
}

// Open 登記帳戶；帳號重複時回傳 ErrDuplicate。
func (b *Bank) Open(a Account) error {
	if _, ok := b.accts[a.Number()]; ok {
		return fmt.Errorf("open %s: %w", a.Number(), ErrDuplicate)
	}
	b.accts[a.Number()] = a
	b.order = append(b.order, a.Number())
	return nil
}

// Get 依帳號取得帳戶；若不存在回傳 ErrNotFound。
func (b *Bank) Get(number string) (Account, error) {
	a, ok := b.accts[number]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", number, ErrNotFound)
	}
	return a, nil
}

// List 依開戶順序回傳所有帳戶。
func (b *Bank) List() []Account {
	out := make([]Account, 0, len(b.order))
	for _, n := range b.order {
		out = append(out, b.accts[n])
	}
	return out
}

// Snapshot 匯出所有帳戶（含日誌）為 statement.Statement。
func (b *Bank) Snapshot() statement.Statement {
	s := statement.Statement{
		Meta: statement.Meta{
			Format:  statement.Format,
			Version: statement.Version,
		},
		Accounts: make([]statement.Account, 0, len(b.order)),
	}
	for _, a := range b.List() {
		pa := statement.Account{
			Number:  a.Number(),
			Holder:  a.Holder(),
			Kind:    string(a.Kind()),
			Balance: a.Balance(),
			Logs:    toEntries(a.Logs()),
		}
		switch v := a.(type) {
		case *SavingsAccount:
			rate := v.InterestRate()
			pa.InterestRate = &rate
		case *CurrentAccount:
			limit := v.OverdraftLimit()
			pa.OverdraftLimit = &limit
		}
		s.Accounts = append(s.Accounts, pa)
	}
	return s
}

func toEntries(logs []Log) []statement.Entry {
	out := make([]statement.Entry, len(logs))
	for i, l := range logs {
		out[i] = statement.Entry{
			ID:        l.ID,
			Time:      l.Time,
			Amount:    l.Amount,
			Direction: l.Direction,
			CounterID: l.CounterID,
			Note:      l.Note,
		}
	}
	return out
}
