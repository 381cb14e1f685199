// internal/statement/model.go
//
// 定義「對帳單匯出層 (statement layer)」的資料結構。
// 該層只描述帳戶狀態的序列化格式（JSON），不涉入商業邏輯，
// 也不負責讀回：對帳單是程式結束前的一次性匯出，而非跨次執行的持久化。
package statement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Format 為目前對帳單格式名稱，寫入 Meta.Format。
const Format = "json_statement"

// Version 為目前對帳單結構版本。
const Version = 1

// Meta 為對帳單的中繼資料。
type Meta struct {
	Format    string    `json:"format"`         // 匯出格式，例如 "json_statement"
	Version   int       `json:"version"`        // 結構版本號
	Timestamp time.Time `json:"timestamp"`      // 匯出時間
	Note      string    `json:"note,omitempty"` // 備註欄
}

// Entry 為單筆交易日誌的匯出格式。
type Entry struct {
	ID        uuid.UUID       `json:"id"`
	Time      time.Time       `json:"time"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction"`
	CounterID string          `json:"counter_account,omitempty"`
	Note      string          `json:"note"`
}

// Account 為帳戶的匯出格式。
// InterestRate 只出現在儲蓄帳戶，OverdraftLimit 只出現在活存帳戶。
type Account struct {
	Number         string           `json:"number"`
	Holder         string           `json:"holder"`
	Kind           string           `json:"kind"`
	Balance        decimal.Decimal  `json:"balance"`
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"`
	OverdraftLimit *decimal.Decimal `json:"overdraft_limit,omitempty"`
	Logs           []Entry          `json:"logs"`
}

// Statement 為所有帳戶的完整匯出。
type Statement struct {
	Meta     Meta      `json:"_meta"`
	Accounts []Account `json:"accounts"`
}
