// internal/teller/output.go
//
// 本檔統一主控台輸出。
// 所有寫入皆經由 printf / println；第一個寫入錯誤會被保留，
// 之後的寫入直接略過，由 Err() 回報給呼叫端。
package teller

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

type output struct {
	w   io.Writer
	err error
}

func (o *output) printf(format string, args ...any) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.w, format, args...)
}

func (o *output) println(s string) {
	o.printf("%s\n", s)
}

// money 以兩位小數輸出金額，例如 1000 → "1000.00"。
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
