// internal/statement/write.go
//
// 提供對帳單的 JSON 輸出。
// Save 採「原子寫入」策略：先寫入 .tmp 檔，再以 rename() 取代原檔，
// 寫入中斷時不會留下半份檔案。
package statement

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Write 以縮排 JSON 將對帳單寫入 w，並補上 Meta.Format 與時間戳。
func Write(w io.Writer, st Statement) error {
	st.Meta.Format = Format
	if st.Meta.Version == 0 {
		st.Meta.Version = Version
	}
	if st.Meta.Timestamp.IsZero() {
		st.Meta.Timestamp = time.Now()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

// Save 將對帳單寫入 path。
// 流程：
//  1. 寫入 path+".tmp" 暫存檔。
//  2. 關閉檔案並檢查錯誤。
//  3. 使用 os.Rename() 取代正式檔案。
func Save(path string, st Statement) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create statement: %w", err)
	}
	if err := Write(f, st); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode statement: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close statement: %w", err)
	}

	// 原子替換
	return os.Rename(tmp, path)
}
