// internal/teller/teller_test.go
//
// 本檔為 teller 層的整合測試：以 bytes.Buffer 取代主控台，
// 驗證通知訊息、示範腳本的完整輸出，以及錯誤對應。
package teller

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"accounts/internal/bank"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// setup 建立含 S123 / C456 兩帳戶的 Teller，輸出寫入回傳的 buffer。
func setup(t *testing.T) (*Teller, *bytes.Buffer) {
	t.Helper()
	b := bank.NewBank()
	if err := b.Open(bank.NewSavingsAccount("S123", "Mark Ke", d("100000"), d("0.02"))); err != nil {
		t.Fatal(err)
	}
	if err := b.Open(bank.NewCurrentAccount("C456", "Ginny Ke", d("500000"), d("500"))); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(b, &buf, logger), &buf
}

func script(mode Mode) Script {
	return Script{
		Savings:  "S123",
		Current:  "C456",
		Deposit:  d("500"),
		Withdraw: d("1000"),
		Transfer: d("300"),
		Mode:     mode,
	}
}

func details(kind, id, holder, balance, extra string) string {
	return "Account Details for " + kind + " (ID: " + id + "):\n" +
		"   Type: " + kind + "\n" +
		"   Holder: " + holder + "\n" +
		"   Balance: $" + balance + "\n" +
		"   " + extra + "\n\n"
}

func savings(balance string) string {
	return details("Savings Account", "S123", "Mark Ke", balance, "Interest Rate: 2.00%")
}

func current(balance string) string {
	return details("Current Account", "C456", "Ginny Ke", balance, "Overdraft Limit: $500.00")
}

// TestRunDebitMode 驗證預設腳本輸出與經典示範程式逐字相同。
func TestRunDebitMode(t *testing.T) {
	tl, buf := setup(t)
	if err := tl.Run(script(ModeDebit)); err != nil {
		t.Fatalf("Run err=%v", err)
	}

	want := savings("100000.00") +
		current("500000.00") +
		"\nAccount Details After Deposit and Withdrawal: \n" +
		"Withdrawn $1000.00 from Current Account.\n" +
		savings("100500.00") +
		current("499000.00") +
		"Withdrawn $300.00 from Savings Account.\n" +
		"Withdrawn $300.00 from Current Account.\n" +
		"\nAccount Details after Transfer: \n" +
		savings("100200.00") +
		current("498700.00")

	if got := buf.String(); got != want {
		t.Fatalf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// TestRunTransferMode 驗證 transfer 模式會入帳到活存帳戶。
func TestRunTransferMode(t *testing.T) {
	tl, buf := setup(t)
	s := script(ModeTransfer)
	s.ApplyInterest = true
	if err := tl.Run(s); err != nil {
		t.Fatalf("Run err=%v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Transferred $300.00 from Account S123 to Account C456\n",
		"\nAccount Details after Transfer: \n" + savings("100200.00") + current("499300.00"),
		"\nAccount Details after Interest: \n" + savings("102204.00"),
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q\ngot:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Withdrawn $300.00") {
		t.Fatalf("transfer mode should not debit with the shorthand:\n%s", out)
	}
}

// TestRunRejectedWithdrawal 驗證提款失敗只輸出通知，不中斷腳本。
func TestRunRejectedWithdrawal(t *testing.T) {
	tl, buf := setup(t)
	s := script(ModeDebit)
	s.Withdraw = d("600000")
	if err := tl.Run(s); err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if !strings.Contains(buf.String(), "Withdrawal exceeds overdraft limit in Current Account.\n") {
		t.Fatalf("missing rejection:\n%s", buf.String())
	}
	if !strings.HasSuffix(buf.String(), current("499700.00")) {
		t.Fatalf("script should finish with current details:\n%s", buf.String())
	}
}

// TestWithdrawNotifications 驗證兩種帳戶的失敗訊息與回傳錯誤。
func TestWithdrawNotifications(t *testing.T) {
	tl, buf := setup(t)

	err := tl.Withdraw("S123", d("100000.01"))
	if !errors.Is(err, bank.ErrInsufficient) {
		t.Fatalf("want ErrInsufficient, got %v", err)
	}
	if buf.String() != "Insufficient funds in Savings Account.\n" {
		t.Fatalf("savings rejection=%q", buf.String())
	}

	buf.Reset()
	if err := tl.Withdraw("C456", d("500500")); err != nil {
		t.Fatalf("withdraw to the overdraft limit: %v", err)
	}
	if buf.String() != "Withdrawn $500500.00 from Current Account.\n" {
		t.Fatalf("current success=%q", buf.String())
	}
}

// TestTransferRejected 驗證轉帳失敗訊息且雙方餘額不變。
func TestTransferRejected(t *testing.T) {
	tl, buf := setup(t)
	err := tl.Transfer("S123", "C456", d("200000"))
	if !errors.Is(err, bank.ErrInsufficient) {
		t.Fatalf("want ErrInsufficient, got %v", err)
	}
	if buf.String() != "Insufficient funds in Account S123 for transfer.\n" {
		t.Fatalf("rejection=%q", buf.String())
	}
	s, _ := tl.Bank.Get("S123")
	c, _ := tl.Bank.Get("C456")
	if !s.Balance().Equal(d("100000")) || !c.Balance().Equal(d("500000")) {
		t.Fatalf("balances changed: s=%s c=%s", s.Balance(), c.Balance())
	}
}

// TestUnknownAccountAndInterest 驗證帳號不存在與對活存帳戶計息的錯誤。
func TestUnknownAccountAndInterest(t *testing.T) {
	tl, buf := setup(t)
	if err := tl.Show("X1"); !errors.Is(err, bank.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := tl.Run(Script{Savings: "X1", Current: "C456"}); !errors.Is(err, bank.ErrNotFound) {
		t.Fatalf("Run want ErrNotFound, got %v", err)
	}
	if err := tl.ApplyInterest("C456"); !errors.Is(err, ErrNotSavings) {
		t.Fatalf("want ErrNotSavings, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("errors should not print: %q", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

// TestRunWriteError 驗證輸出錯誤會回報給呼叫端。
func TestRunWriteError(t *testing.T) {
	tl, _ := setup(t)
	tl.out.w = failWriter{}
	if err := tl.Run(script(ModeDebit)); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("want io.ErrClosedPipe, got %v", err)
	}
}
