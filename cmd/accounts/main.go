// cmd/accounts/main.go

// 本程式執行帳戶示範腳本：開立一個儲蓄帳戶與一個活存帳戶，
// 依序顯示明細、存款、提款、移轉資金後再顯示明細。
// 主控台輸出寫到 stdout，日誌寫到 stderr；
// 若設定 STATEMENT_PATH，結束前另外匯出 JSON 對帳單。

package main

import (
	"log"
	"log/slog"
	"os"

	"accounts/internal/bank"
	"accounts/internal/config"
	"accounts/internal/statement"
	"accounts/internal/teller"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	amts, err := cfg.Amounts()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// 開立示範帳戶
	b := bank.NewBank()
	for _, a := range []bank.Account{
		bank.NewSavingsAccount(cfg.SavingsNumber, cfg.SavingsHolder, amts.SavingsBalance, amts.InterestRate),
		bank.NewCurrentAccount(cfg.CurrentNumber, cfg.CurrentHolder, amts.CurrentBalance, amts.OverdraftLimit),
	} {
		if err := b.Open(a); err != nil {
			log.Fatalf("error opening account: %v", err)
		}
	}
	logger.Debug("accounts opened", "savings", cfg.SavingsNumber, "current", cfg.CurrentNumber, "mode", cfg.TransferMode)

	t := teller.New(b, os.Stdout, logger)
	err = t.Run(teller.Script{
		Savings:       cfg.SavingsNumber,
		Current:       cfg.CurrentNumber,
		Deposit:       amts.Deposit,
		Withdraw:      amts.Withdraw,
		Transfer:      amts.Transfer,
		Mode:          teller.Mode(cfg.TransferMode),
		ApplyInterest: cfg.ApplyInterest,
	})
	if err != nil {
		logger.Error("script failed", "error", err)
	}

	if cfg.StatementPath != "" {
		if err := statement.Save(cfg.StatementPath, b.Snapshot()); err != nil {
			logger.Error("statement export failed", "path", cfg.StatementPath, "error", err)
		} else {
			logger.Info("statement written", "path", cfg.StatementPath)
		}
	}
}
