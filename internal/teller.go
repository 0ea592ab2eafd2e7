package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/benbjohnson/clock"
	"github.com/shopspring/decimal"

	"github.com/vidalgui/aula-git/internal/app/account"
	"github.com/vidalgui/aula-git/internal/infra/logging"
	"github.com/vidalgui/aula-git/internal/infra/transport/console"
)

var demoOperations = []struct {
	withdraw bool
	amount   int64
}{
	{amount: 10},
	{withdraw: true, amount: 10},
	{amount: 100},
}

// Run starts application with the passed configuration. Account messages and
// console responses are written to out; commands are read from in only in interactive mode.
func Run(ctx context.Context, cfg account.Config, in io.Reader, out io.Writer) error {
	logging.Setup(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	printer, err := account.NewPrinter(out, cfg.Locale)
	if err != nil {
		return err
	}

	acc := account.NewAccount(cfg.AccountOwner, cfg.InitialBalance, printer, clock.New())

	slog.Info("Account opened", "account", acc.ID(), "owner", acc.Owner(), "balance", acc.Balance())

	var service account.Service = acc
	if cfg.RejectNegativeAmounts {
		service = account.NewValidationService(acc)
	}

	if cfg.Interactive {
		err = console.NewSession(service, in, out).Start(ctx)
	} else {
		err = runDemo(service)
	}
	if err != nil {
		return err
	}

	for _, e := range acc.Statement() {
		slog.Debug("Statement entry", "id", e.ID, "at", e.At, "kind", e.Kind, "amount", e.Amount, "balance", e.BalanceAfter)
	}

	slog.Info("Account closed", "account", acc.ID(), "balance", acc.Balance())

	return nil
}

// runDemo applies the fixed deposit, withdraw, deposit sequence. A rejected
// withdrawal has already been reported by the account and does not stop the run.
func runDemo(service account.Service) error {
	for _, op := range demoOperations {
		amount := decimal.NewFromInt(op.amount)

		if !op.withdraw {
			if err := service.Deposit(amount); err != nil {
				return fmt.Errorf("deposit %s: %w", amount, err)
			}
			continue
		}

		err := service.Withdraw(amount)
		if err != nil && !errors.Is(err, account.ErrInsufficientBalance) {
			return fmt.Errorf("withdraw %s: %w", amount, err)
		}
	}

	return nil
}
