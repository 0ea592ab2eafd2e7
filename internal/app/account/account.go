package account

import (
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind tells which operation produced a statement entry.
type EntryKind string

const (
	KindDeposit    EntryKind = "deposit"
	KindWithdrawal EntryKind = "withdrawal"
)

// Entry is a single applied operation.
type Entry struct {
	ID           uuid.UUID
	At           time.Time
	Kind         EntryKind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}

// Account holds a balance for one owner and reports every operation through its Printer.
// It is not safe for concurrent use.
type Account struct {
	id        uuid.UUID
	owner     string
	balance   decimal.Decimal
	statement []Entry
	printer   *Printer
	clock     clock.Clock
}

// NewAccount creates an account with the given owner and opening balance.
func NewAccount(owner string, balance decimal.Decimal, printer *Printer, clock clock.Clock) *Account {
	return &Account{
		id:      uuid.New(),
		owner:   owner,
		balance: balance,
		printer: printer,
		clock:   clock,
	}
}

func (a *Account) ID() uuid.UUID {
	return a.id
}

func (a *Account) Owner() string {
	return a.owner
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Statement returns a copy of the applied operations, oldest first.
func (a *Account) Statement() []Entry {
	out := make([]Entry, len(a.statement))
	copy(out, a.statement)

	return out
}

// Deposit adds amount to the balance. The amount is not checked, a negative deposit lowers the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	a.balance = a.balance.Add(amount)
	a.record(KindDeposit, amount)

	slog.Debug("Deposit processed", "account", a.id, "amount", amount, "balance", a.balance)

	a.printer.deposited(amount, a.balance)

	return nil
}

// Withdraw subtracts amount from the balance unless the balance is lower than amount,
// in which case nothing changes and ErrInsufficientBalance is returned.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if a.balance.LessThan(amount) {
		slog.Debug("Withdrawal rejected", "account", a.id, "amount", amount, "balance", a.balance)

		a.printer.insufficientBalance()

		return ErrInsufficientBalance
	}

	a.balance = a.balance.Sub(amount)
	a.record(KindWithdrawal, amount)

	slog.Debug("Withdrawal processed", "account", a.id, "amount", amount, "balance", a.balance)

	a.printer.withdrawn(amount, a.balance)

	return nil
}

func (a *Account) record(kind EntryKind, amount decimal.Decimal) {
	a.statement = append(a.statement, Entry{
		ID:           uuid.New(),
		At:           a.clock.Now(),
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: a.balance,
	})
}
