package account

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

type messages struct {
	deposited           string
	withdrawn           string
	insufficientBalance string
}

var catalog = map[string]messages{
	"en": {
		deposited:           "Deposit of %s completed. Your balance is now %s",
		withdrawn:           "Withdrawal of %s completed. Your balance is %s",
		insufficientBalance: "Insufficient balance to complete this operation",
	},
	"pt": {
		deposited:           "Depósito de %s realizado. Seu saldo agora é de %s",
		withdrawn:           "Saque de %s realizado. Seu saldo é de %s",
		insufficientBalance: "Não há saldo para realizar essa operação",
	},
}

// Printer writes human-readable operation outcomes in a single locale.
type Printer struct {
	out      io.Writer
	messages messages
}

// NewPrinter returns a Printer for the given locale or ErrUnsupportedLocale.
func NewPrinter(out io.Writer, locale string) (*Printer, error) {
	m, ok := catalog[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	return &Printer{out: out, messages: m}, nil
}

func (p *Printer) deposited(amount, balance decimal.Decimal) {
	p.println(fmt.Sprintf(p.messages.deposited, amount, balance))
}

func (p *Printer) withdrawn(amount, balance decimal.Decimal) {
	p.println(fmt.Sprintf(p.messages.withdrawn, amount, balance))
}

func (p *Printer) insufficientBalance() {
	p.println(p.messages.insufficientBalance)
}

func (p *Printer) println(s string) {
	// Output is best effort, the account state is already settled.
	_, _ = fmt.Fprintln(p.out, s)
}
