package console

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vidalgui/aula-git/internal/app/account"
)

type operation int

const (
	opDeposit operation = iota
	opWithdraw
	opBalance
)

// request represents a single console command.
type request struct {
	operation operation
	amount    decimal.Decimal
}

var amountOperations = map[string]operation{
	"DEPOSIT":  opDeposit,
	"WITHDRAW": opWithdraw,
}

// parseRequest parses a command line such as "DEPOSIT|10", "WITHDRAW|2.5" or "BALANCE".
func parseRequest(s string) (request, error) {
	parts := strings.Split(strings.TrimSpace(s), "|")

	if len(parts) == 1 && parts[0] == "BALANCE" {
		return request{operation: opBalance}, nil
	}

	if len(parts) != 2 {
		return request{}, account.ErrInvalidRequest
	}

	op, ok := amountOperations[parts[0]]
	if !ok {
		return request{}, account.ErrInvalidRequest
	}

	amount, err := decimal.NewFromString(parts[1])
	if err != nil || account.CheckAmount(amount) != nil {
		return request{}, account.ErrInvalidAmount
	}

	return request{operation: op, amount: amount}, nil
}
