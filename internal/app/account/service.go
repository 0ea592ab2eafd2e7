package account

import "github.com/shopspring/decimal"

// Service defines a contract for moving money in and out of an account.
type Service interface {
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Balance() decimal.Decimal
}
