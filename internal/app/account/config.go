package account

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config defines configuration of application. Values are parsed from environment variables.
// Locale defaults to pt so that a default run prints the same texts as the original program.
type Config struct {
	AccountOwner          string          `split_words:"true" default:"guiba"`
	InitialBalance        decimal.Decimal `split_words:"true" default:"20"`
	Locale                string          `default:"pt"`
	Interactive           bool
	RejectNegativeAmounts bool `split_words:"true"`
	InitDebug             bool `split_words:"true"`
}

// Validate checks values envconfig can decode but the account cannot use.
func (c Config) Validate() error {
	if err := CheckAmount(c.InitialBalance); err != nil {
		return fmt.Errorf("initial balance: %w", err)
	}

	return nil
}
