package account

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// maxAmountExponent bounds the decimal exponent of any amount entering an account.
// Add rescales both operands to the smaller exponent.
const maxAmountExponent = 18

// CheckAmount returns ErrInvalidAmount when the amount's exponent is outside ±maxAmountExponent.
func CheckAmount(amount decimal.Decimal) error {
	if exp := amount.Exponent(); exp < -maxAmountExponent || exp > maxAmountExponent {
		return fmt.Errorf("%w: exponent %d out of range", ErrInvalidAmount, exp)
	}

	return nil
}
