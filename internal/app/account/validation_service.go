package account

import "github.com/shopspring/decimal"

// ValidationService rejects negative amounts before they reach the wrapped service.
type ValidationService struct {
	service Service
}

func NewValidationService(service Service) *ValidationService {
	return &ValidationService{service: service}
}

func (v *ValidationService) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	return v.service.Deposit(amount)
}

func (v *ValidationService) Withdraw(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	return v.service.Withdraw(amount)
}

func (v *ValidationService) Balance() decimal.Decimal {
	return v.service.Balance()
}
