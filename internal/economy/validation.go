package economy

import (
	"fmt"
	"math"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
)

// validateAmount applies the one amount policy: a positive integer, never
// clamped.
func validateAmount(amount int) error {
	if amount < 1 {
		return domain.SyntaxError(ErrMsgInvalidAmountFmt, amount)
	}
	return nil
}

func insufficientFunds(need, have int) error {
	return &domain.UserError{
		Kind:    domain.ErrInsufficientFunds,
		Message: fmt.Sprintf(ErrMsgInsufficientFundFmt, need, have),
	}
}

// totalPrice returns amount*price, or false when the product does not fit
// in an int. Both operands are non-negative.
func totalPrice(amount, price int) (int, bool) {
	if price != 0 && amount > math.MaxInt/price {
		return 0, false
	}
	return amount * price, true
}

// credit returns balance+amount, or false on overflow.
func credit(balance, amount int) (int, bool) {
	if amount > 0 && balance > math.MaxInt-amount {
		return 0, false
	}
	return balance + amount, true
}

// debit returns balance-amount, or false on overflow.
func debit(balance, amount int) (int, bool) {
	if amount > 0 && balance < math.MinInt+amount {
		return 0, false
	}
	return balance - amount, true
}
