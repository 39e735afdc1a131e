package economy

import (
	"fmt"
	"math"
	"strings"

	"github.com/osse101/GrimArmory_Go/internal/domain"
)

// validateQuantity validates the purchase quantity
func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, quantity, domain.ErrInvalidAmount)
	}
	if quantity > MaxPurchaseQuantity {
		return fmt.Errorf(ErrMsgQuantityExceedsMaxFmt, quantity, MaxPurchaseQuantity, domain.ErrInvalidAmount)
	}
	return nil
}

func validateRequest(userID, itemName string, quantity int) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyUserID)
	}
	if strings.TrimSpace(itemName) == "" {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgEmptyItemName)
	}
	return validateQuantity(quantity)
}

// totalCost multiplies price by quantity, refusing to overflow
func totalCost(price int64, quantity int) (int64, error) {
	if price > 0 && price > math.MaxInt64/int64(quantity) {
		return 0, fmt.Errorf(ErrMsgCostOverflowFmt, price, quantity, domain.ErrInvalidAmount)
	}
	return price * int64(quantity), nil
}
