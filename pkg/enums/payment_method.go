package enums

import "fmt"

// PaymentMethod enumerates how a transaction was settled. Paying with
// reward_points records the method only; point deduction is out of scope.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodETransfer    PaymentMethod = "e_transfer"
	PaymentMethodRewardPoints PaymentMethod = "reward_points"
)

var paymentMethods = map[PaymentMethod]struct{}{
	PaymentMethodCash:         {},
	PaymentMethodCreditCard:   {},
	PaymentMethodETransfer:    {},
	PaymentMethodRewardPoints: {},
}

func (p PaymentMethod) String() string {
	return string(p)
}

// ParsePaymentMethod validates and converts a raw string.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	method := PaymentMethod(value)
	if _, ok := paymentMethods[method]; !ok {
		return "", fmt.Errorf("invalid payment method %q", value)
	}
	return method, nil
}
