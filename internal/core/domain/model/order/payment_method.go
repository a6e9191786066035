package order

import (
	"fmt"

	"tableorder/internal/pkg/errs"
)

// PaymentMethod labels how a completed order was settled.
// It is a label only: no payment capture happens in this system.
// A method may be set exactly once, on the transition into Completed.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an unset payment method.
	// Every order carries this value until it is completed.
	PaymentMethodUnknown PaymentMethod = iota

	// Cash means the order was settled in cash at the table.
	Cash

	// BankTransfer means the order was settled by bank transfer.
	BankTransfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "UNKNOWN",
		Cash:                 "CASH",
		BankTransfer:         "BANK_TRANSFER",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		Cash:         "CASH",
		BankTransfer: "BANK_TRANSFER",
	}
}

// PaymentMethodFromString parses a payment method from its wire
// representation ("CASH", "BANK_TRANSFER").
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getValidPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod value is valid.
// Valid methods are: Cash, BankTransfer.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the wire name of the payment method.
// Returns "UNKNOWN" for unset or invalid values.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
