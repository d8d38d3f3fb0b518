package order

import (
	"fmt"

	"sitebuilder/internal/pkg/errs"
)

// PaymentStatus tracks the state of the payment attached to an order.
// The value is supplied by the payment processor and stored opaquely;
// the core never computes it.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means the payment intent exists but has not settled.
	PaymentPending

	// PaymentPaid means the payment settled successfully.
	PaymentPaid

	// PaymentFailed means the payment attempt failed.
	PaymentFailed

	// PaymentRefunded means a settled payment was returned to the customer.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses a payment status name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// String returns the lowercase name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the payment status is one of the fixed enum values.
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// PaymentMethod records how the customer chose to pay.
type PaymentMethod int

const (
	// MethodUnknown represents an invalid or undefined payment method.
	MethodUnknown PaymentMethod = iota

	// MethodCard is a card payment. This is the default at checkout.
	MethodCard

	// MethodPaypal is a PayPal payment.
	MethodPaypal

	// MethodBankTransfer is a manual bank transfer.
	MethodBankTransfer

	// MethodOther covers anything agreed out of band.
	MethodOther
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		MethodCard:         "card",
		MethodPaypal:       "paypal",
		MethodBankTransfer: "bank_transfer",
		MethodOther:        "other",
	}
}

// PaymentMethodFromString parses a payment method name.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// String returns the lowercase name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the payment method is one of the fixed enum values.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}
