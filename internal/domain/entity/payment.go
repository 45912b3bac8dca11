// Package entity contains the core business objects of the project.
package entity

// PaymentMethodType classifies how a payment method settles.
type PaymentMethodType string

const (
	// PaymentMethodCOD is cash on delivery.
	PaymentMethodCOD PaymentMethodType = "cod"
	// PaymentMethodBank is a manual bank transfer.
	PaymentMethodBank PaymentMethodType = "bank"
	// PaymentMethodCard is a credit/debit card payment.
	PaymentMethodCard PaymentMethodType = "card"
)

// PaymentMethod describes a way customers can pay. Methods are loaded from
// the catalog source and are read-only.
type PaymentMethod struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"` // Vietnamese display label, stored on orders.
	Type        PaymentMethodType `json:"type"`
	Icon        string            `json:"icon"`
	Description string            `json:"description"`
}

// PaymentInfo carries the method choice made during checkout plus the
// card fields that are only required when the method is a card payment.
type PaymentInfo struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	CardHolder string `json:"cardHolder,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	BankCode   string `json:"bankCode,omitempty"`
}
