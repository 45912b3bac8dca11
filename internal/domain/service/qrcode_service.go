package service

// PaymentQR is the payload encoded into a bank-transfer QR code.
type PaymentQR struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"` // VND
	Content string `json:"content"`
}

// QRCodeService renders and parses payment QR codes for bank-transfer orders.
type QRCodeService interface {
	// GeneratePaymentQR renders a PNG QR code for the given payment.
	GeneratePaymentQR(payment PaymentQR) ([]byte, error)

	// ParsePaymentQR decodes QR payload data back into a PaymentQR.
	ParsePaymentQR(qrData string) (PaymentQR, error)
}
