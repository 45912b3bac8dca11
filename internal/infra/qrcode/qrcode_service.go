package qrcode

import (
	"encoding/json"
	"fmt"

	"giftie/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePaymentQR generates a QR code for a bank-transfer payment
func (s *qrcodeService) GeneratePaymentQR(payment service.PaymentQR) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		OrderID: payment.OrderID,
		Amount:  payment.Amount,
		Content: payment.Content,
		Type:    "payment",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePaymentQR parses QR code data back into a payment payload
func (s *qrcodeService) ParsePaymentQR(qrData string) (service.PaymentQR, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return service.PaymentQR{}, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "payment" {
		return service.PaymentQR{}, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.OrderID == "" {
		return service.PaymentQR{}, fmt.Errorf("QR code missing order id")
	}

	return service.PaymentQR{
		OrderID: data.OrderID,
		Amount:  data.Amount,
		Content: data.Content,
	}, nil
}
