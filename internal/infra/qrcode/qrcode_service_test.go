package qrcode

import (
	"encoding/json"
	"testing"

	"giftie/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GeneratePaymentQR(service.PaymentQR{
		OrderID: "ORD1737000000000",
		Amount:  450000,
		Content: "GIFTIE ORD1737000000000",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GeneratePaymentQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "M")

			qrBytes, err := svc.GeneratePaymentQR(service.PaymentQR{
				OrderID: "ORD1737000000000",
				Amount:  120000,
				Content: "GIFTIE ORD1737000000000",
			})
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParsePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	// Create valid QR data
	data := QRCodeData{
		OrderID: "ORD1737000000000",
		Amount:  450000,
		Content: "GIFTIE ORD1737000000000",
		Type:    "payment",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	// Parse the QR data
	payment, err := svc.ParsePaymentQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "ORD1737000000000", payment.OrderID)
	assert.Equal(t, int64(450000), payment.Amount)
	assert.Equal(t, "GIFTIE ORD1737000000000", payment.Content)
}

func TestQRCodeService_ParsePaymentQR_InvalidJSON(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParsePaymentQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParsePaymentQR_InvalidType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	// Create QR data with invalid type
	data := QRCodeData{
		OrderID: "ORD1737000000000",
		Amount:  450000,
		Type:    "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = svc.ParsePaymentQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParsePaymentQR_MissingOrderID(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	data := QRCodeData{
		Amount: 450000,
		Type:   "payment",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = svc.ParsePaymentQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing order id")
}
