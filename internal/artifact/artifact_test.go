package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQRGenerate(t *testing.T) {
	mediaDir := t.TempDir()
	gen := NewQRGenerator(mediaDir, zap.NewNop())

	relPath, err := gen.Generate(42, "http://localhost:8080/checkout/?token=42")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("qrcodes", "qr_token_42.png"), relPath)

	content, err := os.ReadFile(filepath.Join(mediaDir, relPath))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), content[:4])
}

func TestQREncode(t *testing.T) {
	gen := NewQRGenerator(t.TempDir(), zap.NewNop())

	png, err := gen.Encode("http://localhost:8080/checkout/?token=7")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestPDFToken(t *testing.T) {
	log := zap.NewNop()
	gen := NewPDFGenerator("Elite Parking", NewQRGenerator(t.TempDir(), log), log)

	pdfBytes, err := gen.Token(TokenData{
		TicketID:       7,
		Reference:      "AB12CD34",
		VehicleNumber:  "RJ14 CC 1234",
		Phone:          "+919876543210",
		Email:          "user@example.com",
		VehicleType:    "CAR",
		SlotLabel:      "Floor 2-B-1",
		CheckIn:        time.Date(2026, 3, 15, 11, 30, 0, 0, time.UTC),
		InitialPayment: 100,
		CheckoutURL:    "http://localhost:8080/checkout/?token=7",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, []byte("%PDF"), pdfBytes[:4])
}

func TestBookingConfirmation(t *testing.T) {
	checkIn := time.Date(2026, 3, 15, 11, 30, 0, 0, time.UTC)

	subject, body := BookingConfirmation(
		"Elite Parking", 7, "AB12CD34", "RJ14 CC 1234", "Floor 2-B-1",
		checkIn, "http://localhost:8080/checkout/?token=7",
	)

	assert.Equal(t, "Your Elite Parking token #7", subject)
	assert.Contains(t, body, "Token Number: 7")
	assert.Contains(t, body, "RJ14 CC 1234")
	assert.Contains(t, body, "Floor 2-B-1")
	assert.Contains(t, body, "http://localhost:8080/checkout/?token=7")
	assert.Contains(t, body, "15 Mar 2026 11:30")
}
