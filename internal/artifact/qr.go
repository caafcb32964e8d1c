package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// QRGenerator renders the checkout URL of a ticket as a PNG under the media
// dir. One image per ticket, named deterministically from the ticket id.
type QRGenerator struct {
	mediaDir string
	log      *zap.Logger
}

func NewQRGenerator(mediaDir string, log *zap.Logger) *QRGenerator {
	return &QRGenerator{
		mediaDir: mediaDir,
		log:      log.With(zap.String("artifact", "qr")),
	}
}

// Generate writes the QR PNG and returns its media-relative path
func (g *QRGenerator) Generate(ticketID int64, checkoutURL string) (string, error) {
	relPath := filepath.Join("qrcodes", fmt.Sprintf("qr_token_%d.png", ticketID))
	fullPath := filepath.Join(g.mediaDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("create qr dir: %w", err)
	}

	if err := qrcode.WriteFile(checkoutURL, qrcode.Medium, 512, fullPath); err != nil {
		g.log.Error("Failed to write QR image",
			zap.Error(err),
			zap.Int64("ticket_id", ticketID),
		)
		return "", fmt.Errorf("write qr image: %w", err)
	}

	return relPath, nil
}

// Encode returns the QR PNG bytes without touching disk (used for the PDF)
func (g *QRGenerator) Encode(checkoutURL string) ([]byte, error) {
	png, err := qrcode.Encode(checkoutURL, qrcode.Medium, 512)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
