package artifact

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// TokenData is everything printed on a parking token PDF
type TokenData struct {
	TicketID       int64
	Reference      string
	VehicleNumber  string
	Phone          string
	Email          string
	VehicleType    string
	SlotLabel      string
	CheckIn        time.Time
	InitialPayment int
	CheckoutURL    string
}

// PDFGenerator renders the printable parking token: header, scannable
// checkout QR, token number and booking details.
type PDFGenerator struct {
	appName string
	qr      *QRGenerator
	log     *zap.Logger
}

func NewPDFGenerator(appName string, qr *QRGenerator, log *zap.Logger) *PDFGenerator {
	if appName == "" {
		appName = "Elite Parking"
	}
	return &PDFGenerator{
		appName: appName,
		qr:      qr,
		log:     log.With(zap.String("artifact", "pdf")),
	}
}

// Token renders the parking token PDF and returns its bytes
func (g *PDFGenerator) Token(data TokenData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	// Header
	pdf.SetFont("Helvetica", "B", 32)
	pdf.CellFormat(pageWidth-20, 16, g.appName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 18)
	pdf.CellFormat(pageWidth-20, 10, "Official Parking Token", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Checkout QR
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(pageWidth-20, 8, "Scan for Instant Checkout", "", 1, "C", false, 0, "")

	png, err := g.qr.Encode(data.CheckoutURL)
	if err != nil {
		g.log.Error("Failed to encode QR for PDF", zap.Error(err), zap.Int64("ticket_id", data.TicketID))
		return nil, err
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("checkout-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("checkout-qr", pageWidth/2-35, pdf.GetY()+2, 70, 70, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + 76)

	// Token number
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(pageWidth-20, 12, fmt.Sprintf("TOKEN NO: %d", data.TicketID), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Details
	details := []struct {
		label string
		value string
	}{
		{"Reference", data.Reference},
		{"Vehicle Number", data.VehicleNumber},
		{"Phone Number", data.Phone},
		{"Email", data.Email},
		{"Vehicle Type", data.VehicleType},
		{"Parking Slot", data.SlotLabel},
		{"Check-in Time", data.CheckIn.Format("02 January 2006, 03:04 PM")},
		{"Initial Payment", fmt.Sprintf("Rs. %d", data.InitialPayment)},
	}

	for _, d := range details {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(60, 10, d.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(pageWidth-90, 10, d.value, "", 1, "L", false, 0, "")
	}

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(pageWidth-20, 8, fmt.Sprintf("Thank you for choosing %s", g.appName), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		g.log.Error("Failed to render token PDF", zap.Error(err), zap.Int64("ticket_id", data.TicketID))
		return nil, fmt.Errorf("render token pdf: %w", err)
	}

	return buf.Bytes(), nil
}
