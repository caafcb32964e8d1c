package response

import "time"

type BookingResponse struct {
	TicketID       int64     `json:"ticket_id"`
	Reference      string    `json:"reference"`
	VehicleNumber  string    `json:"vehicle_number"`
	VehicleType    string    `json:"vehicle_type"`
	Slot           string    `json:"slot"`
	CheckIn        time.Time `json:"check_in"`
	InitialPayment int       `json:"initial_payment"`
	QRCode         string    `json:"qr_code,omitempty"`
	CheckoutURL    string    `json:"checkout_url"`
	PDFURL         string    `json:"pdf_url"`
	// Warnings lists soft artifact failures (QR, email); the booking itself
	// succeeded whenever this response is returned
	Warnings []string `json:"warnings,omitempty"`
}

type BillResponse struct {
	TicketID      int64     `json:"ticket_id"`
	VehicleNumber string    `json:"vehicle_number"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Hours         int       `json:"hours"`
	Total         int       `json:"total"`
	Refund        int       `json:"refund"`
	Due           int       `json:"due"`
}
