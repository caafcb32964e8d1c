package wire

import (
	"parking-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - allocate a slot and issue a ticket (public)
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// POST /api/checkout - settle a ticket by token (public)
	r.Post("/api/checkout", bookingHandler.Checkout)

	// GET /api/tickets/{id}/pdf - downloadable parking token (public)
	r.Get("/api/tickets/{id}/pdf", bookingHandler.TokenPDF)
}
