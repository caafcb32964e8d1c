package wire

import (
	"parking-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireParking(r chi.Router, parkingHandler *adaptor.ParkingHandler) {
	// GET /api/floors - list floors with price increments (public)
	r.Get("/api/floors", parkingHandler.ListFloors)

	// GET /api/slots - free slots for a vehicle type on a floor (public)
	r.Get("/api/slots", parkingHandler.ViewSlots)
}
