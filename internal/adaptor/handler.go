package adaptor

import (
	"errors"
	"net/http"

	"parking-booking/internal/usecase"
	"parking-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Parking *ParkingHandler
	Booking *BookingHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Parking: NewParkingHandler(service.Parking, log),
		Booking: NewBookingHandler(service.Booking, log),
		Admin:   NewAdminHandler(service.Admin, log),
	}
}

// renderServiceError maps the tagged service error kinds onto HTTP
// responses. One place, checked exhaustively; unclassified errors never
// leak details past a generic 500.
func renderServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrSlotTaken):
		log.Info(operation+" lost slot to concurrent booking", zap.Error(err))
		utils.ResponseConflict(w, "Sorry, this slot was just taken by another customer. Please pick another slot.")

	case errors.Is(err, usecase.ErrTicketNotFound):
		log.Warn(operation+" token rejected", zap.Error(err))
		utils.ResponseNotFound(w, "The token you entered is either invalid or has already been checked out.")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrConfigMissing):
		log.Error(operation+" hit uninitialized pricing config", zap.Error(err))
		utils.ResponseInternalError(w, "Parking system is not initialized")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
