package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"parking-booking/internal/dto/request"
	"parking-booking/internal/usecase"
	"parking-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Field-scoped validation before any state mutation
	req.Normalize()
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Booking rejected by validation", zap.Any("errors", validationErrors))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		renderServiceError(w, h.log, err, "create booking")
		return
	}

	message := "success"
	if len(booking.Warnings) > 0 {
		message = "booking created, some artifacts failed"
	}

	utils.ResponseCreated(w, message, booking)
}

// Checkout handles POST /api/checkout
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bill, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		renderServiceError(w, h.log, err, "checkout")
		return
	}

	utils.ResponseSuccess(w, "Checkout completed successfully", bill)
}

// TokenPDF handles GET /api/tickets/{id}/pdf
func (h *BookingHandler) TokenPDF(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	ticketID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Ticket ID must be a number", nil)
		return
	}

	pdfBytes, filename, err := h.service.TokenPDF(r.Context(), ticketID)
	if err != nil {
		renderServiceError(w, h.log, err, "render token pdf")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
