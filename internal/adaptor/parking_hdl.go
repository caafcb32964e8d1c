package adaptor

import (
	"net/http"

	"parking-booking/internal/usecase"
	"parking-booking/pkg/utils"

	"go.uber.org/zap"
)

type ParkingHandler struct {
	service usecase.ParkingService
	log     *zap.Logger
}

func NewParkingHandler(service usecase.ParkingService, log *zap.Logger) *ParkingHandler {
	return &ParkingHandler{
		service: service,
		log:     log.With(zap.String("handler", "parking")),
	}
}

// ListFloors handles GET /api/floors
func (h *ParkingHandler) ListFloors(w http.ResponseWriter, r *http.Request) {
	floors, err := h.service.ListFloors(r.Context())
	if err != nil {
		renderServiceError(w, h.log, err, "list floors")
		return
	}

	utils.ResponseSuccess(w, "success", floors)
}

// ViewSlots handles GET /api/slots?vehicle_type=CAR&floor=1
func (h *ParkingHandler) ViewSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	vehicleType := query.Get("vehicle_type")
	if vehicleType == "" {
		utils.ResponseBadRequest(w, "vehicle_type is required", nil)
		return
	}

	floor := utils.ParseInt(query.Get("floor"), 1)

	view, err := h.service.ViewSlots(r.Context(), vehicleType, floor)
	if err != nil {
		renderServiceError(w, h.log, err, "view slots")
		return
	}

	utils.ResponseSuccess(w, "success", view)
}
