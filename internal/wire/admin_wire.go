package wire

import (
	"parking-booking/internal/adaptor"
	"parking-booking/pkg/middleware"
	"parking-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, config *utils.Config, logger *zap.Logger) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin, logger))

		// GET /api/admin/configs - pricing configs for all vehicle types
		r.Get("/configs", adminHandler.ListConfigs)

		// PUT /api/admin/configs/{vehicle_type} - update pricing for one vehicle type
		r.Put("/configs/{vehicle_type}", adminHandler.UpdateConfig)

		// POST /api/admin/seed - create floors, slots and default pricing
		r.Post("/seed", adminHandler.Seed)

		// GET /api/admin/tickets - paginated ticket audit
		r.Get("/tickets", adminHandler.ListTickets)
	})
}
