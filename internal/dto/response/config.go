package response

import (
	"time"

	"parking-booking/internal/data/entity"
)

type ConfigResponse struct {
	VehicleType  string    `json:"vehicle_type"`
	BasePrice    int       `json:"base_price"`
	BaseHours    int       `json:"base_hours"`
	ExtraPerHour int       `json:"extra_per_hour"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ConfigToResponse(config *entity.VehicleTypeConfig) ConfigResponse {
	return ConfigResponse{
		VehicleType:  config.VehicleType.String(),
		BasePrice:    config.BasePrice,
		BaseHours:    config.BaseHours,
		ExtraPerHour: config.ExtraPerHour,
		UpdatedAt:    config.UpdatedAt,
	}
}

type SeedResponse struct {
	Floors          int `json:"floors"`
	SlotsPerSection int `json:"slots_per_section"`
	SlotsSeeded     int `json:"slots_seeded"`
}
