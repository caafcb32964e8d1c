package entity

import "time"

// VehicleTypeConfig holds pricing parameters per vehicle type.
// One row per vehicle type, mutated only by administrators.
type VehicleTypeConfig struct {
	ID           int64       `db:"id" json:"id"`
	VehicleType  VehicleType `db:"vehicle_type" json:"vehicle_type"`
	BasePrice    int         `db:"base_price" json:"base_price"`
	BaseHours    int         `db:"base_hours" json:"base_hours"`
	ExtraPerHour int         `db:"extra_per_hour" json:"extra_per_hour"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}
