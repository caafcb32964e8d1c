package entity

import "strings"

type VehicleType string

const (
	VehicleTypeCar  VehicleType = "CAR"  // 4 wheeler
	VehicleTypeBike VehicleType = "BIKE" // 2 wheeler
)

// ParseVehicleType normalizes and validates a vehicle type string
func ParseVehicleType(s string) (VehicleType, bool) {
	switch VehicleType(strings.ToUpper(strings.TrimSpace(s))) {
	case VehicleTypeCar:
		return VehicleTypeCar, true
	case VehicleTypeBike:
		return VehicleTypeBike, true
	default:
		return "", false
	}
}

func (v VehicleType) String() string {
	return string(v)
}
