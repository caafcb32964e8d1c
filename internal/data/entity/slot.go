package entity

import "fmt"

// Slot is a physical parking space. The partition (floor, section,
// vehicle type) is the unit of allocation contention; (floor_id, section,
// slot_number) is unique.
type Slot struct {
	ID          int64       `db:"id"`
	FloorID     int64       `db:"floor_id"`
	Section     string      `db:"section"` // single letter: A, B, C, ...
	SlotNumber  int         `db:"slot_number"`
	VehicleType VehicleType `db:"vehicle_type"`
	IsAvailable bool        `db:"is_available"`
}

// Label renders the human-readable slot position, e.g. "Floor 3-B-12"
func (s *Slot) Label(floorNumber int) string {
	return fmt.Sprintf("Floor %d-%s-%d", floorNumber, s.Section, s.SlotNumber)
}
