package usecase

import (
	"math"
	"time"

	"parking-booking/internal/data/entity"
)

// Bill is the settled amount breakdown for one ticket
type Bill struct {
	Hours  int `json:"hours"`
	Total  int `json:"total"`
	Refund int `json:"refund"`
	Due    int `json:"due"`
}

// CalculateBill computes the parking fee for a stay from checkIn to now.
//
// Hours are billed with a ceiling: one second into a new hour counts as a
// full hour. The first BaseHours form a flat block covered by the base
// price; only hours beyond it are charged ExtraPerHour. The floor surcharge
// is additive and applied once, independent of duration; a ticket whose
// slot reference was cleared bills with floorIncrement 0.
//
// Exactly one of Refund/Due is nonzero unless the initial payment matches
// the total. The function is pure; the caller persists check-out and
// final amount and releases the slot.
func CalculateBill(checkIn, now time.Time, config *entity.VehicleTypeConfig, floorIncrement, initialPayment int) Bill {
	hours := int(math.Ceil(now.Sub(checkIn).Seconds() / 3600))

	basePrice := config.BasePrice + floorIncrement

	total := basePrice
	if hours > config.BaseHours {
		total += (hours - config.BaseHours) * config.ExtraPerHour
	}

	refund := initialPayment - total
	if refund < 0 {
		refund = 0
	}
	due := total - initialPayment
	if due < 0 {
		due = 0
	}

	return Bill{
		Hours:  hours,
		Total:  total,
		Refund: refund,
		Due:    due,
	}
}
