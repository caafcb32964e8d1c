package entity

import "time"

// Ticket is a booking record spanning check-in to check-out.
//
// SlotID is a weak reference: the slot is owned by its floor and may be
// deleted independently, in which case SlotID is nulled but the ticket
// survives. A ticket is ACTIVE while CheckOut is nil and becomes SETTLED
// exactly once, when checkout sets CheckOut and FinalAmount together.
type Ticket struct {
	ID             int64       `db:"id"`
	Reference      string      `db:"reference"`
	VehicleNumber  string      `db:"vehicle_number"`
	Phone          string      `db:"phone"`
	Email          string      `db:"email"`
	VehicleType    VehicleType `db:"vehicle_type"`
	SlotID         *int64      `db:"slot_id"`
	QRCode         string      `db:"qr_code"` // relative media path, set after artifact generation
	CheckIn        time.Time   `db:"check_in"`
	CheckOut       *time.Time  `db:"check_out"`
	InitialPayment int         `db:"initial_payment"`
	FinalAmount    *int        `db:"final_amount"`
}

// Settled reports whether the ticket has been checked out
func (t *Ticket) Settled() bool {
	return t.CheckOut != nil
}
