package request

import "parking-booking/pkg/utils"

type CreateBookingRequest struct {
	SlotID         int64  `json:"slot_id" validate:"required"`
	VehicleNumber  string `json:"vehicle_number" validate:"required,vehicle_number"`
	Phone          string `json:"phone" validate:"required,phone"`
	Email          string `json:"email" validate:"required,email"`
	InitialPayment int    `json:"initial_payment" validate:"gte=0"`
}

// Normalize case-folds the boundary fields before validation: plates are
// stored upper-case, addresses lower-case. Missing payment stays 0.
func (r *CreateBookingRequest) Normalize() {
	r.VehicleNumber = utils.NormalizeVehicleNumber(r.VehicleNumber)
	r.Email = utils.NormalizeEmail(r.Email)
}

type CheckoutRequest struct {
	Token string `json:"token" validate:"required"`
}
