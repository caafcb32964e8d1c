package response

import (
	"time"

	"parking-booking/internal/data/entity"
)

type TicketResponse struct {
	ID             int64      `json:"id"`
	Reference      string     `json:"reference"`
	VehicleNumber  string     `json:"vehicle_number"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	VehicleType    string     `json:"vehicle_type"`
	SlotID         *int64     `json:"slot_id"`
	CheckIn        time.Time  `json:"check_in"`
	CheckOut       *time.Time `json:"check_out"`
	InitialPayment int        `json:"initial_payment"`
	FinalAmount    *int       `json:"final_amount"`
	Status         string     `json:"status"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	status := "ACTIVE"
	if ticket.Settled() {
		status = "SETTLED"
	}

	return TicketResponse{
		ID:             ticket.ID,
		Reference:      ticket.Reference,
		VehicleNumber:  ticket.VehicleNumber,
		Phone:          ticket.Phone,
		Email:          ticket.Email,
		VehicleType:    ticket.VehicleType.String(),
		SlotID:         ticket.SlotID,
		CheckIn:        ticket.CheckIn,
		CheckOut:       ticket.CheckOut,
		InitialPayment: ticket.InitialPayment,
		FinalAmount:    ticket.FinalAmount,
		Status:         status,
	}
}
