package repository

import (
	"parking-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	// DB is exposed so services can open the booking/settlement transactions
	DB database.PgxIface

	Config ConfigRepository
	Floor  FloorRepository
	Slot   SlotRepository
	Ticket TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:     db,
		Config: NewConfigRepository(db, log),
		Floor:  NewFloorRepository(db, log),
		Slot:   NewSlotRepository(db, log),
		Ticket: NewTicketRepository(db, log),
	}
}
