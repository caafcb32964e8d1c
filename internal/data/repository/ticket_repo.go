package repository

import (
	"context"
	"fmt"
	"time"

	"parking-booking/internal/data/entity"
	"parking-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// Create runs inside the booking transaction; q may be a pgx.Tx
	Create(ctx context.Context, q database.Querier, ticket *entity.Ticket) error

	FindByID(ctx context.Context, id int64) (*entity.Ticket, error)
	FindActiveByID(ctx context.Context, id int64) (*entity.Ticket, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error)
	Count(ctx context.Context) (int64, error)
	UpdateQRCode(ctx context.Context, id int64, path string) error

	// Settle flips ACTIVE -> SETTLED; returns false when the ticket is
	// unknown or already settled (the two are indistinguishable)
	Settle(ctx context.Context, q database.Querier, id int64, checkOut time.Time, finalAmount int) (bool, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

const ticketColumns = `id, reference, vehicle_number, phone, email, vehicle_type, slot_id, qr_code, check_in, check_out, initial_payment, final_amount`

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.Reference,
		&ticket.VehicleNumber,
		&ticket.Phone,
		&ticket.Email,
		&ticket.VehicleType,
		&ticket.SlotID,
		&ticket.QRCode,
		&ticket.CheckIn,
		&ticket.CheckOut,
		&ticket.InitialPayment,
		&ticket.FinalAmount,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Create(ctx context.Context, q database.Querier, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (reference, vehicle_number, phone, email, vehicle_type, slot_id, qr_code, check_in, initial_payment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		ticket.Reference,
		ticket.VehicleNumber,
		ticket.Phone,
		ticket.Email,
		ticket.VehicleType,
		ticket.SlotID,
		ticket.QRCode,
		ticket.CheckIn,
		ticket.InitialPayment,
	).Scan(&ticket.ID)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("vehicle_number", ticket.VehicleNumber),
		)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	ticket, err := scanTicket(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID", zap.Error(err), zap.Int64("ticket_id", id))
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return ticket, nil
}

func (r *ticketRepository) FindActiveByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1 AND check_out IS NULL`

	ticket, err := scanTicket(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		// Unknown id and already-settled ticket look identical here
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active ticket", zap.Error(err), zap.Int64("ticket_id", id))
		return nil, fmt.Errorf("failed to find active ticket: %w", err)
	}

	return ticket, nil
}

func (r *ticketRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY id DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list tickets", zap.Error(err))
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

func (r *ticketRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&total); err != nil {
		r.log.Error("Failed to count tickets", zap.Error(err))
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return total, nil
}

func (r *ticketRepository) UpdateQRCode(ctx context.Context, id int64, path string) error {
	query := `UPDATE tickets SET qr_code = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, path)
	if err != nil {
		r.log.Error("Failed to update ticket QR path", zap.Error(err), zap.Int64("ticket_id", id))
		return fmt.Errorf("failed to update ticket qr code: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket not found")
	}

	return nil
}

func (r *ticketRepository) Settle(ctx context.Context, q database.Querier, id int64, checkOut time.Time, finalAmount int) (bool, error) {
	query := `
		UPDATE tickets
		SET check_out = $2, final_amount = $3
		WHERE id = $1 AND check_out IS NULL
	`

	result, err := q.Exec(ctx, query, id, checkOut, finalAmount)
	if err != nil {
		r.log.Error("Failed to settle ticket", zap.Error(err), zap.Int64("ticket_id", id))
		return false, fmt.Errorf("failed to settle ticket: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
