package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parking-booking/internal/data/entity"
)

var ticketTestColumns = []string{
	"id", "reference", "vehicle_number", "phone", "email", "vehicle_type",
	"slot_id", "qr_code", "check_in", "check_out", "initial_payment", "final_amount",
}

func activeTicketRow(id int64, checkIn time.Time) *pgxmock.Rows {
	slotID := int64(42)
	return pgxmock.NewRows(ticketTestColumns).AddRow(
		id, "AB12CD34", "RJ14 CC 1234", "+919876543210", "user@example.com",
		entity.VehicleTypeCar, &slotID, "", checkIn, (*time.Time)(nil), 100, (*int)(nil),
	)
}

func TestTicketSettle(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())

	mock.ExpectExec(`UPDATE tickets SET check_out = \$2, final_amount = \$3`).
		WithArgs(int64(7), pgxmock.AnyArg(), 80).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	settled, err := repo.Settle(context.Background(), mock, 7, time.Now(), 80)
	require.NoError(t, err)
	assert.True(t, settled)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketSettleAlreadySettled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())

	// check_out IS NULL guard matched nothing
	mock.ExpectExec(`UPDATE tickets SET check_out = \$2, final_amount = \$3`).
		WithArgs(int64(7), pgxmock.AnyArg(), 80).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	settled, err := repo.Settle(context.Background(), mock, 7, time.Now(), 80)
	require.NoError(t, err)
	assert.False(t, settled)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketFindActiveByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())
	checkIn := time.Now().Add(-2 * time.Hour)

	mock.ExpectQuery(`FROM tickets WHERE id = \$1 AND check_out IS NULL`).
		WithArgs(int64(7)).
		WillReturnRows(activeTicketRow(7, checkIn))

	ticket, err := repo.FindActiveByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Equal(t, "AB12CD34", ticket.Reference)
	assert.False(t, ticket.Settled())
	require.NotNil(t, ticket.SlotID)
	assert.Equal(t, int64(42), *ticket.SlotID)

	// Unknown and settled tokens are the same miss
	mock.ExpectQuery(`FROM tickets WHERE id = \$1 AND check_out IS NULL`).
		WithArgs(int64(8)).
		WillReturnError(pgx.ErrNoRows)

	ticket, err = repo.FindActiveByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, ticket)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketCreateReturnsID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepository(mock, zap.NewNop())

	slotID := int64(42)

	mock.ExpectQuery(`INSERT INTO tickets`).
		WithArgs("AB12CD34", "RJ14 CC 1234", "+919876543210", "user@example.com",
			entity.VehicleTypeCar, &slotID, "", pgxmock.AnyArg(), 100).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(99)))

	ticket := &entity.Ticket{
		Reference:      "AB12CD34",
		VehicleNumber:  "RJ14 CC 1234",
		Phone:          "+919876543210",
		Email:          "user@example.com",
		VehicleType:    entity.VehicleTypeCar,
		SlotID:         &slotID,
		CheckIn:        time.Now(),
		InitialPayment: 100,
	}

	require.NoError(t, repo.Create(context.Background(), mock, ticket))
	assert.Equal(t, int64(99), ticket.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
