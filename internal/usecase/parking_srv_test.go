package usecase

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
	"parking-booking/internal/data/repository"
)

func newParkingFixture(t *testing.T) (ParkingService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	log := zap.NewNop()
	repo := repository.NewRepository(mock, log)

	return NewParkingService(repo, log), mock
}

func TestViewSlots(t *testing.T) {
	svc, mock := newParkingFixture(t)

	mock.ExpectQuery(`FROM floors WHERE number = \$1`).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows(floorTestColumns).AddRow(int64(2), 2, 5))
	mock.ExpectQuery(`FROM vehicle_type_configs WHERE vehicle_type = \$1`).
		WithArgs(entity.VehicleTypeCar).
		WillReturnRows(pgxmock.NewRows(configTestColumns).
			AddRow(int64(1), entity.VehicleTypeCar, 50, 5, 10, time.Now()))
	mock.ExpectQuery(`FROM slots WHERE floor_id = \$1 AND vehicle_type = \$2 AND is_available = true ORDER BY section, slot_number`).
		WithArgs(int64(2), entity.VehicleTypeCar).
		WillReturnRows(pgxmock.NewRows(slotTestColumns).
			AddRow(int64(10), int64(2), "A", 1, entity.VehicleTypeCar, true).
			AddRow(int64(11), int64(2), "A", 2, entity.VehicleTypeCar, true).
			AddRow(int64(60), int64(2), "B", 1, entity.VehicleTypeCar, true))
	mock.ExpectQuery(`GROUP BY section`).
		WithArgs(int64(2), entity.VehicleTypeCar).
		WillReturnRows(pgxmock.NewRows([]string{"section", "count"}).
			AddRow("A", 2).
			AddRow("B", 1))

	view, err := svc.ViewSlots(context.Background(), "car", 2)
	require.NoError(t, err)

	assert.Equal(t, "CAR", view.VehicleType)
	assert.Equal(t, 2, view.Floor.Number)
	assert.Equal(t, 5, view.Floor.PriceIncrement)
	assert.Equal(t, 50, view.BasePrice)
	require.Len(t, view.Slots, 3)
	assert.Equal(t, int64(10), view.Slots[0].ID)
	require.Len(t, view.Sections, 2)
	assert.Equal(t, 2, view.Sections[0].Available)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewSlotsUnknownVehicleType(t *testing.T) {
	svc, _ := newParkingFixture(t)

	_, err := svc.ViewSlots(context.Background(), "boat", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestViewSlotsUnknownFloor(t *testing.T) {
	svc, mock := newParkingFixture(t)

	mock.ExpectQuery(`FROM floors WHERE number = \$1`).
		WithArgs(99).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.ViewSlots(context.Background(), "car", 99)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewSlotsUnseededSystem(t *testing.T) {
	svc, mock := newParkingFixture(t)

	mock.ExpectQuery(`FROM floors WHERE number = \$1`).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(floorTestColumns).AddRow(int64(1), 1, 0))
	mock.ExpectQuery(`FROM vehicle_type_configs WHERE vehicle_type = \$1`).
		WithArgs(entity.VehicleTypeBike).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.ViewSlots(context.Background(), "bike", 1)
	assert.ErrorIs(t, err, ErrConfigMissing)

	assert.NoError(t, mock.ExpectationsWereMet())
}
