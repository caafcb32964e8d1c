package repository

import (
	"context"
	"fmt"

	"parking-booking/internal/data/entity"
	"parking-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SectionCount is the number of free slots in one section of a floor
type SectionCount struct {
	Section   string `json:"section"`
	Available int    `json:"available"`
}

type SlotRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Slot, error)
	FindAvailable(ctx context.Context, floorID int64, vehicleType entity.VehicleType) ([]*entity.Slot, error)
	CountAvailableBySection(ctx context.Context, floorID int64, vehicleType entity.VehicleType) ([]SectionCount, error)
	CreateBatchIfAbsent(ctx context.Context, slots []*entity.Slot) error

	// Allocation path; q may be a transaction
	Allocate(ctx context.Context, q database.Querier, vehicleType entity.VehicleType, floorID int64, section string) (*entity.Slot, error)
	Release(ctx context.Context, q database.Querier, slotID int64) error
}

type slotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSlotRepository(db database.PgxIface, log *zap.Logger) SlotRepository {
	return &slotRepository{
		db:  db,
		log: log.With(zap.String("repository", "slot")),
	}
}

func (r *slotRepository) FindByID(ctx context.Context, id int64) (*entity.Slot, error) {
	query := `
		SELECT id, floor_id, section, slot_number, vehicle_type, is_available
		FROM slots
		WHERE id = $1
	`

	var slot entity.Slot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.FloorID,
		&slot.Section,
		&slot.SlotNumber,
		&slot.VehicleType,
		&slot.IsAvailable,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find slot by ID", zap.Error(err), zap.Int64("slot_id", id))
		return nil, fmt.Errorf("failed to find slot: %w", err)
	}

	return &slot, nil
}

func (r *slotRepository) FindAvailable(ctx context.Context, floorID int64, vehicleType entity.VehicleType) ([]*entity.Slot, error) {
	query := `
		SELECT id, floor_id, section, slot_number, vehicle_type, is_available
		FROM slots
		WHERE floor_id = $1 AND vehicle_type = $2 AND is_available = true
		ORDER BY section, slot_number
	`

	rows, err := r.db.Query(ctx, query, floorID, vehicleType)
	if err != nil {
		r.log.Error("Failed to find available slots",
			zap.Error(err),
			zap.Int64("floor_id", floorID),
			zap.String("vehicle_type", vehicleType.String()),
		)
		return nil, fmt.Errorf("failed to find available slots: %w", err)
	}
	defer rows.Close()

	var slots []*entity.Slot
	for rows.Next() {
		var slot entity.Slot
		err := rows.Scan(
			&slot.ID,
			&slot.FloorID,
			&slot.Section,
			&slot.SlotNumber,
			&slot.VehicleType,
			&slot.IsAvailable,
		)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, nil
}

func (r *slotRepository) CountAvailableBySection(ctx context.Context, floorID int64, vehicleType entity.VehicleType) ([]SectionCount, error) {
	query := `
		SELECT section, COUNT(*)
		FROM slots
		WHERE floor_id = $1 AND vehicle_type = $2 AND is_available = true
		GROUP BY section
		ORDER BY section
	`

	rows, err := r.db.Query(ctx, query, floorID, vehicleType)
	if err != nil {
		r.log.Error("Failed to count available slots",
			zap.Error(err),
			zap.Int64("floor_id", floorID),
			zap.String("vehicle_type", vehicleType.String()),
		)
		return nil, fmt.Errorf("failed to count available slots: %w", err)
	}
	defer rows.Close()

	var counts []SectionCount
	for rows.Next() {
		var sc SectionCount
		if err := rows.Scan(&sc.Section, &sc.Available); err != nil {
			r.log.Error("Failed to scan section count", zap.Error(err))
			return nil, fmt.Errorf("failed to scan section count: %w", err)
		}
		counts = append(counts, sc)
	}

	return counts, nil
}

// Allocate claims one free slot in the partition (vehicle type, floor,
// section) inside the caller's transaction. Rows locked by concurrent
// allocators are skipped rather than waited on; the lowest free slot number
// wins. Returns nil without error when nothing is lockable.
func (r *slotRepository) Allocate(ctx context.Context, q database.Querier, vehicleType entity.VehicleType, floorID int64, section string) (*entity.Slot, error) {
	query := `
		SELECT id, floor_id, section, slot_number, vehicle_type, is_available
		FROM slots
		WHERE vehicle_type = $1 AND floor_id = $2 AND section = $3 AND is_available = true
		ORDER BY slot_number
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`

	var slot entity.Slot
	err := q.QueryRow(ctx, query, vehicleType, floorID, section).Scan(
		&slot.ID,
		&slot.FloorID,
		&slot.Section,
		&slot.SlotNumber,
		&slot.VehicleType,
		&slot.IsAvailable,
	)

	if err == pgx.ErrNoRows {
		// Nothing free or everything locked by in-flight bookings
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock slot for allocation",
			zap.Error(err),
			zap.String("vehicle_type", vehicleType.String()),
			zap.Int64("floor_id", floorID),
			zap.String("section", section),
		)
		return nil, fmt.Errorf("failed to lock slot: %w", err)
	}

	update := `UPDATE slots SET is_available = false WHERE id = $1`
	if _, err := q.Exec(ctx, update, slot.ID); err != nil {
		r.log.Error("Failed to mark slot unavailable",
			zap.Error(err),
			zap.Int64("slot_id", slot.ID),
		)
		return nil, fmt.Errorf("failed to mark slot unavailable: %w", err)
	}

	slot.IsAvailable = false
	return &slot, nil
}

// Release reopens a slot after settlement. Zero rows affected is fine: the
// slot may have been deleted while the ticket was active.
func (r *slotRepository) Release(ctx context.Context, q database.Querier, slotID int64) error {
	query := `UPDATE slots SET is_available = true WHERE id = $1`

	if _, err := q.Exec(ctx, query, slotID); err != nil {
		r.log.Error("Failed to release slot", zap.Error(err), zap.Int64("slot_id", slotID))
		return fmt.Errorf("failed to release slot: %w", err)
	}

	return nil
}

func (r *slotRepository) CreateBatchIfAbsent(ctx context.Context, slots []*entity.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO slots (floor_id, section, slot_number, vehicle_type, is_available) VALUES `
	args := []interface{}{}

	for i, slot := range slots {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
			i*5+1, i*5+2, i*5+3, i*5+4, i*5+5)

		args = append(args,
			slot.FloorID,
			slot.Section,
			slot.SlotNumber,
			slot.VehicleType,
			slot.IsAvailable,
		)
	}

	query += ` ON CONFLICT (floor_id, section, slot_number) DO NOTHING`

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch slots",
			zap.Error(err),
			zap.Int("count", len(slots)),
		)
		return fmt.Errorf("failed to create batch slots: %w", err)
	}

	return nil
}
