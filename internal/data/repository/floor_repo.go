package repository

import (
	"context"
	"fmt"

	"parking-booking/internal/data/entity"
	"parking-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FloorRepository interface {
	FindAll(ctx context.Context) ([]*entity.Floor, error)
	FindByID(ctx context.Context, id int64) (*entity.Floor, error)
	FindByNumber(ctx context.Context, number int) (*entity.Floor, error)
	GetOrCreate(ctx context.Context, number, priceIncrement int) (*entity.Floor, error)
}

type floorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFloorRepository(db database.PgxIface, log *zap.Logger) FloorRepository {
	return &floorRepository{
		db:  db,
		log: log.With(zap.String("repository", "floor")),
	}
}

func (r *floorRepository) FindAll(ctx context.Context) ([]*entity.Floor, error) {
	query := `SELECT id, number, price_increment FROM floors ORDER BY number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find floors", zap.Error(err))
		return nil, fmt.Errorf("failed to find floors: %w", err)
	}
	defer rows.Close()

	var floors []*entity.Floor
	for rows.Next() {
		var floor entity.Floor
		if err := rows.Scan(&floor.ID, &floor.Number, &floor.PriceIncrement); err != nil {
			r.log.Error("Failed to scan floor row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan floor: %w", err)
		}
		floors = append(floors, &floor)
	}

	return floors, nil
}

func (r *floorRepository) FindByID(ctx context.Context, id int64) (*entity.Floor, error) {
	query := `SELECT id, number, price_increment FROM floors WHERE id = $1`

	var floor entity.Floor
	err := r.db.QueryRow(ctx, query, id).Scan(&floor.ID, &floor.Number, &floor.PriceIncrement)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find floor by ID", zap.Error(err), zap.Int64("floor_id", id))
		return nil, fmt.Errorf("failed to find floor: %w", err)
	}

	return &floor, nil
}

func (r *floorRepository) FindByNumber(ctx context.Context, number int) (*entity.Floor, error) {
	query := `SELECT id, number, price_increment FROM floors WHERE number = $1`

	var floor entity.Floor
	err := r.db.QueryRow(ctx, query, number).Scan(&floor.ID, &floor.Number, &floor.PriceIncrement)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find floor by number", zap.Error(err), zap.Int("number", number))
		return nil, fmt.Errorf("failed to find floor: %w", err)
	}

	return &floor, nil
}

// GetOrCreate inserts the floor if absent; existing floors keep their
// configured price increment (create-if-absent seed semantics)
func (r *floorRepository) GetOrCreate(ctx context.Context, number, priceIncrement int) (*entity.Floor, error) {
	query := `
		INSERT INTO floors (number, price_increment)
		VALUES ($1, $2)
		ON CONFLICT (number) DO NOTHING
		RETURNING id, number, price_increment
	`

	var floor entity.Floor
	err := r.db.QueryRow(ctx, query, number, priceIncrement).Scan(&floor.ID, &floor.Number, &floor.PriceIncrement)

	if err == pgx.ErrNoRows {
		// Already exists
		return r.FindByNumber(ctx, number)
	}
	if err != nil {
		r.log.Error("Failed to create floor", zap.Error(err), zap.Int("number", number))
		return nil, fmt.Errorf("failed to create floor: %w", err)
	}

	return &floor, nil
}
