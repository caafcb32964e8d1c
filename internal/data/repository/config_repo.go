package repository

import (
	"context"
	"fmt"

	"parking-booking/internal/data/entity"
	"parking-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ConfigRepository interface {
	FindByVehicleType(ctx context.Context, vehicleType entity.VehicleType) (*entity.VehicleTypeConfig, error)
	FindAll(ctx context.Context) ([]*entity.VehicleTypeConfig, error)
	Update(ctx context.Context, config *entity.VehicleTypeConfig) error
	CreateIfAbsent(ctx context.Context, config *entity.VehicleTypeConfig) error
}

type configRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConfigRepository(db database.PgxIface, log *zap.Logger) ConfigRepository {
	return &configRepository{
		db:  db,
		log: log.With(zap.String("repository", "config")),
	}
}

func (r *configRepository) FindByVehicleType(ctx context.Context, vehicleType entity.VehicleType) (*entity.VehicleTypeConfig, error) {
	query := `
		SELECT id, vehicle_type, base_price, base_hours, extra_per_hour, updated_at
		FROM vehicle_type_configs
		WHERE vehicle_type = $1
	`

	var config entity.VehicleTypeConfig
	err := r.db.QueryRow(ctx, query, vehicleType).Scan(
		&config.ID,
		&config.VehicleType,
		&config.BasePrice,
		&config.BaseHours,
		&config.ExtraPerHour,
		&config.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find config",
			zap.Error(err),
			zap.String("vehicle_type", vehicleType.String()),
		)
		return nil, fmt.Errorf("failed to find config: %w", err)
	}

	return &config, nil
}

func (r *configRepository) FindAll(ctx context.Context) ([]*entity.VehicleTypeConfig, error) {
	query := `
		SELECT id, vehicle_type, base_price, base_hours, extra_per_hour, updated_at
		FROM vehicle_type_configs
		ORDER BY vehicle_type
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find configs", zap.Error(err))
		return nil, fmt.Errorf("failed to find configs: %w", err)
	}
	defer rows.Close()

	var configs []*entity.VehicleTypeConfig
	for rows.Next() {
		var config entity.VehicleTypeConfig
		err := rows.Scan(
			&config.ID,
			&config.VehicleType,
			&config.BasePrice,
			&config.BaseHours,
			&config.ExtraPerHour,
			&config.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan config row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan config: %w", err)
		}
		configs = append(configs, &config)
	}

	return configs, nil
}

func (r *configRepository) Update(ctx context.Context, config *entity.VehicleTypeConfig) error {
	query := `
		UPDATE vehicle_type_configs
		SET base_price = $2, base_hours = $3, extra_per_hour = $4, updated_at = NOW()
		WHERE vehicle_type = $1
	`

	result, err := r.db.Exec(ctx, query,
		config.VehicleType,
		config.BasePrice,
		config.BaseHours,
		config.ExtraPerHour,
	)

	if err != nil {
		r.log.Error("Failed to update config",
			zap.Error(err),
			zap.String("vehicle_type", config.VehicleType.String()),
		)
		return fmt.Errorf("failed to update config: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("config not found")
	}

	return nil
}

func (r *configRepository) CreateIfAbsent(ctx context.Context, config *entity.VehicleTypeConfig) error {
	query := `
		INSERT INTO vehicle_type_configs (vehicle_type, base_price, base_hours, extra_per_hour, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (vehicle_type) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		config.VehicleType,
		config.BasePrice,
		config.BaseHours,
		config.ExtraPerHour,
	)

	if err != nil {
		r.log.Error("Failed to create config",
			zap.Error(err),
			zap.String("vehicle_type", config.VehicleType.String()),
		)
		return fmt.Errorf("failed to create config: %w", err)
	}

	return nil
}
