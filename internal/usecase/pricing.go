package usecase

import (
	"context"
	"fmt"

	"parking-booking/internal/data/cache"
	"parking-booking/internal/data/entity"
	"parking-booking/internal/data/repository"

	"go.uber.org/zap"
)

// PricingResolver is the read-through pricing lookup: Redis first, then the
// database, writing back on a miss. Admin edits call Invalidate so the next
// read sees fresh numbers before the TTL expires.
type PricingResolver struct {
	repo  repository.ConfigRepository
	cache *cache.ConfigCache
	log   *zap.Logger
}

func NewPricingResolver(repo repository.ConfigRepository, configCache *cache.ConfigCache, log *zap.Logger) *PricingResolver {
	return &PricingResolver{
		repo:  repo,
		cache: configCache,
		log:   log.With(zap.String("service", "pricing")),
	}
}

func (p *PricingResolver) Config(ctx context.Context, vehicleType entity.VehicleType) (*entity.VehicleTypeConfig, error) {
	if p.cache != nil {
		if config := p.cache.Get(ctx, vehicleType); config != nil {
			return config, nil
		}
	}

	config, err := p.repo.FindByVehicleType(ctx, vehicleType)
	if err != nil {
		return nil, fmt.Errorf("find config: %w", err)
	}
	if config == nil {
		// The system was never initialized for this vehicle type
		return nil, fmt.Errorf("%w: %s", ErrConfigMissing, vehicleType)
	}

	if p.cache != nil {
		p.cache.Set(ctx, config)
	}

	return config, nil
}

func (p *PricingResolver) Invalidate(ctx context.Context, vehicleType entity.VehicleType) {
	if p.cache != nil {
		p.cache.Invalidate(ctx, vehicleType)
	}
}
