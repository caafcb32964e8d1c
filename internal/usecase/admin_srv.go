package usecase

import (
	"context"
	"fmt"

	"parking-booking/internal/data/entity"
	"parking-booking/internal/data/repository"
	"parking-booking/internal/dto/request"
	"parking-booking/internal/dto/response"
	"parking-booking/pkg/utils"

	"go.uber.org/zap"
)

// Default seed grid, matching the lot's physical layout: car sections on
// every floor are A-D, bike sections E-G, increment grows by 5 per floor
const (
	defaultSeedFloors      = 10
	defaultSlotsPerSection = 50
)

var (
	carSections  = []string{"A", "B", "C", "D"}
	bikeSections = []string{"E", "F", "G"}
)

type AdminService interface {
	ListConfigs(ctx context.Context) ([]response.ConfigResponse, error)
	UpdateConfig(ctx context.Context, vehicleType string, req *request.UpdateConfigRequest) (*response.ConfigResponse, error)
	Seed(ctx context.Context, req *request.SeedRequest) (*response.SeedResponse, error)
	ListTickets(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error)
}

type adminService struct {
	repo    *repository.Repository
	pricing *PricingResolver
	log     *zap.Logger
}

func NewAdminService(repo *repository.Repository, pricing *PricingResolver, log *zap.Logger) AdminService {
	return &adminService{
		repo:    repo,
		pricing: pricing,
		log:     log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListConfigs(ctx context.Context) ([]response.ConfigResponse, error) {
	configs, err := s.repo.Config.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}

	result := make([]response.ConfigResponse, len(configs))
	for i, config := range configs {
		result[i] = response.ConfigToResponse(config)
	}

	return result, nil
}

func (s *adminService) UpdateConfig(ctx context.Context, vehicleType string, req *request.UpdateConfigRequest) (*response.ConfigResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update config validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	vt, ok := entity.ParseVehicleType(vehicleType)
	if !ok {
		return nil, fmt.Errorf("%w: vehicle type %q", ErrNotFound, vehicleType)
	}

	existing, err := s.repo.Config.FindByVehicleType(ctx, vt)
	if err != nil {
		return nil, fmt.Errorf("find config: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: config for %s", ErrNotFound, vt)
	}

	existing.BasePrice = req.BasePrice
	existing.BaseHours = req.BaseHours
	existing.ExtraPerHour = req.ExtraPerHour

	if err := s.repo.Config.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update config: %w", err)
	}

	// Stale pricing must not outlive an admin edit
	s.pricing.Invalidate(ctx, vt)

	s.log.Info("Pricing config updated",
		zap.String("vehicle_type", vt.String()),
		zap.Int("base_price", req.BasePrice),
		zap.Int("base_hours", req.BaseHours),
		zap.Int("extra_per_hour", req.ExtraPerHour),
	)

	updated, err := s.repo.Config.FindByVehicleType(ctx, vt)
	if err != nil || updated == nil {
		return nil, fmt.Errorf("reload config: %w", err)
	}

	resp := response.ConfigToResponse(updated)
	return &resp, nil
}

// Seed populates the floor/section/slot grid and the default pricing rows.
// Create-if-absent per unique key, so re-running it is safe.
func (s *adminService) Seed(ctx context.Context, req *request.SeedRequest) (*response.SeedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Seed validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	floors := req.Floors
	if floors == 0 {
		floors = defaultSeedFloors
	}
	perSection := req.SlotsPerSection
	if perSection == 0 {
		perSection = defaultSlotsPerSection
	}

	seeded := 0
	for number := 1; number <= floors; number++ {
		floor, err := s.repo.Floor.GetOrCreate(ctx, number, (number-1)*5)
		if err != nil {
			return nil, fmt.Errorf("seed floor %d: %w", number, err)
		}
		if floor == nil {
			return nil, fmt.Errorf("seed floor %d: floor missing after create", number)
		}

		slots := buildFloorSlots(floor.ID, perSection)
		if err := s.repo.Slot.CreateBatchIfAbsent(ctx, slots); err != nil {
			return nil, fmt.Errorf("seed slots for floor %d: %w", number, err)
		}
		seeded += len(slots)
	}

	defaults := []*entity.VehicleTypeConfig{
		{VehicleType: entity.VehicleTypeBike, BasePrice: 30, BaseHours: 5, ExtraPerHour: 5},
		{VehicleType: entity.VehicleTypeCar, BasePrice: 50, BaseHours: 5, ExtraPerHour: 10},
	}
	for _, config := range defaults {
		if err := s.repo.Config.CreateIfAbsent(ctx, config); err != nil {
			return nil, fmt.Errorf("seed config %s: %w", config.VehicleType, err)
		}
	}

	s.log.Info("Parking data seeded",
		zap.Int("floors", floors),
		zap.Int("slots_per_section", perSection),
		zap.Int("slots_seeded", seeded),
	)

	return &response.SeedResponse{
		Floors:          floors,
		SlotsPerSection: perSection,
		SlotsSeeded:     seeded,
	}, nil
}

func (s *adminService) ListTickets(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error) {
	tickets, err := s.repo.Ticket.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	total, err := s.repo.Ticket.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	ticketResponses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = response.TicketToResponse(ticket)
	}

	return response.NewPaginatedResponse(ticketResponses, req.Page, req.PerPage, total), nil
}

// buildFloorSlots expands one floor into its full slot grid
func buildFloorSlots(floorID int64, perSection int) []*entity.Slot {
	var slots []*entity.Slot

	for _, section := range carSections {
		for number := 1; number <= perSection; number++ {
			slots = append(slots, &entity.Slot{
				FloorID:     floorID,
				Section:     section,
				SlotNumber:  number,
				VehicleType: entity.VehicleTypeCar,
				IsAvailable: true,
			})
		}
	}

	for _, section := range bikeSections {
		for number := 1; number <= perSection; number++ {
			slots = append(slots, &entity.Slot{
				FloorID:     floorID,
				Section:     section,
				SlotNumber:  number,
				VehicleType: entity.VehicleTypeBike,
				IsAvailable: true,
			})
		}
	}

	return slots
}
