package usecase

import (
	"context"
	"fmt"

	"parking-booking/internal/data/entity"
	"parking-booking/internal/data/repository"
	"parking-booking/internal/dto/response"

	"go.uber.org/zap"
)

type ParkingService interface {
	ListFloors(ctx context.Context) ([]response.FloorResponse, error)
	ViewSlots(ctx context.Context, vehicleType string, floorNumber int) (*response.SlotsViewResponse, error)
}

type parkingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewParkingService(repo *repository.Repository, log *zap.Logger) ParkingService {
	return &parkingService{
		repo: repo,
		log:  log.With(zap.String("service", "parking")),
	}
}

func (s *parkingService) ListFloors(ctx context.Context) ([]response.FloorResponse, error) {
	floors, err := s.repo.Floor.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}

	result := make([]response.FloorResponse, len(floors))
	for i, floor := range floors {
		result[i] = response.FloorResponse{
			Number:         floor.Number,
			PriceIncrement: floor.PriceIncrement,
		}
	}

	return result, nil
}

// ViewSlots is the slot-picking view: free slots of one vehicle type on one
// floor, lowest numbers first, plus per-section counts and the base price
func (s *parkingService) ViewSlots(ctx context.Context, vehicleType string, floorNumber int) (*response.SlotsViewResponse, error) {
	vt, ok := entity.ParseVehicleType(vehicleType)
	if !ok {
		return nil, fmt.Errorf("%w: vehicle type %q", ErrNotFound, vehicleType)
	}

	floor, err := s.repo.Floor.FindByNumber(ctx, floorNumber)
	if err != nil {
		return nil, fmt.Errorf("find floor: %w", err)
	}
	if floor == nil {
		return nil, fmt.Errorf("%w: floor %d", ErrNotFound, floorNumber)
	}

	config, err := s.repo.Config.FindByVehicleType(ctx, vt)
	if err != nil {
		return nil, fmt.Errorf("find config: %w", err)
	}
	if config == nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigMissing, vt)
	}

	slots, err := s.repo.Slot.FindAvailable(ctx, floor.ID, vt)
	if err != nil {
		return nil, fmt.Errorf("find available slots: %w", err)
	}

	counts, err := s.repo.Slot.CountAvailableBySection(ctx, floor.ID, vt)
	if err != nil {
		return nil, fmt.Errorf("count available slots: %w", err)
	}

	slotResponses := make([]response.SlotResponse, len(slots))
	for i, slot := range slots {
		slotResponses[i] = response.SlotResponse{
			ID:         slot.ID,
			Section:    slot.Section,
			SlotNumber: slot.SlotNumber,
		}
	}

	sectionResponses := make([]response.SectionCountResponse, len(counts))
	for i, c := range counts {
		sectionResponses[i] = response.SectionCountResponse{
			Section:   c.Section,
			Available: c.Available,
		}
	}

	s.log.Info("Slots viewed",
		zap.String("vehicle_type", vt.String()),
		zap.Int("floor", floorNumber),
		zap.Int("available", len(slots)),
	)

	return &response.SlotsViewResponse{
		VehicleType: vt.String(),
		Floor: response.FloorResponse{
			Number:         floor.Number,
			PriceIncrement: floor.PriceIncrement,
		},
		BasePrice: config.BasePrice,
		Sections:  sectionResponses,
		Slots:     slotResponses,
	}, nil
}
