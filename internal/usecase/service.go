package usecase

import (
	"parking-booking/internal/artifact"
	"parking-booking/internal/data/cache"
	"parking-booking/internal/data/repository"
	"parking-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Parking ParkingService
	Booking BookingService
	Admin   AdminService
}

func NewService(
	repo *repository.Repository,
	configCache *cache.ConfigCache,
	qr *artifact.QRGenerator,
	pdf *artifact.PDFGenerator,
	mailer *artifact.Mailer,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	pricing := NewPricingResolver(repo.Config, configCache, log)

	return &Service{
		Parking: NewParkingService(repo, log),
		Booking: NewBookingService(repo, pricing, qr, pdf, mailer, config, log),
		Admin:   NewAdminService(repo, pricing, log),
	}
}
