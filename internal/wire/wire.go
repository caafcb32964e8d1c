// internal/wire/wire.go
package wire

import (
	"net/http"
	"time"

	"parking-booking/internal/adaptor"
	"parking-booking/internal/artifact"
	"parking-booking/internal/data/cache"
	"parking-booking/internal/data/repository"
	"parking-booking/internal/usecase"
	"parking-booking/pkg/middleware"
	"parking-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, redisClient *redis.Client, config *utils.Config, logger *zap.Logger) *App {
	// Pricing cache + artifact collaborators
	configCache := cache.NewConfigCache(
		redisClient,
		time.Duration(config.Redis.CacheTTLHours)*time.Hour,
		logger,
	)
	qr := artifact.NewQRGenerator(config.App.MediaDir, logger)
	pdf := artifact.NewPDFGenerator(config.App.Name, qr, logger)
	mailer := artifact.NewMailer(config.SMTP, logger)

	// Services and handlers
	service := usecase.NewService(repo, configCache, qr, pdf, mailer, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireParking(r, handler.Parking)
	wireBooking(r, handler.Booking)
	wireAdmin(r, handler.Admin, config, logger)

	// Generated artifacts (QR images)
	r.Handle("/media/*", http.StripPrefix("/media/",
		http.FileServer(http.Dir(config.App.MediaDir))))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
