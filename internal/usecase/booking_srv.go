package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"parking-booking/internal/artifact"
	"parking-booking/internal/data/entity"
	"parking-booking/internal/data/repository"
	"parking-booking/internal/dto/request"
	"parking-booking/internal/dto/response"
	"parking-booking/pkg/utils"

	"go.uber.org/zap"
)

// Artifact collaborators. Their failures are soft: a booking survives a
// broken QR writer or mail relay.
type QRWriter interface {
	Generate(ticketID int64, checkoutURL string) (string, error)
}

type TokenRenderer interface {
	Token(data artifact.TokenData) ([]byte, error)
}

type Mailer interface {
	Send(to, subject, body string) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	Checkout(ctx context.Context, req *request.CheckoutRequest) (*response.BillResponse, error)
	TokenPDF(ctx context.Context, ticketID int64) ([]byte, string, error)
}

type bookingService struct {
	repo    *repository.Repository
	pricing *PricingResolver
	qr      QRWriter
	pdf     TokenRenderer
	mailer  Mailer
	appName string
	baseURL string
	log     *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	pricing *PricingResolver,
	qr QRWriter,
	pdf TokenRenderer,
	mailer Mailer,
	config *utils.Config,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:    repo,
		pricing: pricing,
		qr:      qr,
		pdf:     pdf,
		mailer:  mailer,
		appName: config.App.Name,
		baseURL: strings.TrimRight(config.App.BaseURL, "/"),
		log:     log.With(zap.String("service", "booking")),
	}
}

// CreateBooking claims a slot and issues a ticket in one transaction, then
// produces the QR/email artifacts best-effort after commit.
//
// The slot id in the request only names the partition the user was looking
// at: a fresh candidate is re-selected under lock, so a booking still
// succeeds when that exact slot was grabbed moments earlier.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// Resolve the partition from the slot the user picked
	picked, err := s.repo.Slot.FindByID(ctx, req.SlotID)
	if err != nil {
		return nil, fmt.Errorf("find slot: %w", err)
	}
	if picked == nil {
		return nil, fmt.Errorf("%w: slot %d", ErrNotFound, req.SlotID)
	}

	floor, err := s.repo.Floor.FindByID(ctx, picked.FloorID)
	if err != nil {
		return nil, fmt.Errorf("find floor: %w", err)
	}
	if floor == nil {
		return nil, fmt.Errorf("%w: floor of slot %d", ErrNotFound, req.SlotID)
	}

	// Claim + ticket INSERT are one transaction: a failure after the claim
	// must leave the slot available
	tx, err := s.repo.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	allocated, err := s.repo.Slot.Allocate(ctx, tx, picked.VehicleType, picked.FloorID, picked.Section)
	if err != nil {
		return nil, fmt.Errorf("allocate slot: %w", err)
	}
	if allocated == nil {
		// Normal contention outcome, not a fault
		s.log.Info("No free slot in partition",
			zap.String("vehicle_type", picked.VehicleType.String()),
			zap.Int("floor", floor.Number),
			zap.String("section", picked.Section),
		)
		return nil, fmt.Errorf("%w: %s section %s on floor %d",
			ErrSlotTaken, picked.VehicleType, picked.Section, floor.Number)
	}

	ticket := &entity.Ticket{
		Reference:      utils.GenerateReference(),
		VehicleNumber:  req.VehicleNumber,
		Phone:          req.Phone,
		Email:          req.Email,
		VehicleType:    allocated.VehicleType,
		SlotID:         &allocated.ID,
		CheckIn:        time.Now(),
		InitialPayment: req.InitialPayment,
	}

	if err := s.repo.Ticket.Create(ctx, tx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit booking tx: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("ticket_id", ticket.ID),
		zap.String("reference", ticket.Reference),
		zap.String("vehicle_number", ticket.VehicleNumber),
		zap.String("slot", allocated.Label(floor.Number)),
		zap.Int("initial_payment", ticket.InitialPayment),
	)

	// Everything below is best-effort: the ticket exists, failures here
	// only degrade the artifacts
	checkoutURL := s.checkoutURL(ticket.ID)
	var warnings []string

	qrPath, err := s.qr.Generate(ticket.ID, checkoutURL)
	if err != nil {
		s.log.Error("QR generation failed", zap.Error(err), zap.Int64("ticket_id", ticket.ID))
		warnings = append(warnings, "QR code generation failed")
	} else {
		ticket.QRCode = qrPath
		if err := s.repo.Ticket.UpdateQRCode(ctx, ticket.ID, qrPath); err != nil {
			s.log.Error("QR path persist failed", zap.Error(err), zap.Int64("ticket_id", ticket.ID))
			warnings = append(warnings, "QR code could not be saved")
		}
	}

	if ticket.Email != "" {
		subject, body := artifact.BookingConfirmation(
			s.appName, ticket.ID, ticket.Reference, ticket.VehicleNumber,
			allocated.Label(floor.Number), ticket.CheckIn, checkoutURL,
		)
		if err := s.mailer.Send(ticket.Email, subject, body); err != nil {
			s.log.Error("Confirmation email failed",
				zap.Error(err),
				zap.Int64("ticket_id", ticket.ID),
				zap.String("email", ticket.Email),
			)
			warnings = append(warnings, "confirmation email could not be sent")
		}
	}

	return &response.BookingResponse{
		TicketID:       ticket.ID,
		Reference:      ticket.Reference,
		VehicleNumber:  ticket.VehicleNumber,
		VehicleType:    ticket.VehicleType.String(),
		Slot:           allocated.Label(floor.Number),
		CheckIn:        ticket.CheckIn,
		InitialPayment: ticket.InitialPayment,
		QRCode:         ticket.QRCode,
		CheckoutURL:    checkoutURL,
		PDFURL:         fmt.Sprintf("%s/api/tickets/%d/pdf", s.baseURL, ticket.ID),
		Warnings:       warnings,
	}, nil
}

// Checkout settles an active ticket: the bill is computed with "now" as the
// end instant, the ticket flips to SETTLED, then the slot reopens. A token
// that is unknown or already settled gets the same ErrTicketNotFound.
func (s *bookingService) Checkout(ctx context.Context, req *request.CheckoutRequest) (*response.BillResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	ticketID, err := strconv.ParseInt(strings.TrimSpace(req.Token), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: token must be a number", ErrValidation)
	}

	ticket, err := s.repo.Ticket.FindActiveByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("find active ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("%w: token %d", ErrTicketNotFound, ticketID)
	}

	config, err := s.pricing.Config(ctx, ticket.VehicleType)
	if err != nil {
		return nil, err
	}

	floorIncrement, err := s.floorIncrement(ctx, ticket)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bill := CalculateBill(ticket.CheckIn, now, config, floorIncrement, ticket.InitialPayment)

	// Settle first, release after: a slot must not reopen for a ticket that
	// failed to persist as settled
	tx, err := s.repo.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin settlement tx: %w", err)
	}
	defer tx.Rollback(ctx)

	settled, err := s.repo.Ticket.Settle(ctx, tx, ticket.ID, now, bill.Total)
	if err != nil {
		return nil, fmt.Errorf("settle ticket: %w", err)
	}
	if !settled {
		// Lost a race with a concurrent checkout of the same token
		return nil, fmt.Errorf("%w: token %d", ErrTicketNotFound, ticketID)
	}

	if ticket.SlotID != nil {
		if err := s.repo.Slot.Release(ctx, tx, *ticket.SlotID); err != nil {
			return nil, fmt.Errorf("release slot: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit settlement tx: %w", err)
	}

	s.log.Info("Ticket settled",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int("hours", bill.Hours),
		zap.Int("total", bill.Total),
		zap.Int("refund", bill.Refund),
		zap.Int("due", bill.Due),
	)

	return &response.BillResponse{
		TicketID:      ticket.ID,
		VehicleNumber: ticket.VehicleNumber,
		CheckIn:       ticket.CheckIn,
		CheckOut:      now,
		Hours:         bill.Hours,
		Total:         bill.Total,
		Refund:        bill.Refund,
		Due:           bill.Due,
	}, nil
}

// TokenPDF regenerates the printable parking token for a ticket
func (s *bookingService) TokenPDF(ctx context.Context, ticketID int64) ([]byte, string, error) {
	ticket, err := s.repo.Ticket.FindByID(ctx, ticketID)
	if err != nil {
		return nil, "", fmt.Errorf("find ticket: %w", err)
	}
	if ticket == nil {
		return nil, "", fmt.Errorf("%w: ticket %d", ErrNotFound, ticketID)
	}

	slotLabel := "N/A"
	if ticket.SlotID != nil {
		slot, err := s.repo.Slot.FindByID(ctx, *ticket.SlotID)
		if err == nil && slot != nil {
			if floor, err := s.repo.Floor.FindByID(ctx, slot.FloorID); err == nil && floor != nil {
				slotLabel = slot.Label(floor.Number)
			}
		}
	}

	data := artifact.TokenData{
		TicketID:       ticket.ID,
		Reference:      ticket.Reference,
		VehicleNumber:  ticket.VehicleNumber,
		Phone:          ticket.Phone,
		Email:          ticket.Email,
		VehicleType:    ticket.VehicleType.String(),
		SlotLabel:      slotLabel,
		CheckIn:        ticket.CheckIn,
		InitialPayment: ticket.InitialPayment,
		CheckoutURL:    s.checkoutURL(ticket.ID),
	}

	pdfBytes, err := s.pdf.Token(data)
	if err != nil {
		return nil, "", fmt.Errorf("render token pdf: %w", err)
	}

	return pdfBytes, fmt.Sprintf("token_%d.pdf", ticket.ID), nil
}

func (s *bookingService) checkoutURL(ticketID int64) string {
	return fmt.Sprintf("%s/checkout/?token=%d", s.baseURL, ticketID)
}

// floorIncrement resolves the flat surcharge of the ticket's floor; a
// cleared or dangling slot reference bills without the surcharge
func (s *bookingService) floorIncrement(ctx context.Context, ticket *entity.Ticket) (int, error) {
	if ticket.SlotID == nil {
		return 0, nil
	}

	slot, err := s.repo.Slot.FindByID(ctx, *ticket.SlotID)
	if err != nil {
		return 0, fmt.Errorf("find ticket slot: %w", err)
	}
	if slot == nil {
		return 0, nil
	}

	floor, err := s.repo.Floor.FindByID(ctx, slot.FloorID)
	if err != nil {
		return 0, fmt.Errorf("find slot floor: %w", err)
	}
	if floor == nil {
		return 0, nil
	}

	return floor.PriceIncrement, nil
}
