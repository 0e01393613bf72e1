package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/pkg/utils"
)

const pnrAttempts = 5

type BookingService interface {
	// CreateBooking serves both authenticated and guest checkout; a nil
	// userID routes the booking to the shared guest account.
	CreateBooking(ctx context.Context, userID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID uuid.UUID) (*response.BookingResponse, error)
	GetByPNRAndEmail(ctx context.Context, pnr, email string) (*response.BookingResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	AdminList(ctx context.Context, status string, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	AdminUpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) (*response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	mail      MailService
	unitPrice float64
	currency  string
	log       *zap.Logger
	mailWG    *fulfillTracker
}

func NewBookingService(repo *repository.Repository, mail MailService, unitPrice float64, currency string, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		mail:      mail,
		unitPrice: unitPrice,
		currency:  currency,
		log:       log.With(zap.String("service", "booking")),
		mailWG:    newFulfillTracker(),
	}
}

// findOrCreateGuestUser returns the shared account that owns every guest
// checkout booking, creating it on first use.
func (s *bookingService) findOrCreateGuestUser(ctx context.Context) (*entity.User, error) {
	guest, err := s.repo.User.FindByEmail(ctx, entity.GuestEmail)
	if err != nil {
		return nil, fmt.Errorf("find guest user: %w", err)
	}
	if guest != nil {
		return guest, nil
	}

	now := time.Now()
	guest = &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        entity.GuestEmail,
		PasswordHash: "!", // never a valid bcrypt hash, login impossible
		FirstName:    "Guest",
		LastName:     "Checkout",
		Title:        entity.TitleMr,
		Role:         entity.RoleCustomer,
		Status:       entity.UserStatusActive,
	}
	if err := s.repo.User.Create(ctx, guest); err != nil {
		// Lost the race against a concurrent guest checkout, reread.
		if err == entity.ErrDuplicateEmail {
			return s.repo.User.FindByEmail(ctx, entity.GuestEmail)
		}
		return nil, fmt.Errorf("create guest user: %w", err)
	}
	return guest, nil
}

// uniquePNR retries on the astronomically rare collision instead of
// failing the booking.
func (s *bookingService) uniquePNR(ctx context.Context) (string, error) {
	for i := 0; i < pnrAttempts; i++ {
		pnr, err := utils.GeneratePNR()
		if err != nil {
			return "", err
		}
		existing, err := s.repo.Booking.FindByPNR(ctx, pnr)
		if err != nil {
			return "", fmt.Errorf("check pnr collision: %w", err)
		}
		if existing == nil {
			return pnr, nil
		}
		s.log.Warn("pnr collision, retrying", zap.String("pnr", pnr))
	}
	return "", fmt.Errorf("exhausted %d pnr attempts", pnrAttempts)
}

func (s *bookingService) CreateBooking(ctx context.Context, userID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if !req.TermsAccepted {
		return nil, fmt.Errorf("%w: terms must be accepted", entity.ErrValidation)
	}

	fromCode := strings.ToUpper(req.Route.From)
	toCode := strings.ToUpper(req.Route.To)
	if _, ok := s.repo.Airports.ByCode(fromCode); !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownAirport, fromCode)
	}
	if _, ok := s.repo.Airports.ByCode(toCode); !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownAirport, toCode)
	}
	if fromCode == toCode {
		return nil, fmt.Errorf("%w: origin and destination are the same", entity.ErrValidation)
	}

	departure, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid departure date", entity.ErrValidation)
	}
	if departure.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, fmt.Errorf("%w: departure date is in the past", entity.ErrValidation)
	}

	var returnDate *time.Time
	if entity.TripType(req.TripType) == entity.TripTypeRoundtrip {
		if req.ReturnDate == "" {
			return nil, fmt.Errorf("%w: roundtrip requires a return date", entity.ErrValidation)
		}
		parsed, err := time.Parse("2006-01-02", req.ReturnDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid return date", entity.ErrValidation)
		}
		if parsed.Before(departure) {
			return nil, fmt.Errorf("%w: return date before departure", entity.ErrValidation)
		}
		returnDate = &parsed
	}

	guest := userID == nil
	ownerID := uuid.Nil
	if guest {
		guestUser, err := s.findOrCreateGuestUser(ctx)
		if err != nil {
			return nil, err
		}
		ownerID = guestUser.ID
	} else {
		ownerID = *userID
	}

	pnr, err := s.uniquePNR(ctx)
	if err != nil {
		s.log.Error("Failed to allocate PNR", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PNR:           pnr,
		UserID:        ownerID,
		Guest:         guest,
		Status:        entity.BookingStatusPending,
		FromCode:      fromCode,
		ToCode:        toCode,
		DepartureDate: departure,
		ReturnDate:    returnDate,
		TripType:      entity.TripType(req.TripType),
		TotalAmount:   s.unitPrice * float64(len(req.Passengers)),
		Currency:      s.currency,
		ContactEmail:  NormalizeEmail(req.ContactEmail),
		TermsAccepted: true,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	passengers := make([]entity.Passenger, len(req.Passengers))
	for i, p := range req.Passengers {
		passengers[i] = entity.Passenger{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
			},
			BookingID: booking.ID,
			Title:     entity.UserTitle(p.Title),
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     NormalizeEmail(p.Email),
		}
	}

	if err := s.repo.Passenger.CreateBatch(ctx, passengers); err != nil {
		// Roll back the booking so no orphan row blocks the PNR.
		if delErr := s.repo.Booking.Delete(ctx, booking.ID); delErr != nil {
			s.log.Error("Failed to roll back booking after passenger insert",
				zap.Error(delErr),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		return nil, fmt.Errorf("create passengers: %w", err)
	}

	s.log.Info("booking created",
		zap.String("pnr", pnr),
		zap.String("booking_id", booking.ID.String()),
		zap.Bool("guest", guest),
		zap.Int("passengers", len(passengers)),
	)

	// The acknowledgement email is best effort, the booking already exists.
	created := *booking
	s.mailWG.Go(func() {
		if err := s.mail.SendBookingConfirmation(&created, passengers); err != nil {
			s.log.Error("Failed to send booking email",
				zap.Error(err),
				zap.String("pnr", created.PNR),
			)
		}
	})

	resp := response.BookingToResponse(booking, passengers)
	return &resp, nil
}

func (s *bookingService) loadResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	passengers, err := s.repo.Passenger.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("load passengers: %w", err)
	}
	resp := response.BookingToResponse(booking, passengers)
	return &resp, nil
}

func (s *bookingService) GetByID(ctx context.Context, userID uuid.UUID, role entity.UserRole, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, entity.ErrBookingNotFound
	}
	if booking.UserID != userID && role != entity.RoleAdmin {
		// Hide existence from other customers.
		return nil, entity.ErrBookingNotFound
	}

	return s.loadResponse(ctx, booking)
}

func (s *bookingService) GetByPNRAndEmail(ctx context.Context, pnr, email string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByPNRAndEmail(ctx, strings.ToUpper(strings.TrimSpace(pnr)), NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("find booking by pnr: %w", err)
	}
	if booking == nil {
		return nil, entity.ErrBookingNotFound
	}

	return s.loadResponse(ctx, booking)
}

func (s *bookingService) ListByUser(ctx context.Context, userID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp, err := s.loadResponse(ctx, &bookings[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}

	return response.NewPaginatedResponse(items, page.CurrentPage(), page.Limit(), total), nil
}

func (s *bookingService) AdminList(ctx context.Context, status string, page request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookingStatus := entity.BookingStatus(status)
	bookings, err := s.repo.Booking.FindAll(ctx, bookingStatus, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	total, err := s.repo.Booking.CountAll(ctx, bookingStatus)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp, err := s.loadResponse(ctx, &bookings[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}

	return response.NewPaginatedResponse(items, page.CurrentPage(), page.Limit(), total), nil
}

func (s *bookingService) AdminUpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, entity.ErrBookingNotFound
	}

	if !booking.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", entity.ErrInvalidTransition, booking.Status, status)
	}

	moved, err := s.repo.Booking.TransitionStatus(ctx, bookingID, booking.Status, status)
	if err != nil {
		return nil, err
	}
	if !moved {
		// The booking changed state underneath us.
		return nil, fmt.Errorf("%w: booking no longer %s", entity.ErrInvalidTransition, booking.Status)
	}

	s.log.Info("booking status overridden",
		zap.String("booking_id", bookingID.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(status)),
	)

	booking.Status = status
	return s.loadResponse(ctx, booking)
}
