package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error)
	FindByPNRAndEmail(ctx context.Context, pnr, email string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	FindAll(ctx context.Context, status entity.BookingStatus, limit, offset int) ([]entity.Booking, error)
	CountAll(ctx context.Context, status entity.BookingStatus) (int, error)
	// TransitionStatus performs a conditional update and reports whether the
	// row actually moved. Returning false with a nil error means the booking
	// was not in the expected state, which callers treat as a lost race.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error)
	SetTicketURL(ctx context.Context, id uuid.UUID, url string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PassengerRepository interface {
	CreateBatch(ctx context.Context, passengers []entity.Passenger) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Passenger, error)
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Transaction, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	FindAll(ctx context.Context, status entity.TransactionStatus, limit, offset int) ([]entity.Transaction, error)
	CountAll(ctx context.Context, status entity.TransactionStatus) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus, reason string) error
}

type SupportRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.SupportTicket, error)
	FindAll(ctx context.Context, status entity.TicketStatus, limit, offset int) ([]entity.SupportTicket, error)
	CountAll(ctx context.Context, status entity.TicketStatus) (int, error)
	Update(ctx context.Context, ticket *entity.SupportTicket) error
}

const (
	ModePostgres = "postgres"
	ModeMemory   = "memory"
)

// Repository bundles every store behind one handle. Mode records which
// driver was selected at startup so the health endpoint can report it.
type Repository struct {
	Mode        string
	User        UserRepository
	Booking     BookingRepository
	Passenger   PassengerRepository
	Transaction TransactionRepository
	Support     SupportRepository
	Airports    *AirportDirectory
	Tokens      *TokenStore

	db database.PgxIface
}

func NewRepository(db database.PgxIface, tokenTTL time.Duration, log *zap.Logger) *Repository {
	return &Repository{
		Mode:        ModePostgres,
		User:        NewUserRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Passenger:   NewPassengerRepository(db, log),
		Transaction: NewTransactionRepository(db, log),
		Support:     NewSupportRepository(db, log),
		Airports:    NewAirportDirectory(),
		Tokens:      NewTokenStore(tokenTTL),
		db:          db,
	}
}

func NewMemoryRepository(tokenTTL time.Duration, log *zap.Logger) *Repository {
	return &Repository{
		Mode:        ModeMemory,
		User:        NewMemoryUserRepository(),
		Booking:     NewMemoryBookingRepository(),
		Passenger:   NewMemoryPassengerRepository(),
		Transaction: NewMemoryTransactionRepository(),
		Support:     NewMemorySupportRepository(),
		Airports:    NewAirportDirectory(),
		Tokens:      NewTokenStore(tokenTTL),
	}
}

// Ping reports backing store health. The memory store has nothing to fail.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.Ping(ctx)
}
