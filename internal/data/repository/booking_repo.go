package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"
)

const bookingColumns = `id, pnr, user_id, guest, status, from_code, to_code,
	       departure_date, return_date, trip_type, total_amount, currency,
	       contact_email, terms_accepted, ticket_url, created_at, updated_at`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.PNR,
		&b.UserID,
		&b.Guest,
		&b.Status,
		&b.FromCode,
		&b.ToCode,
		&b.DepartureDate,
		&b.ReturnDate,
		&b.TripType,
		&b.TotalAmount,
		&b.Currency,
		&b.ContactEmail,
		&b.TermsAccepted,
		&b.TicketURL,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (br *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, pnr, user_id, guest, status, from_code, to_code,
		                      departure_date, return_date, trip_type, total_amount,
		                      currency, contact_email, terms_accepted, ticket_url,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := br.db.Exec(ctx, query,
		booking.ID,
		booking.PNR,
		booking.UserID,
		booking.Guest,
		booking.Status,
		booking.FromCode,
		booking.ToCode,
		booking.DepartureDate,
		booking.ReturnDate,
		booking.TripType,
		booking.TotalAmount,
		booking.Currency,
		booking.ContactEmail,
		booking.TermsAccepted,
		booking.TicketURL,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("pnr", booking.PNR),
		)
		return fmt.Errorf("create booking %s: %w", booking.PNR, err)
	}

	return nil
}

func (br *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(br.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (br *bookingRepository) FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE pnr = $1`

	booking, err := scanBooking(br.db.QueryRow(ctx, query, pnr))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking by PNR",
			zap.Error(err),
			zap.String("pnr", pnr),
		)
		return nil, fmt.Errorf("find booking by PNR %s: %w", pnr, err)
	}

	return booking, nil
}

func (br *bookingRepository) FindByPNRAndEmail(ctx context.Context, pnr, email string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE pnr = $1 AND lower(contact_email) = lower($2)`

	booking, err := scanBooking(br.db.QueryRow(ctx, query, pnr, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		br.log.Error("Failed to find booking by PNR and email",
			zap.Error(err),
			zap.String("pnr", pnr),
		)
		return nil, fmt.Errorf("find booking by PNR %s: %w", pnr, err)
	}

	return booking, nil
}

func (br *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := br.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		br.log.Error("Failed to list bookings by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list bookings for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	return bookings, rows.Err()
}

func (br *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int
	if err := br.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		br.log.Error("Failed to count bookings by user", zap.Error(err))
		return 0, fmt.Errorf("count bookings for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (br *bookingRepository) FindAll(ctx context.Context, status entity.BookingStatus, limit, offset int) ([]entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := br.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		br.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	return bookings, rows.Err()
}

func (br *bookingRepository) CountAll(ctx context.Context, status entity.BookingStatus) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ($1 = '' OR status = $1)`

	var count int
	if err := br.db.QueryRow(ctx, query, string(status)).Scan(&count); err != nil {
		br.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

// TransitionStatus only moves the row when its current status matches the
// expected one, so two concurrent payment captures cannot both confirm.
func (br *bookingRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	tag, err := br.db.Exec(ctx, query, to, id, from)
	if err != nil {
		br.log.Error("Failed to transition booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("transition booking %s to %s: %w", id.String(), to, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (br *bookingRepository) SetTicketURL(ctx context.Context, id uuid.UUID, url string) error {
	query := `
		UPDATE bookings
		SET ticket_url = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := br.db.Exec(ctx, query, url, id)
	if err != nil {
		br.log.Error("Failed to set ticket URL",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("set ticket url for booking %s: %w", id.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrBookingNotFound
	}

	return nil
}

func (br *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	_, err := br.db.Exec(ctx, query, id)
	if err != nil {
		br.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	return nil
}
