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

type passengerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPassengerRepository(db database.PgxIface, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "passenger")),
	}
}

// CreateBatch inserts every passenger of a booking inside one transaction
// so a half-written manifest never survives.
func (pr *passengerRepository) CreateBatch(ctx context.Context, passengers []entity.Passenger) error {
	if len(passengers) == 0 {
		return nil
	}

	tx, err := pr.db.Begin(ctx)
	if err != nil {
		pr.log.Error("Failed to begin passenger transaction", zap.Error(err))
		return fmt.Errorf("begin passenger insert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO passengers (id, booking_id, title, first_name, last_name, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	batch := &pgx.Batch{}
	for _, p := range passengers {
		batch.Queue(query, p.ID, p.BookingID, p.Title, p.FirstName, p.LastName, p.Email, p.CreatedAt)
	}

	results := tx.SendBatch(ctx, batch)
	for range passengers {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			pr.log.Error("Failed to insert passenger batch",
				zap.Error(err),
				zap.String("booking_id", passengers[0].BookingID.String()),
			)
			return fmt.Errorf("insert passengers for booking %s: %w", passengers[0].BookingID.String(), err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close passenger batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		pr.log.Error("Failed to commit passenger batch", zap.Error(err))
		return fmt.Errorf("commit passenger insert: %w", err)
	}

	return nil
}

func (pr *passengerRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Passenger, error) {
	query := `
		SELECT id, booking_id, title, first_name, last_name, email, created_at
		FROM passengers
		WHERE booking_id = $1
		ORDER BY created_at ASC
	`

	rows, err := pr.db.Query(ctx, query, bookingID)
	if err != nil {
		pr.log.Error("Failed to list passengers",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("list passengers for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var passengers []entity.Passenger
	for rows.Next() {
		var p entity.Passenger
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Title, &p.FirstName, &p.LastName, &p.Email, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, p)
	}

	return passengers, rows.Err()
}

func (pr *passengerRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	query := `DELETE FROM passengers WHERE booking_id = $1`

	_, err := pr.db.Exec(ctx, query, bookingID)
	if err != nil {
		pr.log.Error("Failed to delete passengers",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete passengers for booking %s: %w", bookingID.String(), err)
	}

	return nil
}
