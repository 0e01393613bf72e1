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

const supportColumns = `id, user_id, subject, message, category, priority,
	       status, admin_response, created_at, updated_at`

type supportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSupportRepository(db database.PgxIface, log *zap.Logger) SupportRepository {
	return &supportRepository{
		db:  db,
		log: log.With(zap.String("repository", "support")),
	}
}

func scanTicket(row pgx.Row) (*entity.SupportTicket, error) {
	var t entity.SupportTicket
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Subject,
		&t.Message,
		&t.Category,
		&t.Priority,
		&t.Status,
		&t.AdminResponse,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (sr *supportRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (id, user_id, subject, message, category,
		                             priority, status, admin_response, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := sr.db.Exec(ctx, query,
		ticket.ID,
		ticket.UserID,
		ticket.Subject,
		ticket.Message,
		ticket.Category,
		ticket.Priority,
		ticket.Status,
		ticket.AdminResponse,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create support ticket",
			zap.Error(err),
			zap.String("user_id", ticket.UserID.String()),
		)
		return fmt.Errorf("create support ticket: %w", err)
	}

	return nil
}

func (sr *supportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportTicket, error) {
	query := `SELECT ` + supportColumns + ` FROM support_tickets WHERE id = $1`

	ticket, err := scanTicket(sr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find support ticket",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find support ticket %s: %w", id.String(), err)
	}

	return ticket, nil
}

func (sr *supportRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.SupportTicket, error) {
	query := `SELECT ` + supportColumns + ` FROM support_tickets
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := sr.db.Query(ctx, query, userID)
	if err != nil {
		sr.log.Error("Failed to list support tickets by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list support tickets for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var tickets []entity.SupportTicket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan support ticket row: %w", err)
		}
		tickets = append(tickets, *ticket)
	}

	return tickets, rows.Err()
}

func (sr *supportRepository) FindAll(ctx context.Context, status entity.TicketStatus, limit, offset int) ([]entity.SupportTicket, error) {
	query := `SELECT ` + supportColumns + ` FROM support_tickets
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := sr.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		sr.log.Error("Failed to list support tickets", zap.Error(err))
		return nil, fmt.Errorf("list support tickets: %w", err)
	}
	defer rows.Close()

	var tickets []entity.SupportTicket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan support ticket row: %w", err)
		}
		tickets = append(tickets, *ticket)
	}

	return tickets, rows.Err()
}

func (sr *supportRepository) CountAll(ctx context.Context, status entity.TicketStatus) (int, error) {
	query := `SELECT COUNT(*) FROM support_tickets WHERE ($1 = '' OR status = $1)`

	var count int
	if err := sr.db.QueryRow(ctx, query, string(status)).Scan(&count); err != nil {
		sr.log.Error("Failed to count support tickets", zap.Error(err))
		return 0, fmt.Errorf("count support tickets: %w", err)
	}

	return count, nil
}

func (sr *supportRepository) Update(ctx context.Context, ticket *entity.SupportTicket) error {
	query := `
		UPDATE support_tickets
		SET status = $1, priority = $2, admin_response = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := sr.db.Exec(ctx, query, ticket.Status, ticket.Priority, ticket.AdminResponse, ticket.ID)
	if err != nil {
		sr.log.Error("Failed to update support ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID.String()),
		)
		return fmt.Errorf("update support ticket %s: %w", ticket.ID.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrTicketNotFound
	}

	return nil
}
