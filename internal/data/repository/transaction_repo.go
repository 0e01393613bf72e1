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

const transactionColumns = `id, booking_id, user_id, amount, currency, payment_method,
	       status, stripe_payment_id, paypal_order_id, paypal_payer_id,
	       payment_details, created_at, updated_at`

type transactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactionRepository(db database.PgxIface, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID,
		&t.BookingID,
		&t.UserID,
		&t.Amount,
		&t.Currency,
		&t.Method,
		&t.Status,
		&t.StripePaymentID,
		&t.PayPalOrderID,
		&t.PayPalPayerID,
		&t.Details,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (tr *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, booking_id, user_id, amount, currency,
		                          payment_method, status, stripe_payment_id,
		                          paypal_order_id, paypal_payer_id, payment_details,
		                          created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := tr.db.Exec(ctx, query,
		transaction.ID,
		transaction.BookingID,
		transaction.UserID,
		transaction.Amount,
		transaction.Currency,
		transaction.Method,
		transaction.Status,
		transaction.StripePaymentID,
		transaction.PayPalOrderID,
		transaction.PayPalPayerID,
		transaction.Details,
		transaction.CreatedAt,
		transaction.UpdatedAt,
	)

	if err != nil {
		tr.log.Error("Failed to create transaction",
			zap.Error(err),
			zap.String("booking_id", transaction.BookingID.String()),
		)
		return fmt.Errorf("create transaction for booking %s: %w", transaction.BookingID.String(), err)
	}

	return nil
}

func (tr *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	transaction, err := scanTransaction(tr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		tr.log.Error("Failed to find transaction by ID",
			zap.Error(err),
			zap.String("transaction_id", id.String()),
		)
		return nil, fmt.Errorf("find transaction by ID %s: %w", id.String(), err)
	}

	return transaction, nil
}

func (tr *transactionRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := tr.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		tr.log.Error("Failed to list transactions by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list transactions for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var transactions []entity.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, *transaction)
	}

	return transactions, rows.Err()
}

func (tr *transactionRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE user_id = $1`

	var count int
	if err := tr.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		tr.log.Error("Failed to count transactions by user", zap.Error(err))
		return 0, fmt.Errorf("count transactions for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (tr *transactionRepository) FindAll(ctx context.Context, status entity.TransactionStatus, limit, offset int) ([]entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := tr.db.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		tr.log.Error("Failed to list transactions", zap.Error(err))
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []entity.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, *transaction)
	}

	return transactions, rows.Err()
}

func (tr *transactionRepository) CountAll(ctx context.Context, status entity.TransactionStatus) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE ($1 = '' OR status = $1)`

	var count int
	if err := tr.db.QueryRow(ctx, query, string(status)).Scan(&count); err != nil {
		tr.log.Error("Failed to count transactions", zap.Error(err))
		return 0, fmt.Errorf("count transactions: %w", err)
	}

	return count, nil
}

// UpdateStatus records the new status and, when a reason is given, stores it
// under the refund_reason key of the details document.
func (tr *transactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus, reason string) error {
	query := `
		UPDATE transactions
		SET status = $1,
		    payment_details = CASE
		        WHEN $2 = '' THEN payment_details
		        ELSE COALESCE(payment_details, '{}'::jsonb) || jsonb_build_object('refund_reason', $2::text)
		    END,
		    updated_at = NOW()
		WHERE id = $3
	`

	tag, err := tr.db.Exec(ctx, query, status, reason, id)
	if err != nil {
		tr.log.Error("Failed to update transaction status",
			zap.Error(err),
			zap.String("transaction_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update transaction %s to %s: %w", id.String(), status, err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrTransactionNotFound
	}

	return nil
}
