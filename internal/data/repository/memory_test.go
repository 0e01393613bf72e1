package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-booking/internal/data/entity"
)

func newTestBooking(status entity.BookingStatus) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		PNR:           "ABC123",
		UserID:        uuid.New(),
		Status:        status,
		FromCode:      "LHR",
		ToCode:        "JFK",
		DepartureDate: now.Add(72 * time.Hour),
		TripType:      entity.TripTypeOneway,
		TotalAmount:   30,
		Currency:      "USD",
		ContactEmail:  "traveler@example.com",
		TermsAccepted: true,
	}
}

func TestMemoryUserDuplicateEmailIsCaseInsensitive(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	now := time.Now()
	user := &entity.User{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:  "alice@example.com",
		Role:   entity.RoleCustomer,
		Status: entity.UserStatusActive,
	}
	require.NoError(t, repo.Create(ctx, user))

	dup := &entity.User{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email: "Alice@Example.com",
	}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, entity.ErrDuplicateEmail)

	found, err := repo.FindByEmail(ctx, "ALICE@EXAMPLE.COM")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
}

func TestMemoryBookingConditionalTransition(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	booking := newTestBooking(entity.BookingStatusPending)
	require.NoError(t, repo.Create(ctx, booking))

	moved, err := repo.TransitionStatus(ctx, booking.ID, entity.BookingStatusPending, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.True(t, moved)

	// Second transition from pending must lose.
	moved, err = repo.TransitionStatus(ctx, booking.ID, entity.BookingStatusPending, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.False(t, moved)

	found, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, found.Status)
}

func TestMemoryBookingConcurrentTransitionSingleWinner(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	booking := newTestBooking(entity.BookingStatusPending)
	require.NoError(t, repo.Create(ctx, booking))

	const attempts = 16
	var wg sync.WaitGroup
	wins := make(chan bool, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			moved, err := repo.TransitionStatus(ctx, booking.ID, entity.BookingStatusPending, entity.BookingStatusConfirmed)
			assert.NoError(t, err)
			wins <- moved
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for moved := range wins {
		if moved {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

func TestMemoryBookingFindByPNRAndEmail(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	booking := newTestBooking(entity.BookingStatusPending)
	require.NoError(t, repo.Create(ctx, booking))

	found, err := repo.FindByPNRAndEmail(ctx, "ABC123", "TRAVELER@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, booking.ID, found.ID)

	found, err = repo.FindByPNRAndEmail(ctx, "ABC123", "other@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryBookingPagination(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 5; i++ {
		b := newTestBooking(entity.BookingStatusPending)
		b.UserID = userID
		b.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Create(ctx, b))
	}

	page, err := repo.FindByUserID(ctx, userID, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	// Newest first
	assert.True(t, page[0].CreatedAt.After(page[1].CreatedAt))

	count, err := repo.CountByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	rest, err := repo.FindByUserID(ctx, userID, 10, 4)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	none, err := repo.FindByUserID(ctx, userID, 10, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryTransactionRefundReason(t *testing.T) {
	repo := NewMemoryTransactionRepository()
	ctx := context.Background()

	now := time.Now()
	transaction := &entity.Transaction{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		BookingID: uuid.New(),
		UserID:    uuid.New(),
		Amount:    30,
		Currency:  "USD",
		Method:    entity.PaymentMethodCard,
		Status:    entity.TransactionStatusCompleted,
	}
	require.NoError(t, repo.Create(ctx, transaction))

	require.NoError(t, repo.UpdateStatus(ctx, transaction.ID, entity.TransactionStatusRefunded, "customer request"))

	found, err := repo.FindByID(ctx, transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusRefunded, found.Status)
	assert.Equal(t, "customer request", found.Details["refund_reason"])

	err = repo.UpdateStatus(ctx, uuid.New(), entity.TransactionStatusRefunded, "")
	assert.ErrorIs(t, err, entity.ErrTransactionNotFound)
}
