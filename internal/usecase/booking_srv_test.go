package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/gateway"
)

func newBookingService(repo *repository.Repository) BookingService {
	mail := NewMailService(gateway.NewLogMailer(zap.NewNop()), "http://localhost:8080", zap.NewNop())
	return NewBookingService(repo, mail, 15, "USD", zap.NewNop())
}

func validBookingReq() *request.CreateBookingRequest {
	departure := time.Now().Add(14 * 24 * time.Hour).Format("2006-01-02")
	return &request.CreateBookingRequest{
		Route:         request.BookingRoute{From: "lhr", To: "jfk"},
		TripType:      "oneway",
		DepartureDate: departure,
		Passengers: []request.BookingPassenger{
			{Title: "Ms", FirstName: "Alice", LastName: "Nguyen", Email: "Alice@Example.com"},
			{Title: "Mr", FirstName: "Bob", LastName: "Nguyen"},
		},
		ContactEmail:  "Alice@Example.com",
		TermsAccepted: true,
	}
}

func TestCreateBookingAuthenticated(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)
	ctx := context.Background()
	userID := uuid.New()

	resp, err := svc.CreateBooking(ctx, &userID, validBookingReq())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{6}$`), resp.PNR)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, "LHR", resp.Route.From)
	assert.Equal(t, "JFK", resp.Route.To)
	assert.Equal(t, 30.0, resp.TotalAmount) // 2 passengers at 15
	assert.Equal(t, "alice@example.com", resp.ContactEmail)
	assert.False(t, resp.Guest)
	require.Len(t, resp.Passengers, 2)
}

func TestCreateBookingGuest(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)
	ctx := context.Background()

	resp, err := svc.CreateBooking(ctx, nil, validBookingReq())
	require.NoError(t, err)
	assert.True(t, resp.Guest)

	guest, err := repo.User.FindByEmail(ctx, entity.GuestEmail)
	require.NoError(t, err)
	require.NotNil(t, guest)

	// A second guest booking reuses the same shared account.
	again, err := svc.CreateBooking(ctx, nil, validBookingReq())
	require.NoError(t, err)
	assert.NotEqual(t, resp.PNR, again.PNR)
}

func TestCreateBookingUnknownAirport(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)
	ctx := context.Background()

	req := validBookingReq()
	req.Route.To = "zzz"
	_, err := svc.CreateBooking(ctx, nil, req)
	assert.ErrorIs(t, err, entity.ErrUnknownAirport)
}

func TestCreateBookingSameOriginAndDestination(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)

	req := validBookingReq()
	req.Route.To = "LHR"
	_, err := svc.CreateBooking(context.Background(), nil, req)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestCreateBookingPastDeparture(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)

	req := validBookingReq()
	req.DepartureDate = time.Now().Add(-48 * time.Hour).Format("2006-01-02")
	_, err := svc.CreateBooking(context.Background(), nil, req)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestCreateBookingRoundtripRules(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)
	ctx := context.Background()

	req := validBookingReq()
	req.TripType = "roundtrip"
	_, err := svc.CreateBooking(ctx, nil, req)
	assert.ErrorIs(t, err, entity.ErrValidation, "missing return date")

	req.ReturnDate = time.Now().Add(7 * 24 * time.Hour).Format("2006-01-02")
	_, err = svc.CreateBooking(ctx, nil, req)
	assert.ErrorIs(t, err, entity.ErrValidation, "return before departure")

	req.ReturnDate = time.Now().Add(21 * 24 * time.Hour).Format("2006-01-02")
	resp, err := svc.CreateBooking(ctx, nil, req)
	require.NoError(t, err)
	assert.Equal(t, entity.TripTypeRoundtrip, resp.TripType)
	assert.NotEmpty(t, resp.ReturnDate)
}

func TestCreateBookingTermsNotAccepted(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)

	req := validBookingReq()
	req.TermsAccepted = false
	_, err := svc.CreateBooking(context.Background(), nil, req)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestGetBookingOwnerCheck(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	created, err := svc.CreateBooking(ctx, &owner, validBookingReq())
	require.NoError(t, err)
	bookingID := uuid.MustParse(created.ID)

	_, err = svc.GetByID(ctx, owner, entity.RoleCustomer, bookingID)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, stranger, entity.RoleCustomer, bookingID)
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)

	// Admin sees everything.
	_, err = svc.GetByID(ctx, stranger, entity.RoleAdmin, bookingID)
	assert.NoError(t, err)
}

func TestGuestLookupNormalizesInput(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, nil, validBookingReq())
	require.NoError(t, err)

	found, err := svc.GetByPNRAndEmail(ctx, "  "+created.PNR+"  ", "ALICE@EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetByPNRAndEmail(ctx, created.PNR, "wrong@example.com")
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)
}

func TestAdminUpdateStatusEnforcesStateMachine(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, nil, validBookingReq())
	require.NoError(t, err)
	bookingID := uuid.MustParse(created.ID)

	// pending -> confirmed is allowed
	updated, err := svc.AdminUpdateStatus(ctx, bookingID, entity.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)

	// confirmed -> pending is not
	_, err = svc.AdminUpdateStatus(ctx, bookingID, entity.BookingStatusPending)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)

	// confirmed -> expired is not
	_, err = svc.AdminUpdateStatus(ctx, bookingID, entity.BookingStatusExpired)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)

	// confirmed -> cancelled is
	updated, err = svc.AdminUpdateStatus(ctx, bookingID, entity.BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, updated.Status)

	// cancelled is terminal
	_, err = svc.AdminUpdateStatus(ctx, bookingID, entity.BookingStatusConfirmed)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestListByUserPaginates(t *testing.T) {
	repo := newTestRepo()
	svc := newBookingService(repo)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateBooking(ctx, &userID, validBookingReq())
		require.NoError(t, err)
	}

	page, err := svc.ListByUser(ctx, userID, request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 3, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}
