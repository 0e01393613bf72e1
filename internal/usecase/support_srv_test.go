package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/dto/request"
)

func newTicketReq(category string) *request.CreateTicketRequest {
	return &request.CreateTicketRequest{
		Subject:  "Missing e-ticket",
		Message:  "I paid an hour ago and never received the PDF.",
		Category: category,
	}
}

func TestCreateTicketAssignsPriority(t *testing.T) {
	svc := NewSupportService(newTestRepo(), zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	cases := map[string]entity.TicketPriority{
		"payment":   entity.TicketPriorityHigh,
		"booking":   entity.TicketPriorityMedium,
		"technical": entity.TicketPriorityLow,
		"general":   entity.TicketPriorityLow,
	}
	for category, want := range cases {
		ticket, err := svc.CreateTicket(ctx, userID, newTicketReq(category))
		require.NoError(t, err)
		assert.Equal(t, want, ticket.Priority, category)
		assert.Equal(t, entity.TicketStatusOpen, ticket.Status)
	}
}

func TestGetTicketOwnership(t *testing.T) {
	svc := NewSupportService(newTestRepo(), zap.NewNop())
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.CreateTicket(ctx, owner, newTicketReq("general"))
	require.NoError(t, err)
	ticketID := uuid.MustParse(created.ID)

	got, err := svc.GetByID(ctx, owner, entity.RoleCustomer, ticketID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Another customer cannot see it, an admin can.
	_, err = svc.GetByID(ctx, uuid.New(), entity.RoleCustomer, ticketID)
	assert.ErrorIs(t, err, entity.ErrTicketNotFound)

	_, err = svc.GetByID(ctx, uuid.New(), entity.RoleAdmin, ticketID)
	assert.NoError(t, err)
}

func TestAdminReplyMovesOpenTicketToInProgress(t *testing.T) {
	svc := NewSupportService(newTestRepo(), zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateTicket(ctx, uuid.New(), newTicketReq("payment"))
	require.NoError(t, err)
	ticketID := uuid.MustParse(created.ID)

	updated, err := svc.AdminUpdate(ctx, ticketID, &request.UpdateTicketRequest{
		AdminResponse: "We are regenerating your ticket now.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusInProgress, updated.Status)
	assert.Equal(t, "We are regenerating your ticket now.", updated.AdminResponse)

	// Explicit status wins over the implicit bump.
	updated, err = svc.AdminUpdate(ctx, ticketID, &request.UpdateTicketRequest{Status: "resolved"})
	require.NoError(t, err)
	assert.Equal(t, entity.TicketStatusResolved, updated.Status)
}

func TestAdminUpdateUnknownTicket(t *testing.T) {
	svc := NewSupportService(newTestRepo(), zap.NewNop())
	_, err := svc.AdminUpdate(context.Background(), uuid.New(), &request.UpdateTicketRequest{Status: "closed"})
	assert.ErrorIs(t, err, entity.ErrTicketNotFound)
}

func TestAdminListFiltersByStatus(t *testing.T) {
	repo := newTestRepo()
	svc := NewSupportService(repo, zap.NewNop())
	ctx := context.Background()

	var firstID uuid.UUID
	for i := 0; i < 3; i++ {
		created, err := svc.CreateTicket(ctx, uuid.New(), newTicketReq("general"))
		require.NoError(t, err)
		if i == 0 {
			firstID = uuid.MustParse(created.ID)
		}
	}
	_, err := svc.AdminUpdate(ctx, firstID, &request.UpdateTicketRequest{Status: "resolved"})
	require.NoError(t, err)

	open, err := svc.AdminList(ctx, "open", request.PaginatedRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, open.Pagination.Total)

	all, err := svc.AdminList(ctx, "", request.PaginatedRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Pagination.Total)
}
