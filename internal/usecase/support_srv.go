package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
)

type SupportService interface {
	CreateTicket(ctx context.Context, userID uuid.UUID, req *request.CreateTicketRequest) (*response.TicketResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]response.TicketResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID, role entity.UserRole, ticketID uuid.UUID) (*response.TicketResponse, error)
	AdminList(ctx context.Context, status string, page request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error)
	AdminUpdate(ctx context.Context, ticketID uuid.UUID, req *request.UpdateTicketRequest) (*response.TicketResponse, error)
}

type supportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSupportService(repo *repository.Repository, log *zap.Logger) SupportService {
	return &supportService{
		repo: repo,
		log:  log.With(zap.String("service", "support")),
	}
}

// priorityFor gives payment issues a head start in the queue.
func priorityFor(category entity.TicketCategory) entity.TicketPriority {
	switch category {
	case entity.TicketCategoryPayment:
		return entity.TicketPriorityHigh
	case entity.TicketCategoryBooking:
		return entity.TicketPriorityMedium
	default:
		return entity.TicketPriorityLow
	}
}

func (s *supportService) CreateTicket(ctx context.Context, userID uuid.UUID, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	category := entity.TicketCategory(req.Category)

	now := timeNow()
	ticket := &entity.SupportTicket{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:   userID,
		Subject:  req.Subject,
		Message:  req.Message,
		Category: category,
		Priority: priorityFor(category),
		Status:   entity.TicketStatusOpen,
	}

	if err := s.repo.Support.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create support ticket: %w", err)
	}

	s.log.Info("support ticket created",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("category", string(category)),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *supportService) ListByUser(ctx context.Context, userID uuid.UUID) ([]response.TicketResponse, error) {
	tickets, err := s.repo.Support.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list support tickets: %w", err)
	}

	out := make([]response.TicketResponse, len(tickets))
	for i := range tickets {
		out[i] = response.TicketToResponse(&tickets[i])
	}
	return out, nil
}

func (s *supportService) GetByID(ctx context.Context, userID uuid.UUID, role entity.UserRole, ticketID uuid.UUID) (*response.TicketResponse, error) {
	ticket, err := s.repo.Support.FindByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("find support ticket: %w", err)
	}
	if ticket == nil {
		return nil, entity.ErrTicketNotFound
	}
	if ticket.UserID != userID && role != entity.RoleAdmin {
		return nil, entity.ErrTicketNotFound
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *supportService) AdminList(ctx context.Context, status string, page request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error) {
	ticketStatus := entity.TicketStatus(status)
	tickets, err := s.repo.Support.FindAll(ctx, ticketStatus, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list support tickets: %w", err)
	}
	total, err := s.repo.Support.CountAll(ctx, ticketStatus)
	if err != nil {
		return nil, fmt.Errorf("count support tickets: %w", err)
	}

	items := make([]response.TicketResponse, len(tickets))
	for i := range tickets {
		items[i] = response.TicketToResponse(&tickets[i])
	}
	return response.NewPaginatedResponse(items, page.CurrentPage(), page.Limit(), total), nil
}

func (s *supportService) AdminUpdate(ctx context.Context, ticketID uuid.UUID, req *request.UpdateTicketRequest) (*response.TicketResponse, error) {
	ticket, err := s.repo.Support.FindByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("find support ticket: %w", err)
	}
	if ticket == nil {
		return nil, entity.ErrTicketNotFound
	}

	if req.Status != "" {
		ticket.Status = entity.TicketStatus(req.Status)
	}
	if req.Priority != "" {
		ticket.Priority = entity.TicketPriority(req.Priority)
	}
	if req.AdminResponse != "" {
		ticket.AdminResponse = &req.AdminResponse
		// A reply to an open ticket implicitly starts work on it.
		if ticket.Status == entity.TicketStatusOpen {
			ticket.Status = entity.TicketStatusInProgress
		}
	}

	if err := s.repo.Support.Update(ctx, ticket); err != nil {
		return nil, err
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}
