package entity

import (
	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

type TicketCategory string

const (
	TicketCategoryBooking   TicketCategory = "booking"
	TicketCategoryPayment   TicketCategory = "payment"
	TicketCategoryTechnical TicketCategory = "technical"
	TicketCategoryGeneral   TicketCategory = "general"
)

type SupportTicket struct {
	Base
	UserID        uuid.UUID      `db:"user_id"`
	Subject       string         `db:"subject"`
	Message       string         `db:"message"`
	Category      TicketCategory `db:"category"`
	Priority      TicketPriority `db:"priority"`
	Status        TicketStatus   `db:"status"`
	AdminResponse *string        `db:"admin_response"`
}
