package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type TicketResponse struct {
	ID            string                `json:"id"`
	Subject       string                `json:"subject"`
	Message       string                `json:"message"`
	Category      entity.TicketCategory `json:"category"`
	Priority      entity.TicketPriority `json:"priority"`
	Status        entity.TicketStatus   `json:"status"`
	AdminResponse string                `json:"admin_response,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// Helper converters
func TicketToResponse(t *entity.SupportTicket) TicketResponse {
	resp := TicketResponse{
		ID:        t.ID.String(),
		Subject:   t.Subject,
		Message:   t.Message,
		Category:  t.Category,
		Priority:  t.Priority,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.AdminResponse != nil {
		resp.AdminResponse = *t.AdminResponse
	}
	return resp
}
