package request

type CreateTicketRequest struct {
	Subject  string `json:"subject" validate:"required,min=5,max=200"`
	Message  string `json:"message" validate:"required,min=10,max=2000"`
	Category string `json:"category" validate:"required,oneof=booking payment technical general"`
}

type UpdateTicketRequest struct {
	Status        string `json:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	Priority      string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AdminResponse string `json:"admin_response" validate:"omitempty,max=2000"`
}
