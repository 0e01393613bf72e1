package request

type BookingRoute struct {
	From string `json:"from" validate:"required,len=3,alpha"`
	To   string `json:"to" validate:"required,len=3,alpha"`
}

type BookingPassenger struct {
	Title     string `json:"title" validate:"required,oneof=Mr Ms Mrs"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type CreateBookingRequest struct {
	Route         BookingRoute       `json:"route" validate:"required"`
	TripType      string             `json:"trip_type" validate:"required,oneof=oneway roundtrip"`
	DepartureDate string             `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string             `json:"return_date" validate:"omitempty,datetime=2006-01-02"`
	Passengers    []BookingPassenger `json:"passengers" validate:"required,min=1,max=9,dive"`
	ContactEmail  string             `json:"contact_email" validate:"required,email"`
	TermsAccepted bool               `json:"terms_accepted"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled expired"`
}
