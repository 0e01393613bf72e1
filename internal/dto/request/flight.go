package request

type SearchOffersRequest struct {
	From          string `json:"from" validate:"required,len=3,alpha"`
	To            string `json:"to" validate:"required,len=3,alpha"`
	DepartureDate string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	Adults        int    `json:"adults" validate:"omitempty,min=1,max=9"`
}
