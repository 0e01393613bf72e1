package request

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=0"`
	PerPage int `json:"per_page" validate:"min=0,max=100"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return 10
	}
	if p.PerPage > 100 {
		return 100
	}
	return p.PerPage
}

func (p PaginatedRequest) CurrentPage() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}
