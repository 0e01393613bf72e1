package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/gateway"
)

type FlightService interface {
	SearchOffers(ctx context.Context, req *request.SearchOffersRequest) ([]response.FlightOfferResponse, error)
	ListAirports(ctx context.Context, query string, limit int) []response.AirportResponse
	GetAirport(ctx context.Context, code string) (*response.AirportResponse, error)
}

type flightService struct {
	repo    *repository.Repository
	amadeus gateway.AmadeusClient
	log     *zap.Logger
}

func NewFlightService(repo *repository.Repository, amadeus gateway.AmadeusClient, log *zap.Logger) FlightService {
	return &flightService{
		repo:    repo,
		amadeus: amadeus,
		log:     log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) SearchOffers(ctx context.Context, req *request.SearchOffersRequest) ([]response.FlightOfferResponse, error) {
	from := strings.ToUpper(req.From)
	to := strings.ToUpper(req.To)
	if _, ok := s.repo.Airports.ByCode(from); !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownAirport, from)
	}
	if _, ok := s.repo.Airports.ByCode(to); !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownAirport, to)
	}

	date, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid departure date", entity.ErrValidation)
	}

	adults := req.Adults
	if adults < 1 {
		adults = 1
	}

	offers, err := s.amadeus.SearchOffers(ctx, from, to, date, adults)
	if err != nil {
		return nil, err
	}

	return response.OffersToResponse(offers), nil
}

func (s *flightService) ListAirports(_ context.Context, query string, limit int) []response.AirportResponse {
	return response.AirportsToResponse(s.repo.Airports.Search(query, limit))
}

func (s *flightService) GetAirport(_ context.Context, code string) (*response.AirportResponse, error) {
	airport, ok := s.repo.Airports.ByCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownAirport, strings.ToUpper(code))
	}
	resp := response.AirportToResponse(airport)
	return &resp, nil
}
