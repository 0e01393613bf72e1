package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/gateway"
)

func newFlightService() FlightService {
	return NewFlightService(newTestRepo(), gateway.NewDemoAmadeusGateway(15, "USD"), zap.NewNop())
}

func TestSearchOffersDemoGateway(t *testing.T) {
	svc := newFlightService()

	offers, err := svc.SearchOffers(context.Background(), &request.SearchOffersRequest{
		From:          "lhr",
		To:            "JFK",
		DepartureDate: time.Now().Add(14 * 24 * time.Hour).Format("2006-01-02"),
		Adults:        2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, offers)
	for _, offer := range offers {
		assert.Equal(t, 30.0, offer.Price)
		assert.Equal(t, "USD", offer.Currency)
	}
}

func TestSearchOffersDefaultsToOneAdult(t *testing.T) {
	svc := newFlightService()

	offers, err := svc.SearchOffers(context.Background(), &request.SearchOffersRequest{
		From:          "LHR",
		To:            "JFK",
		DepartureDate: time.Now().Add(24 * time.Hour).Format("2006-01-02"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, offers)
	assert.Equal(t, 15.0, offers[0].Price)
}

func TestSearchOffersRejectsUnknownAirport(t *testing.T) {
	svc := newFlightService()

	_, err := svc.SearchOffers(context.Background(), &request.SearchOffersRequest{
		From:          "XXX",
		To:            "JFK",
		DepartureDate: "2026-12-01",
	})
	assert.ErrorIs(t, err, entity.ErrUnknownAirport)
}

func TestSearchOffersRejectsBadDate(t *testing.T) {
	svc := newFlightService()

	_, err := svc.SearchOffers(context.Background(), &request.SearchOffersRequest{
		From:          "LHR",
		To:            "JFK",
		DepartureDate: "01/12/2026",
	})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestGetAirport(t *testing.T) {
	svc := newFlightService()
	ctx := context.Background()

	airport, err := svc.GetAirport(ctx, "jfk")
	require.NoError(t, err)
	assert.Equal(t, "JFK", airport.Code)

	_, err = svc.GetAirport(ctx, "ZZZ")
	assert.ErrorIs(t, err, entity.ErrUnknownAirport)
}

func TestListAirports(t *testing.T) {
	svc := newFlightService()

	results := svc.ListAirports(context.Background(), "london", 10)
	require.NotEmpty(t, results)
	codes := make([]string, len(results))
	for i, a := range results {
		codes[i] = a.Code
	}
	assert.Contains(t, codes, "LHR")
}
