package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
)

// FlightOffer is a priced itinerary option shown before booking. Offers are
// advisory only, the booking itself is priced per passenger.
type FlightOffer struct {
	ID            string
	From          string
	To            string
	DepartureDate string
	DepartureTime string
	Carrier       string
	Price         float64
	Currency      string
}

type AmadeusClient interface {
	SearchOffers(ctx context.Context, from, to string, date time.Time, adults int) ([]FlightOffer, error)
}

type amadeusGateway struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
	log          *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewAmadeusGateway(clientID, clientSecret, baseURL string, log *zap.Logger) AmadeusClient {
	return &amadeusGateway{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		log:          log.With(zap.String("gateway", "amadeus")),
	}
}

func (g *amadeusGateway) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accessToken != "" && time.Now().Before(g.tokenExpiry) {
		return g.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {g.clientID},
		"client_secret": {g.clientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build amadeus token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.Error("Failed to fetch amadeus token", zap.Error(err))
		return "", fmt.Errorf("fetch amadeus token: %w", entity.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.Error("Amadeus token request rejected", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("amadeus token status %d: %w", resp.StatusCode, entity.ErrProviderUnavailable)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode amadeus token: %w", err)
	}

	g.accessToken = body.AccessToken
	g.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn-60) * time.Second)
	return g.accessToken, nil
}

func (g *amadeusGateway) SearchOffers(ctx context.Context, from, to string, date time.Time, adults int) ([]FlightOffer, error) {
	token, err := g.token(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"originLocationCode":      {strings.ToUpper(from)},
		"destinationLocationCode": {strings.ToUpper(to)},
		"departureDate":           {date.Format("2006-01-02")},
		"adults":                  {strconv.Itoa(adults)},
		"max":                     {"10"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.baseURL+"/v2/shopping/flight-offers?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build offer search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.Error("Offer search failed", zap.Error(err))
		return nil, fmt.Errorf("search flight offers: %w", entity.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.Error("Offer search rejected", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("offer search status %d: %w", resp.StatusCode, entity.ErrProviderUnavailable)
	}

	var body struct {
		Data []struct {
			ID    string `json:"id"`
			Price struct {
				GrandTotal string `json:"grandTotal"`
				Currency   string `json:"currency"`
			} `json:"price"`
			Itineraries []struct {
				Segments []struct {
					CarrierCode string `json:"carrierCode"`
					Departure   struct {
						At string `json:"at"`
					} `json:"departure"`
				} `json:"segments"`
			} `json:"itineraries"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode offer search response: %w", err)
	}

	offers := make([]FlightOffer, 0, len(body.Data))
	for _, d := range body.Data {
		price, err := strconv.ParseFloat(d.Price.GrandTotal, 64)
		if err != nil {
			continue
		}
		offer := FlightOffer{
			ID:            d.ID,
			From:          strings.ToUpper(from),
			To:            strings.ToUpper(to),
			DepartureDate: date.Format("2006-01-02"),
			Price:         price,
			Currency:      d.Price.Currency,
		}
		if len(d.Itineraries) > 0 && len(d.Itineraries[0].Segments) > 0 {
			seg := d.Itineraries[0].Segments[0]
			offer.Carrier = seg.CarrierCode
			if at, err := time.Parse("2006-01-02T15:04:05", seg.Departure.At); err == nil {
				offer.DepartureTime = at.Format("15:04")
			}
		}
		offers = append(offers, offer)
	}

	return offers, nil
}

// demoAmadeusGateway fabricates a stable set of offers at the configured
// ticket price so search works without Amadeus credentials.
type demoAmadeusGateway struct {
	unitPrice float64
	currency  string
}

func NewDemoAmadeusGateway(unitPrice float64, currency string) AmadeusClient {
	return &demoAmadeusGateway{unitPrice: unitPrice, currency: currency}
}

func (g *demoAmadeusGateway) SearchOffers(_ context.Context, from, to string, date time.Time, adults int) ([]FlightOffer, error) {
	carriers := []string{"BA", "AF", "LH"}
	times := []string{"07:45", "13:20", "19:05"}

	offers := make([]FlightOffer, 0, len(carriers))
	for i, carrier := range carriers {
		offers = append(offers, FlightOffer{
			ID:            fmt.Sprintf("demo-%s-%s-%d", from, to, i+1),
			From:          strings.ToUpper(from),
			To:            strings.ToUpper(to),
			DepartureDate: date.Format("2006-01-02"),
			DepartureTime: times[i],
			Carrier:       carrier,
			Price:         g.unitPrice * float64(adults),
			Currency:      g.currency,
		})
	}
	return offers, nil
}
