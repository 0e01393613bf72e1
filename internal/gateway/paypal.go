package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
)

// PayPalOrder is the subset of a PayPal order the checkout flow needs.
type PayPalOrder struct {
	ID         string
	Status     string
	ApproveURL string
}

type PayPalClient interface {
	Configured() bool
	CreateOrder(ctx context.Context, amount float64, currency, pnr string) (*PayPalOrder, error)
	// VerifyOrder checks the order is buyer-approved and belongs to the
	// payer that the client claims completed it.
	VerifyOrder(ctx context.Context, orderID, payerID string) (bool, error)
	CaptureOrder(ctx context.Context, orderID string) error
}

type paypalGateway struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
	log          *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewPayPalGateway(clientID, clientSecret, baseURL string, log *zap.Logger) PayPalClient {
	return &paypalGateway{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		log:          log.With(zap.String("gateway", "paypal")),
	}
}

func (g *paypalGateway) Configured() bool {
	return true
}

func (g *paypalGateway) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accessToken != "" && time.Now().Before(g.tokenExpiry) {
		return g.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build paypal token request: %w", err)
	}
	req.SetBasicAuth(g.clientID, g.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.Error("Failed to fetch paypal token", zap.Error(err))
		return "", fmt.Errorf("fetch paypal token: %w", entity.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.Error("Paypal token request rejected", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("paypal token status %d: %w", resp.StatusCode, entity.ErrProviderUnavailable)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode paypal token: %w", err)
	}

	g.accessToken = body.AccessToken
	// Refresh a minute early so an expiring token never rides a request.
	g.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn-60) * time.Second)
	return g.accessToken, nil
}

func (g *paypalGateway) call(ctx context.Context, method, path string, payload, out any) error {
	token, err := g.token(ctx)
	if err != nil {
		return err
	}

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode paypal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build paypal request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.log.Error("Paypal request failed", zap.Error(err), zap.String("path", path))
		return fmt.Errorf("paypal request %s: %w", path, entity.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.log.Error("Paypal request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path),
		)
		return fmt.Errorf("paypal status %d on %s: %w", resp.StatusCode, path, entity.ErrProviderUnavailable)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode paypal response: %w", err)
		}
	}
	return nil
}

type paypalOrderBody struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Payer  struct {
		PayerID string `json:"payer_id"`
	} `json:"payer"`
	Links []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links"`
}

func (g *paypalGateway) CreateOrder(ctx context.Context, amount float64, currency, pnr string) (*PayPalOrder, error) {
	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{{
			"reference_id": pnr,
			"amount": map[string]string{
				"currency_code": strings.ToUpper(currency),
				"value":         fmt.Sprintf("%.2f", amount),
			},
		}},
	}

	var body paypalOrderBody
	if err := g.call(ctx, http.MethodPost, "/v2/checkout/orders", payload, &body); err != nil {
		return nil, err
	}

	order := &PayPalOrder{ID: body.ID, Status: body.Status}
	for _, link := range body.Links {
		if link.Rel == "approve" {
			order.ApproveURL = link.Href
		}
	}
	return order, nil
}

func (g *paypalGateway) VerifyOrder(ctx context.Context, orderID, payerID string) (bool, error) {
	var body paypalOrderBody
	if err := g.call(ctx, http.MethodGet, "/v2/checkout/orders/"+orderID, nil, &body); err != nil {
		return false, err
	}
	return body.Status == "APPROVED" && body.Payer.PayerID == payerID, nil
}

func (g *paypalGateway) CaptureOrder(ctx context.Context, orderID string) error {
	return g.call(ctx, http.MethodPost, "/v2/checkout/orders/"+orderID+"/capture", nil, nil)
}

// demoPayPalGateway keeps fabricated orders in memory so the full
// create/verify/capture sequence works offline.
type demoPayPalGateway struct {
	mu     sync.Mutex
	orders map[string]bool
	log    *zap.Logger
}

func NewDemoPayPalGateway(log *zap.Logger) PayPalClient {
	return &demoPayPalGateway{
		orders: make(map[string]bool),
		log:    log.With(zap.String("gateway", "paypal-demo")),
	}
}

func (g *demoPayPalGateway) Configured() bool {
	return false
}

func (g *demoPayPalGateway) CreateOrder(_ context.Context, amount float64, currency, pnr string) (*PayPalOrder, error) {
	id := fmt.Sprintf("mock_order_%d", time.Now().UnixNano())

	g.mu.Lock()
	g.orders[id] = true
	g.mu.Unlock()

	g.log.Info("created demo paypal order",
		zap.String("order_id", id),
		zap.Float64("amount", amount),
		zap.String("currency", currency),
		zap.String("pnr", pnr),
	)
	return &PayPalOrder{ID: id, Status: "CREATED"}, nil
}

func (g *demoPayPalGateway) VerifyOrder(_ context.Context, orderID, _ string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.orders[orderID], nil
}

func (g *demoPayPalGateway) CaptureOrder(_ context.Context, orderID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.orders[orderID] {
		return entity.ErrProviderUnavailable
	}
	delete(g.orders, orderID)
	return nil
}
