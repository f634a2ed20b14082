package gateway

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/tkoskela/libpay/internal/pkg/http"
	"github.com/tkoskela/libpay/internal/pkg/models"
	"github.com/tkoskela/libpay/services/payment"
)

// ILSGateway is the HTTP client for the integrated library system's
// patron and payment APIs
type ILSGateway struct {
	client *httpclient.APIKeyClient
}

// NewILSGateway creates a new ILS gateway from configuration
func NewILSGateway(config models.ILSConfig) *ILSGateway {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second

	return &ILSGateway{
		client: httpclient.NewAPIKeyClient(config.APIKey, "ils", config.BaseURL, timeout),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Patron *models.Patron `json:"patron"`
	Error  string         `json:"error,omitempty"`
}

// Login authenticates a patron against the ILS
func (g *ILSGateway) Login(ctx context.Context, username, password string) (*models.Patron, error) {
	var resp loginResponse
	err := g.client.PostJSON(ctx, "/api/v1/patrons/login", &loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("ILS login request failed: %w", err)
	}
	if resp.Patron == nil {
		if resp.Error != "" {
			return nil, fmt.Errorf("ILS rejected login: %s", resp.Error)
		}
		return nil, fmt.Errorf("ILS rejected login")
	}

	patron := resp.Patron
	patron.CatUsername = username
	patron.CatPassword = password
	return patron, nil
}

// GetOnlinePaymentConfig reads the online-payment policy for the patron's
// home organization
func (g *ILSGateway) GetOnlinePaymentConfig(ctx context.Context, patron *models.Patron) (*models.PaymentPolicy, error) {
	var policy models.PaymentPolicy
	endpoint := fmt.Sprintf("/api/v1/patrons/%s/payment-config", patron.ExternalID)
	if err := g.client.GetJSON(ctx, endpoint, &policy); err != nil {
		return nil, fmt.Errorf("failed to read payment config: %w", err)
	}
	return &policy, nil
}

type finesResponse struct {
	Fines []*models.Fine `json:"fines"`
}

// ListFines lists the patron's open fines
func (g *ILSGateway) ListFines(ctx context.Context, patron *models.Patron) ([]*models.Fine, error) {
	var resp finesResponse
	endpoint := fmt.Sprintf("/api/v1/patrons/%s/fines", patron.ExternalID)
	if err := g.client.GetJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to list fines: %w", err)
	}
	return resp.Fines, nil
}

// GetCurrentFines computes the currently payable total, restricted to the
// given fine ids when non-empty
func (g *ILSGateway) GetCurrentFines(ctx context.Context, patron *models.Patron, fineIDs []string) (*models.FineSummary, error) {
	fines, err := g.ListFines(ctx, patron)
	if err != nil {
		return nil, err
	}

	requested := map[string]bool{}
	for _, id := range fineIDs {
		requested[id] = true
	}

	summary := &models.FineSummary{}
	for _, fine := range fines {
		if !fine.Payable {
			continue
		}
		if len(requested) > 0 && !requested[fine.FineID] {
			continue
		}
		summary.Payable = true
		summary.Amount += fine.Amount
	}

	return summary, nil
}

type clearFeesRequest struct {
	Amount               int64    `json:"amount"`
	Currency             string   `json:"currency"`
	GatewayTransactionID string   `json:"gateway_transaction_id"`
	TransactionID        string   `json:"transaction_id"`
	FineIDs              []string `json:"fine_ids,omitempty"`
}

type clearFeesResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ClearFees registers the payment in the ILS, clearing the matching fines.
// The ILS's string status is converted into a tagged result here so the
// engine never has to compare sentinels.
func (g *ILSGateway) ClearFees(ctx context.Context, patron *models.Patron, req *payment.ClearFeesRequest) (*payment.ClearResult, error) {
	var resp clearFeesResponse
	endpoint := fmt.Sprintf("/api/v1/patrons/%s/fees/clear", patron.ExternalID)
	err := g.client.PostJSON(ctx, endpoint, &clearFeesRequest{
		Amount:               req.Amount,
		Currency:             req.Currency,
		GatewayTransactionID: req.GatewayTransactionID,
		TransactionID:        req.TransactionID,
		FineIDs:              req.FineIDs,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("fee clearing request failed: %w", err)
	}

	switch resp.Status {
	case "ok":
		return &payment.ClearResult{Outcome: payment.ClearOK}, nil
	case "fines_updated":
		return &payment.ClearResult{Outcome: payment.ClearFinesUpdated, Detail: resp.Detail}, nil
	default:
		detail := resp.Detail
		if detail == "" {
			detail = fmt.Sprintf("ILS returned status %q", resp.Status)
		}
		return &payment.ClearResult{Outcome: payment.ClearFailed, Detail: detail}, nil
	}
}
