// Package client is a small HTTP client for the checkout service, used by
// host applications to open sessions and submit card parameters.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hostedpay/payments-go/checkout/models"
	"github.com/hostedpay/payments-go/payment"
)

type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

func (c *Client) CreateSession(ctx context.Context, create models.CreateSession) (*models.Session, error) {
	session := &models.Session{}
	if err := c.post(ctx, "/sessions", create, http.StatusCreated, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// RegisterCardParams submits card parameters for a session. A validation
// rejection is returned as *payment.Error so callers can surface the field
// and description directly.
func (c *Client) RegisterCardParams(ctx context.Context, sessionID string, req models.RegisterCardParams) (*models.Registration, error) {
	reg := &models.Registration{}
	if err := c.post(ctx, "/sessions/"+sessionID+"/card-params", req, http.StatusCreated, reg); err != nil {
		return nil, fmt.Errorf("register card params: %w", err)
	}
	return reg, nil
}

func (c *Client) GetRegistration(ctx context.Context, sessionID string) (*models.Registration, error) {
	target := c.Base + "/sessions/" + sessionID + "/card-params"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get card params: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}
	reg := &models.Registration{}
	if err := json.NewDecoder(resp.Body).Decode(reg); err != nil {
		return nil, fmt.Errorf("decode card params: %w", err)
	}
	return reg, nil
}

// CheckCardField runs a single live form-validation request.
func (c *Client) CheckCardField(ctx context.Context, check models.CardCheck) (bool, error) {
	result := models.CardCheckResult{}
	if err := c.post(ctx, "/card-checks", check, http.StatusOK, &result); err != nil {
		return false, fmt.Errorf("check card field: %w", err)
	}
	return result.Valid, nil
}

func (c *Client) post(ctx context.Context, path string, body any, wantStatus int, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// statusError turns a non-2xx response into an error. 422 bodies carry the
// validation error JSON written by the checkout API.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusUnprocessableEntity {
		var ve struct {
			Code        string `json:"code"`
			Field       string `json:"field"`
			Description string `json:"description"`
		}
		if err := json.Unmarshal(body, &ve); err == nil && ve.Code != "" {
			return &payment.Error{
				Code:        payment.ErrorCode(ve.Code),
				Field:       ve.Field,
				Description: ve.Description,
			}
		}
	}
	return fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
}
