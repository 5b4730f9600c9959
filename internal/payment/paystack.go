package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// minorUnitFactor converts between major currency units (naira) and the
// gateway's minor unit (kobo). The conversion happens here and nowhere else:
// multiplied exactly once on the way out, divided exactly once on the way
// back.
const minorUnitFactor = 100

const defaultTimeout = 15 * time.Second

// PaystackClient talks to the Paystack transaction API. It keeps no state
// between calls.
type PaystackClient struct {
	baseURL     string
	secretKey   string
	callbackURL string
	httpClient  *http.Client
}

func NewPaystackClient(baseURL, secretKey, callbackURL string) *PaystackClient {
	return &PaystackClient{
		baseURL:     baseURL,
		secretKey:   secretKey,
		callbackURL: callbackURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
}

type initializeRequest struct {
	Email       string            `json:"email"`
	Amount      int64             `json:"amount"`
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type verifyData struct {
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
	PaidAt    string `json:"paid_at"`
	Reference string `json:"reference"`
}

func (c *PaystackClient) Initialize(ctx context.Context, email string, amount int64, reference string, metadata map[string]string) (*InitializeResult, error) {
	if amount <= 0 {
		return nil, &GatewayError{Op: "initialize", Message: fmt.Sprintf("amount must be positive, got %d", amount)}
	}

	payload := initializeRequest{
		Email:       email,
		Amount:      amount * minorUnitFactor,
		Reference:   reference,
		CallbackURL: c.callbackURL,
		Metadata:    metadata,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &GatewayError{Op: "initialize", Message: "failed to encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, &GatewayError{Op: "initialize", Message: "failed to build request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &GatewayError{Op: "initialize", Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	var result initializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &GatewayError{Op: "initialize", Message: "failed to decode response", Err: err}
	}

	if !result.Status {
		msg := result.Message
		if msg == "" {
			msg = "payment initialization failed"
		}
		return nil, &GatewayError{Op: "initialize", Message: msg}
	}

	return &InitializeResult{
		AuthorizationURL: result.Data.AuthorizationURL,
		AccessCode:       result.Data.AccessCode,
		Reference:        result.Data.Reference,
	}, nil
}

func (c *PaystackClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, &GatewayError{Op: "verify", Message: "failed to build request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &GatewayError{Op: "verify", Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &GatewayError{Op: "verify", Message: "failed to decode response", Err: err}
	}

	if !result.Status {
		return nil, &VerificationError{Reference: reference}
	}

	var data verifyData
	if err := json.Unmarshal(result.Data, &data); err != nil {
		return nil, &GatewayError{Op: "verify", Message: "failed to decode transaction data", Err: err}
	}

	if data.Status != "success" {
		return nil, &VerificationError{Reference: reference, Status: data.Status}
	}

	return &VerifyResult{
		Amount:        data.Amount / minorUnitFactor,
		CustomerEmail: data.Customer.Email,
		PaidAt:        data.PaidAt,
		Reference:     data.Reference,
		Raw:           result.Data,
	}, nil
}
