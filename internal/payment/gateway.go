package payment

import (
	"context"
	"encoding/json"
)

// InitializeResult is the outcome of a successful charge initialization.
type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResult is the outcome of a successful verification. Amount is in
// major currency units; the minor-unit value returned by the gateway has
// already been converted back by the client.
type VerifyResult struct {
	Amount        int64
	CustomerEmail string
	PaidAt        string
	Reference     string
	// Raw is the gateway's verification payload, retained for the
	// transaction ledger (audit/dispute resolution).
	Raw json.RawMessage
}

// Gateway drives the provider's initialize/verify handshake. Implementations
// hold no local state and do not retry; both failure kinds are surfaced as
// typed errors for the caller to act on.
type Gateway interface {
	// Initialize creates a charge for amount (major currency units) under
	// the caller-supplied unique reference and returns the URL the customer
	// is redirected to.
	Initialize(ctx context.Context, email string, amount int64, reference string, metadata map[string]string) (*InitializeResult, error)

	// Verify reports success only when the gateway has settled the
	// transaction; every other status is a *VerificationError.
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}
