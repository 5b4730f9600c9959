package payment

import "fmt"

// GatewayError reports a failure to complete a call to the payment provider:
// transport errors, timeouts, non-2xx responses, or an initialize the
// provider itself rejected. These are potentially transient; the caller
// decides whether to retry the whole operation.
type GatewayError struct {
	Op      string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("payment gateway %s: %s", e.Op, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// VerificationError means the gateway was reachable but did not report the
// transaction as settled (pending, abandoned, declined, not found). It is an
// expected outcome, not an infrastructure failure, and must never trigger a
// settlement.
type VerificationError struct {
	Reference string
	Status    string
}

func (e *VerificationError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("payment verification failed for reference %s", e.Reference)
	}
	return fmt.Sprintf("payment verification failed for reference %s: gateway status %q", e.Reference, e.Status)
}
