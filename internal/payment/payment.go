// Package payment defines the hosted-checkout contract the order flow
// depends on. Session metadata must round-trip the order and cart ids, and
// only status "complete" ever finalizes an order.
package payment

import "context"

// StatusComplete is the sole session status that triggers finalization.
const StatusComplete = "complete"

type CreateSessionInput struct {
	OrderID     string
	CartID      string
	Email       string
	AmountCents int64
	Products    int
}

// Session is a freshly created hosted-checkout session.
type Session struct {
	ID          string
	RedirectURL string
}

// SessionResult is a retrieved session with its round-tripped metadata.
type SessionResult struct {
	Status  string
	OrderID string
	CartID  string
}

type Provider interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*Session, error)
	RetrieveSession(ctx context.Context, sessionID string) (*SessionResult, error)
}
