// Package notify delivers the booking-link text message.
package notify

import "context"

// Messenger sends one text message. A single best-effort attempt; callers
// decide whether a failure matters.
type Messenger interface {
	Send(ctx context.Context, to, from, body string) error
}
