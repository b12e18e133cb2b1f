package notify

import "context"

// Notifier delivers a plain-text message to an actor through the chat
// transport. Delivery is best effort; callers log and move on.
type Notifier interface {
	Send(ctx context.Context, actorID int64, text string) error
}
