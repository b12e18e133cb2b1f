package membership

import "context"

// Gate answers whether a user currently belongs to a tenant's channel. The
// chat platform owns the truth; implementations only relay or cache it.
type Gate interface {
	IsMember(ctx context.Context, channelRef string, userID int64) (bool, error)
}
