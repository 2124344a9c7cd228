package notify

import (
	"context"

	"queueup/karaoke-backend/internal/domain"
)

// Publisher pushes a recomputed queue to whoever watches the session.
// Delivery is fire-and-forget: implementations log failures and never
// surface them to the mutation that triggered the push.
type Publisher interface {
	Publish(ctx context.Context, update domain.QueueUpdate)
}

// Multi fans a single update out to several publishers.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, update domain.QueueUpdate) {
	for _, p := range m {
		p.Publish(ctx, update)
	}
}
