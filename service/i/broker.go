package i

import (
	"context"

	"github.com/google/uuid"
	dmn "github.com/nhanhuynh123/pathgrid/domain"
)

// Publisher delivers board change events to subscribers.
type Publisher interface {
	Publish(ctx context.Context, event dmn.BoardChanged) error
}

// Subscriber streams the change events of a single board.
type Subscriber interface {
	// Subscribe returns a channel of events for boardID and a func that
	// cancels the subscription and closes the channel.
	Subscribe(ctx context.Context, boardID uuid.UUID) (<-chan dmn.BoardChanged, func(), error)
}

// Broker is both ends of the change feed.
type Broker interface {
	Publisher
	Subscriber
}
