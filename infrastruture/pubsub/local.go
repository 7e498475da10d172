package pubsub

import (
	"context"
	"sync"

	"github.com/google/uuid"
	dmn "github.com/nhanhuynh123/pathgrid/domain"
	"github.com/nhanhuynh123/pathgrid/service/i"
)

// LocalBroker fans board change events out to in-process subscribers.
// A subscriber whose buffer is full misses the event rather than blocking
// the publisher.
type LocalBroker struct {
	subscribers map[uuid.UUID]map[chan dmn.BoardChanged]struct{}
	sync.RWMutex
}

// NewLocalBroker creates a LocalBroker with no subscribers.
func NewLocalBroker() i.Broker {
	return &LocalBroker{
		subscribers: make(map[uuid.UUID]map[chan dmn.BoardChanged]struct{}),
	}
}

// Publish delivers event to every subscriber of its board.
func (lb *LocalBroker) Publish(_ context.Context, event dmn.BoardChanged) error {
	lb.RLock()
	defer lb.RUnlock()
	for ch := range lb.subscribers[event.BoardID] {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

// Subscribe registers a subscriber for boardID. The subscription ends when
// ctx is done or the returned func is called.
func (lb *LocalBroker) Subscribe(ctx context.Context, boardID uuid.UUID) (<-chan dmn.BoardChanged, func(), error) {
	ch := make(chan dmn.BoardChanged, subscriberSize)

	lb.Lock()
	if lb.subscribers[boardID] == nil {
		lb.subscribers[boardID] = make(map[chan dmn.BoardChanged]struct{})
	}
	lb.subscribers[boardID][ch] = struct{}{}
	lb.Unlock()

	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			lb.Lock()
			defer lb.Unlock()
			delete(lb.subscribers[boardID], ch)
			if len(lb.subscribers[boardID]) == 0 {
				delete(lb.subscribers, boardID)
			}
			close(ch)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()

	return ch, cancel, nil
}
