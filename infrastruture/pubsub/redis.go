package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/nhanhuynh123/pathgrid/config"
	dmn "github.com/nhanhuynh123/pathgrid/domain"
	"github.com/nhanhuynh123/pathgrid/service/i"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix  = "pathgrid:board"
	channelKeyFmt  = "%s:%s"
	subscriberSize = 16
)

// RedisBroker carries board change events over Redis pub/sub so that every
// server instance can stream changes made through any other.
type RedisBroker struct {
	client *redis.Client
	prefix string
	logger *log.Logger
}

// NewRedisBroker creates a RedisBroker on top of client.
func NewRedisBroker(client *redis.Client, logger *log.Logger) i.Broker {
	return &RedisBroker{
		client: client,
		prefix: defaultPrefix,
		logger: logger,
	}
}

// Publish sends event as JSON on the board's channel.
func (rb *RedisBroker) Publish(ctx context.Context, event dmn.BoardChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding board event: %w", err)
	}
	return rb.client.Publish(ctx, rb.channel(event.BoardID), payload).Err()
}

// Subscribe listens on the board's channel until ctx is done or the returned
// func is called.
func (rb *RedisBroker) Subscribe(ctx context.Context, boardID uuid.UUID) (<-chan dmn.BoardChanged, func(), error) {
	sub := rb.client.Subscribe(ctx, rb.channel(boardID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("subscribing to board %s: %w", boardID, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	events := make(chan dmn.BoardChanged, subscriberSize)
	go func() {
		defer close(events)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event dmn.BoardChanged
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					rb.logger.Printf("%s[ERROR]%s decoding event for board %s: %s", config.LogErrorColor, config.LogColorReset, boardID, err)
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, cancel, nil
}

func (rb *RedisBroker) channel(boardID uuid.UUID) string {
	return fmt.Sprintf(channelKeyFmt, rb.prefix, boardID)
}
