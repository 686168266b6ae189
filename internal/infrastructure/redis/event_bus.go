package redis

import (
	"context"
	"encoding/json"

	"flowgate/internal/domain"

	"github.com/redis/go-redis/v9"
)

type EventBus struct {
	client  *redis.Client
	channel string
}

func NewEventBus(client *redis.Client) *EventBus {
	return &EventBus{
		client:  client,
		channel: "gateway:events:executions",
	}
}

// PublishExecutionFinished broadcasts a recorded execution to the network
func (b *EventBus) PublishExecutionFinished(ctx context.Context, event domain.ExecutionFinishedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, b.channel, payload).Err()
}

// SubscribeExecutions opens a continuous stream of recorded executions
func (b *EventBus) SubscribeExecutions(ctx context.Context) (<-chan domain.ExecutionFinishedEvent, error) {
	pubsub := b.client.Subscribe(ctx, b.channel)

	msgChan := make(chan domain.ExecutionFinishedEvent)

	// Background goroutine forwards Redis messages to our Go channel
	go func() {
		defer close(msgChan)
		for {
			select {
			case <-ctx.Done():
				pubsub.Close()
				return
			default:
				msg, err := pubsub.ReceiveMessage(ctx)
				if err == nil {
					var event domain.ExecutionFinishedEvent
					if err := json.Unmarshal([]byte(msg.Payload), &event); err == nil {
						msgChan <- event
					}
				}
			}
		}
	}()

	return msgChan, nil
}
