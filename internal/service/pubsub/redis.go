package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/dealer-api/internal/api/dto"
	"github.com/kingrain94/dealer-api/pkg/logger"
)

const (
	channelPrefix = "inventory:"
)

// RedisPubSub fans car events out across API instances, one channel per tenant
type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[uint]*redis.PubSub
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[uint]*redis.PubSub),
	}
}

func ChannelName(tenantID uint) string {
	return channelPrefix + strconv.FormatUint(uint64(tenantID), 10)
}

// Publish publishes a car event to its tenant's channel
func (ps *RedisPubSub) Publish(ctx context.Context, event *dto.CarEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal car event: %w", err)
	}

	channel := ChannelName(event.TenantID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe starts delivering a tenant's events to callback until ctx ends or Unsubscribe is called.
// Subscribing twice to the same tenant is a no-op.
func (ps *RedisPubSub) Subscribe(ctx context.Context, tenantID uint, callback func(*dto.CarEvent)) error {
	channel := ChannelName(tenantID)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[tenantID]; exists {
		ps.subscriberMu.Unlock()
		return nil
	}
	sub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[tenantID] = sub
	ps.subscriberMu.Unlock()

	// wait for the subscription to be confirmed so no event published right after is lost
	if _, err := sub.Receive(ctx); err != nil {
		ps.Unsubscribe(tenantID)
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	go func() {
		defer ps.forget(tenantID, sub)

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event dto.CarEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					ps.logger.Errorf("Failed to unmarshal car event from channel %s: %v", channel, err)
					continue
				}
				callback(&event)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to tenant channel: %s", channel)
	return nil
}

// forget drops sub from the registry unless it has already been replaced
func (ps *RedisPubSub) forget(tenantID uint, sub *redis.PubSub) {
	sub.Close()
	ps.subscriberMu.Lock()
	if ps.subscribers[tenantID] == sub {
		delete(ps.subscribers, tenantID)
	}
	ps.subscriberMu.Unlock()
}

func (ps *RedisPubSub) Unsubscribe(tenantID uint) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if sub, exists := ps.subscribers[tenantID]; exists {
		sub.Close()
		delete(ps.subscribers, tenantID)
		ps.logger.Infof("Unsubscribed from tenant channel: %s", ChannelName(tenantID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for tenantID, sub := range ps.subscribers {
		sub.Close()
		delete(ps.subscribers, tenantID)
	}
}
