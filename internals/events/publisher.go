// Package events publishes intake lifecycle changes so dashboards can
// subscribe instead of re-polling list endpoints.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	TypeRegistered    = "registered"
	TypeStepCompleted = "step_completed"
	TypeStarted       = "started"
	TypeCompleted     = "completed"
	TypeReopened      = "reopened"
	TypeReassigned    = "reassigned"
	TypeUpdated       = "updated"
	TypeDeleted       = "deleted"
)

type Event struct {
	Type        string     `json:"type"`
	Flow        string     `json:"flow"`
	RecordID    uuid.UUID  `json:"record_id"`
	Status      string     `json:"status,omitempty"`
	StepName    string     `json:"step_name,omitempty"`
	RecruiterID *uuid.UUID `json:"recruiter_id,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// Dial connects to redis and verifies the connection before returning.
func Dial(ctx context.Context, addr, password string, db int, channel string) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisPublisher(client, channel), nil
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	payload, err := sonic.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.client.Publish(ctx, p.channel, payload).Err()
}

func (p *RedisPublisher) Close() error { return p.client.Close() }

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

// Publish sends ev and only logs failures; the originating request has
// already committed.
func Publish(ctx context.Context, p Publisher, log *zap.Logger, ev Event) {
	if p == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	if err := p.Publish(ctx, ev); err != nil {
		log.Warn("publish intake event failed",
			zap.String("type", ev.Type),
			zap.String("record_id", ev.RecordID.String()),
			zap.Error(err))
	}
}
