// Package notify delivers engine notifications to the platform's notification service.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"go.uber.org/zap"
)

// DefaultKey is the Redis list that receives notification payloads.
const DefaultKey = "lounge:notifications"

// Notification is an outbound message for a single recipient.
type Notification struct {
	ID          string                `json:"id"`
	Kind        enum.NotificationKind `json:"kind"`
	RecipientID uint64                `json:"recipientId"`
	ActorID     uint64                `json:"actorId"`
	CommunityID uint64                `json:"communityId"`
	Target      types.TargetRef       `json:"target"`
	UpvoteCount int64                 `json:"upvoteCount"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// NewVoteMilestone builds the notification sent to an author whose content reached an upvote milestone.
func NewVoteMilestone(result *types.VoteResult, voterID uint64, now time.Time) *Notification {
	return &Notification{
		ID:          uuid.NewString(),
		Kind:        enum.NotificationKindVoteMilestone,
		RecipientID: result.AuthorID,
		ActorID:     voterID,
		CommunityID: result.CommunityID,
		Target:      result.Target,
		UpvoteCount: result.UpvoteCount,
		CreatedAt:   now,
	}
}

// Notifier sends notifications to their recipients.
type Notifier interface {
	Notify(ctx context.Context, n *Notification) error
}

// Noop discards every notification.
type Noop struct{}

// Notify implements Notifier.
func (Noop) Notify(context.Context, *Notification) error { return nil }

// RedisNotifier pushes JSON payloads onto a Redis list consumed by the notification service.
type RedisNotifier struct {
	client rueidis.Client
	key    string
	logger *zap.Logger
}

// NewRedisNotifier creates a RedisNotifier writing to key, or DefaultKey when key is empty.
func NewRedisNotifier(client rueidis.Client, key string, logger *zap.Logger) *RedisNotifier {
	if key == "" {
		key = DefaultKey
	}

	return &RedisNotifier{
		client: client,
		key:    key,
		logger: logger.Named("notifier"),
	}
}

// Notify implements Notifier.
func (n *RedisNotifier) Notify(ctx context.Context, notification *Notification) error {
	payload, err := sonic.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	err = n.client.Do(ctx, n.client.B().Lpush().Key(n.key).Element(string(payload)).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}

	n.logger.Debug("Pushed notification",
		zap.String("id", notification.ID),
		zap.String("kind", notification.Kind.String()),
		zap.Uint64("recipientID", notification.RecipientID))

	return nil
}

// Pop removes and decodes the oldest queued notification. Returns nil when the list is empty.
func (n *RedisNotifier) Pop(ctx context.Context) (*Notification, error) {
	payload, err := n.client.Do(ctx, n.client.B().Rpop().Key(n.key).Build()).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop notification: %w", err)
	}

	var notification Notification
	if err := sonic.UnmarshalString(payload, &notification); err != nil {
		return nil, fmt.Errorf("failed to decode notification: %w", err)
	}

	return &notification, nil
}
