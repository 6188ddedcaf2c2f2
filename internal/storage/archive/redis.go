package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lingualive/coordinator/internal/core"
	"github.com/lingualive/coordinator/internal/domain"
)

const (
	keyPrefix  = "lingualive:"
	recordTTL  = 7 * 24 * time.Hour
	messageCap = 1000
)

// Redis persists room snapshots and message appends keyed by room id.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{client: client}, nil
}

// PersistRoom stores the final snapshot of a room, typically written
// when the room is torn down.
func (a *Redis) PersistRoom(ctx context.Context, snap core.RoomSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal room snapshot: %w", err)
	}
	key := keyPrefix + "room:" + string(snap.ID)
	if err := a.client.Set(ctx, key, data, recordTTL).Err(); err != nil {
		return fmt.Errorf("persist room: %w", err)
	}
	return nil
}

// PersistMessage appends a message to the room's durable log, trimmed
// to the most recent entries.
func (a *Redis) PersistMessage(ctx context.Context, roomID domain.RoomID, msg domain.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	key := keyPrefix + "room:" + string(roomID) + ":messages"
	pipe := a.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, -messageCap, -1)
	pipe.Expire(ctx, key, recordTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("persist message: %w", err)
	}
	return nil
}

func (a *Redis) Close() error { return a.client.Close() }
