package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/VenueBooker/internal/domain"
)

// seededField marks a hash that was filled from the database, so an empty hash
// still counts as a hit.
const seededField = "_seeded"

func unreadKey(userID string) string {
	return "unread:" + userID
}

func unreadChannel(userID string) string {
	return "unread-updates:" + userID
}

const (
	opIncrement = "incr"
	opReset     = "reset"
)

// mutateScript changes one counter of a seeded hash and returns the whole hash.
// An unseeded hash is left alone and reported as a nil reply.
var mutateScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 0 then
	return false
end
if ARGV[2] == 'incr' then
	redis.call('HINCRBY', KEYS[1], ARGV[3], 1)
else
	redis.call('HDEL', KEYS[1], ARGV[3])
end
return redis.call('HGETALL', KEYS[1])
`)

// Increment bumps the counter of messages from peerID and broadcasts the new counts.
// ok is false when the user has not been seeded yet; nothing is changed then.
func (c *Client) Increment(ctx context.Context, userID, peerID string) (domain.UnreadCounts, bool, error) {
	return c.mutate(ctx, userID, opIncrement, peerID)
}

// Reset drops the counter for peerID and broadcasts the new counts.
// ok is false when the user has not been seeded yet; nothing is changed then.
func (c *Client) Reset(ctx context.Context, userID, peerID string) (domain.UnreadCounts, bool, error) {
	return c.mutate(ctx, userID, opReset, peerID)
}

func (c *Client) mutate(ctx context.Context, userID, op, peerID string) (domain.UnreadCounts, bool, error) {
	flat, err := mutateScript.Run(ctx, c.rdb, []string{unreadKey(userID)}, seededField, op, peerID).StringSlice()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("update unread %s: %w", userID, err)
	}

	raw, err := pairsToMap(flat)
	if err != nil {
		return nil, false, err
	}
	counts, err := decodeCounts(raw)
	if err != nil {
		return nil, false, err
	}

	if err = c.publish(ctx, userID, counts); err != nil {
		return counts, true, err
	}
	return counts, true, nil
}

// Counts returns the stored counters; ok is false when the user has not been seeded yet.
func (c *Client) Counts(ctx context.Context, userID string) (domain.UnreadCounts, bool, error) {
	raw, err := c.rdb.HGetAll(ctx, unreadKey(userID)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("get unread %s: %w", userID, err)
	}
	if _, ok := raw[seededField]; !ok {
		return nil, false, nil
	}

	counts, err := decodeCounts(raw)
	if err != nil {
		return nil, false, err
	}
	return counts, true, nil
}

// Seed replaces the stored counters with counts.
func (c *Client) Seed(ctx context.Context, userID string, counts domain.UnreadCounts) error {
	key := unreadKey(userID)
	values := map[string]any{seededField: 1}
	for peer, n := range counts {
		if n > 0 {
			values[peer] = n
		}
	}

	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, values)
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed unread %s: %w", userID, err)
	}

	return c.publish(ctx, userID, counts)
}

func (c *Client) publish(ctx context.Context, userID string, counts domain.UnreadCounts) error {
	payload, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("marshal unread: %w", err)
	}
	if err = c.rdb.Publish(ctx, unreadChannel(userID), payload).Err(); err != nil {
		return fmt.Errorf("publish unread %s: %w", userID, err)
	}
	return nil
}

// SubscribeUnread streams counter updates for userID until ctx is done.
func (c *Client) SubscribeUnread(ctx context.Context, userID string) <-chan domain.UnreadCounts {
	sub := c.rdb.Subscribe(ctx, unreadChannel(userID))
	out := make(chan domain.UnreadCounts, 1)

	go func() {
		defer close(out)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var counts domain.UnreadCounts
				if err := json.Unmarshal([]byte(msg.Payload), &counts); err != nil {
					continue
				}
				select {
				case out <- counts:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// pairsToMap turns a flat HGETALL reply into a map.
func pairsToMap(flat []string) (map[string]string, error) {
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("decode unread: odd reply length %d", len(flat))
	}
	raw := make(map[string]string, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		raw[flat[i]] = flat[i+1]
	}
	return raw, nil
}

func decodeCounts(raw map[string]string) (domain.UnreadCounts, error) {
	counts := make(domain.UnreadCounts, len(raw))
	for peer, v := range raw {
		if peer == seededField {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode unread counter %s: %w", peer, err)
		}
		if n > 0 {
			counts[peer] = n
		}
	}
	return counts, nil
}
