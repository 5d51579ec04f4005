package redis

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/redis/go-redis/v9"
)

// ErrSequenceExhausted is returned when a PAN prefix has used every account
// number that fits in the PAN.
var ErrSequenceExhausted = errors.New("account sequence exhausted")

const sequenceKeyPrefix = "cards:pan:seq:"

// incrementer is the slice of the Redis API the sequence needs.
type incrementer interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// PANSequence hands out consecutive account numbers per PAN prefix using
// INCR. Programs whose prefixes collide share one counter, so no two cards
// get the same PAN across programs or service instances.
type PANSequence struct {
	client incrementer
}

// NewPANSequence creates a PANSequence on the given client.
func NewPANSequence(client incrementer) *PANSequence {
	return &PANSequence{client: client}
}

// SequenceKey returns the Redis key holding the counter for a PAN prefix.
func SequenceKey(prefix string) string {
	return sequenceKeyPrefix + prefix
}

// Next implements generator.SequenceSource.
func (s *PANSequence) Next(ctx context.Context, prefix string, width int) (string, error) {
	key := SequenceKey(prefix)
	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("increment %s: %w", key, err)
	}
	if float64(n) >= math.Pow10(width) {
		return "", fmt.Errorf("%w: prefix %s", ErrSequenceExhausted, prefix)
	}
	return fmt.Sprintf("%0*d", width, n), nil
}
