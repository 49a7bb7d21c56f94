package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CodeTTL matches the original 10-minute validity window.
const CodeTTL = 10 * time.Minute

var ErrCodeNotFound = errors.New("verification code expired or not issued")

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelPhone Channel = "phone"
)

// CodeStore keeps verification codes in Redis under
// verify:<channel>:<recipient>, with active TTL eviction. Consume is
// read-once (GETDEL), so a code cannot be replayed.
type CodeStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCodeStore(rdb *redis.Client) *CodeStore {
	return &CodeStore{rdb: rdb, ttl: CodeTTL}
}

func (s *CodeStore) Put(ctx context.Context, ch Channel, recipient, code string) error {
	return s.rdb.Set(ctx, key(ch, recipient), code, s.ttl).Err()
}

func (s *CodeStore) Consume(ctx context.Context, ch Channel, recipient string) (string, error) {
	code, err := s.rdb.GetDel(ctx, key(ch, recipient)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func key(ch Channel, recipient string) string {
	return fmt.Sprintf("verify:%s:%s", ch, recipient)
}
