package redisad

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel_packages/internal/adapters/observability"
	"hotel_packages/internal/domain"
)

const keyPrefix = "clip:"

// Clipboard is a shared clipboard on Redis: copy text goes in under a
// content-derived id and expires after ttl.
type Clipboard struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *Clipboard {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), ttl)
}

func NewWithClient(c *redis.Client, ttl time.Duration) *Clipboard {
	return &Clipboard{c: c, ttl: ttl}
}

// ClipID is the id under which text is stored. Identical text maps to the same id.
func ClipID(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:6])
}

func (r *Clipboard) Write(ctx context.Context, text string) (string, error) {
	id := ClipID(text)
	if err := r.c.Set(ctx, keyPrefix+id, text, r.ttl).Err(); err != nil {
		observability.ObserveClipboard("redis", "error")
		return "", &domain.ClipboardWriteError{Err: err}
	}
	observability.ObserveClipboard("redis", "write")
	return id, nil
}

func (r *Clipboard) Read(ctx context.Context, id string) (string, error) {
	v, err := r.c.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		observability.ObserveClipboard("redis", "miss")
		return "", domain.ErrClipNotFound
	}
	if err != nil {
		observability.ObserveClipboard("redis", "error")
		return "", err
	}
	observability.ObserveClipboard("redis", "read")
	return v, nil
}

func (r *Clipboard) Close() error { return r.c.Close() }
