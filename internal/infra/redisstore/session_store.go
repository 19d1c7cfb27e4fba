package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"room-booking/internal/bot"
	"room-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "room-booking:bot:session:"

// SessionStore keeps bot wizard drafts in Redis, expiring idle ones after ttl.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Get(ctx context.Context, chatID int64) (*bot.Session, error) {
	raw, err := s.client.Get(ctx, key(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Mark(errs.Wrap(err, "redis get session"), errs.ErrUnavailable)
	}

	var sess bot.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// a draft we cannot read is as good as none
		_ = s.client.Del(ctx, key(chatID)).Err()
		return nil, nil
	}
	return &sess, nil
}

func (s *SessionStore) Save(ctx context.Context, chatID int64, sess *bot.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return errs.Wrap(err, "marshal session")
	}
	if err := s.client.Set(ctx, key(chatID), raw, s.ttl).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "redis set session"), errs.ErrUnavailable)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, chatID int64) error {
	if err := s.client.Del(ctx, key(chatID)).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "redis delete session"), errs.ErrUnavailable)
	}
	return nil
}

func key(chatID int64) string {
	return keyPrefix + strconv.FormatInt(chatID, 10)
}

var _ bot.SessionStore = (*SessionStore)(nil)
