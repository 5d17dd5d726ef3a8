// Package session persists the classified records of one uploaded export in
// Redis for the lifetime of a browsing session. Records are immutable after
// ingestion, so a session is written exactly once as a single JSON document
// and expires via TTL; nothing outlives the session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/jaidevxr/instagram-wrapped/model"
)

var ErrNotFound = errors.New("session not found or expired")

const keyPrefix = "session:"

// Session is everything retained from one ingestion run.
type Session struct {
	Records    []model.ClassifiedRecord `json:"records"`
	MarkupOnly bool                     `json:"isMarkupOnlyExport"`
	UploadedAt time.Time                `json:"uploadedAt"`
}

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: client, ttl: ttl}
}

func (s *Store) Save(ctx context.Context, id string, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, keyPrefix+id, data, s.ttl).Err(); err != nil {
		return err
	}

	log.Info().
		Str("upload_id", id).
		Int("records", len(sess.Records)).
		Int("bytes", len(data)).
		Dur("ttl", s.ttl).
		Msg("Session stored")
	return nil
}

func (s *Store) Load(ctx context.Context, id string) (Session, error) {
	var sess Session

	data, err := s.redis.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return sess, ErrNotFound
	} else if err != nil {
		return sess, err
	}

	if err := json.Unmarshal(data, &sess); err != nil {
		return sess, err
	}
	return sess, nil
}

// Ping reports store connectivity for the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}
