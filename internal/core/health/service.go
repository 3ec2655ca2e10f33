package health

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
)

var (
	ErrDatabaseNotReachable = errors.New("database not reachable")
	ErrRedisNotReachable    = errors.New("redis not reachable")
	ErrNATSNotReachable     = errors.New("nats not reachable")
)

type Service struct {
	DB    *bun.DB
	Redis *redis.Client
	// NATS is nil when events are disabled.
	NATS *nats.Conn
}

func NewService(db *bun.DB, redis *redis.Client, nats *nats.Conn) *Service {
	return &Service{
		DB:    db,
		Redis: redis,
		NATS:  nats,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return errors.Wrap(ErrDatabaseNotReachable, err.Error())
	}

	if err := s.Redis.Ping(ctx).Err(); err != nil {
		return errors.Wrap(ErrRedisNotReachable, err.Error())
	}

	if s.NATS == nil {
		return nil
	}
	// nats pings the server on its own
	status := s.NATS.Status()
	if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
		return errors.Wrap(ErrNATSNotReachable, status.String())
	}

	return nil
}
