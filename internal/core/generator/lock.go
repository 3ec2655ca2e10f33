package generator

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"

	"mutabaah.dev/backend/internal/app/appconfig"
	"mutabaah.dev/backend/internal/constant"
)

// Locker serializes regeneration of one user across processes.
type Locker interface {
	Lock(ctx context.Context, userID int64) (unlock func(), err error)
}

type RedSyncLocker struct {
	rs  *redsync.Redsync
	ttl time.Duration
}

func NewRedSyncLocker(rs *redsync.Redsync, conf *appconfig.Config) *RedSyncLocker {
	return &RedSyncLocker{rs: rs, ttl: conf.GeneratorLockTTL}
}

func (l *RedSyncLocker) Lock(ctx context.Context, userID int64) (func(), error) {
	key := constant.GeneratorLockKeyPrefix + strconv.FormatInt(userID, 10)
	mutex := l.rs.NewMutex(key, redsync.WithExpiry(l.ttl), redsync.WithTries(5), redsync.WithRetryDelay(time.Millisecond*250))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		// the caller's context may be done by now
		if _, err := mutex.Unlock(); err != nil {
			log.Warn().
				Err(err).
				Str("evt.name", "generator.unlock.failed").
				Str("key", key).
				Msg("failed to release regeneration lock")
		}
	}, nil
}
