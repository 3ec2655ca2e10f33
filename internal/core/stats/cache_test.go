package stats

import (
	"context"
	"fmt"
	"net"
	"path"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutabaah.dev/backend/internal/core/period"
	"mutabaah.dev/backend/internal/pkg/cache"
)

const defaultTestCacheTTL = 5 * time.Minute

// fakeRedis answers GET, SET, SCAN and DEL in memory. When down is set every command fails
// as if the server were unreachable.
type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	down bool
}

func (f *fakeRedis) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("fake redis does not dial")
	}
}

func (f *fakeRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		return errors.New("fake redis does not pipeline")
	}
}

func (f *fakeRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		f.mu.Lock()
		defer f.mu.Unlock()

		if f.down {
			err := errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
			cmd.SetErr(err)
			return err
		}

		args := cmd.Args()
		switch c := cmd.(type) {
		case *redis.StringCmd:
			v, ok := f.data[args[1].(string)]
			if !ok {
				c.SetErr(redis.Nil)
				return redis.Nil
			}
			c.SetVal(v)
		case *redis.StatusCmd:
			var v string
			switch raw := args[2].(type) {
			case []byte:
				v = string(raw)
			default:
				v = fmt.Sprint(raw)
			}
			f.data[args[1].(string)] = v
			c.SetVal("OK")
		case *redis.ScanCmd:
			pattern := "*"
			for i := 0; i+1 < len(args); i++ {
				if s, ok := args[i].(string); ok && strings.EqualFold(s, "match") {
					pattern = args[i+1].(string)
				}
			}
			var keys []string
			for k := range f.data {
				if ok, _ := path.Match(pattern, k); ok {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			c.SetVal(keys, 0)
		case *redis.IntCmd:
			var n int64
			for _, a := range args[1:] {
				if _, ok := f.data[a.(string)]; ok {
					delete(f.data, a.(string))
					n++
				}
			}
			c.SetVal(n)
		default:
			err := errors.Errorf("fake redis: unsupported command %s", cmd.Name())
			cmd.SetErr(err)
			return err
		}
		return nil
	}
}

func (f *fakeRedis) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.data))
	for k := range f.data {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func withFakeCache(t *testing.T) *fakeRedis {
	fake := &fakeRedis{data: make(map[string]string)}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(fake)

	prev := CacheDashboard
	CacheDashboard = cache.NewSet[DashboardStats](client, "stats#dashboard")
	t.Cleanup(func() { CacheDashboard = prev })
	return fake
}

func TestDashboardServedFromCache(t *testing.T) {
	fake := withFakeCache(t)
	store := seed(t, sequence("Subuh", true, true, false, true)...)
	svc := newTestService(store, day(20))
	svc.CacheTTL = defaultTestCacheTTL

	first, err := svc.Dashboard(context.Background(), 1, period.KindMonthly, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Queries())
	assert.Equal(t, []string{"stats#dashboard:1:monthly:2024-03-01:2024-03-31"}, fake.keys())

	second, err := svc.Dashboard(context.Background(), 1, period.KindMonthly, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Queries())
	assert.Equal(t, first.ActivitiesCount, second.ActivitiesCount)
	assert.Equal(t, first.CompletionRate, second.CompletionRate)
	assert.Equal(t, first.ActivityCompletion, second.ActivityCompletion)
	assert.Equal(t, first.HeatmapData, second.HeatmapData)
	assert.Equal(t, first.ActivityStreaks, second.ActivityStreaks)
	assert.Equal(t, first.BestStreak, second.BestStreak)
	assert.Equal(t, "March's", second.PeriodLabel)

	// another period is another key
	_, err = svc.Dashboard(context.Background(), 1, period.KindYearly, 0, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Queries())
}

func TestInvalidateDropsOnlyThatUser(t *testing.T) {
	fake := withFakeCache(t)
	store := seed(t, sequence("Subuh", true, true)...)
	svc := newTestService(store, day(20))
	svc.CacheTTL = defaultTestCacheTTL

	for _, uid := range []int64{1, 10} {
		_, err := svc.Dashboard(context.Background(), uid, period.KindMonthly, 3, 2024)
		require.NoError(t, err)
	}
	require.Len(t, fake.keys(), 2)

	svc.Invalidate(context.Background(), 1)
	assert.Equal(t, []string{"stats#dashboard:10:monthly:2024-03-01:2024-03-31"}, fake.keys())

	_, err := svc.Dashboard(context.Background(), 1, period.KindMonthly, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 3, store.Queries())
}

func TestDashboardComputesWhenCacheUnreachable(t *testing.T) {
	fake := withFakeCache(t)
	fake.down = true
	store := seed(t, sequence("Subuh", true, false)...)
	svc := newTestService(store, day(20))
	svc.CacheTTL = defaultTestCacheTTL

	stats, err := svc.Dashboard(context.Background(), 1, period.KindMonthly, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, "1/2", stats.ActivitiesCount)
	assert.Equal(t, 1, store.Queries())

	// invalidation failures are only logged
	svc.Invalidate(context.Background(), 1)
}
