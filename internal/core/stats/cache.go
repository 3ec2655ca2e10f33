package stats

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"mutabaah.dev/backend/internal/core/period"
	"mutabaah.dev/backend/internal/pkg/cache"
	"mutabaah.dev/backend/internal/util"
)

var CacheDashboard *cache.Set[DashboardStats]

func InitCache(client *redis.Client) {
	CacheDashboard = cache.NewSet[DashboardStats](client, "stats#dashboard")
}

func dashboardKey(userID int64, kind period.Kind, p period.Period) string {
	return fmt.Sprintf("%s:%s:%s:%s", userPrefix(userID), kind, util.FormatDate(p.Start), util.FormatDate(p.End))
}

func userPrefix(userID int64) string {
	return fmt.Sprintf("%d", userID)
}
