package utils

import (
	"coursecraft/database"
	"coursecraft/store"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Soft-deleted plans hang around this long before the purge removes them.
const purgeAfter = 30 * 24 * time.Hour

// StartPurgeScheduler runs a daily job that permanently removes course
// plans that were deleted more than thirty days ago.
func StartPurgeScheduler() *cron.Cron {
	c := cron.New()
	c.AddFunc("@daily", func() {
		cutoff := time.Now().Add(-purgeAfter)
		purged, err := store.PurgeDeleted(database.Database.Db, cutoff)
		if err != nil {
			log.Printf("[PURGE-SCHEDULER %s] Error purging deleted course plans: %v", time.Now().Format(time.RFC3339), err)
			return
		}
		if purged > 0 {
			log.Printf("[PURGE-SCHEDULER %s] Permanently removed %d deleted course plans", time.Now().Format(time.RFC3339), purged)
		}
	})
	c.Start()
	return c
}
