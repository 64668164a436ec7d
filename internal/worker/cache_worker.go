package worker

import (
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/events"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/service"
)

// StartCacheWorker subscribes the statistics cache to survey mutation
// events so stale summaries never outlive a write.
func StartCacheWorker(cache *service.StatsCache, dispatcher events.Dispatcher) {
	if cache == nil {
		return
	}
	cache.RegisterHandlers(dispatcher)
}
