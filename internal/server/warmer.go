package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/holidays"
	"github.com/dmitrymomot/holidays/pkg/yearcache"
)

// Warmer pre-renders the current and next year for every registered provider
// so the first request after a deploy or cache flush never pays the render
// cost. It warms once on start and then on a cron schedule.
type Warmer struct {
	store    yearcache.Store
	schedule string
	locales  []string
	ttl      time.Duration
	log      *slog.Logger
}

// NewWarmer creates a warmer. The schedule uses standard five-field cron
// syntax; locales lists the locales to pre-render for each provider.
func NewWarmer(store yearcache.Store, schedule string, locales []string, ttl time.Duration, log *slog.Logger) *Warmer {
	return &Warmer{
		store:    store,
		schedule: schedule,
		locales:  locales,
		ttl:      ttl,
		log:      log,
	}
}

// Run warms the cache once, then keeps warming on the configured schedule
// until ctx is canceled. A failing schedule spec is returned immediately;
// individual render failures are logged and skipped.
func (w *Warmer) Run(ctx context.Context) error {
	w.warm(ctx)

	c := cron.New()
	if _, err := c.AddFunc(w.schedule, func() { w.warm(ctx) }); err != nil {
		return err
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (w *Warmer) warm(ctx context.Context) {
	year := time.Now().Year()
	var warmed int

	for _, code := range holidays.ProviderCodes() {
		for _, loc := range w.locales {
			for _, y := range []int{year, year + 1} {
				if ctx.Err() != nil {
					return
				}

				payload, err := renderYear(code, y, loc)
				if err != nil {
					w.log.Warn("cache warm render failed",
						slog.String("provider", code),
						slog.Int("year", y),
						slog.String("locale", loc),
						slog.Any("error", err),
					)
					continue
				}

				key := yearcache.Key{Provider: code, Year: y, Locale: loc}
				if err := w.store.Set(ctx, key, payload, w.ttl); err != nil {
					w.log.Warn("cache warm store failed",
						slog.String("key", key.String()),
						slog.Any("error", err),
					)
					continue
				}
				warmed++
			}
		}
	}

	w.log.Info("cache warmed", slog.Int("payloads", warmed))
}
