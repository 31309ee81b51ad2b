package intent

import (
	"context"

	"apify-workers/internal/common/errors"
	"apify-workers/internal/common/logger"
	"apify-workers/internal/scrapers"
)

// Dispatcher maps a resolved intent onto the adapter registry. Adapter
// defaults fill any parameter the model omitted.
type Dispatcher struct {
	registry *scrapers.Registry
	log      logger.Logger
}

func NewDispatcher(registry *scrapers.Registry, log logger.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, log: log}
}

// Dispatch runs the adapter named by the intent. The "none" intent and
// any name outside the registry surface as an unknown-scraper error; no
// adapter is ever called for them.
func (d *Dispatcher) Dispatch(ctx context.Context, it Intent, token string) *scrapers.Result {
	adapter, ok := d.registry.Get(it.Scraper)
	if it.Scraper == "none" || !ok {
		d.log.Info("not dispatching", map[string]interface{}{
			"scraper": it.Scraper,
		})
		return scrapers.Failure(errors.NewUnknownScraperError(it.Scraper))
	}
	return adapter.Run(ctx, it.Parameters, token)
}
