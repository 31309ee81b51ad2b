package scrapers

import (
	"apify-workers/internal/common/apify"
	"apify-workers/internal/common/cache"
	"apify-workers/internal/common/config"
	"apify-workers/internal/common/logger"
)

// Registry holds one adapter per domain, keyed by the scraper name the
// intent resolver and the API use.
type Registry struct {
	adapters map[string]*Adapter
	order    []string
}

// NewRegistry builds every domain adapter over the shared platform
// client, run cache and process-wide token.
func NewRegistry(client apify.Client, runCache *cache.RunCache, cfg config.ApifyConfig, log logger.Logger) *Registry {
	descriptors := []Descriptor{
		instagramHashtagDescriptor(),
		instagramProfileDescriptor(),
		hotelsDescriptor(),
		tweetsDescriptor(),
		pagesDescriptor(),
		placesDescriptor(),
		newsDescriptor(),
	}

	r := &Registry{
		adapters: make(map[string]*Adapter, len(descriptors)),
		order:    make([]string, 0, len(descriptors)),
	}
	for _, desc := range descriptors {
		r.adapters[desc.Name] = NewAdapter(desc, client, runCache, cfg.Token, log)
		r.order = append(r.order, desc.Name)
	}
	return r
}

// Get returns the adapter registered under name.
func (r *Registry) Get(name string) (*Adapter, bool) {
	a, ok := r.adapters[name]
	return a, ok
}

// Names returns the registered scraper names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
