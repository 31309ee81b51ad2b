package scrapers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"apify-workers/internal/common/apify"
	"apify-workers/internal/common/cache"
	"apify-workers/internal/common/errors"
	"apify-workers/internal/common/logger"
	"apify-workers/internal/common/metrics"
)

// Descriptor is the declarative, per-domain table driving the generic
// adapter: which actor to call, how to translate friendly parameters into
// the actor's input schema, how to flatten each raw item, and how to
// aggregate the normalized set.
type Descriptor struct {
	// Name is the registry key and the value the intent resolver matches.
	Name string

	// Description is the one-line summary shown by the scraper listing.
	Description string

	// ActorID is a fixed constant per domain, never derived from user
	// input. This is the safety boundary keeping the intent resolver from
	// selecting arbitrary remote code.
	ActorID string

	// RecordsKey is the domain-plural key the records marshal under.
	RecordsKey string

	// NoResultsHint names what to vary when a run comes back empty.
	NoResultsHint string

	// Columns fixes the CSV export column order; names match JSON tags.
	Columns []string

	// BuildInput translates friendly parameters into the actor input,
	// applying defaults and per-key conditional inclusion rules.
	BuildInput func(params Params) map[string]interface{}

	// Normalize flattens one raw item. ordinal is the 1-based position in
	// the dataset, assigned independently of anything in the item.
	Normalize func(ordinal int, item RawItem) interface{}

	// Summarize aggregates over the normalized record set.
	Summarize func(records []interface{}, params Params, run *apify.Run) interface{}

	// PostRun, when set, runs after a successful invocation with the raw
	// result set. Only the hashtag domain uses it.
	PostRun func(raw []RawItem) error
}

// Adapter executes one domain's pipeline: translate, call, drain,
// normalize, summarize. Every failure mode becomes an error-shaped
// Result; nothing escapes the Run boundary.
type Adapter struct {
	desc         Descriptor
	client       apify.Client
	runCache     *cache.RunCache
	defaultToken string
	log          logger.Logger
}

func NewAdapter(desc Descriptor, client apify.Client, runCache *cache.RunCache, defaultToken string, log logger.Logger) *Adapter {
	return &Adapter{
		desc:         desc,
		client:       client,
		runCache:     runCache,
		defaultToken: defaultToken,
		log: log.With(map[string]interface{}{
			"scraper": desc.Name,
		}),
	}
}

// Name returns the registry key.
func (a *Adapter) Name() string {
	return a.desc.Name
}

// Descriptor returns the driving descriptor.
func (a *Adapter) Descriptor() Descriptor {
	return a.desc
}

// Run performs one invocation. An empty token falls back to the
// process-wide configured one; having neither is a configuration error
// and no remote call is attempted.
func (a *Adapter) Run(ctx context.Context, params Params, token string) (res *Result) {
	start := time.Now()

	// Normalization trusts nothing about raw item shapes, but the
	// adapter boundary still converts any panic into an error value.
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("scraper run panicked", map[string]interface{}{
				"panic": fmt.Sprintf("%v", r),
			})
			res = a.fail(errors.NewActorCallFailedError(fmt.Errorf("%v", r)))
		}
	}()

	if token == "" {
		token = a.defaultToken
	}
	if token == "" {
		return a.fail(errors.NewMissingTokenError("Apify API token"))
	}

	input := a.desc.BuildInput(params)

	key := cache.Key(a.desc.ActorID, input)
	if data, ok := a.runCache.Get(ctx, key); ok {
		if cached, err := resultFromCached(a.desc.RecordsKey, data); err == nil {
			metrics.CacheHits.WithLabelValues(a.desc.Name).Inc()
			a.log.Info("serving cached run", map[string]interface{}{
				"items": len(cached.Raw),
			})
			return cached
		}
		// A stale or corrupt entry falls through to a fresh run.
	}

	a.log.Info("starting actor run", map[string]interface{}{
		"actorId": a.desc.ActorID,
	})

	run, err := a.client.RunActor(ctx, token, a.desc.ActorID, input)
	if err != nil {
		return a.fail(errors.NewActorCallFailedError(err))
	}
	if run == nil {
		return a.fail(errors.NewRunStartFailedError(a.desc.ActorID))
	}

	items, err := a.client.DatasetItems(ctx, token, run.DefaultDatasetID)
	if err != nil {
		return a.fail(errors.NewActorCallFailedError(err))
	}
	if len(items) == 0 {
		return a.fail(errors.NewNoResultsError(a.desc.NoResultsHint))
	}

	raw := make([]RawItem, len(items))
	records := make([]interface{}, len(items))
	for i, item := range items {
		raw[i] = RawItem(item)
		records[i] = a.desc.Normalize(i+1, raw[i])
	}

	res = &Result{
		Success:    true,
		RecordsKey: a.desc.RecordsKey,
		Records:    records,
		Summary:    a.desc.Summarize(records, params, run),
		Raw:        raw,
	}

	if a.desc.PostRun != nil {
		if err := a.desc.PostRun(raw); err != nil {
			a.log.Warn("post-run side effect failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if payload, err := json.Marshal(res); err == nil {
		a.runCache.Set(ctx, key, payload)
	}

	metrics.ScraperRunsCompleted.WithLabelValues(a.desc.Name).Inc()
	metrics.ScraperRunDuration.WithLabelValues(a.desc.Name).Observe(time.Since(start).Seconds())
	metrics.ScraperItemsReturned.WithLabelValues(a.desc.Name).Add(float64(len(items)))

	a.log.Info("actor run completed", map[string]interface{}{
		"runId":    run.ID,
		"items":    len(items),
		"duration": time.Since(start).String(),
	})

	return res
}

func (a *Adapter) fail(serr *errors.ScraperError) *Result {
	metrics.ScraperRunsFailed.WithLabelValues(a.desc.Name, string(serr.Code)).Inc()
	a.log.Warn("scraper run failed", map[string]interface{}{
		"errorCode": string(serr.Code),
		"error":     serr.Message,
	})
	return Failure(serr)
}
