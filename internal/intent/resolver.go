// Package intent maps free-form user text onto a validated scraper
// invocation via a hosted language model.
package intent

import (
	"context"
	"encoding/json"
	"fmt"

	"apify-workers/internal/common/gemini"
	"apify-workers/internal/common/logger"
	"apify-workers/internal/common/metrics"
	"apify-workers/internal/scrapers"
)

// Intent is the resolver's structured interpretation of one chat message.
// It lives for a single request/response cycle and is never persisted.
type Intent struct {
	Scraper     string          `json:"scraper"`
	Parameters  scrapers.Params `json:"parameters"`
	Confidence  float64         `json:"confidence"`
	Explanation string          `json:"explanation"`
}

// NoneIntent builds the deterministic fallback for any resolution failure.
func NoneIntent(explanation string) Intent {
	return Intent{
		Scraper:     "none",
		Parameters:  scrapers.Params{},
		Confidence:  0.0,
		Explanation: explanation,
	}
}

const systemPrompt = `You are an AI assistant that helps users run web scrapers. Your job is to understand user requests and extract the appropriate scraper and parameters.

Available scrapers:
1. instagram_hashtag - Scrape Instagram posts by hashtags
2. instagram_profile - Scrape Instagram profile posts
3. booking - Scrape Booking.com hotels
4. twitter - Scrape Twitter tweets
5. website_content - Scrape website content
6. google_maps - Scrape Google Maps places

Return ONLY a JSON object with this exact structure:
{
    "scraper": "scraper_name",
    "parameters": {
        "param1": "value1",
        "param2": "value2"
    },
    "confidence": 0.95,
    "explanation": "Brief explanation of what will be scraped"
}

Parameter examples:
- instagram_hashtag: {"hashtags": ["goa", "travel"], "results_limit": 20}
- instagram_profile: {"profile_urls": ["https://instagram.com/username"], "results_limit": 20}
- booking: {"search": "New York", "max_items": 10, "currency": "USD", "rooms": 1, "adults": 2, "children": 0, "min_max_price": "0-999999"}
- twitter: {"start_urls": ["https://twitter.com/apify"], "search_terms": ["web scraping"], "twitter_handles": ["elonmusk"], "max_items": 20}
- website_content: {"start_urls": ["https://docs.apify.com"], "results_limit": 10, "save_markdown": true}
- google_maps: {"search_strings": ["restaurant"], "location_query": "New York, USA", "max_places": 20}

If the user's request doesn't match any scraper, return:
{
    "scraper": "none",
    "parameters": {},
    "confidence": 0.0,
    "explanation": "I couldn't understand which scraper you want to use. Please be more specific."
}`

// Resolver turns one chat message into an Intent. Each resolution is a
// single stateless round trip; prior chat history never reaches it.
type Resolver struct {
	model gemini.Client
	log   logger.Logger
}

func NewResolver(model gemini.Client, log logger.Logger) *Resolver {
	return &Resolver{
		model: model,
		log: log.With(map[string]interface{}{
			"component": "intent-resolver",
		}),
	}
}

// Resolve never returns an error: every failure mode degrades to the
// "none" intent with an explanation of what went wrong.
func (r *Resolver) Resolve(ctx context.Context, userText string) Intent {
	prompt := fmt.Sprintf("%s\n\nUser request: %s", systemPrompt, userText)

	response, err := r.model.GenerateContent(ctx, prompt)
	if err != nil {
		r.log.Warn("model call failed", map[string]interface{}{
			"error": err.Error(),
		})
		return r.track(NoneIntent(fmt.Sprintf("Error processing request: %v", err)))
	}

	span, ok := ExtractJSON(response)
	if !ok {
		return r.track(NoneIntent("I couldn't parse the response properly."))
	}

	var parsed Intent
	if err := json.Unmarshal([]byte(span), &parsed); err != nil {
		return r.track(NoneIntent("I couldn't parse the response properly."))
	}

	if err := validateIntent(span); err != nil {
		r.log.Warn("model output failed validation", map[string]interface{}{
			"error":   err.Error(),
			"scraper": parsed.Scraper,
		})
		return r.track(NoneIntent("I couldn't understand which scraper you want to use. Please be more specific."))
	}

	if parsed.Parameters == nil {
		parsed.Parameters = scrapers.Params{}
	}

	r.log.Info("intent resolved", map[string]interface{}{
		"scraper":    parsed.Scraper,
		"confidence": parsed.Confidence,
	})
	return r.track(parsed)
}

func (r *Resolver) track(it Intent) Intent {
	metrics.IntentResolutions.WithLabelValues(it.Scraper).Inc()
	return it
}

// ExtractJSON scans text for the first balanced brace-delimited span,
// skipping braces inside JSON strings. Models wrap their object in prose
// or markdown fences; the surrounding text is ignored.
func ExtractJSON(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
