package scrapers

import "apify-workers/internal/common/apify"

const googleNewsActorID = "eWUEW5YpCaCBAa0Zs"

// Article is the normalized record for one Google News result. This
// domain is reachable through the registry only; the chat path's scraper
// enum does not include it.
type Article struct {
	ArticleNumber int     `json:"article_number"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Source        string  `json:"source"`
	PublishedAt   string  `json:"published_at"`
	Snippet       string  `json:"snippet"`
	RawData       RawItem `json:"raw_data"`
}

type ArticleSummary struct {
	TotalArticles int    `json:"total_articles"`
	Query         string `json:"query"`
	RunID         string `json:"run_id"`
	DatasetID     string `json:"dataset_id"`
}

func newsDescriptor() Descriptor {
	return Descriptor{
		Name:          "google_news",
		Description:   "Scrape Google News articles",
		ActorID:       googleNewsActorID,
		RecordsKey:    "articles",
		NoResultsHint: "query",
		Columns: []string{
			"article_number", "title", "url", "source", "published_at",
			"snippet", "raw_data",
		},
		BuildInput: func(params Params) map[string]interface{} {
			return map[string]interface{}{
				"query":               params.String("query", ""),
				"topics":              []string{},
				"topicsHashed":        []string{},
				"language":            params.String("language", "US:en"),
				"maxItems":            params.Int("max_items", 100),
				"fetchArticleDetails": params.Bool("fetch_article_details", true),
				"proxyConfiguration": map[string]interface{}{
					"useApifyProxy": true,
				},
			}
		},
		Normalize: func(ordinal int, item RawItem) interface{} {
			return Article{
				ArticleNumber: ordinal,
				Title:         item.GetString("title", ""),
				URL:           item.GetString("link", item.GetString("url", "")),
				Source:        item.GetString("source", ""),
				PublishedAt:   FormatTimestamp(item["publishedAt"]),
				Snippet:       item.GetString("snippet", ""),
				RawData:       item,
			}
		},
		Summarize: func(records []interface{}, params Params, run *apify.Run) interface{} {
			summary := ArticleSummary{
				TotalArticles: len(records),
				Query:         params.String("query", ""),
			}
			if run != nil {
				summary.RunID = run.ID
				summary.DatasetID = run.DefaultDatasetID
			}
			return summary
		},
	}
}
