package scrapers

import "apify-workers/internal/common/apify"

const websiteContentActorID = "aYG0l9s7dbB7j3gbS"

const defaultStartURL = "https://docs.apify.com/academy/web-scraping-for-beginners"

// Page is the normalized record for one crawled web page.
type Page struct {
	PageNumber int     `json:"page_number"`
	URL        string  `json:"url"`
	Title      string  `json:"title"`
	Markdown   string  `json:"markdown"`
	Text       string  `json:"text"`
	RawData    RawItem `json:"raw_data"`
}

type PageSummary struct {
	TotalPages int      `json:"total_pages"`
	StartURLs  []string `json:"start_urls"`
	RunID      string   `json:"run_id"`
	DatasetID  string   `json:"dataset_id"`
}

func pagesDescriptor() Descriptor {
	return Descriptor{
		Name:          "website_content",
		Description:   "Scrape website content",
		ActorID:       websiteContentActorID,
		RecordsKey:    "pages",
		NoResultsHint: "parameters",
		Columns: []string{
			"page_number", "url", "title", "markdown", "text", "raw_data",
		},
		BuildInput: func(params Params) map[string]interface{} {
			urls := params.StringSlice("start_urls")
			if len(urls) == 0 {
				urls = []string{defaultStartURL}
			}
			startURLs := make([]map[string]string, len(urls))
			for i, u := range urls {
				startURLs[i] = map[string]string{"url": u}
			}
			return map[string]interface{}{
				"startUrls":    startURLs,
				"resultsLimit": params.Int("results_limit", 20),
				"saveMarkdown": params.Bool("save_markdown", true),
			}
		},
		Normalize: func(ordinal int, item RawItem) interface{} {
			return Page{
				PageNumber: ordinal,
				URL:        item.GetString("url", ""),
				Title:      item.GetString("title", ""),
				Markdown:   item.GetString("markdown", ""),
				Text:       item.GetString("text", ""),
				RawData:    item,
			}
		},
		Summarize: func(records []interface{}, params Params, run *apify.Run) interface{} {
			summary := PageSummary{
				TotalPages: len(records),
				StartURLs:  params.StringSlice("start_urls"),
			}
			if run != nil {
				summary.RunID = run.ID
				summary.DatasetID = run.DefaultDatasetID
			}
			return summary
		},
	}
}
