package scrapers

import "apify-workers/internal/common/apify"

const googleMapsActorID = "nwua9Gu5YrADL7ZDj"

// Place is the normalized record for one Google Maps place.
type Place struct {
	PlaceNumber int     `json:"place_number"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Category    string  `json:"category"`
	Rating      string  `json:"rating"`
	Reviews     int     `json:"reviews"`
	URL         string  `json:"url"`
	Website     string  `json:"website"`
	Phone       string  `json:"phone"`
	RawData     RawItem `json:"raw_data"`
}

type PlaceSummary struct {
	TotalPlaces   int      `json:"total_places"`
	SearchStrings []string `json:"search_strings"`
	LocationQuery string   `json:"location_query"`
	RunID         string   `json:"run_id"`
	DatasetID     string   `json:"dataset_id"`
}

func placesDescriptor() Descriptor {
	return Descriptor{
		Name:          "google_maps",
		Description:   "Scrape Google Maps places",
		ActorID:       googleMapsActorID,
		RecordsKey:    "places",
		NoResultsHint: "parameters",
		Columns: []string{
			"place_number", "name", "address", "category", "rating",
			"reviews", "url", "website", "phone", "raw_data",
		},
		BuildInput: func(params Params) map[string]interface{} {
			search := params.StringSlice("search_strings")
			if len(search) == 0 {
				search = []string{"restaurant"}
			}
			// Everything below the first four keys pins the actor's many
			// crawl knobs to their cheapest settings.
			return map[string]interface{}{
				"searchStringsArray":              search,
				"locationQuery":                   params.String("location_query", "New York, USA"),
				"maxCrawledPlacesPerSearch":       params.Int("max_places", 50),
				"language":                        params.String("language", "en"),
				"searchMatching":                  "all",
				"placeMinimumStars":               "",
				"website":                         "allPlaces",
				"skipClosedPlaces":                false,
				"scrapePlaceDetailPage":           false,
				"scrapeTableReservationProvider":  false,
				"includeWebResults":               false,
				"scrapeDirectories":               false,
				"maxQuestions":                    0,
				"scrapeContacts":                  false,
				"maximumLeadsEnrichmentRecords":   0,
				"maxReviews":                      0,
				"reviewsSort":                     "newest",
				"reviewsFilterString":             "",
				"reviewsOrigin":                   "all",
				"scrapeReviewsPersonalData":       true,
				"maxImages":                       0,
				"scrapeImageAuthors":              false,
				"allPlacesNoSearchAction":         "",
			}
		},
		Normalize: func(ordinal int, item RawItem) interface{} {
			return Place{
				PlaceNumber: ordinal,
				Name:        item.GetString("title", ""),
				Address:     item.GetString("address", ""),
				Category:    item.GetString("category", ""),
				Rating:      item.GetString("totalScore", ""),
				Reviews:     item.GetInt("reviewsCount", 0),
				URL:         item.GetString("url", ""),
				Website:     item.GetString("website", ""),
				Phone:       item.GetString("phone", ""),
				RawData:     item,
			}
		},
		Summarize: func(records []interface{}, params Params, run *apify.Run) interface{} {
			summary := PlaceSummary{
				TotalPlaces:   len(records),
				SearchStrings: params.StringSlice("search_strings"),
				LocationQuery: params.String("location_query", "New York, USA"),
			}
			if run != nil {
				summary.RunID = run.ID
				summary.DatasetID = run.DefaultDatasetID
			}
			return summary
		},
	}
}
