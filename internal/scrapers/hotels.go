package scrapers

import "apify-workers/internal/common/apify"

const bookingActorID = "oeiQgfg5fsmIJB7Cn"

// Hotel is the normalized record for one Booking.com listing. Prices,
// stars and review figures arrive from the actor as either numbers or
// strings, so the display fields hold their string form; aggregation
// parses them back tolerantly.
type Hotel struct {
	HotelNumber int     `json:"hotel_number"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Price       string  `json:"price"`
	Currency    string  `json:"currency"`
	Stars       string  `json:"stars"`
	ReviewScore string  `json:"review_score"`
	ReviewCount string  `json:"review_count"`
	URL         string  `json:"url"`
	Image       string  `json:"image"`
	RawData     RawItem `json:"raw_data"`
}

// HotelSummary aggregates one hotels run. MinPrice and MaxPrice are
// float64 over the records whose price parses as numeric, or the "N/A"
// sentinel when none do.
type HotelSummary struct {
	TotalHotels int         `json:"total_hotels"`
	City        string      `json:"city"`
	MinPrice    interface{} `json:"min_price"`
	MaxPrice    interface{} `json:"max_price"`
	Currency    string      `json:"currency"`
}

func hotelsDescriptor() Descriptor {
	return Descriptor{
		Name:          "booking",
		Description:   "Scrape Booking.com hotels",
		ActorID:       bookingActorID,
		RecordsKey:    "hotels",
		NoResultsHint: "search parameters",
		Columns: []string{
			"hotel_number", "name", "address", "city", "country", "price",
			"currency", "stars", "review_score", "review_count", "url",
			"image", "raw_data",
		},
		BuildInput: func(params Params) map[string]interface{} {
			return map[string]interface{}{
				"search":           params.String("search", "New York"),
				"maxItems":         params.Int("max_items", 10),
				"propertyType":     params.String("property_type", "none"),
				"sortBy":           params.String("sort_by", "distance_from_search"),
				"starsCountFilter": params.String("stars_count_filter", "any"),
				"currency":         params.String("currency", "USD"),
				"language":         params.String("language", "en-gb"),
				"rooms":            params.Int("rooms", 1),
				"adults":           params.Int("adults", 2),
				"children":         params.Int("children", 0),
				"minMaxPrice":      params.String("min_max_price", "0-999999"),
			}
		},
		Normalize: func(ordinal int, item RawItem) interface{} {
			return Hotel{
				HotelNumber: ordinal,
				Name:        item.GetString("name", "Unknown"),
				Address:     item.GetString("address", ""),
				City:        item.GetString("city", ""),
				Country:     item.GetString("country", ""),
				Price:       item.GetString("price", "N/A"),
				Currency:    item.GetString("currency", ""),
				Stars:       item.GetString("stars", "N/A"),
				ReviewScore: item.GetString("reviewScore", "N/A"),
				ReviewCount: item.GetString("reviewCount", "N/A"),
				URL:         item.GetString("url", ""),
				Image:       item.GetString("mainPhotoUrl", ""),
				RawData:     item,
			}
		},
		Summarize: func(records []interface{}, params Params, _ *apify.Run) interface{} {
			summary := HotelSummary{
				TotalHotels: len(records),
				City:        params.String("search", "New York"),
				MinPrice:    "N/A",
				MaxPrice:    "N/A",
				Currency:    params.String("currency", "USD"),
			}
			var min, max float64
			seen := false
			for _, rec := range records {
				hotel, ok := rec.(Hotel)
				if !ok {
					continue
				}
				price, ok := ParsePrice(hotel.Price)
				if !ok {
					continue
				}
				if !seen || price < min {
					min = price
				}
				if !seen || price > max {
					max = price
				}
				seen = true
			}
			if seen {
				summary.MinPrice = min
				summary.MaxPrice = max
			}
			return summary
		},
	}
}
