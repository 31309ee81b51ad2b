package scrapers

import "apify-workers/internal/common/apify"

const twitterActorID = "61RPP7dywgiy0JPD0"

// Tweet is the normalized record for one tweet. Hashtags, mentions and
// media keep their raw list shapes; the actor's schemas for those vary
// too much to flatten usefully.
type Tweet struct {
	TweetNumber int           `json:"tweet_number"`
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	Author      string        `json:"author"`
	AuthorName  string        `json:"author_name"`
	CreatedAt   string        `json:"created_at"`
	Retweets    int           `json:"retweets"`
	Likes       int           `json:"likes"`
	Replies     int           `json:"replies"`
	URL         string        `json:"url"`
	Lang        string        `json:"lang"`
	Hashtags    []interface{} `json:"hashtags"`
	Mentions    []interface{} `json:"mentions"`
	Media       []interface{} `json:"media"`
	RawData     RawItem       `json:"raw_data"`
}

type TweetSummary struct {
	TotalTweets   int    `json:"total_tweets"`
	UniqueAuthors int    `json:"unique_authors"`
	TotalLikes    int    `json:"total_likes"`
	TotalRetweets int    `json:"total_retweets"`
	TotalReplies  int    `json:"total_replies"`
	RunID         string `json:"run_id"`
	DatasetID     string `json:"dataset_id"`
}

// Optional tweet filters are forwarded only when the caller supplied
// them. The actor behaves differently with an absent key than with an
// explicitly empty one, so omission is part of the contract.
var tweetOptionalStrings = map[string]string{
	"author":          "author",
	"in_reply_to":     "inReplyTo",
	"mentioning":      "mentioning",
	"geotagged_near":  "geotaggedNear",
	"within_radius":   "withinRadius",
	"geocode":         "geocode",
	"place_object_id": "placeObjectId",
	"start":           "start",
	"end":             "end",
}

var tweetOptionalNumbers = map[string]string{
	"minimum_retweets":  "minimumRetweets",
	"minimum_favorites": "minimumFavorites",
	"minimum_replies":   "minimumReplies",
}

func tweetsDescriptor() Descriptor {
	return Descriptor{
		Name:          "twitter",
		Description:   "Scrape Twitter tweets",
		ActorID:       twitterActorID,
		RecordsKey:    "tweets",
		NoResultsHint: "parameters",
		Columns: []string{
			"tweet_number", "id", "text", "author", "author_name",
			"created_at", "retweets", "likes", "replies", "url", "lang",
			"hashtags", "mentions", "media", "raw_data",
		},
		BuildInput: func(params Params) map[string]interface{} {
			input := map[string]interface{}{
				"startUrls":         orEmpty(params.StringSlice("start_urls")),
				"searchTerms":       orEmpty(params.StringSlice("search_terms")),
				"twitterHandles":    orEmpty(params.StringSlice("twitter_handles")),
				"conversationIds":   orEmpty(params.StringSlice("conversation_ids")),
				"maxItems":          params.Int("max_items", 100),
				"sort":              params.String("sort", "Latest"),
				"tweetLanguage":     params.String("tweet_language", "en"),
				"customMapFunction": "(object) => { return {...object} }",
			}
			for param, field := range tweetOptionalStrings {
				if v := params.String(param, ""); v != "" {
					input[field] = v
				}
			}
			for param, field := range tweetOptionalNumbers {
				if params.Has(param) {
					input[field] = params.Int(param, 0)
				}
			}
			return input
		},
		Normalize: func(ordinal int, item RawItem) interface{} {
			author := item.GetMap("author")
			return Tweet{
				TweetNumber: ordinal,
				ID:          item.GetString("id", ""),
				Text:        item.GetString("fullText", ""),
				Author:      author.GetString("username", ""),
				AuthorName:  author.GetString("name", ""),
				CreatedAt:   FormatTimestamp(item["createdAt"]),
				Retweets:    item.GetInt("retweetCount", 0),
				Likes:       item.GetInt("favoriteCount", 0),
				Replies:     item.GetInt("replyCount", 0),
				URL:         item.GetString("url", ""),
				Lang:        item.GetString("lang", ""),
				Hashtags:    item.GetList("hashtags"),
				Mentions:    item.GetList("userMentions"),
				Media:       item.GetList("media"),
				RawData:     item,
			}
		},
		Summarize: func(records []interface{}, _ Params, run *apify.Run) interface{} {
			summary := TweetSummary{
				TotalTweets: len(records),
			}
			if run != nil {
				summary.RunID = run.ID
				summary.DatasetID = run.DefaultDatasetID
			}
			authors := make(map[string]struct{})
			for _, rec := range records {
				tweet, ok := rec.(Tweet)
				if !ok {
					continue
				}
				authors[tweet.Author] = struct{}{}
				summary.TotalLikes += tweet.Likes
				summary.TotalRetweets += tweet.Retweets
				summary.TotalReplies += tweet.Replies
			}
			summary.UniqueAuthors = len(authors)
			return summary
		},
	}
}

// orEmpty keeps absent list parameters as explicit empty arrays, which is
// what the tweet actor expects for its always-present inputs.
func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
