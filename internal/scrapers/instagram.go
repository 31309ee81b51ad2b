package scrapers

import (
	"encoding/json"
	"os"

	"apify-workers/internal/common/apify"
)

const (
	instagramProfileActorID = "shu8hvrXbJbY3Eb9W"
	instagramHashtagActorID = "apify/instagram-hashtag-scraper"

	// HashtagResultsFile is where the hashtag adapter dumps raw results
	// after a successful run. No other adapter writes to disk.
	HashtagResultsFile = "instagram_results.json"
)

// Post is the normalized record for one Instagram post, shared by the
// profile and hashtag domains.
type Post struct {
	PostNumber int     `json:"post_number"`
	Username   string  `json:"username"`
	FullName   string  `json:"full_name"`
	PostedDate string  `json:"posted_date"`
	Caption    string  `json:"caption"`
	Likes      int     `json:"likes"`
	Comments   int     `json:"comments"`
	Shares     int     `json:"shares"`
	Views      int     `json:"views"`
	Hashtags   string  `json:"hashtags"`
	PostURL    string  `json:"post_url"`
	MediaType  string  `json:"media_type"`
	ImageURL   string  `json:"image_url"`
	VideoURL   string  `json:"video_url"`
	RawData    RawItem `json:"raw_data"`
}

type PostSummary struct {
	TotalPosts    int    `json:"total_posts"`
	UniqueUsers   int    `json:"unique_users"`
	TotalLikes    int    `json:"total_likes"`
	TotalComments int    `json:"total_comments"`
	TotalShares   int    `json:"total_shares"`
	RunID         string `json:"run_id"`
	DatasetID     string `json:"dataset_id"`
}

var postColumns = []string{
	"post_number", "username", "full_name", "posted_date", "caption",
	"likes", "comments", "shares", "views", "hashtags", "post_url",
	"media_type", "image_url", "video_url", "raw_data",
}

func normalizePost(ordinal int, item RawItem) interface{} {
	return Post{
		PostNumber: ordinal,
		Username:   item.GetString("ownerUsername", "Unknown"),
		FullName:   item.GetString("ownerFullName", ""),
		PostedDate: FormatTimestamp(item["timestamp"]),
		Caption:    item.GetString("caption", ""),
		Likes:      item.GetInt("likesCount", 0),
		Comments:   item.GetInt("commentsCount", 0),
		Shares:     item.GetInt("sharesCount", 0),
		Views:      item.GetInt("videoViewCount", 0),
		Hashtags:   JoinHashtags(item.GetStringSlice("hashtags")),
		PostURL:    item.GetString("url", ""),
		MediaType:  item.GetString("mediaType", ""),
		ImageURL:   item.GetString("imageUrl", ""),
		VideoURL:   item.GetString("videoUrl", ""),
		RawData:    item,
	}
}

func summarizePosts(records []interface{}, _ Params, run *apify.Run) interface{} {
	summary := PostSummary{
		TotalPosts: len(records),
	}
	if run != nil {
		summary.RunID = run.ID
		summary.DatasetID = run.DefaultDatasetID
	}
	users := make(map[string]struct{})
	for _, rec := range records {
		post, ok := rec.(Post)
		if !ok {
			continue
		}
		users[post.Username] = struct{}{}
		summary.TotalLikes += post.Likes
		summary.TotalComments += post.Comments
		summary.TotalShares += post.Shares
	}
	summary.UniqueUsers = len(users)
	return summary
}

func instagramProfileDescriptor() Descriptor {
	return Descriptor{
		Name:          "instagram_profile",
		Description:   "Scrape Instagram profile posts",
		ActorID:       instagramProfileActorID,
		RecordsKey:    "posts",
		NoResultsHint: "profile URLs",
		Columns:       postColumns,
		BuildInput: func(params Params) map[string]interface{} {
			return map[string]interface{}{
				"directUrls":    params.StringSlice("profile_urls"),
				"resultsType":   "posts",
				"resultsLimit":  params.Int("results_limit", 20),
				"searchType":    "hashtag",
				"searchLimit":   1,
				"addParentData": false,
			}
		},
		Normalize: normalizePost,
		Summarize: summarizePosts,
	}
}

func instagramHashtagDescriptor() Descriptor {
	return Descriptor{
		Name:          "instagram_hashtag",
		Description:   "Scrape Instagram posts by hashtags",
		ActorID:       instagramHashtagActorID,
		RecordsKey:    "posts",
		NoResultsHint: "hashtags",
		Columns:       postColumns,
		BuildInput: func(params Params) map[string]interface{} {
			return map[string]interface{}{
				"hashtags":     params.StringSlice("hashtags"),
				"resultsType":  "posts",
				"resultsLimit": params.Int("results_limit", 20),
			}
		},
		Normalize: normalizePost,
		Summarize: summarizePosts,
		PostRun:   saveHashtagResults,
	}
}

func saveHashtagResults(raw []RawItem) error {
	data, err := json.MarshalIndent(raw, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(HashtagResultsFile, data, 0o644)
}
