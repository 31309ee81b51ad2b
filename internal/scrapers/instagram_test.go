package scrapers

import (
	"context"
	"encoding/json"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apify-workers/internal/common/logger"
)

var displayTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func TestNormalizePost(t *testing.T) {
	item := RawItem{
		"ownerUsername": "humansofny",
		"ownerFullName": "Humans of New York",
		"timestamp":     float64(1700000000),
		"caption":       "a story",
		"likesCount":    float64(1200),
		"commentsCount": float64(34),
		"hashtags":      []interface{}{"nyc", "street"},
		"url":           "https://instagram.com/p/abc",
		"mediaType":     "Image",
	}

	rec := normalizePost(3, item)
	post, ok := rec.(Post)
	require.True(t, ok)

	assert.Equal(t, 3, post.PostNumber)
	assert.Equal(t, "humansofny", post.Username)
	assert.Equal(t, "Humans of New York", post.FullName)
	assert.Regexp(t, displayTimePattern, post.PostedDate)
	assert.Equal(t, 1200, post.Likes)
	assert.Equal(t, 34, post.Comments)
	assert.Equal(t, 0, post.Shares)
	assert.Equal(t, 0, post.Views)
	assert.Equal(t, "#nyc #street", post.Hashtags)
	assert.Equal(t, item, post.RawData)
}

func TestNormalizePost_TimestampFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		item     RawItem
		expected string
	}{
		{"absent timestamp", RawItem{}, "Unknown"},
		{"unparseable string passes through", RawItem{"timestamp": "not-a-date"}, "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := normalizePost(1, tt.item).(Post)
			assert.Equal(t, tt.expected, post.PostedDate)
		})
	}

	t.Run("numeric timestamp formats", func(t *testing.T) {
		post := normalizePost(1, RawItem{"timestamp": float64(1700000000)}).(Post)
		assert.Regexp(t, displayTimePattern, post.PostedDate)
	})
}

func TestSummarizePosts(t *testing.T) {
	records := []interface{}{
		Post{Username: "a", Likes: 10, Comments: 2, Shares: 1},
		Post{Username: "b", Likes: 20, Comments: 3, Shares: 0},
		Post{Username: "a", Likes: 5, Comments: 1, Shares: 4},
	}

	summary, ok := summarizePosts(records, Params{}, testRun()).(PostSummary)
	require.True(t, ok)

	assert.Equal(t, 3, summary.TotalPosts)
	assert.Equal(t, 2, summary.UniqueUsers)
	assert.Equal(t, 35, summary.TotalLikes)
	assert.Equal(t, 6, summary.TotalComments)
	assert.Equal(t, 5, summary.TotalShares)
	assert.Equal(t, "run-1", summary.RunID)
	assert.Equal(t, "dataset-1", summary.DatasetID)
}

func TestInstagramProfileDescriptor_BuildInput(t *testing.T) {
	desc := instagramProfileDescriptor()

	input := desc.BuildInput(Params{
		"profile_urls": []interface{}{"https://instagram.com/humansofny"},
	})

	assert.Equal(t, []string{"https://instagram.com/humansofny"}, input["directUrls"])
	assert.Equal(t, "posts", input["resultsType"])
	assert.Equal(t, 20, input["resultsLimit"])
	assert.Equal(t, "hashtag", input["searchType"])
	assert.Equal(t, 1, input["searchLimit"])
	assert.Equal(t, false, input["addParentData"])
}

func TestInstagramHashtagDescriptor_SavesRawResults(t *testing.T) {
	chdir(t, t.TempDir())

	platform := &fakePlatform{
		run: testRun(),
		items: []map[string]interface{}{
			{"ownerUsername": "a", "likesCount": float64(1)},
			{"ownerUsername": "b", "likesCount": float64(2)},
		},
	}
	adapter := NewAdapter(instagramHashtagDescriptor(), platform, nil, "token", logger.NewTestLogger(t))

	result := adapter.Run(context.Background(), Params{"hashtags": []interface{}{"goa"}}, "")
	require.False(t, result.IsError())

	assert.Equal(t, []string{"goa"}, platform.lastInput["hashtags"])

	data, err := os.ReadFile(HashtagResultsFile)
	require.NoError(t, err)

	var saved []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Len(t, saved, 2)
	assert.Equal(t, "a", saved[0]["ownerUsername"])
}

func TestInstagramProfileDescriptor_NoFileSideEffect(t *testing.T) {
	chdir(t, t.TempDir())

	platform := &fakePlatform{
		run:   testRun(),
		items: []map[string]interface{}{{"ownerUsername": "a"}},
	}
	adapter := NewAdapter(instagramProfileDescriptor(), platform, nil, "token", logger.NewTestLogger(t))

	result := adapter.Run(context.Background(), Params{}, "")
	require.False(t, result.IsError())

	_, err := os.Stat(HashtagResultsFile)
	assert.True(t, os.IsNotExist(err), "only the hashtag adapter persists raw results")
}

// chdir replicates t.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
