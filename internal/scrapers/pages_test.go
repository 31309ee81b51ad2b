package scrapers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesDescriptor_BuildInput(t *testing.T) {
	desc := pagesDescriptor()

	t.Run("defaults", func(t *testing.T) {
		input := desc.BuildInput(Params{})

		assert.Equal(t, []map[string]string{{"url": defaultStartURL}}, input["startUrls"])
		assert.Equal(t, 20, input["resultsLimit"])
		assert.Equal(t, true, input["saveMarkdown"])
	})

	t.Run("start urls wrapped as objects", func(t *testing.T) {
		input := desc.BuildInput(Params{
			"start_urls":    []interface{}{"https://a.example", "https://b.example"},
			"results_limit": float64(10),
			"save_markdown": false,
		})

		assert.Equal(t, []map[string]string{
			{"url": "https://a.example"},
			{"url": "https://b.example"},
		}, input["startUrls"])
		assert.Equal(t, 10, input["resultsLimit"])
		assert.Equal(t, false, input["saveMarkdown"])
	})
}

func TestPagesDescriptor_Normalize(t *testing.T) {
	desc := pagesDescriptor()
	item := RawItem{
		"url":      "https://docs.apify.com",
		"title":    "Docs",
		"markdown": "# Docs",
		"text":     "Docs",
	}

	page, ok := desc.Normalize(1, item).(Page)
	require.True(t, ok)

	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, "https://docs.apify.com", page.URL)
	assert.Equal(t, "# Docs", page.Markdown)
	assert.Equal(t, item, page.RawData)
}

func TestNewsDescriptor_BuildInput(t *testing.T) {
	desc := newsDescriptor()

	input := desc.BuildInput(Params{"query": "Tesla"})

	assert.Equal(t, "Tesla", input["query"])
	assert.Equal(t, "US:en", input["language"])
	assert.Equal(t, 100, input["maxItems"])
	assert.Equal(t, true, input["fetchArticleDetails"])
	assert.Equal(t, map[string]interface{}{"useApifyProxy": true}, input["proxyConfiguration"])
}

func TestNewsDescriptor_Normalize(t *testing.T) {
	desc := newsDescriptor()
	item := RawItem{
		"title":  "Headline",
		"link":   "https://news.example/1",
		"source": "Example Wire",
	}

	article, ok := desc.Normalize(1, item).(Article)
	require.True(t, ok)

	assert.Equal(t, 1, article.ArticleNumber)
	assert.Equal(t, "Headline", article.Title)
	assert.Equal(t, "https://news.example/1", article.URL)
	assert.Equal(t, "Example Wire", article.Source)
	assert.Equal(t, "Unknown", article.PublishedAt)
}

func TestRegistry(t *testing.T) {
	platform := &fakePlatform{}
	registry := NewRegistry(platform, nil, testApifyConfig(), noopLogger())

	expected := []string{
		"instagram_hashtag", "instagram_profile", "booking", "twitter",
		"website_content", "google_maps", "google_news",
	}
	assert.Equal(t, expected, registry.Names())

	for _, name := range expected {
		adapter, ok := registry.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, name, adapter.Name())
		assert.NotEmpty(t, adapter.Descriptor().ActorID)
		assert.NotEmpty(t, adapter.Descriptor().Columns)
	}

	_, ok := registry.Get("none")
	assert.False(t, ok)
}
