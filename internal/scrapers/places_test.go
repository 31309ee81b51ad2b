package scrapers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesDescriptor_BuildInput(t *testing.T) {
	desc := placesDescriptor()

	input := desc.BuildInput(Params{})

	assert.Equal(t, []string{"restaurant"}, input["searchStringsArray"])
	assert.Equal(t, "New York, USA", input["locationQuery"])
	assert.Equal(t, 50, input["maxCrawledPlacesPerSearch"])
	assert.Equal(t, "en", input["language"])
	assert.Equal(t, false, input["scrapePlaceDetailPage"])
	assert.Equal(t, 0, input["maxReviews"])
	assert.Equal(t, 0, input["maxImages"])
}

func TestPlacesDescriptor_Normalize(t *testing.T) {
	desc := placesDescriptor()
	item := RawItem{
		"title":        "Joe's Pizza",
		"address":      "7 Carmine St",
		"category":     "Pizza restaurant",
		"totalScore":   4.5,
		"reviewsCount": float64(2100),
		"website":      "https://joespizza.com",
	}

	place, ok := desc.Normalize(1, item).(Place)
	require.True(t, ok)

	assert.Equal(t, 1, place.PlaceNumber)
	assert.Equal(t, "Joe's Pizza", place.Name)
	assert.Equal(t, "4.5", place.Rating)
	assert.Equal(t, 2100, place.Reviews)
	assert.Equal(t, item, place.RawData)
}

func TestPlacesDescriptor_Summarize(t *testing.T) {
	desc := placesDescriptor()
	records := []interface{}{Place{PlaceNumber: 1}, Place{PlaceNumber: 2}}

	summary, ok := desc.Summarize(records, Params{
		"search_strings": []interface{}{"cafe"},
		"location_query": "Lisbon, Portugal",
	}, testRun()).(PlaceSummary)
	require.True(t, ok)

	assert.Equal(t, 2, summary.TotalPlaces)
	assert.Equal(t, []string{"cafe"}, summary.SearchStrings)
	assert.Equal(t, "Lisbon, Portugal", summary.LocationQuery)
	assert.Equal(t, "run-1", summary.RunID)
}
