package scrapers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRawItem_GetString(t *testing.T) {
	item := RawItem{
		"name":  "hotel",
		"stars": float64(4),
		"score": 8.7,
		"empty": nil,
	}

	assert.Equal(t, "hotel", item.GetString("name", "Unknown"))
	assert.Equal(t, "4", item.GetString("stars", "N/A"))
	assert.Equal(t, "8.7", item.GetString("score", "N/A"))
	assert.Equal(t, "N/A", item.GetString("empty", "N/A"))
	assert.Equal(t, "N/A", item.GetString("missing", "N/A"))
}

func TestRawItem_GetInt(t *testing.T) {
	item := RawItem{
		"float":  float64(42),
		"string": "17",
		"junk":   "many",
	}

	assert.Equal(t, 42, item.GetInt("float", 0))
	assert.Equal(t, 17, item.GetInt("string", 0))
	assert.Equal(t, 0, item.GetInt("junk", 0))
	assert.Equal(t, 0, item.GetInt("missing", 0))
}

func TestRawItem_GetStringSlice(t *testing.T) {
	item := RawItem{
		"tags":  []interface{}{"a", "b", float64(3)},
		"other": "not-a-list",
	}

	assert.Equal(t, []string{"a", "b"}, item.GetStringSlice("tags"))
	assert.Nil(t, item.GetStringSlice("other"))
	assert.Nil(t, item.GetStringSlice("missing"))
}

func TestRawItem_GetMap(t *testing.T) {
	item := RawItem{
		"author": map[string]interface{}{"username": "apify"},
	}

	assert.Equal(t, "apify", item.GetMap("author").GetString("username", ""))
	assert.Equal(t, "", item.GetMap("missing").GetString("username", ""))
}

func TestFormatTimestamp(t *testing.T) {
	unix := int64(1700000000)
	expected := time.Unix(unix, 0).Format("2006-01-02 15:04:05")

	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"nil", nil, "Unknown"},
		{"unix float", float64(unix), expected},
		{"unix int", int(unix), expected},
		{"rfc3339 string", "2024-03-05T12:30:00Z", "2024-03-05 12:30:00"},
		{"unparseable string", "last tuesday", "last tuesday"},
		{"empty string", "", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTimestamp(tt.input))
		})
	}
}

func TestJoinHashtags(t *testing.T) {
	assert.Equal(t, "", JoinHashtags(nil))
	assert.Equal(t, "#goa", JoinHashtags([]string{"goa"}))
	assert.Equal(t, "#goa #travel", JoinHashtags([]string{"goa", "travel"}))
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"100", 100, true},
		{" 75.5 ", 75.5, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"call for rates", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePrice(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if ok {
			assert.Equal(t, tt.expected, got, "input %q", tt.input)
		}
	}
}

func TestParams(t *testing.T) {
	p := Params{
		"search":    "Paris",
		"max_items": float64(5),
		"flag":      true,
		"urls":      []interface{}{"https://a", "https://b"},
		"single":    "https://only",
	}

	assert.Equal(t, "Paris", p.String("search", "New York"))
	assert.Equal(t, "New York", p.String("missing", "New York"))
	assert.Equal(t, 5, p.Int("max_items", 10))
	assert.Equal(t, 10, p.Int("missing", 10))
	assert.Equal(t, true, p.Bool("flag", false))
	assert.Equal(t, []string{"https://a", "https://b"}, p.StringSlice("urls"))
	assert.Equal(t, []string{"https://only"}, p.StringSlice("single"))
	assert.Nil(t, p.StringSlice("missing"))
	assert.True(t, p.Has("flag"))
	assert.False(t, p.Has("missing"))
}
