package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apify-workers/internal/common/errors"
	"apify-workers/internal/scrapers"
)

type exportRecord struct {
	Ordinal int              `json:"ordinal"`
	Name    string           `json:"name"`
	Score   string           `json:"score"`
	Tags    []string         `json:"tags"`
	RawData scrapers.RawItem `json:"raw_data"`
}

func successResult() *scrapers.Result {
	raw := []scrapers.RawItem{
		{"name": "Alpha", "score": 4.5},
		{"name": "Beta", "score": 3.0},
	}
	return &scrapers.Result{
		Success:    true,
		RecordsKey: "records",
		Records: []interface{}{
			exportRecord{Ordinal: 1, Name: "Alpha", Score: "4.5", Tags: []string{"a", "b"}, RawData: raw[0]},
			exportRecord{Ordinal: 2, Name: "Beta", Score: "3", Tags: nil, RawData: raw[1]},
		},
		Summary: map[string]interface{}{"total": 2},
		Raw:     raw,
	}
}

func TestCSV_WritesHeaderAndRowsInColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	columns := []string{"ordinal", "name", "score", "tags"}

	err := CSV(&buf, successResult(), columns)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, []string{"1", "Alpha", "4.5", `["a","b"]`}, rows[1])
	assert.Equal(t, []string{"2", "Beta", "3", ""}, rows[2])
}

func TestCSV_UnknownColumnYieldsEmptyCell(t *testing.T) {
	var buf bytes.Buffer

	err := CSV(&buf, successResult(), []string{"name", "missing"})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", ""}, rows[1])
}

func TestCSV_CachedGenericRecords(t *testing.T) {
	res := &scrapers.Result{
		Success:    true,
		RecordsKey: "records",
		Records: []interface{}{
			map[string]interface{}{"ordinal": float64(1), "name": "Cached"},
		},
	}

	var buf bytes.Buffer
	err := CSV(&buf, res, []string{"ordinal", "name"})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "Cached"}, rows[1])
}

func TestCSV_RefusesFailedResult(t *testing.T) {
	res := scrapers.Failure(errors.NewNoResultsError("parameters"))

	var buf bytes.Buffer
	err := CSV(&buf, res, []string{"name"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "No results found")
	assert.Zero(t, buf.Len())
}

func TestRawJSON_SerializesRawSequence(t *testing.T) {
	data, err := RawJSON(successResult())
	require.NoError(t, err)

	assert.JSONEq(t, `[{"name":"Alpha","score":4.5},{"name":"Beta","score":3}]`, string(data))
	assert.Contains(t, string(data), "\n    ")
}

func TestRawJSON_RefusesFailedResult(t *testing.T) {
	_, err := RawJSON(scrapers.Failure(errors.NewUnknownScraperError("nope")))

	assert.Error(t, err)
}
