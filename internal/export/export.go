// Package export renders a successful scraper result into the two
// downstream formats: a flat CSV of the normalized records and a verbatim
// re-serialization of the raw result sequence. Both are pass-through
// formats with no extra validation.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"apify-workers/internal/scrapers"
)

// CSV writes one row per normalized record, with columns in the
// descriptor's declared order. Nested values (raw_data, lists) are
// serialized as compact JSON cells.
func CSV(w io.Writer, res *scrapers.Result, columns []string) error {
	if res.IsError() {
		return fmt.Errorf("cannot export a failed result: %s", res.ErrorMessage())
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range res.Records {
		fields, err := recordFields(rec)
		if err != nil {
			return err
		}
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = renderCell(fields[col])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// RawJSON re-serializes the original raw item sequence, indented the way
// the dashboard download expects.
func RawJSON(res *scrapers.Result) ([]byte, error) {
	if res.IsError() {
		return nil, fmt.Errorf("cannot export a failed result: %s", res.ErrorMessage())
	}
	return json.MarshalIndent(res.Raw, "", "    ")
}

// recordFields flattens a record (typed struct or cached generic map)
// into a field lookup via its JSON form.
func recordFields(rec interface{}) (map[string]interface{}, error) {
	if m, ok := rec.(map[string]interface{}); ok {
		return m, nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to flatten record: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to flatten record: %w", err)
	}
	return fields, nil
}

func renderCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}
