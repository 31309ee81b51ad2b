package scrapers

import (
	"encoding/json"
	"fmt"

	"apify-workers/internal/common/errors"
)

// Result is the envelope every adapter returns. Exactly one of the
// success and error shapes is populated; callers must check Err before
// trusting anything else. On the wire a success marshals as
//
//	{"success": true, "<domain_plural>": [...], "summary": {...}, "raw_results": [...]}
//
// and a failure as
//
//	{"error": "<message>"}
//
// keeping error codes internal: the presentation layer only ever sees a
// short human-readable string.
type Result struct {
	Success    bool
	RecordsKey string
	Records    []interface{}
	Summary    interface{}
	Raw        []RawItem
	Err        *errors.ScraperError
}

// Failure builds an error-shaped result.
func Failure(err *errors.ScraperError) *Result {
	return &Result{Err: err}
}

// IsError reports whether the result carries a failure.
func (r *Result) IsError() bool {
	return r.Err != nil
}

// ErrorMessage returns the user-facing message, or "" on success.
func (r *Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Message
}

func (r *Result) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(map[string]interface{}{
			"error": r.Err.Message,
		})
	}
	key := r.RecordsKey
	if key == "" {
		key = "records"
	}
	return json.Marshal(map[string]interface{}{
		"success":     true,
		key:           r.Records,
		"summary":     r.Summary,
		"raw_results": r.Raw,
	})
}

// resultFromCached rebuilds a success envelope from its cached JSON form.
// Records and summary come back as generic maps, which marshal and export
// identically to the typed originals.
func resultFromCached(recordsKey string, data []byte) (*Result, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode cached result: %w", err)
	}
	if _, ok := envelope["success"]; !ok {
		return nil, fmt.Errorf("cached payload is not a success envelope")
	}

	res := &Result{Success: true, RecordsKey: recordsKey}

	if raw, ok := envelope[recordsKey]; ok {
		if err := json.Unmarshal(raw, &res.Records); err != nil {
			return nil, fmt.Errorf("failed to decode cached records: %w", err)
		}
	}
	if raw, ok := envelope["summary"]; ok {
		var summary map[string]interface{}
		if err := json.Unmarshal(raw, &summary); err != nil {
			return nil, fmt.Errorf("failed to decode cached summary: %w", err)
		}
		res.Summary = summary
	}
	if raw, ok := envelope["raw_results"]; ok {
		if err := json.Unmarshal(raw, &res.Raw); err != nil {
			return nil, fmt.Errorf("failed to decode cached raw results: %w", err)
		}
	}

	return res, nil
}
