// Package errors provides standardized, coded errors for the scraper pipeline.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Configuration: no platform or model token available, no call attempted.
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"

	// The platform rejected or could not start an actor run.
	ErrCodeRunStartFailed ErrorCode = "RUN_START_FAILED"

	// The run finished but its dataset holds zero items. Distinct from a
	// failure so callers can tell "nothing matched" from "system broken".
	ErrCodeNoResults ErrorCode = "NO_RESULTS"

	// Transport or normalization failure during an actor call.
	ErrCodeActorCallFailed ErrorCode = "ACTOR_CALL_FAILED"

	// The language model produced unparseable or absent JSON, or the call failed.
	ErrCodeIntentParsingFailed ErrorCode = "INTENT_PARSING_FAILED"

	// The resolved intent names a scraper outside the registry.
	ErrCodeUnknownScraper ErrorCode = "UNKNOWN_SCRAPER"
)

// ScraperError represents a structured pipeline error. It is always
// surfaced as a value inside a result envelope, never raised past an
// adapter or resolver boundary.
type ScraperError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ScraperError) Error() string {
	return fmt.Sprintf("ScraperError[%s]: %s", e.Code, e.Message)
}

// Is makes errors.Is match on the error code.
func (e *ScraperError) Is(target error) bool {
	t, ok := target.(*ScraperError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ==========================
// Constructors
// ==========================

// NewMissingTokenError reports an absent credential before any call is made.
func NewMissingTokenError(what string) *ScraperError {
	return &ScraperError{
		Code:      ErrCodeMissingToken,
		Message:   fmt.Sprintf("%s is not configured. Please set it before running a scraper.", what),
		Timestamp: time.Now().UTC(),
	}
}

// NewRunStartFailedError reports a nil or rejected run handle.
func NewRunStartFailedError(details string) *ScraperError {
	return &ScraperError{
		Code:      ErrCodeRunStartFailed,
		Message:   "Failed to start the scraper. Please check your API token.",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoResultsError reports a successful run with an empty dataset.
func NewNoResultsError(hint string) *ScraperError {
	msg := "No results found. Please try with different parameters."
	if hint != "" {
		msg = fmt.Sprintf("No results found. Please try with different %s.", hint)
	}
	return &ScraperError{
		Code:      ErrCodeNoResults,
		Message:   msg,
		Timestamp: time.Now().UTC(),
	}
}

// NewActorCallFailedError wraps any other failure during a call.
func NewActorCallFailedError(err error) *ScraperError {
	return &ScraperError{
		Code:      ErrCodeActorCallFailed,
		Message:   fmt.Sprintf("An error occurred: %v", err),
		Timestamp: time.Now().UTC(),
	}
}

// NewIntentParsingFailedError reports a degraded intent resolution.
func NewIntentParsingFailedError(details string) *ScraperError {
	return &ScraperError{
		Code:      ErrCodeIntentParsingFailed,
		Message:   "Could not understand the request.",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownScraperError reports a scraper name outside the registry.
func NewUnknownScraperError(name string) *ScraperError {
	return &ScraperError{
		Code:      ErrCodeUnknownScraper,
		Message:   "Unknown scraper type",
		Details:   name,
		Timestamp: time.Now().UTC(),
	}
}
