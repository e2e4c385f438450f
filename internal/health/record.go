// Package health provides the activity API client and the aggregation
// engines that turn raw daily records into chart, table, and summary data.
package health

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Record is one calendar day's activity observation. A zero metric value
// means "no data" rather than "activity of zero"; the averaging engines
// rely on that distinction.
type Record struct {
	Date       Date
	RawDate    string // original date string, retained for display
	Steps      int64
	Kcals      float64
	Km         float64
	RecordedAt time.Time // when the record was captured; zero if unknown
}

// normalizeRecord builds a Record from a loosely typed API entry. Metric
// fields go through number-or-zero coercion; entries without a parseable
// date are rejected.
func normalizeRecord(entry map[string]any) (Record, bool) {
	rawDate, _ := entry["date"].(string)
	date, ok := ParseDate(rawDate)
	if !ok {
		return Record{}, false
	}

	record := Record{
		Date:    date,
		RawDate: rawDate,
		Steps:   intOrZero(entry["steps"]),
		Kcals:   floatOrZero(entry["kcals"]),
		Km:      floatOrZero(entry["km"]),
	}

	if raw, ok := entry["recorded_at"].(string); ok {
		record.RecordedAt = parseTimestamp(raw)
	}

	return record, true
}

// parseTimestamp parses a recorded_at value, returning the zero time when
// the format is not recognized.
func parseTimestamp(value string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// floatOrZero coerces a JSON field to float64, returning 0 for missing,
// non-numeric, or non-finite values.
func floatOrZero(field any) float64 {
	var parsed float64
	switch value := field.(type) {
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0
		}
		parsed = f
	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		parsed = f
	case float64:
		parsed = value
	case int64:
		parsed = float64(value)
	case int:
		parsed = float64(value)
	default:
		return 0
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}
	return parsed
}

// intOrZero coerces a JSON field to int64 under the same rules as
// floatOrZero, truncating fractional input.
func intOrZero(field any) int64 {
	return int64(floatOrZero(field))
}

// LastSync returns the newest capture timestamp across records, or the
// zero time when none carries one.
func LastSync(records []Record) time.Time {
	var newest time.Time
	for _, record := range records {
		if record.RecordedAt.After(newest) {
			newest = record.RecordedAt
		}
	}
	return newest
}
