package health

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNormalizeRecord(t *testing.T) {
	tests := map[string]struct {
		entry map[string]any
		want  Record
		ok    bool
	}{
		"complete entry": {
			entry: map[string]any{
				"date":        "2024-03-05",
				"steps":       json.Number("10000"),
				"kcals":       json.Number("512.5"),
				"km":          json.Number("8.2"),
				"recorded_at": "2024-03-05T21:14:03Z",
			},
			want: Record{
				Date:       Date{2024, time.March, 5},
				RawDate:    "2024-03-05",
				Steps:      10000,
				Kcals:      512.5,
				Km:         8.2,
				RecordedAt: time.Date(2024, time.March, 5, 21, 14, 3, 0, time.UTC),
			},
			ok: true,
		},
		"missing metrics default to zero": {
			entry: map[string]any{"date": "2024-03-05"},
			want:  Record{Date: Date{2024, time.March, 5}, RawDate: "2024-03-05"},
			ok:    true,
		},
		"non numeric metrics default to zero": {
			entry: map[string]any{
				"date":  "2024-03-05",
				"steps": "lots",
				"kcals": map[string]any{},
				"km":    nil,
			},
			want: Record{Date: Date{2024, time.March, 5}, RawDate: "2024-03-05"},
			ok:   true,
		},
		"numeric strings are accepted": {
			entry: map[string]any{
				"date":  "2024-03-05",
				"steps": "4200",
				"km":    "3.5",
			},
			want: Record{Date: Date{2024, time.March, 5}, RawDate: "2024-03-05", Steps: 4200, Km: 3.5},
			ok:   true,
		},
		"unparseable date is dropped": {
			entry: map[string]any{"date": "yesterday", "steps": json.Number("100")},
			ok:    false,
		},
		"missing date is dropped": {
			entry: map[string]any{"steps": json.Number("100")},
			ok:    false,
		},
		"bad recorded_at is tolerated": {
			entry: map[string]any{"date": "2024-03-05", "recorded_at": "around noon"},
			want:  Record{Date: Date{2024, time.March, 5}, RawDate: "2024-03-05"},
			ok:    true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := normalizeRecord(tc.entry)
			if ok != tc.ok {
				t.Fatalf("normalizeRecord ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if !got.RecordedAt.Equal(tc.want.RecordedAt) {
				t.Errorf("RecordedAt = %v, want %v", got.RecordedAt, tc.want.RecordedAt)
			}
			got.RecordedAt = tc.want.RecordedAt
			if got != tc.want {
				t.Errorf("normalizeRecord = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestFloatOrZero(t *testing.T) {
	tests := map[string]struct {
		field any
		want  float64
	}{
		"nil":             {field: nil, want: 0},
		"float":           {field: 3.5, want: 3.5},
		"int":             {field: 7, want: 7},
		"int64":           {field: int64(9), want: 9},
		"json number":     {field: json.Number("12.25"), want: 12.25},
		"bad json number": {field: json.Number("xx"), want: 0},
		"numeric string":  {field: "42", want: 42},
		"empty string":    {field: "", want: 0},
		"nan string":      {field: "NaN", want: 0},
		"inf string":      {field: "+Inf", want: 0},
		"bool":            {field: true, want: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := floatOrZero(tc.field); got != tc.want {
				t.Errorf("floatOrZero(%v) = %v, want %v", tc.field, got, tc.want)
			}
		})
	}
}

func TestIntOrZeroTruncates(t *testing.T) {
	if got := intOrZero(json.Number("99.9")); got != 99 {
		t.Errorf("intOrZero(99.9) = %d, want 99", got)
	}
}

func TestLastSync(t *testing.T) {
	older := time.Date(2024, time.March, 4, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)

	records := []Record{
		{Date: Date{2024, time.March, 4}, RecordedAt: older},
		{Date: Date{2024, time.March, 3}},
		{Date: Date{2024, time.March, 5}, RecordedAt: newer},
	}

	if got := LastSync(records); !got.Equal(newer) {
		t.Errorf("LastSync = %v, want %v", got, newer)
	}
	if got := LastSync(nil); !got.IsZero() {
		t.Errorf("LastSync(nil) = %v, want zero time", got)
	}
}
