package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	doc := Document{
		"status":      "pending",
		"amount_paid": int64(25000),
		"created_at":  now,
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{name: "string equal", filter: Filter{Field: "status", Op: OpEqual, Value: "pending"}, want: true},
		{name: "string not equal", filter: Filter{Field: "status", Op: OpNotEqual, Value: "pending"}, want: false},
		{name: "int against float", filter: Filter{Field: "amount_paid", Op: OpLessEqual, Value: 25000.0}, want: true},
		{name: "number greater", filter: Filter{Field: "amount_paid", Op: OpGreater, Value: 25000.0}, want: false},
		{name: "time since", filter: Filter{Field: "created_at", Op: OpGreaterEqual, Value: now.Add(-time.Hour)}, want: true},
		{name: "time before", filter: Filter{Field: "created_at", Op: OpLess, Value: now}, want: false},
		{name: "in set", filter: Filter{Field: "status", Op: OpIn, Value: []any{"processing", "pending"}}, want: true},
		{name: "not in set", filter: Filter{Field: "status", Op: OpIn, Value: []any{"failed"}}, want: false},
		{name: "missing field", filter: Filter{Field: "referral_code", Op: OpEqual, Value: ""}, want: false},
		{name: "range across kinds", filter: Filter{Field: "status", Op: OpLess, Value: 10.0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Matches(doc, tt.filter))
		})
	}
}

func TestDocumentClone_DoesNotShareNestedMaps(t *testing.T) {
	t.Parallel()

	original := Document{"metadata": map[string]any{"amount": 1.0}}
	cloned := original.Clone()

	cloned["metadata"].(Document)["amount"] = 2.0

	assert.Equal(t, 1.0, original["metadata"].(map[string]any)["amount"])
}

func TestFormatTime_SortsLexically(t *testing.T) {
	t.Parallel()

	earlier := time.Date(2026, 1, 2, 3, 4, 5, 6, time.UTC)
	later := earlier.Add(time.Nanosecond * 994)

	assert.Less(t, FormatTime(earlier), FormatTime(later))
	assert.Len(t, FormatTime(earlier), len(TimeLayout))
}

func TestHasOrderFields(t *testing.T) {
	t.Parallel()

	doc := Document{"created_at": time.Now(), "priority": "high"}

	assert.True(t, HasOrderFields(doc, nil))
	assert.True(t, HasOrderFields(doc, []Order{{Field: "priority"}, {Field: "created_at", Direction: Desc}}))
	assert.False(t, HasOrderFields(doc, []Order{{Field: "created_at"}, {Field: "amount_paid"}}))
}
