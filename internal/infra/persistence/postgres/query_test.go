package postgres

import (
	"testing"
	"time"

	"landshare/internal/infra/persistence/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterExpr(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 1, 8, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))

	tests := []struct {
		name     string
		filter   docstore.Filter
		wantExpr string
		wantArg  any
	}{
		{
			name:     "string equality",
			filter:   docstore.Filter{Field: "status", Op: docstore.OpEqual, Value: "pending"},
			wantExpr: "data->>'status' = ?",
			wantArg:  "pending",
		},
		{
			name:     "numeric range casts",
			filter:   docstore.Filter{Field: "amount_paid", Op: docstore.OpLessEqual, Value: int64(5000)},
			wantExpr: "(data->>'amount_paid')::numeric <= ?",
			wantArg:  5000.0,
		},
		{
			name:     "time compares fixed width utc text",
			filter:   docstore.Filter{Field: "created_at", Op: docstore.OpGreaterEqual, Value: at},
			wantExpr: "data->>'created_at' >= ?",
			wantArg:  "2026-10-01T00:00:00.000000000Z",
		},
		{
			name:     "in list",
			filter:   docstore.Filter{Field: "status", Op: docstore.OpIn, Value: []any{"pending", "processing"}},
			wantExpr: "data->>'status' IN ?",
			wantArg:  []string{"pending", "processing"},
		},
		{
			name:     "not equal",
			filter:   docstore.Filter{Field: "referral_code", Op: docstore.OpNotEqual, Value: ""},
			wantExpr: "data->>'referral_code' <> ?",
			wantArg:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expr, arg, err := filterExpr(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExpr, expr)
			assert.Equal(t, tt.wantArg, arg)
		})
	}
}

func TestFilterExpr_RejectsUnsafeFieldNames(t *testing.T) {
	t.Parallel()

	_, _, err := filterExpr(docstore.Filter{Field: "status'; DROP TABLE documents; --", Op: docstore.OpEqual, Value: "x"})

	assert.Error(t, err)
}

func TestToJSON_FormatsNestedTimes(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 1, 0, 0, 0, 5, time.UTC)
	out := toJSON(docstore.Document{
		"created_at": at,
		"metadata":   docstore.Document{"request_created_at": at},
	})

	assert.Equal(t, "2026-10-01T00:00:00.000000005Z", out["created_at"])
	assert.Equal(t, "2026-10-01T00:00:00.000000005Z", out["metadata"].(map[string]any)["request_created_at"])
}
