package document

import (
	"testing"
	"time"

	"landshare/internal/infra/persistence/docstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"status":              "status",
		"user_id":             "userId",
		"price_per_sqft":      "pricePerSqft",
		"identity_verified":   "identityVerified",
		"request_created_at":  "requestCreatedAt",
		"referral_commission": "referralCommission",
	}

	for snake, want := range tests {
		assert.Equal(t, want, camelCase(snake), snake)
	}
}

func TestWriter_EmitsBothSpellings(t *testing.T) {
	t.Parallel()

	w := newWriter()
	w.str("user_id", "u1")
	w.str("status", "pending")

	doc := w.doc()
	assert.Equal(t, "u1", doc["user_id"])
	assert.Equal(t, "u1", doc["userId"])
	assert.Equal(t, "pending", doc["status"])
	assert.Len(t, doc, 3)
}

func TestReader_PrefersSnakeCaseAndFallsBackToCamelCase(t *testing.T) {
	t.Parallel()

	r := reader(docstore.Document{
		"amountPaid":        int64(900),
		"identity_verified": true,
		"identityVerified":  false,
		"plotName":          "Legacy Plot",
	})

	assert.True(t, decimal.NewFromInt(900).Equal(r.money("amount_paid")))
	assert.True(t, r.boolean("identity_verified"), "snake_case wins when both spellings exist")
	assert.Equal(t, "Legacy Plot", r.str("plot_name"))
	assert.Equal(t, "", r.str("user_email"))
}

func TestReader_TimestampAcceptsNativeAndTextEncodings(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 17, 9, 30, 0, 123, time.UTC)
	r := reader(docstore.Document{
		"created_at":  at,
		"updated_at":  docstore.FormatTime(at),
		"approved_at": at.Format(time.RFC3339Nano),
		"verified_at": "not a time",
	})

	assert.True(t, at.Equal(r.timestamp("created_at")))
	assert.True(t, at.Equal(r.timestamp("updated_at")))
	assert.True(t, at.Equal(r.timestamp("approved_at")))
	assert.True(t, r.timestamp("verified_at").IsZero())
}

func TestReader_MoneyAcceptsFloatsAndStrings(t *testing.T) {
	t.Parallel()

	r := reader(docstore.Document{
		"amount_paid":         25000.5,
		"referral_commission": "120.25",
	})

	assert.True(t, decimal.RequireFromString("25000.5").Equal(r.money("amount_paid")))
	assert.True(t, decimal.RequireFromString("120.25").Equal(r.money("referral_commission")))
	assert.True(t, decimal.Zero.Equal(r.money("price_per_sqft")))
}
