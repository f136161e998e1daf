// Package document maps domain entities onto docstore documents.
// Every multi-word field is written under its snake_case name and its legacy camelCase alias;
// reads accept either spelling, preferring snake_case.
package document

import (
	"strings"
	"time"

	"landshare/internal/infra/persistence/docstore"

	"github.com/shopspring/decimal"
)

// Collection names
const (
	CollectionInvestmentRequests = "investment_requests"
	CollectionInvestments        = "investments"
	CollectionPlots              = "plots"
	CollectionUserProfiles       = "user_profiles"
	CollectionProjects           = "projects"
	CollectionReferrals          = "referrals"
	CollectionAdminQueue         = "admin_queue"
)

// camelCase converts a snake_case field name into its legacy alias.
func camelCase(snake string) string {
	parts := strings.Split(snake, "_")
	if len(parts) == 1 {
		return snake
	}

	var b strings.Builder
	b.Grow(len(snake))
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}

	return b.String()
}

// writer accumulates fields under both spellings.
type writer docstore.Document

func newWriter() writer {
	return make(writer)
}

func (w writer) set(field string, value any) {
	w[field] = value
	if alias := camelCase(field); alias != field {
		w[alias] = value
	}
}

func (w writer) str(field, value string) {
	w.set(field, value)
}

// optStr writes value only when it is non-empty.
func (w writer) optStr(field, value string) {
	if value != "" {
		w.set(field, value)
	}
}

func (w writer) boolean(field string, value bool) {
	w.set(field, value)
}

func (w writer) integer(field string, value int) {
	w.set(field, int64(value))
}

func (w writer) float(field string, value float64) {
	w.set(field, value)
}

// money stores decimals as numbers, the representation shared with existing clients.
func (w writer) money(field string, value decimal.Decimal) {
	w.set(field, value.InexactFloat64())
}

func (w writer) timestamp(field string, value time.Time) {
	w.set(field, value.UTC())
}

// optTime writes value only when it is set.
func (w writer) optTime(field string, value time.Time) {
	if !value.IsZero() {
		w.set(field, value.UTC())
	}
}

func (w writer) nested(field string, value writer) {
	w.set(field, docstore.Document(value))
}

func (w writer) doc() docstore.Document {
	return docstore.Document(w)
}

// reader looks fields up under either spelling.
type reader docstore.Document

func (r reader) lookup(field string) (any, bool) {
	if v, ok := r[field]; ok && v != nil {
		return v, true
	}
	if alias := camelCase(field); alias != field {
		if v, ok := r[alias]; ok && v != nil {
			return v, true
		}
	}

	return nil, false
}

func (r reader) str(field string) string {
	v, _ := r.lookup(field)
	s, _ := v.(string)

	return s
}

func (r reader) boolean(field string) bool {
	v, _ := r.lookup(field)
	b, _ := v.(bool)

	return b
}

func (r reader) float(field string) float64 {
	v, _ := r.lookup(field)
	switch val := v.(type) {
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return 0
		}

		return d.InexactFloat64()
	default:
		f, _ := docstore.ToFloat(val)

		return f
	}
}

func (r reader) integer(field string) int {
	return int(r.float(field))
}

func (r reader) money(field string) decimal.Decimal {
	v, _ := r.lookup(field)
	switch val := v.(type) {
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero
		}

		return d
	default:
		f, ok := docstore.ToFloat(val)
		if !ok {
			return decimal.Zero
		}

		return decimal.NewFromFloat(f)
	}
}

// timestamp accepts native times and the string encodings used by JSON backends.
func (r reader) timestamp(field string) time.Time {
	v, _ := r.lookup(field)
	switch val := v.(type) {
	case time.Time:
		return val.UTC()
	case string:
		for _, layout := range []string{docstore.TimeLayout, time.RFC3339Nano} {
			if t, err := time.Parse(layout, val); err == nil {
				return t.UTC()
			}
		}

		return time.Time{}
	default:
		return time.Time{}
	}
}

func (r reader) nested(field string) reader {
	v, _ := r.lookup(field)
	switch val := v.(type) {
	case docstore.Document:
		return reader(val)
	case map[string]any:
		return reader(val)
	default:
		return reader{}
	}
}
