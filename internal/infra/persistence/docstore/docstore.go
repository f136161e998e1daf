// Package docstore defines the document store port shared by the Firestore, PostgreSQL and in-memory backends.
// Documents are flat maps of scalar values keyed by field name; nested maps are allowed one level deep.
package docstore

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// MaxAtomicWrites is the largest number of writes one atomic batch may commit.
const MaxAtomicWrites = 500

// Store errors.
var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists is returned when creating a document whose ID is taken.
	ErrAlreadyExists = errors.New("document already exists")
	// ErrConflict is returned when a transaction kept conflicting until its attempts ran out.
	ErrConflict = errors.New("transaction conflict")
	// ErrReadAfterWrite is returned when a transaction reads after it has written.
	ErrReadAfterWrite = errors.New("transaction reads must precede writes")
	// ErrBatchTooLarge is returned when an atomic batch carries more than MaxAtomicWrites writes.
	ErrBatchTooLarge = errors.New("atomic batch exceeds write limit")
)

// Document is the stored representation of an entity.
// Values are string, bool, int64, float64, time.Time, nil or a nested Document.
type Document map[string]any

// Clone returns a copy that shares no maps with d.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}

	out := make(Document, len(d))
	for k, v := range d {
		switch nested := v.(type) {
		case Document:
			out[k] = nested.Clone()
		case map[string]any:
			out[k] = Document(nested).Clone()
		default:
			out[k] = v
		}
	}

	return out
}

// Op is a query comparison operator.
type Op string

const (
	OpEqual        Op = "=="
	OpNotEqual     Op = "!="
	OpLess         Op = "<"
	OpLessEqual    Op = "<="
	OpGreater      Op = ">"
	OpGreaterEqual Op = ">="
	// OpIn matches when the field equals any element of a []any value.
	OpIn Op = "in"
)

// Filter restricts a query to documents whose field compares true against Value.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Direction is a sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Order sorts query results by one field.
type Order struct {
	Field     string
	Direction Direction
}

// Query selects documents of one collection.
type Query struct {
	Collection string
	Filters    []Filter
	Orders     []Order
	// Limit caps the result size; zero means unlimited.
	Limit int
}

// Where appends a filter.
func (q Query) Where(field string, op Op, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Op: op, Value: value})

	return q
}

// OrderBy appends a sort key.
func (q Query) OrderBy(field string, dir Direction) Query {
	q.Orders = append(append([]Order(nil), q.Orders...), Order{Field: field, Direction: dir})

	return q
}

// Snapshot is one query result.
type Snapshot struct {
	ID   string
	Data Document
}

// Tx is a transaction handle. Every Get must happen before the first write.
type Tx interface {
	Get(collection, id string) (Document, error)
	Create(collection, id string, doc Document) error
	// Update merges fields into an existing document and fails the transaction when it is missing.
	Update(collection, id string, fields Document) error
}

// AtomicBatch commits every staged update or none of them.
type AtomicBatch interface {
	Update(collection, id string, fields Document)
	Len() int
	Commit(ctx context.Context) error
}

// WriteError reports one failed write of a best-effort batch.
type WriteError struct {
	Collection string
	ID         string
	Err        error
}

// BestEffortBatch commits every staged update independently.
type BestEffortBatch interface {
	Update(collection, id string, fields Document)
	Len() int
	Commit(ctx context.Context) []WriteError
}

// Store is a document database with transactions and batches.
type Store interface {
	// NewID allocates a fresh document ID for collection.
	NewID(collection string) string
	Get(ctx context.Context, collection, id string) (Document, error)
	Create(ctx context.Context, collection, id string, doc Document) error
	// Set creates or overwrites a document.
	Set(ctx context.Context, collection, id string, doc Document) error
	// Update merges fields into an existing document.
	Update(ctx context.Context, collection, id string, fields Document) error
	Query(ctx context.Context, q Query) ([]Snapshot, error)
	// RunTransaction runs fn and commits its writes atomically, rerunning fn on write conflicts.
	RunTransaction(ctx context.Context, fn func(tx Tx) error) error
	NewAtomicBatch() AtomicBatch
	NewBestEffortBatch() BestEffortBatch
}

// Write is a staged batch update.
type Write struct {
	Collection string
	ID         string
	Fields     Document
}

// TimeLayout is a fixed-width UTC layout whose lexical order matches chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
