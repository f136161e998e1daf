package postgres

import (
	"fmt"
	"regexp"
	"time"

	"landshare/internal/infra/persistence/docstore"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var sqlOps = map[docstore.Op]string{
	docstore.OpEqual:        "=",
	docstore.OpNotEqual:     "<>",
	docstore.OpLess:         "<",
	docstore.OpLessEqual:    "<=",
	docstore.OpGreater:      ">",
	docstore.OpGreaterEqual: ">=",
}

// applyQuery translates filters and orders into JSONB expressions on the documents table.
func applyQuery(db *gorm.DB, q docstore.Query) (*gorm.DB, error) {
	db = db.Where("collection = ?", q.Collection)

	for _, f := range q.Filters {
		expr, arg, err := filterExpr(f)
		if err != nil {
			return nil, err
		}
		db = db.Where(expr, arg)
	}

	for _, o := range q.Orders {
		if !fieldNamePattern.MatchString(o.Field) {
			return nil, errors.Errorf("invalid order field %q", o.Field)
		}
		dir := "ASC"
		if o.Direction == docstore.Desc {
			dir = "DESC"
		}
		// documents without the sort key are left out, matching Firestore
		db = db.Where("jsonb_exists(data, ?)", o.Field)
		db = db.Order(fmt.Sprintf("data->'%s' %s", o.Field, dir))
	}
	db = db.Order("id ASC")

	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}

	return db, nil
}

func filterExpr(f docstore.Filter) (string, any, error) {
	if !fieldNamePattern.MatchString(f.Field) {
		return "", nil, errors.Errorf("invalid filter field %q", f.Field)
	}
	text := fmt.Sprintf("data->>'%s'", f.Field)

	if f.Op == docstore.OpIn {
		values, ok := f.Value.([]any)
		if !ok {
			return "", nil, errors.Errorf("in filter on %q needs []any", f.Field)
		}
		texts := make([]string, len(values))
		for i, v := range values {
			texts[i] = textValue(v)
		}

		return text + " IN ?", texts, nil
	}

	op, ok := sqlOps[f.Op]
	if !ok {
		return "", nil, errors.Errorf("unsupported operator %q", f.Op)
	}

	switch v := f.Value.(type) {
	case bool:
		return fmt.Sprintf("(%s)::boolean %s ?", text, op), v, nil
	case int, int32, int64, float32, float64:
		n, _ := docstore.ToFloat(v)

		return fmt.Sprintf("(%s)::numeric %s ?", text, op), n, nil
	case time.Time:
		return fmt.Sprintf("%s %s ?", text, op), docstore.FormatTime(v), nil
	case string:
		return fmt.Sprintf("%s %s ?", text, op), v, nil
	default:
		return "", nil, errors.Errorf("unsupported filter value %T on %q", f.Value, f.Field)
	}
}

func textValue(v any) string {
	switch val := v.(type) {
	case time.Time:
		return docstore.FormatTime(val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
