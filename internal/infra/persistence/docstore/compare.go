package docstore

import (
	"strings"
	"time"
)

// Compare orders two document values the way the stores do.
// Values of different kinds order by kind: nil, bool, number, time, string, map.
func Compare(a, b any) int {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return ka - kb
	}

	switch ka {
	case kindBool:
		ab, bb := a.(bool), b.(bool)
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	case kindNumber:
		fa, _ := ToFloat(a)
		fb, _ := ToFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	case kindTime:
		return a.(time.Time).Compare(b.(time.Time))
	case kindString:
		return strings.Compare(a.(string), b.(string))
	default:
		return 0
	}
}

// Matches evaluates a filter against a document.
func Matches(doc Document, f Filter) bool {
	v, ok := doc[f.Field]
	if !ok {
		return false
	}

	switch f.Op {
	case OpEqual:
		return Compare(v, f.Value) == 0
	case OpNotEqual:
		return Compare(v, f.Value) != 0
	case OpLess:
		return sameKind(v, f.Value) && Compare(v, f.Value) < 0
	case OpLessEqual:
		return sameKind(v, f.Value) && Compare(v, f.Value) <= 0
	case OpGreater:
		return sameKind(v, f.Value) && Compare(v, f.Value) > 0
	case OpGreaterEqual:
		return sameKind(v, f.Value) && Compare(v, f.Value) >= 0
	case OpIn:
		candidates, _ := f.Value.([]any)
		for _, c := range candidates {
			if Compare(v, c) == 0 {
				return true
			}
		}

		return false
	default:
		return false
	}
}

// HasOrderFields reports whether doc carries every field q sorts on.
// Documents missing a sort field are left out of ordered results, as Firestore does.
func HasOrderFields(doc Document, orders []Order) bool {
	for _, o := range orders {
		if _, ok := doc[o.Field]; !ok {
			return false
		}
	}

	return true
}

// ToFloat converts any numeric document value to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

const (
	kindNil = iota
	kindBool
	kindNumber
	kindTime
	kindString
	kindMap
)

func kindOf(v any) int {
	switch v.(type) {
	case nil:
		return kindNil
	case bool:
		return kindBool
	case float64, float32, int, int32, int64:
		return kindNumber
	case time.Time:
		return kindTime
	case string:
		return kindString
	default:
		return kindMap
	}
}

func sameKind(a, b any) bool {
	return kindOf(a) == kindOf(b)
}
