package postgres

import (
	"time"

	"landshare/internal/infra/persistence/docstore"

	"gorm.io/datatypes"
)

// toJSON renders times in docstore.TimeLayout so that JSONB text comparisons follow chronology.
func toJSON(doc docstore.Document) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(doc))
	for k, v := range doc {
		out[k] = toJSONValue(v)
	}

	return out
}

func toJSONValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		return docstore.FormatTime(val)
	case docstore.Document:
		return map[string]any(toJSON(val))
	case map[string]any:
		return map[string]any(toJSON(val))
	default:
		return v
	}
}

func fromJSON(data datatypes.JSONMap) docstore.Document {
	return docstore.Document(data).Clone()
}
