package charts

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"churnpredict/entities"
)

// DefaultSampleSize bounds the documents inspected by field-type discovery.
const DefaultSampleSize = 1000

// FieldType is the representative type of one field, named the way
// MongoDB's $type operator names BSON types.
type FieldType struct {
	Name string `bson:"_id"`
	Type string `bson:"single_type"`
}

// TypeName returns the $type name of a decoded BSON value.
func TypeName(v any) string {
	switch v.(type) {
	case nil, primitive.Null:
		return "null"
	case float64, float32:
		return "double"
	case string:
		return "string"
	case bson.D, entities.Document, bson.M, map[string]any:
		return "object"
	case bson.A, []any:
		return "array"
	case primitive.Binary, []byte:
		return "binData"
	case primitive.Undefined:
		return "undefined"
	case primitive.ObjectID:
		return "objectId"
	case bool:
		return "bool"
	case primitive.DateTime, time.Time:
		return "date"
	case primitive.Regex:
		return "regex"
	case int32, int:
		return "int"
	case primitive.Timestamp:
		return "timestamp"
	case int64:
		return "long"
	case primitive.Decimal128:
		return "decimal"
	case primitive.MinKey:
		return "minKey"
	case primitive.MaxKey:
		return "maxKey"
	default:
		return "unknown"
	}
}

// FirstSeenTypes walks docs in order and keeps the first type observed per key.
// Later documents never override an earlier type, even when they disagree.
func FirstSeenTypes(docs []entities.Document) []FieldType {
	seen := map[string]bool{}
	var out []FieldType
	for _, doc := range docs {
		for _, e := range doc {
			if seen[e.Key] {
				continue
			}
			seen[e.Key] = true
			out = append(out, FieldType{Name: e.Key, Type: TypeName(e.Value)})
		}
	}
	return out
}

// FilterFieldTypes drops date-typed fields, the primary key and any field
// whose name contains "id" in any case.
func FilterFieldTypes(types []FieldType) map[string]string {
	out := make(map[string]string, len(types))
	for _, ft := range types {
		if ft.Type == "date" || ft.Type == "timestamp" {
			continue
		}
		if ft.Name == "_id" || strings.Contains(strings.ToLower(ft.Name), "id") {
			continue
		}
		out[ft.Name] = ft.Type
	}
	return out
}
