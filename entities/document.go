package entities

import (
	"bytes"
	"math"

	json "github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is one schema-less record. Keys keep their stored order.
type Document bson.D

func (d Document) Get(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func (d Document) Keys() []string {
	keys := make([]string, 0, len(d))
	for _, e := range d {
		keys = append(keys, e.Key)
	}
	return keys
}

// Without returns a copy of d minus the given key.
func (d Document) Without(key string) Document {
	out := make(Document, 0, len(d))
	for _, e := range d {
		if e.Key != key {
			out = append(out, e)
		}
	}
	return out
}

// MarshalJSON writes an object in key order; nested documents keep theirs.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(PlainValue(e.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PlainValue converts BSON container and date values into JSON-friendly ones.
// NaN and infinities have no JSON form and become null.
func PlainValue(v any) any {
	switch t := v.(type) {
	case bson.D:
		return Document(t)
	case bson.A:
		out := make([]any, len(t))
		for i := range t {
			out[i] = PlainValue(t[i])
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = PlainValue(t[i])
		}
		return out
	case bson.M:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[k] = PlainValue(x)
		}
		return out
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return t
	case float32:
		if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
			return nil
		}
		return t
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Decimal128:
		return t.String()
	default:
		return v
	}
}
