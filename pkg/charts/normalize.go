// Package charts turns raw collection documents into chart-ready series.
package charts

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"churnpredict/entities"
)

// Divisor returns the smallest power of ten d with max/d <= 10 (1 when max <= 10).
// It is a float so magnitudes past the int64 range still fit in ten buckets.
func Divisor(max float64) float64 {
	d := 1.0
	for max/d > 10 && !math.IsInf(d, 1) {
		d *= 10
	}
	return d
}

// Bucket scales v into the divisor's range, rounding up.
func Bucket(v float64, divisor float64) float64 {
	b := math.Ceil(v / divisor)
	if b == 0 {
		b = 0 // drop the sign of -0
	}
	return b
}

type valueKind int

const (
	kindOther valueKind = iota
	kindNumber
	kindBool
)

func kindOf(v any) valueKind {
	switch v.(type) {
	case bool:
		return kindBool
	case int, int32, int64, float32, float64:
		return kindNumber
	}
	return kindOther
}

// NumericFields reports the fields whose non-null values are all numbers or
// all booleans. Booleans count as 1 and 0; a field mixing the two is not
// numeric, and neither is a field with no non-null value.
func NumericFields(docs []entities.Document) map[string]bool {
	kinds := map[string]valueKind{}
	for _, doc := range docs {
		for _, e := range doc {
			if isNull(e.Value) {
				continue
			}
			k := kindOf(e.Value)
			if prev, ok := kinds[e.Key]; ok && prev != k {
				k = kindOther
			}
			kinds[e.Key] = k
		}
	}
	numeric := map[string]bool{}
	for field, k := range kinds {
		if k != kindOther {
			numeric[field] = true
		}
	}
	return numeric
}

// Normalize rewrites every numeric field to ceil(v/d) and returns d per field.
// Input documents are not modified; non-numeric values pass through.
func Normalize(docs []entities.Document) ([]entities.Document, map[string]float64) {
	numeric := NumericFields(docs)

	maxima := make(map[string]float64, len(numeric))
	for _, doc := range docs {
		for _, e := range doc {
			if !numeric[e.Key] || isNull(e.Value) {
				continue
			}
			f, _ := toFloat(e.Value)
			if m, ok := maxima[e.Key]; !ok || f > m {
				maxima[e.Key] = f
			}
		}
	}

	divisors := make(map[string]float64, len(maxima))
	for field, m := range maxima {
		divisors[field] = Divisor(m)
	}

	out := make([]entities.Document, len(docs))
	for i, doc := range docs {
		nd := make(entities.Document, len(doc))
		copy(nd, doc)
		for j, e := range nd {
			d, ok := divisors[e.Key]
			if !ok {
				continue
			}
			if isNull(e.Value) {
				nd[j].Value = nil
				continue
			}
			f, _ := toFloat(e.Value)
			nd[j].Value = Bucket(f, d)
		}
		out[i] = nd
	}
	return out, divisors
}

// isNull treats BSON null and NaN as missing values.
func isNull(v any) bool {
	switch n := v.(type) {
	case nil, primitive.Null:
		return true
	case float64:
		return math.IsNaN(n)
	case float32:
		return math.IsNaN(float64(n))
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
