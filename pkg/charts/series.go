package charts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"churnpredict/entities"
)

// ExcludedFromCharts reports identifier and date columns, which never chart well.
func ExcludedFromCharts(field string) bool {
	return strings.Contains(field, "ID") || strings.Contains(field, "Date")
}

// FieldOrder lists keys in the order they are first seen across docs.
func FieldOrder(docs []entities.Document) []string {
	seen := map[string]bool{}
	var order []string
	for _, doc := range docs {
		for _, e := range doc {
			if !seen[e.Key] {
				seen[e.Key] = true
				order = append(order, e.Key)
			}
		}
	}
	return order
}

// BuildSeries normalizes numeric fields and counts distinct values per field.
// Numeric fields are counted per bucket and carry their divisor; every other
// field is counted per stringified value. Fields without a non-null value are
// left out.
func BuildSeries(docs []entities.Document) []entities.ChartSeries {
	normalized, divisors := Normalize(docs)

	series := []entities.ChartSeries{}
	for _, field := range FieldOrder(normalized) {
		if ExcludedFromCharts(field) {
			continue
		}
		divisor, numeric := divisors[field]

		c := newCounter()
		for _, doc := range normalized {
			v, ok := doc.Get(field)
			if !ok || isNull(v) {
				continue
			}
			if numeric {
				c.add(bucketLabel(v.(float64)))
			} else {
				c.add(Stringify(v))
			}
		}
		if c.total == 0 {
			continue
		}
		if !numeric {
			divisor = 1
		}
		series = append(series, entities.ChartSeries{
			FieldName: field,
			ChartData: c.points(),
			Divisor:   divisor,
		})
	}
	return series
}

func bucketLabel(b float64) string {
	return strconv.FormatFloat(b, 'f', 0, 64)
}

// Stringify renders a stored value as a chart label.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case primitive.ObjectID:
		return t.Hex()
	case fmt.Stringer:
		return t.String()
	}
	if b, err := json.Marshal(entities.PlainValue(v)); err == nil {
		return string(b)
	}
	return fmt.Sprint(v)
}

// counter counts labels and remembers the order they first appeared in.
type counter struct {
	order  []string
	counts map[string]int
	total  int
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
	c.total++
}

func (c *counter) points() []entities.ChartPoint {
	out := make([]entities.ChartPoint, 0, len(c.order))
	for _, l := range c.order {
		out = append(out, entities.ChartPoint{Label: l, Count: c.counts[l]})
	}
	return out
}
