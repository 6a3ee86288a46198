package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingShape(t *testing.T) {
	m := Mapping()

	require.Len(t, m, 10)
	var names []string
	for _, d := range m {
		names = append(names, d.Domain)
		require.NotEmpty(t, d.Fields, d.Domain)
		assert.Equal(t, "Churn", d.Fields[len(d.Fields)-1], d.Domain)
	}
	assert.Equal(t, []string{"Telecom", "Retail", "Clinical", "Insurance", "Banking",
		"Restaurant", "Gaming", "Transport", "Automobiles", "Mobiles"}, names)
	assert.Len(t, m[0].Fields, 14)
	assert.Equal(t, "Country/Region", m[6].Fields[2])
}

func TestMappingReturnsCopy(t *testing.T) {
	m := Mapping()
	m[0].Fields[0] = "changed"
	assert.Equal(t, "CustomerID", Mapping()[0].Fields[0])
}
