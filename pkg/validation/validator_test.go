package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type presence struct {
	Name *string   `validate:"required"`
	Tags *[]string `validate:"required"`
}

func TestStructPresence(t *testing.T) {
	empty := ""
	tags := []string{}

	assert.NoError(t, Struct(presence{Name: &empty, Tags: &tags}), "present but empty values are accepted")

	err := Struct(presence{Name: &empty})
	require.Error(t, err)
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Tags"}, verr.Missing())
	assert.Equal(t, "Tags is required", err.Error())
}

func TestStructReportsAllMissing(t *testing.T) {
	err := Struct(presence{})
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"Name", "Tags"}, verr.Missing())
}
