package repositories

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katastr-cz/katastr-server/pkg/apperrors"
)

func TestRizeniIDValue(t *testing.T) {
	id, err := rizeniIDValue(int32(42))
	require.NoError(t, err)
	assert.Equal(t, int32(42), id)

	id, err = rizeniIDValue(int64(42))
	require.NoError(t, err)
	assert.Equal(t, int32(42), id)

	id, err = rizeniIDValue(int64(math.MaxInt32))
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), id)
}

func TestRizeniIDValue_Overflow(t *testing.T) {
	var mapErr *apperrors.MappingError

	_, err := rizeniIDValue(int64(math.MaxInt32) + 1)
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "id", mapErr.Column)

	_, err = rizeniIDValue(int64(math.MinInt32) - 1)
	assert.ErrorAs(t, err, &mapErr)
}

func TestRizeniIDValue_UnexpectedType(t *testing.T) {
	var mapErr *apperrors.MappingError

	_, err := rizeniIDValue("42")
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "id", mapErr.Column)
}
