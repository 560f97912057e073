package bindings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusClassification(t *testing.T) {
	cases := []struct {
		status Status
		class  Class
	}{
		{StatusZero, ClassSuccess},
		{StatusUsingFallbackWarning, ClassWarning},
		{StatusUsingDefaultWarning, ClassWarning},
		{StatusStringNotTerminated, ClassWarning},
		{StatusSortKeyTooShortWarning, ClassWarning},
		{StatusIllegalArgument, ClassFailure},
		{StatusMemoryAllocation, ClassFailure},
		{StatusBufferOverflow, ClassFailure},
		{Status(9999), ClassFailure}, // unmapped codes are conservatively failures
	}
	for _, tc := range cases {
		assert.Equal(t, tc.class, tc.status.Class(), "status %s", tc.status)
	}
}

func TestWarningIsNotAnError(t *testing.T) {
	require.NoError(t, StatusUsingDefaultWarning.Err())
	require.NoError(t, StatusZero.Err())
	require.True(t, StatusUsingDefaultWarning.IsWarning())
	require.False(t, StatusZero.IsWarning())
}

func TestFailureCarriesCode(t *testing.T) {
	err := StatusIllegalArgument.Err()
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, StatusIllegalArgument, e.Code)
	assert.Contains(t, err.Error(), "U_ILLEGAL_ARGUMENT_ERROR")

	code, ok := StatusOf(err)
	require.True(t, ok)
	assert.Equal(t, StatusIllegalArgument, code)
}

func TestPreflightToleratesOverflow(t *testing.T) {
	// The sizing probe reports the needed length through
	// U_BUFFER_OVERFLOW_ERROR; that must not surface as a failure.
	require.NoError(t, StatusBufferOverflow.preflightErr())
	require.Error(t, StatusIllegalArgument.preflightErr())
	require.NoError(t, StatusUsingFallbackWarning.preflightErr())
}

func TestStatusNames(t *testing.T) {
	assert.Equal(t, "U_ZERO_ERROR", StatusZero.String())
	assert.Equal(t, "U_BUFFER_OVERFLOW_ERROR", StatusBufferOverflow.String())
	assert.Equal(t, "UErrorCode(1234)", Status(1234).String())
}

func TestCheckNoInteriorNUL(t *testing.T) {
	require.NoError(t, checkNoInteriorNUL("en-US"))
	require.NoError(t, checkNoInteriorNUL(""))
	require.Error(t, checkNoInteriorNUL("en\x00US"))
}
