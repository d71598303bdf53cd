package errs_test

import (
	"errors"
	"testing"

	"tripmanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	orderID := "3f2b8c1e-9d4a-4f6b-8e21-7a5c90d13f44"

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", orderID)

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, orderID, err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: "+orderID, err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("destinationID", orderID, cause)

		assert.Equal(t, "destinationID", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: destinationID, ID is: "+orderID+" (cause: connection reset)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("non-string identifier renders through fmt", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", 42)
		assert.Equal(t, "object not found: %!s(int=42)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("targetStatus")

		assert.Equal(t, "targetStatus", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: targetStatus", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("must be three letters")
		err := errs.NewValueIsInvalidErrorWithCause("iataCode", cause)

		assert.Equal(t, "iataCode", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: iataCode (cause: must be three letters)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("tripDays", 400, 1, 365)

		assert.Equal(t, "tripDays", err.ParamName)
		assert.Equal(t, 400, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 365, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 400 is tripDays, min value is 1, max value is 365", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("window check failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("approvalGapDays", -2, 0, 7, cause)

		assert.Equal(t, "approvalGapDays", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -2 is approvalGapDays, min value is 0, max value is 7 (cause: window check failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("newlines are sanitized out of messages", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("city", "Buenos\nAires", 0, 10)
		assert.Contains(t, err.Error(), "Buenos Aires")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("departureDate")

		assert.Equal(t, "departureDate", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: departureDate", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("owner is mandatory")
		err := errs.NewValueIsRequiredErrorWithCause("owner", cause)

		assert.Equal(t, "owner", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: owner (cause: owner is mandatory)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("stale aggregate")
		err := errs.NewVersionIsInvalidError("orderVersion", cause)

		assert.Equal(t, "orderVersion", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: orderVersion (cause: stale aggregate)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidErrorWithCause("orderVersion")

		assert.Equal(t, "orderVersion", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: orderVersion", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
}

func TestErrorsUnwrapToSentinels(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderID", "42"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("targetStatus"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("tripDays", 400, 1, 365), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("departureDate"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("orderVersion", errors.New("stale")), errs.ErrVersionIsInvalid)
}
