package order_test

import (
	"testing"

	"tripmanager/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{order.Requested, order.Approved, order.Canceled} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range statuses fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(42), order.Status(-1)} {
			err := s.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "status is invalid")
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "REQUESTED", order.Requested.String())
	assert.Equal(t, "APPROVED", order.Approved.String())
	assert.Equal(t, "CANCELED", order.Canceled.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses wire values", func(t *testing.T) {
		cases := map[string]order.Status{
			"REQUESTED": order.Requested,
			"APPROVED":  order.Approved,
			"CANCELED":  order.Canceled,
		}
		for wire, want := range cases {
			got, err := order.StatusFromString(wire)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		got, err := order.StatusFromString("PENDING")

		require.Error(t, err)
		assert.Equal(t, order.Unknown, got)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, err := order.StatusFromString("requested")

		require.Error(t, err)
	})
}

func TestStatus_Approve(t *testing.T) {
	t.Run("requested can be approved", func(t *testing.T) {
		next, err := order.Requested.Approve()

		require.NoError(t, err)
		assert.Equal(t, order.Approved, next)
	})

	t.Run("approved and canceled cannot be approved", func(t *testing.T) {
		for _, s := range []order.Status{order.Approved, order.Canceled, order.Unknown} {
			_, err := s.Approve()

			var approveErr *order.ApproveError
			require.ErrorAs(t, err, &approveErr)
			assert.Equal(t, order.ReasonStatusNotRequested, approveErr.Reason)
			require.ErrorIs(t, err, order.ErrOrderNotApprovable)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("requested and approved can be canceled", func(t *testing.T) {
		for _, s := range []order.Status{order.Requested, order.Approved} {
			next, err := s.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Canceled, next)
		}
	})

	t.Run("canceled cannot be canceled again", func(t *testing.T) {
		_, err := order.Canceled.Cancel()

		var cancelErr *order.CancelError
		require.ErrorAs(t, err, &cancelErr)
		assert.Equal(t, order.ReasonAlreadyCanceled, cancelErr.Reason)
		require.ErrorIs(t, err, order.ErrOrderNotCancelable)
	})
}
