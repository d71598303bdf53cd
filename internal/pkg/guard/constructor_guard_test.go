package guard_test

import (
	"errors"
	"testing"

	"tripmanager/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard validates clean", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the caller's error", func(t *testing.T) {
		var g guard.ConstructorGuard
		notConstructed := errors.New("command must be created via its constructor")

		err := g.Validate(notConstructed)

		require.Error(t, err)
		assert.Equal(t, notConstructed, err)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	require.Error(t, guard.ErrDefaultConstructorGuard)
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}

// TestConstructorGuardInGuardedStruct exercises the pattern the commands and
// queries use: a private guard field set in the constructor, checked by a
// Validate method.
func TestConstructorGuardInGuardedStruct(t *testing.T) {
	type cancelRequest struct {
		orderID string
		guard   guard.ConstructorGuard
	}

	var errCancelRequestNotConstructed = errors.New("cancelRequest must be created via newCancelRequest")

	newCancelRequest := func(orderID string) (cancelRequest, error) {
		if orderID == "" {
			return cancelRequest{}, errors.New("orderID is required")
		}
		return cancelRequest{
			orderID: orderID,
			guard:   guard.NewConstructorGuard(),
		}, nil
	}

	validate := func(r cancelRequest) error {
		return r.guard.Validate(errCancelRequestNotConstructed)
	}

	t.Run("constructor produces a valid value", func(t *testing.T) {
		req, err := newCancelRequest("3f2b8c1e-9d4a-4f6b-8e21-7a5c90d13f44")

		require.NoError(t, err)
		require.NoError(t, validate(req))
		assert.Equal(t, "3f2b8c1e-9d4a-4f6b-8e21-7a5c90d13f44", req.orderID)
	})

	t.Run("zero value fails validation with the struct's error", func(t *testing.T) {
		var req cancelRequest

		err := validate(req)

		require.Error(t, err)
		assert.Equal(t, errCancelRequestNotConstructed, err)
	})

	t.Run("constructor rejections leave no valid value behind", func(t *testing.T) {
		req, err := newCancelRequest("")

		require.Error(t, err)
		require.Error(t, validate(req))
	})
}

func TestConstructorGuard_CopySemantics(t *testing.T) {
	g := guard.NewConstructorGuard()
	notConstructed := errors.New("not constructed")

	copied := g

	require.NoError(t, g.Validate(notConstructed))
	require.NoError(t, copied.Validate(notConstructed))
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	notConstructed := errors.New("not constructed")

	done := make(chan struct{})
	for range 50 {
		go func() {
			for range 200 {
				assert.NoError(t, g.Validate(notConstructed))
			}
			done <- struct{}{}
		}()
	}

	for range 50 {
		<-done
	}
}
