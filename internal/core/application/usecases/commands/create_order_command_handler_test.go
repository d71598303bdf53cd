package commands_test

import (
	"context"
	"errors"
	"testing"

	"tripmanager/internal/core/application/usecases/commands"
	"tripmanager/internal/core/domain/model/destination"
	"tripmanager/internal/core/domain/model/kernel"
	"tripmanager/internal/core/domain/model/order"
	"tripmanager/internal/core/domain/model/user"
	"tripmanager/internal/core/ports"
	"tripmanager/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) Get(ctx context.Context, id kernel.UUID) (*destination.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*destination.Destination), args.Error(1)
}

func (m *MockDestinationRepository) GetAll(ctx context.Context) ([]*destination.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*destination.Destination), args.Error(1)
}

type MockOrderUoW struct {
	mock.Mock
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockOrderUoW) DestinationRepository() ports.DestinationRepository {
	args := m.Called()
	return args.Get(0).(ports.DestinationRepository)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func newSolicitor(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "Alice Doe", "alice@example.com", user.Solicitor)
	require.NoError(t, err)
	return u
}

func newManager(t *testing.T, id kernel.UUID) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "Bob Roe", "bob@example.com", user.Manager)
	require.NoError(t, err)
	return u
}

func newDestination(t *testing.T, id kernel.UUID) *destination.Destination {
	t.Helper()
	d, err := destination.NewDestination(id, "Lisbon", "LIS", "Portugal")
	require.NoError(t, err)
	return d
}

func TestNewCreateOrderCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockOrderUoWFactory)

	// Act
	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	destinationID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, userID, destinationID, testDate(10), testDate(20))
	require.NoError(t, err)

	owner := newSolicitor(t, userID)
	dest := newDestination(t, destinationID)

	mockOrderRepo := new(MockOrderRepository)
	mockUserRepo := new(MockUserRepository)
	mockDestRepo := new(MockDestinationRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Get", ctx, userID).Return(owner, nil).Once(),
		mockUoW.On("DestinationRepository").Return(mockDestRepo).Once(),
		mockDestRepo.On("Get", ctx, destinationID).Return(dest, nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockDestRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)

	// Verify the persisted aggregate carries the requested state
	added := mockOrderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.True(t, added.ID().IsEqual(orderID))
	assert.True(t, added.OwnerID().IsEqual(userID))
	assert.True(t, added.DestinationID().IsEqual(destinationID))
	assert.Equal(t, order.Requested, added.Status())
}

func TestCreateOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateOrderCommand // zero value command

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestCreateOrderCommandHandler_Handle_UserNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	userID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, kernel.NewUUID(), testDate(10), testDate(20))
	require.NoError(t, err)

	mockUserRepo := new(MockUserRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Get", ctx, userID).
			Return(nil, errs.NewObjectNotFoundError("userID", userID)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUserNotFound)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ManagerNotAuthorized(t *testing.T) {
	// Arrange
	ctx := t.Context()
	userID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, kernel.NewUUID(), testDate(10), testDate(20))
	require.NoError(t, err)

	manager := newManager(t, userID)

	mockUserRepo := new(MockUserRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Get", ctx, userID).Return(manager, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUserNotAuthorized)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DestinationNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	userID := kernel.NewUUID()
	destinationID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, destinationID, testDate(10), testDate(20))
	require.NoError(t, err)

	owner := newSolicitor(t, userID)

	mockUserRepo := new(MockUserRepository)
	mockDestRepo := new(MockDestinationRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Get", ctx, userID).Return(owner, nil).Once(),
		mockUoW.On("DestinationRepository").Return(mockDestRepo).Once(),
		mockDestRepo.On("Get", ctx, destinationID).
			Return(nil, errs.NewObjectNotFoundError("destinationID", destinationID)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDestinationNotFound)
	mockUoW.AssertExpectations(t)
	mockDestRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidDates(t *testing.T) {
	// Arrange: departure after return passes the command but fails the entity
	ctx := t.Context()
	userID := kernel.NewUUID()
	destinationID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, destinationID, testDate(20), testDate(10))
	require.NoError(t, err)

	owner := newSolicitor(t, userID)
	dest := newDestination(t, destinationID)

	mockUserRepo := new(MockUserRepository)
	mockDestRepo := new(MockDestinationRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Get", ctx, userID).Return(owner, nil).Once(),
		mockUoW.On("DestinationRepository").Return(mockDestRepo).Once(),
		mockDestRepo.On("Get", ctx, destinationID).Return(dest, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert: nothing was persisted and no commit happened
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidDates)
	mockUoW.AssertExpectations(t)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	userID := kernel.NewUUID()
	destinationID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), userID, destinationID, testDate(10), testDate(20))
	require.NoError(t, err)

	owner := newSolicitor(t, userID)
	dest := newDestination(t, destinationID)
	expectedError := errors.New("commit failed")

	mockOrderRepo := new(MockOrderRepository)
	mockUserRepo := new(MockUserRepository)
	mockDestRepo := new(MockDestinationRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("UserRepository").Return(mockUserRepo).Once(),
		mockUserRepo.On("Get", ctx, userID).Return(owner, nil).Once(),
		mockUoW.On("DestinationRepository").Return(mockDestRepo).Once(),
		mockDestRepo.On("Get", ctx, destinationID).Return(dest, nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockOrderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockUoW.AssertExpectations(t)
}
