package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reporting/internal/core/application/usecases/commands"
	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
	"reporting/internal/core/ports"
)

type MockDeleteScheduleRepository struct{ mock.Mock }

func (m *MockDeleteScheduleRepository) Add(ctx context.Context, s *schedule.Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockDeleteScheduleRepository) Update(ctx context.Context, s *schedule.Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockDeleteScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.Schedule), args.Error(1)
}

func (m *MockDeleteScheduleRepository) GetAllActive(ctx context.Context) ([]*schedule.Schedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schedule.Schedule), args.Error(1)
}

func (m *MockDeleteScheduleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeleteUoW struct{ mock.Mock }

func (m *MockDeleteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteUoW) ScheduleRepository() ports.ScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleRepository)
}

type MockDeleteUoWFactory struct{ mock.Mock }

func (m *MockDeleteUoWFactory) Create() commands.ScheduleUoW {
	args := m.Called()
	return args.Get(0).(commands.ScheduleUoW)
}

func TestDeleteScheduleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteScheduleCommand(id)
	require.NoError(t, err)

	scheduleRepo := new(MockDeleteScheduleRepository)
	uow := new(MockDeleteUoW)
	timers := new(MockTimerRegistry)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	timers.On("Cancel", id).Return().Once()

	factory := new(MockDeleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteScheduleCommandHandler(factory, timers)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	scheduleRepo.AssertExpectations(t)
	timers.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteScheduleCommandHandler_Handle_DeleteErrorKeepsTimer(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteScheduleCommand(id)
	require.NoError(t, err)

	scheduleRepo := new(MockDeleteScheduleRepository)
	uow := new(MockDeleteUoW)
	timers := new(MockTimerRegistry)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ScheduleRepository").Return(scheduleRepo).Once(),
		scheduleRepo.On("Delete", ctx, id).Return(errors.New("delete error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteScheduleCommandHandler(factory, timers)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "delete error")
	timers.AssertNotCalled(t, "Cancel", mock.Anything)
}

func TestDeleteScheduleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockDeleteUoWFactory)
	handler := commands.NewDeleteScheduleCommandHandler(factory, new(MockTimerRegistry))

	err := handler.Handle(ctx, commands.DeleteScheduleCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrDeleteScheduleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
