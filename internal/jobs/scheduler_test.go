package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reporting/internal/core/application/usecases/commands"
	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
	"reporting/internal/core/ports"
)

type MockScheduleRepository struct{ mock.Mock }

func (m *MockScheduleRepository) Add(ctx context.Context, aggregate *schedule.Schedule) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, aggregate *schedule.Schedule) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*schedule.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schedule.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) GetAllActive(ctx context.Context) ([]*schedule.Schedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schedule.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type stubUoW struct {
	repository ports.ScheduleRepository
}

func (s stubUoW) Begin(context.Context) error    { return nil }
func (s stubUoW) Commit(context.Context) error   { return nil }
func (s stubUoW) Rollback(context.Context) error { return nil }
func (s stubUoW) ScheduleRepository() ports.ScheduleRepository {
	return s.repository
}

type stubUoWFactory struct {
	repository ports.ScheduleRepository
}

func (s stubUoWFactory) Create() commands.ScheduleUoW {
	return stubUoW{repository: s.repository}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dailyCadence(t *testing.T) schedule.Cadence {
	t.Helper()

	at, err := kernel.NewTimeOfDay(9, 0)
	require.NoError(t, err)

	cadence, err := schedule.NewCadence(schedule.Daily, 1, &at, nil)
	require.NoError(t, err)
	return cadence
}

func unconfiguredCadence(t *testing.T) schedule.Cadence {
	t.Helper()

	cadence, err := schedule.NewCadence(schedule.Daily, 1, nil, nil)
	require.NoError(t, err)
	return cadence
}

func testAggregate(t *testing.T, cadence schedule.Cadence) *schedule.Schedule {
	t.Helper()

	delivery, err := schedule.NewDelivery(
		[]string{"ops@example.com"}, "Reports", "noreply@example.com", "", "")
	require.NoError(t, err)

	aggregate, err := schedule.NewSchedule(
		kernel.NewUUID(), "Daily Leads", cadence, kernel.NewUUID(),
		[]string{"id", "2"}, delivery)
	require.NoError(t, err)
	return aggregate
}

func Test_Scheduler_Register_IsIdempotent(t *testing.T) {
	scheduler := NewScheduler(stubUoWFactory{}, discardLogger())
	id := kernel.NewUUID()
	cadence := dailyCadence(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, scheduler.Register(id, cadence))
	entries := scheduler.cron.Entries()
	require.Len(t, entries, 1)
	firstFire := entries[0].Schedule.Next(now)

	// Arming the same unchanged schedule again must replace the entry,
	// not stack a second one, and the fire time must not move.
	require.NoError(t, scheduler.Register(id, cadence))
	entries = scheduler.cron.Entries()
	require.Len(t, entries, 1)
	assert.Len(t, scheduler.entries, 1)
	assert.Equal(t, firstFire, entries[0].Schedule.Next(now))

	expected, ok := cadence.NextFireAfter(now)
	require.True(t, ok)
	assert.Equal(t, expected, firstFire)
}

func Test_Scheduler_Register_RearmMovesFireTime(t *testing.T) {
	scheduler := NewScheduler(stubUoWFactory{}, discardLogger())
	id := kernel.NewUUID()
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, scheduler.Register(id, dailyCadence(t)))
	before := scheduler.cron.Entries()[0].Schedule.Next(now)

	at, err := kernel.NewTimeOfDay(18, 45)
	require.NoError(t, err)
	evening, err := schedule.NewCadence(schedule.Daily, 1, &at, nil)
	require.NoError(t, err)

	require.NoError(t, scheduler.Register(id, evening))
	entries := scheduler.cron.Entries()
	require.Len(t, entries, 1)
	assert.NotEqual(t, before, entries[0].Schedule.Next(now))
}

func Test_Scheduler_Cancel(t *testing.T) {
	scheduler := NewScheduler(stubUoWFactory{}, discardLogger())
	id := kernel.NewUUID()

	require.NoError(t, scheduler.Register(id, dailyCadence(t)))
	scheduler.Cancel(id)

	assert.Empty(t, scheduler.entries)
	assert.Empty(t, scheduler.cron.Entries())

	// Unknown IDs are a no-op.
	scheduler.Cancel(kernel.NewUUID())
}

func Test_Scheduler_Reconcile_SkipsUnconfiguredSchedules(t *testing.T) {
	configured := testAggregate(t, dailyCadence(t))
	unconfigured := testAggregate(t, unconfiguredCadence(t))

	repository := new(MockScheduleRepository)
	repository.On("GetAllActive", mock.Anything).
		Return([]*schedule.Schedule{configured, unconfigured}, nil)

	scheduler := NewScheduler(stubUoWFactory{repository: repository}, discardLogger())

	require.NoError(t, scheduler.Reconcile(context.Background()))

	assert.Len(t, scheduler.entries, 1)
	assert.Contains(t, scheduler.entries, configured.ID())
	assert.NotContains(t, scheduler.entries, unconfigured.ID())
	repository.AssertExpectations(t)
}

func Test_Scheduler_Reconcile_RepositoryError(t *testing.T) {
	repository := new(MockScheduleRepository)
	repository.On("GetAllActive", mock.Anything).
		Return(nil, errors.New("connection refused"))

	scheduler := NewScheduler(stubUoWFactory{repository: repository}, discardLogger())

	err := scheduler.Reconcile(context.Background())

	require.Error(t, err)
	assert.Empty(t, scheduler.entries)
}

func Test_CadenceSchedule_Next(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("configured_cadence_matches_domain", func(t *testing.T) {
		cadence := dailyCadence(t)
		expected, ok := cadence.NextFireAfter(now)
		require.True(t, ok)

		next := cadenceSchedule{cadence: cadence}.Next(now)

		assert.Equal(t, expected, next)
		// Recomputing from the same instant must not drift.
		assert.Equal(t, next, cadenceSchedule{cadence: cadence}.Next(now))
	})

	t.Run("unconfigured_cadence_never_fires", func(t *testing.T) {
		next := cadenceSchedule{cadence: unconfiguredCadence(t)}.Next(now)

		assert.True(t, next.IsZero())
	})
}
