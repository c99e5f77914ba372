package commands_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
)

func testCadence(t *testing.T) schedule.Cadence {
	t.Helper()

	at, err := kernel.NewTimeOfDay(9, 0)
	require.NoError(t, err)

	cadence, err := schedule.NewCadence(schedule.Daily, 1, &at, nil)
	require.NoError(t, err)
	return cadence
}

func testDelivery(t *testing.T) schedule.Delivery {
	t.Helper()

	delivery, err := schedule.NewDelivery(
		[]string{"ops@example.com"}, "Reports", "noreply@example.com", "", "")
	require.NoError(t, err)
	return delivery
}

func testScheduleAggregate(t *testing.T) *schedule.Schedule {
	t.Helper()

	aggregate, err := schedule.NewSchedule(
		kernel.NewUUID(),
		"Weekly Leads",
		testCadence(t),
		kernel.NewUUID(),
		[]string{"id", "2"},
		testDelivery(t),
	)
	require.NoError(t, err)
	return aggregate
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockTimerRegistry struct{ mock.Mock }

func (m *MockTimerRegistry) Register(id kernel.UUID, cadence schedule.Cadence) error {
	args := m.Called(id, cadence)
	return args.Error(0)
}

func (m *MockTimerRegistry) Cancel(id kernel.UUID) {
	m.Called(id)
}
