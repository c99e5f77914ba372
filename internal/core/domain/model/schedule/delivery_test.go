package schedule_test

import (
	"testing"

	"reporting/internal/core/domain/model/schedule"
	"reporting/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelivery(t *testing.T) {
	t.Run("discards blank recipients", func(t *testing.T) {
		d, err := schedule.NewDelivery(
			[]string{" ops@example.com ", "", "  "},
			"", "", "Subject", "Body",
		)

		require.NoError(t, err)
		assert.Equal(t, []string{"ops@example.com"}, d.Recipients())
	})

	t.Run("requires at least one recipient", func(t *testing.T) {
		_, err := schedule.NewDelivery(nil, "", "", "Subject", "Body")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("applies default subject and body when blank", func(t *testing.T) {
		d, err := schedule.NewDelivery([]string{"ops@example.com"}, "", "", "", "  ")

		require.NoError(t, err)
		assert.Equal(t, schedule.DefaultSubject, d.Subject())
		assert.Equal(t, schedule.DefaultBody, d.Body())
	})
}

func TestDelivery_FromHeader(t *testing.T) {
	t.Run("combines name and address when both are set", func(t *testing.T) {
		d, err := schedule.NewDelivery([]string{"ops@example.com"},
			"Reporting", "reports@example.com", "s", "b")

		require.NoError(t, err)
		assert.Equal(t, "Reporting <reports@example.com>", d.FromHeader())
	})

	t.Run("falls back to the bare address without a name", func(t *testing.T) {
		d, err := schedule.NewDelivery([]string{"ops@example.com"},
			"", "reports@example.com", "s", "b")

		require.NoError(t, err)
		assert.Equal(t, "reports@example.com", d.FromHeader())
	})
}

func TestDelivery_ComposeBody(t *testing.T) {
	t.Run("replaces every placeholder occurrence", func(t *testing.T) {
		d, err := schedule.NewDelivery([]string{"ops@example.com"}, "", "", "s",
			"{record_count} records; again: {record_count}")

		require.NoError(t, err)
		assert.Equal(t, "3 records; again: 3", d.ComposeBody(3))
	})

	t.Run("leaves a body without placeholders untouched", func(t *testing.T) {
		d, err := schedule.NewDelivery([]string{"ops@example.com"}, "", "", "s", "plain body")

		require.NoError(t, err)
		assert.Equal(t, "plain body", d.ComposeBody(42))
	})
}
