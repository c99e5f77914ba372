package errs_test

import (
	"errors"
	"testing"

	"reporting/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	err := errs.NewObjectNotFoundError("scheduleId", "123")

	assert.Equal(t, "scheduleId", err.ParamName)
	assert.Equal(t, "123", err.ID)
	require.NoError(t, err.Cause)
	assert.Equal(t, "object not found: 123", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("scheduleId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: scheduleId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("non_string_id", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("sourceId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("fromAddress")

	assert.Equal(t, "fromAddress", err.ParamName)
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is invalid: fromAddress", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("fromAddress", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: fromAddress (cause: invalid format)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("recipients")

	assert.Equal(t, "recipients", err.ParamName)
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is required: recipients", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("recipients", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: recipients (cause: missing required field)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("weekday", 9, 0, 6)

	assert.Equal(t, "weekday", err.ParamName)
	assert.Equal(t, 9, err.Value)
	assert.Equal(t, 0, err.Min)
	assert.Equal(t, 6, err.Max)
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is invalid: 9 is weekday, min value is 0, max value is 6", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	t.Run("with_cause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("repeatEvery", -5, 1, 365, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is repeatEvery, min value is 1, max value is 365 (cause: validation failed)",
			err.Error())
	})

	t.Run("newlines_are_sanitized", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelErrors(t *testing.T) {
	for sentinel, message := range map[error]string{
		errs.ErrObjectNotFound:    "object not found",
		errs.ErrValueIsInvalid:    "value is invalid",
		errs.ErrValueIsOutOfRange: "value is out of range",
		errs.ErrValueIsRequired:   "value is required",
	} {
		require.Error(t, sentinel)
		assert.Equal(t, message, sentinel.Error())
	}
}
