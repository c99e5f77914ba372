package queries_test

import (
	"testing"

	"reporting/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllSchedulesQuery_Valid(t *testing.T) {
	query := queries.NewGetAllSchedulesQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllSchedulesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllSchedulesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllSchedulesQueryIsNotConstructed)
}
