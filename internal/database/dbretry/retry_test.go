package dbretry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
)

var errNotFound = errors.New("not found")

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain", err: errNotFound, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: false},
		{name: "connection reset", err: errors.New("read tcp: connection reset by peer"), want: true},
		{name: "sqlite busy", err: errors.New("database is locked (5) (SQLITE_BUSY)"), want: true},
		{name: "wrapped timeout", err: errors.Join(errNotFound, errors.New("i/o timeout")), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dbretry.IsRetryableError(tt.err))
		})
	}
}

func TestOperationReturnsPermanentErrorUnchanged(t *testing.T) {
	t.Parallel()

	calls := 0
	_, err := dbretry.Operation(t.Context(), func(context.Context) (int, error) {
		calls++
		return 0, errNotFound
	})

	require.ErrorIs(t, err, errNotFound)
	assert.Equal(t, 1, calls)
}

func TestOperationRetriesTransientErrors(t *testing.T) {
	t.Parallel()

	calls := 0
	result, err := dbretry.Operation(t.Context(), func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("write: broken pipe")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestNoResultPropagatesSuccess(t *testing.T) {
	t.Parallel()

	called := false
	err := dbretry.NoResult(t.Context(), func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}
