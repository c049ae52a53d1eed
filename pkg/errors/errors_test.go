package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchErrorReportsStatus(t *testing.T) {
	t.Parallel()

	err := NewStatusError("./data.json", 404)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, 404, fetchErr.StatusCode)
	require.Contains(t, err.Error(), "status: 404")
	require.Nil(t, stdErrors.Unwrap(err))
}

func TestFetchErrorWrapsTransportFailure(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewFetchError("http://localhost/data.json", underlying)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Zero(t, fetchErr.StatusCode)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "connection refused")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("preferences.backend", "must be one of: file sqlite", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "preferences.backend", validationErr.Field)
	require.Contains(t, validationErr.Message, "file sqlite")
}

func TestStorageErrorIncludesBackendAndKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewStorageError("file", "set", "theme", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "file", storageErr.Backend)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), `set "theme"`)
}
