package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("floatkit.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "floatkit.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "floatkit.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("tooltip.delay", "must not be negative", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "tooltip.delay", validationErr.Field)
	require.Contains(t, err.Error(), "must not be negative")
}

func TestPlacementErrorNamesValue(t *testing.T) {
	t.Parallel()

	err := NewPlacementError("middle")

	var placementErr *PlacementError
	require.ErrorAs(t, err, &placementErr)
	require.Equal(t, "middle", placementErr.Value)
	require.Contains(t, err.Error(), `"middle"`)
}

func TestListenerErrorUnwrapsRecoveredError(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("boom")
	err := NewListenerError(3, underlying)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "listener 3")

	plain := NewListenerError(4, "not an error")
	require.Nil(t, stdErrors.Unwrap(plain))
}
