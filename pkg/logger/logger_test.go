package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitConfiguresGlobalLogger(t *testing.T) {
	require.NoError(t, Init("debug"))
	require.NotNil(t, Logger())
	require.True(t, Logger().Core().Enabled(-1)) // debug level enabled
}

func TestInitFallsBackToInfoOnBadLevel(t *testing.T) {
	require.NoError(t, Init("not-a-level"))
	require.False(t, Logger().Core().Enabled(-1))
	require.True(t, Logger().Core().Enabled(0))
}

func TestWithModuleReturnsChild(t *testing.T) {
	require.NoError(t, Init("info"))
	child := WithModule("cache")
	require.NotNil(t, child)
}
