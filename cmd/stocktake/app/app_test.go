package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	application, err := New("1.2.3", "abc123", "2026-01-01")
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", application.Version())
	assert.Equal(t, "abc123", application.Commit())
	assert.Equal(t, "2026-01-01", application.Date())
	assert.NotNil(t, application.Config())
	assert.NotNil(t, application.Logger())
}

func TestNewWithOptions(t *testing.T) {
	logger := zerolog.Nop()
	config := &Config{Format: "yaml", Chart: true}

	application, err := New("dev", "", "", WithConfig(config), WithLogger(&logger))
	require.NoError(t, err)

	assert.Same(t, config, application.Config())
	assert.Same(t, &logger, application.Logger())
	assert.Equal(t, "yaml", application.OutputFormat())
}
