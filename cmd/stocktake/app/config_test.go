package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "table", LogLevel: ""}

	config.UpdateFromFlags(true, false, true, "json", "debug")

	assert.True(t, config.Verbose)
	assert.False(t, config.Quiet)
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestUpdateFromFlagsKeepsExistingWhenEmpty(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: "warn"}

	config.UpdateFromFlags(false, false, false, "", "")

	// Empty flag values must not clobber config file or env settings.
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "warn", config.LogLevel)
}

func TestPipelineOptionsReflectConfig(t *testing.T) {
	app := &App{config: &Config{Chart: true}}
	assert.Empty(t, app.PipelineOptions())

	app = &App{config: &Config{
		Label1:    "before",
		Label2:    "after",
		OutDir:    "out",
		Chart:     false,
		ColumnMap: map[string]string{"item_no": "sku"},
	}}
	assert.Len(t, app.PipelineOptions(), 4)
}
