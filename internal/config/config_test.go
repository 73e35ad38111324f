package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/gamemath/internal/observability/log"
)

func TestLoadYAMLEmpty(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), *c)
}

func TestLoadYAMLOverrides(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(`
log:
  level: debug
  encoding: json
random:
  seed: sunrise
demo:
  points: 8
  rotation_speed: -3
`))
	require.NoError(t, err)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, "json", c.Log.Encoding)
	require.Equal(t, "sunrise", c.Random.Seed)
	require.Equal(t, 8, c.Demo.Points)
	require.Equal(t, float32(-3), c.Demo.RotationSpeed)
	// untouched keys keep their defaults
	require.Equal(t, 960, c.Demo.Width)
	require.Equal(t, float32(200), c.Demo.MaxMagnitude)

	opts, err := c.LogOptions()
	require.NoError(t, err)
	require.Equal(t, log.LevelDebug, opts.Level)
	require.Equal(t, "json", opts.Encoding)
}

func TestLoadYAMLRejects(t *testing.T) {
	tests := map[string]struct {
		doc    string
		target error
	}{
		"level":     {"log: {level: chatty}", log.ErrUnknownLevel},
		"encoding":  {"log: {encoding: xml}", ErrInvalidEncoding},
		"size":      {"demo: {width: 0}", ErrInvalidDemo},
		"points":    {"demo: {points: -1}", ErrInvalidDemo},
		"magnitude": {"demo: {min_magnitude: 50, max_magnitude: 10}", ErrInvalidDemo},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.target), err.Error())
		})
	}
}

func TestLoadYAMLUnknownField(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("colour: red"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamemath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("random:\n  seed: file\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "file", c.Random.Seed)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
