package injector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/gamemath/internal/config"
	"github.com/zeusync/gamemath/pkg/vector"
)

func TestInitializeRuntime(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "error"
	cfg.Random.Seed = "wire"

	rt, err := InitializeRuntime(&cfg)
	require.NoError(t, err)
	require.NotNil(t, rt.Log)
	require.NotEmpty(t, rt.RunID)
	require.Same(t, &cfg, rt.Config)

	want := vector.RandomWith[vector.Vec2](vector.NewRandString("wire"))
	require.Equal(t, want, vector.RandomWith[vector.Vec2](rt.Rand))
}

func TestInitializeRuntimeUnseeded(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "silent"

	rt, err := InitializeRuntime(&cfg)
	require.NoError(t, err)
	require.Nil(t, rt.Rand)
}

func TestInitializeRuntimeBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "chatty"

	_, err := InitializeRuntime(&cfg)
	require.Error(t, err)
}
