package demo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/gamemath/internal/config"
	"github.com/zeusync/gamemath/pkg/mathf"
	"github.com/zeusync/gamemath/pkg/vector"
)

func newTestScene(seed uint64) (*Scene, config.DemoConfig) {
	cfg := config.Default().Demo
	return NewScene(cfg, vector.NewRand(seed)), cfg
}

func TestArrowStaysInBand(t *testing.T) {
	s, cfg := newTestScene(1)
	for i := 0; i < 1000; i++ {
		s.Step()
		m := vector.Magnitude(s.Arrow())
		require.GreaterOrEqual(t, m, cfg.MinMagnitude-1e-3, "tick %d", i)
		require.LessOrEqual(t, m, cfg.MaxMagnitude+1e-3, "tick %d", i)
	}
}

func TestHeadingAdvancesPerTick(t *testing.T) {
	s, cfg := newTestScene(1)
	require.InDelta(t, 0, s.Heading(), 1e-3)

	for i := 1; i <= 10; i++ {
		s.Step()
		want := mathf.Repeat(float32(i)*cfg.RotationSpeed, 360)
		got := mathf.Repeat(s.Heading(), 360)
		require.InDelta(t, want, got, 1e-2, "tick %d", i)
	}
}

func TestPointsAreDeterministic(t *testing.T) {
	a, cfg := newTestScene(42)
	b, _ := newTestScene(42)
	for i := 0; i < 25; i++ {
		a.Step()
		b.Step()
	}

	pa, pb := a.Points(), b.Points()
	require.Len(t, pa, cfg.Points)
	require.Equal(t, pa, pb)

	for _, p := range pa {
		require.Equal(t, vector.Round(p), p)
		require.LessOrEqual(t, vector.Magnitude(p), cfg.MaxMagnitude+1)
	}
}

func TestHueCyclesAndKeepsAlpha(t *testing.T) {
	s, _ := newTestScene(3)
	for i := 0; i < 2000; i++ {
		s.Step()
		require.GreaterOrEqual(t, s.Hue(), float32(0))
		require.Less(t, s.Hue(), float32(1))
	}
	require.InDelta(t, 0.9, s.Tint().A, 1e-6)
	require.InDelta(t, 0.9, s.PointColor(0).A, 1e-6)
}

func TestPause(t *testing.T) {
	s, _ := newTestScene(5)
	s.Step()
	before := s.Points()

	s.TogglePause()
	require.True(t, s.Paused())
	s.Step()
	s.Step()
	require.Equal(t, 1, s.Ticks())
	require.Equal(t, before, s.Points())

	s.TogglePause()
	s.Step()
	require.Equal(t, 2, s.Ticks())
}

func TestEmptyCloud(t *testing.T) {
	cfg := config.Default().Demo
	cfg.Points = 0
	s := NewScene(cfg, nil)
	s.Step()
	require.Empty(t, s.Points())
}
