package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/gamemath/internal/observability/log"
	"github.com/zeusync/gamemath/internal/swizzle"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "swizzle.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("groups: [{name: g, patterns: [yx, zzz]}]\n"), 0o600))

	require.NoError(t, run(context.Background(), log.NewNop(), manifest, dir))

	src, err := os.ReadFile(filepath.Join(dir, swizzle.SourceFile))
	require.NoError(t, err)
	require.Contains(t, string(src), "func YX(v Vec3) Vec2 {")
	require.Contains(t, string(src), "func ZZZ(v Vec3) Vec3 {")
	require.FileExists(t, filepath.Join(dir, swizzle.TestFile))
}

func TestRunMissingManifest(t *testing.T) {
	err := run(context.Background(), log.NewNop(), filepath.Join(t.TempDir(), "nope.yaml"), ".")
	require.Error(t, err)
}

func TestCommandFlags(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("groups: [{name: g, generic: true, patterns: [xy]}]\n"), 0o600))

	cmd := newCommand()
	cmd.SetArgs([]string{"--manifest", manifest, "--out", dir, "--log-level", "silent"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	require.FileExists(t, filepath.Join(dir, swizzle.SourceFile))

	cmd = newCommand()
	cmd.SetArgs([]string{"--manifest", manifest, "--log-level", "shout"})
	require.Error(t, cmd.ExecuteContext(context.Background()))
}
