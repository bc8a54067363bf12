package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/momentum/prefabs"
)

func writePlayer(t *testing.T, replace ...string) string {
	t.Helper()
	data, err := prefabs.PrefabsFS.ReadFile("player.yaml")
	require.NoError(t, err)
	src := strings.NewReplacer(replace...).Replace(string(data))

	path := filepath.Join(t.TempDir(), "player.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestNewSession(t *testing.T) {
	s, err := New(Config{Script: "sandbox.tengo", Player: "player.yaml", Level: "sandbox.yaml"}, zerolog.Nop())
	require.NoError(t, err)
	require.True(t, s.Scripted())
	require.Equal(t, "sandbox", s.Level().Name)
	require.True(t, s.Player().Alive())
	require.True(t, s.World().Body().GravityEnabled())
	require.Same(t, s.ECS(), s.World().ECS())
	require.Same(t, s.ECS(), s.Player().World())

	for range 10 {
		require.NoError(t, s.Tick())
	}
	require.EqualValues(t, 10, s.Ticks())
	require.EqualValues(t, 10, s.Player().Ticks())
	require.True(t, s.Player().Alive())
}

func TestNewSessionErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing player", Config{Player: "nope.yaml", Level: "sandbox.yaml"}},
		{"missing level", Config{Player: "player.yaml", Level: "nope.yaml"}},
		{"missing script", Config{Script: "nope.tengo", Player: "player.yaml", Level: "sandbox.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg, zerolog.Nop())
			require.Error(t, err)
		})
	}
}

func TestReloadPlayer(t *testing.T) {
	path := writePlayer(t)
	s, err := New(Config{Player: path, Level: "sandbox.yaml"}, zerolog.Nop())
	require.NoError(t, err)
	require.False(t, s.Scripted())
	require.Equal(t, 8.0, s.Player().Tunables().JumpValue)

	require.False(t, s.Reload("prefabs/sandbox.yaml"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	updated := strings.Replace(string(data), "jump_value: 8", "jump_value: 12", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	require.True(t, s.Reload(path))
	require.Equal(t, 12.0, s.Player().Tunables().JumpValue)

	require.NoError(t, os.WriteFile(path, []byte("capacity: 0\n"), 0o644))
	require.False(t, s.Reload(path))
	require.Equal(t, 12.0, s.Player().Tunables().JumpValue)
}

func TestDrain(t *testing.T) {
	path := writePlayer(t, "max_speed: 8", "max_speed: 9")
	s, err := New(Config{Player: path, Level: "sandbox.yaml"}, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 9.0, s.Player().MaxSpeed())

	s.Drain(nil)

	w := &prefabs.Watcher{Events: make(chan string, 1), Errors: make(chan error, 1)}
	updated := strings.Replace(readFile(t, path), "max_speed: 9", "max_speed: 11", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	w.Events <- path
	w.Errors <- os.ErrNotExist
	s.Drain(w)
	require.Equal(t, 11.0, s.Player().MaxSpeed())
	require.Empty(t, w.Events)
	require.Empty(t, w.Errors)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
