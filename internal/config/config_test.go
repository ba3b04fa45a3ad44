package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feudal-map/internal/worldgen"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, `
king:
  x: 100
  y: 200
castles:
  - name: Keep
    x: 10
    y: 20
    owner: player
  - name: Tower
    x: 30
    y: 40
land_patches:
  - {x: 5, y: 6, r: 7}
`)
	w, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100.0, w.King.X)
	assert.Equal(t, float64(worldgen.DefaultKingSpeed), w.King.Speed)
	require.Len(t, w.Castles, 2)
	assert.Equal(t, "player", w.Castles[0].Owner)
	assert.Equal(t, "enemy", w.Castles[1].Owner)

	s := w.Spawn()
	assert.Equal(t, mgl64.Vec2{100, 200}, s.King)
	assert.Equal(t, worldgen.OwnerPlayer, s.Castles[0].Owner)
	require.Len(t, s.LandPatches, 1)
	assert.Equal(t, 7.0, s.LandPatches[0].Radius)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, `{"king": {"x": 1, "y": 2, "speed": 90}, "castles": [{"name": "A", "x": 3, "y": 4, "owner": "enemy"}]}`)
	w, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 90.0, w.King.Speed)
	assert.Equal(t, "A", w.Castles[0].Name)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	cases := map[string]string{
		"syntax":     "king: [",
		"no name":    "castles:\n  - x: 1\n    y: 2\n",
		"owner":      "castles:\n  - name: A\n    owner: pirate\n",
		"patch":      "land_patches:\n  - {x: 1, y: 1, r: 0}\n",
		"wrong type": "king:\n  x: north\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = Load("")
	assert.True(t, errors.Is(err, ErrNoPath))
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	w := LoadOrDefault(writeFile(t, "king: ["), logger)
	assert.Equal(t, Default(), w)
	assert.Contains(t, buf.String(), "using defaults")

	buf.Reset()
	w = LoadOrDefault("", logger)
	assert.Equal(t, Default(), w)
	assert.Empty(t, buf.String())
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "world.yaml")
	require.NoError(t, WriteDefault(path))
	w, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), *w)
}

func TestShippedWorldMatchesDefault(t *testing.T) {
	w, err := Load(filepath.Join("..", "..", "data", "world_map.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *w, "a missing world file must fall back to the same world")
}
