package worldgen

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feudal-map/internal/terrain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSpawn() Spawn {
	return Spawn{
		King:      mgl64.Vec2{1000, 980},
		KingSpeed: 180,
		Castles: []Castle{
			{Name: "Château du Nord", Pos: mgl64.Vec2{640, 320}, Owner: OwnerEnemy},
			{Name: "Fort de l'Est", Pos: mgl64.Vec2{1960, 440}, Owner: OwnerEnemy},
			{Name: "Village du Sud", Pos: mgl64.Vec2{1280, 1420}, Owner: OwnerPlayer},
		},
	}
}

func headless() Config {
	cfg := DefaultConfig()
	cfg.RasterCell = 0
	return cfg
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(headless(), testSpawn(), quietLogger())
	require.NoError(t, err)
	b, err := Generate(headless(), testSpawn(), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, a.Islets(), b.Islets())
	assert.Equal(t, a.Ports(), b.Ports())
	assert.Equal(t, a.Castles(), b.Castles())
	ka, _ := a.King()
	kb, _ := b.King()
	assert.Equal(t, ka, kb)
}

func TestGenerateInvariants(t *testing.T) {
	cfg := headless()
	w, err := Generate(cfg, testSpawn(), quietLogger())
	require.NoError(t, err)

	assert.True(t, w.Oracle.Mask().Sealed())
	assert.Nil(t, w.Raster)

	islets := w.Islets()
	for i, a := range islets {
		assert.True(t, w.Oracle.IsLand(a.Center))
		for j := i + 1; j < len(islets); j++ {
			b := islets[j]
			assert.GreaterOrEqual(t, dist(a.Center, b.Center), a.Radius+b.Radius+cfg.Islets.MinSpacing)
		}
	}

	perIslet := make(map[int]int)
	for _, pt := range w.Ports() {
		if pt.Islet != MainlandIslet {
			perIslet[pt.Islet]++
		}
		if pt.Fallback {
			continue
		}
		assert.True(t, IsCoastal(w.Oracle, pt.Pos, cfg.Ports.ProbeOffset), "port %s not coastal", pt.Name)
	}
	for i := range islets {
		assert.Equal(t, 1, perIslet[i], "islet %d should own exactly one port", i)
	}

	for _, c := range w.Castles() {
		if w.Oracle.IsWater(c.Pos) {
			assert.NotZero(t, w.Stats().Repairs[RepairPort]+w.Stats().Repairs[RepairFailed], "castle %s left in water", c.Name)
		}
		assert.Equal(t, cfg.Castles.Radius, c.Radius)
	}
	_, speed := w.King()
	assert.Equal(t, 180.0, speed)
}

func TestGenerateAppliesLandPatches(t *testing.T) {
	spawn := testSpawn()
	spawn.LandPatches = []terrain.Circle{{Center: mgl64.Vec2{300, 300}, Radius: 50}}
	w, err := Generate(headless(), spawn, quietLogger())
	require.NoError(t, err)
	assert.True(t, w.Oracle.IsLand(mgl64.Vec2{300, 300}))
	assert.True(t, w.Oracle.IsLand(mgl64.Vec2{340, 300}))
}

func TestGenerateWithRaster(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 480, 360
	cfg.RasterCell = 4
	cfg.Islets.EdgeMargin = 40
	w, err := Generate(cfg, Spawn{King: mgl64.Vec2{240, 180}}, quietLogger())
	require.NoError(t, err)
	require.NotNil(t, w.Raster)
	assert.Equal(t, 120, w.Raster.Biomes().W)
	assert.Equal(t, 90, w.Raster.Biomes().H)
	for _, is := range w.Islets() {
		assert.Equal(t, terrain.BiomeGrass, w.Raster.BiomeAt(is.Center))
	}
	_, speed := w.King()
	assert.Equal(t, float64(DefaultKingSpeed), speed)
}

func TestSnapshotsAreCopies(t *testing.T) {
	w, err := Generate(headless(), testSpawn(), quietLogger())
	require.NoError(t, err)

	castles := w.Castles()
	castles[0].Name = "changed"
	assert.NotEqual(t, "changed", w.Castles()[0].Name)

	if islets := w.Islets(); len(islets) > 0 {
		islets[0].Boundary[0] = mgl64.Vec2{-1, -1}
		assert.NotEqual(t, mgl64.Vec2{-1, -1}, w.Islets()[0].Boundary[0])
	}
}

func TestCastleLookup(t *testing.T) {
	w, err := Generate(headless(), testSpawn(), quietLogger())
	require.NoError(t, err)

	c, ok := w.CastleByName("chateau du nord")
	require.True(t, ok)
	assert.Equal(t, "Château du Nord", c.Name)

	c, ok = w.CastleByName("fort")
	require.True(t, ok)
	assert.Equal(t, "Fort de l'Est", c.Name)

	c, ok = w.CastleByName("Vilage du Sud")
	require.True(t, ok)
	assert.Equal(t, "Village du Sud", c.Name)

	_, ok = w.CastleByName("atlantis")
	assert.False(t, ok)

	castles := w.Castles()
	assert.Equal(t, 1, w.CastleAt(castles[1].Pos))
	assert.Equal(t, -1, w.CastleAt(mgl64.Vec2{-100, -100}))

	require.True(t, w.SetOwner(1, OwnerPlayer))
	assert.Equal(t, OwnerPlayer, w.Castles()[1].Owner)
	assert.False(t, w.SetOwner(9, OwnerPlayer))
}

func TestDockAt(t *testing.T) {
	w, err := Generate(headless(), testSpawn(), quietLogger())
	require.NoError(t, err)
	for _, pt := range w.Ports() {
		assert.True(t, w.DockAt(pt.Pos))
		got, ok := w.PortAt(pt.Pos)
		require.True(t, ok)
		assert.True(t, got.Contains(pt.Pos))
	}
	assert.False(t, w.DockAt(mgl64.Vec2{-500, -500}))
}

func TestParametersSnapshot(t *testing.T) {
	w, err := Generate(headless(), testSpawn(), quietLogger())
	require.NoError(t, err)
	snap := w.Parameters()
	p, ok := snap.Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "1337", p.Value)
	_, ok = snap.Lookup("islets_placed")
	assert.True(t, ok)
}
