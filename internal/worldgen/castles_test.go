package worldgen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestSnapToLandKeepsLegalPosition(t *testing.T) {
	s := halfPlane{Split: 1200, W: 2400, H: 1800}
	p := mgl64.Vec2{600, 600}
	got, rep := SnapToLand(s, p, DefaultConfig().Castles, nil, 6)
	assert.Equal(t, p, got)
	assert.Equal(t, RepairNone, rep)
}

func TestSnapToLandRingSearch(t *testing.T) {
	s := halfPlane{Split: 1200, W: 2400, H: 1800}
	p := mgl64.Vec2{1300, 500}
	cp := DefaultConfig().Castles

	got, rep := SnapToLand(s, p, cp, nil, 6)

	assert.Equal(t, RepairSnapped, rep)
	assert.True(t, s.IsLand(got))
	assert.LessOrEqual(t, dist(got, p), cp.SearchRadius)
	// First ring reaching the coast is 104 px straight to the west.
	assert.InDelta(t, 1196, got.X(), 1e-6)
	assert.InDelta(t, 500, got.Y(), 1e-6)
}

func TestSnapToLandPortFallback(t *testing.T) {
	s := halfPlane{Split: 1200, W: 2400, H: 1800}
	ports := []Port{
		{Name: "far", Pos: mgl64.Vec2{1195, 100}},
		{Name: "near", Pos: mgl64.Vec2{1195, 500}},
	}

	got, rep := SnapToLand(s, mgl64.Vec2{2000, 500}, DefaultConfig().Castles, ports, 6)

	assert.Equal(t, RepairPort, rep)
	assert.Equal(t, mgl64.Vec2{1183, 500}, got)
}

func TestSnapToLandDegenerate(t *testing.T) {
	s := oceanOracle(1000, 800)
	p := mgl64.Vec2{500, 400}
	got, rep := SnapToLand(s, p, DefaultConfig().Castles, nil, 6)
	assert.Equal(t, p, got)
	assert.Equal(t, RepairFailed, rep)
}

func TestParseOwner(t *testing.T) {
	assert.Equal(t, OwnerPlayer, ParseOwner("player"))
	assert.Equal(t, OwnerEnemy, ParseOwner("enemy"))
	assert.Equal(t, OwnerEnemy, ParseOwner(""))
}
