package worldgen

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Owner tags who holds a castle.
type Owner string

const (
	OwnerPlayer Owner = "player"
	OwnerEnemy  Owner = "enemy"
)

// ParseOwner maps config strings to owners; anything but "player" is enemy.
func ParseOwner(s string) Owner {
	if s == string(OwnerPlayer) {
		return OwnerPlayer
	}
	return OwnerEnemy
}

// Castle is a named point of interest on the world map.
type Castle struct {
	Name   string
	Pos    mgl64.Vec2
	Owner  Owner
	Radius float64
}

// Contains reports whether p is within the castle's click radius.
func (c Castle) Contains(p mgl64.Vec2) bool {
	return dist(c.Pos, p) <= c.Radius
}

// Repair describes how a spawn point was made legal.
type Repair int

const (
	RepairNone Repair = iota
	RepairSnapped
	RepairPort
	RepairFailed
)

func (r Repair) String() string {
	switch r {
	case RepairNone:
		return "none"
	case RepairSnapped:
		return "snapped"
	case RepairPort:
		return "port"
	default:
		return "failed"
	}
}

// SnapToLand returns p unchanged if it is land. Otherwise it searches rings
// of growing radius around p for the first land point, then falls back to a
// spot next to the nearest port. When there is nothing to snap to, p is
// returned as given with RepairFailed.
func SnapToLand(s Surface, p mgl64.Vec2, cp CastleParams, ports []Port, probe float64) (mgl64.Vec2, Repair) {
	if s.IsLand(p) {
		return p, RepairNone
	}
	angles := cp.SearchAngles
	if angles <= 0 {
		angles = 16
	}
	if cp.SearchStep > 0 {
		for r := cp.SearchStep; r <= cp.SearchRadius; r += cp.SearchStep {
			for k := 0; k < angles; k++ {
				q := polar(p, 2*math.Pi*float64(k)/float64(angles), r)
				if s.IsLand(q) {
					return q, RepairSnapped
				}
			}
		}
	}
	if len(ports) == 0 {
		return p, RepairFailed
	}
	byDist := make([]Port, len(ports))
	copy(byDist, ports)
	sort.SliceStable(byDist, func(i, j int) bool {
		return dist(byDist[i].Pos, p) < dist(byDist[j].Pos, p)
	})
	nearest := byDist[0]
	for _, d := range probeDirs {
		q := nearest.Pos.Add(d.Mul(2 * probe))
		if s.IsLand(q) {
			return q, RepairPort
		}
	}
	return nearest.Pos, RepairPort
}
