package worldgen

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"feudal-map/internal/terrain"
	"feudal-map/pkg/core"
)

// MainlandIslet marks a port that does not belong to an islet.
const MainlandIslet = -1

// Port is a coastal point where the king can switch between walking and
// sailing.
type Port struct {
	Name   string
	Pos    mgl64.Vec2
	Radius float64
	// Islet is the index of the owning islet or MainlandIslet.
	Islet int
	// Fallback marks an islet port placed at a fixed offset because no
	// coastal point was found.
	Fallback bool
}

// Contains reports whether p lies within the port's interaction radius.
func (pt Port) Contains(p mgl64.Vec2) bool {
	return dist(pt.Pos, p) <= pt.Radius
}

// PlaceMainlandPorts searches for coastal land points away from islets,
// world edges and other ports. It returns at most p.MainlandCount ports and
// the number of attempts used.
func PlaceMainlandPorts(rng *core.RNG, s Surface, mask *terrain.OverrideMask, bounds Rect, p PortParams, existing []Port) ([]Port, int) {
	area := bounds.Inset(p.EdgeMargin)
	if area.Empty() || p.MainlandCount <= 0 {
		return nil, 0
	}
	out := make([]Port, 0, p.MainlandCount)
	attempts := 0
	for len(out) < p.MainlandCount && attempts < p.MaxAttempts {
		attempts++
		c := mgl64.Vec2{
			rng.Range(area.Min.X(), area.Max.X()),
			rng.Range(area.Min.Y(), area.Max.Y()),
		}
		if mask.Contains(c) || !IsCoastal(s, c, p.ProbeOffset) {
			continue
		}
		if nearPort(existing, c, p.MinSpacing) || nearPort(out, c, p.MinSpacing) {
			continue
		}
		out = append(out, Port{
			Name:   fmt.Sprintf("Port %d", len(out)+1),
			Pos:    c,
			Radius: p.Radius,
			Islet:  MainlandIslet,
		})
	}
	return out, attempts
}

// PlaceIsletPort sweeps around the islet, walking each ray outward to the
// last land point before open water, and takes the first coastal point that
// keeps p.IsletSpacing from every existing port. If none qualifies the port
// is placed at the centre offset by half the radius.
func PlaceIsletPort(s Surface, is Islet, index int, p PortParams, existing []Port) Port {
	port := Port{
		Name:   fmt.Sprintf("Islet %d Port", index+1),
		Radius: p.Radius,
		Islet:  index,
	}
	step := p.SweepStep
	if step <= 0 {
		step = 10
	}
	for deg := 0.0; deg < 360; deg += step {
		c, ok := rayShore(s, is, deg*math.Pi/180, p)
		if !ok || !IsCoastal(s, c, p.ProbeOffset) {
			continue
		}
		if nearPort(existing, c, p.IsletSpacing) {
			continue
		}
		port.Pos = c
		return port
	}
	port.Pos = is.Center.Add(mgl64.Vec2{is.Radius / 2, 0})
	port.Fallback = true
	return port
}

// rayShore walks from the islet centre along angle and returns the last land
// point before the first water sample.
func rayShore(s Surface, is Islet, angle float64, p PortParams) (mgl64.Vec2, bool) {
	step := p.RayStep
	if step <= 0 {
		step = 1
	}
	limit := is.Radius*2 + p.ProbeOffset
	var last mgl64.Vec2
	found := false
	for t := 0.0; t <= limit; t += step {
		q := polar(is.Center, angle, t)
		if s.IsWater(q) {
			break
		}
		last = q
		found = true
	}
	return last, found
}

func nearPort(ports []Port, c mgl64.Vec2, spacing float64) bool {
	for _, pt := range ports {
		if dist(pt.Pos, c) < spacing {
			return true
		}
	}
	return false
}
