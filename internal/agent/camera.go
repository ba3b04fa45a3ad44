package agent

import "github.com/go-gl/mathgl/mgl64"

// Camera centres a viewport on a point and keeps it inside the world.
type Camera struct {
	Viewport mgl64.Vec2
	World    mgl64.Vec2
}

// NewCamera returns a camera for the given viewport and world sizes.
func NewCamera(viewport, world mgl64.Vec2) Camera {
	return Camera{Viewport: viewport, World: world}
}

// Offset returns the top-left world coordinate of the viewport when centred
// on pos. Each axis is clamped to [0, world-viewport], or 0 when the world
// is smaller than the viewport.
func (c Camera) Offset(pos mgl64.Vec2) mgl64.Vec2 {
	raw := pos.Sub(c.Viewport.Mul(0.5))
	return mgl64.Vec2{
		clampAxis(raw.X(), c.World.X()-c.Viewport.X()),
		clampAxis(raw.Y(), c.World.Y()-c.Viewport.Y()),
	}
}

// ScreenToWorld converts a screen coordinate using an offset from Offset.
func ScreenToWorld(screen, offset mgl64.Vec2) mgl64.Vec2 { return screen.Add(offset) }

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(world, offset mgl64.Vec2) mgl64.Vec2 { return world.Sub(offset) }

func clampAxis(v, max float64) float64 {
	if max <= 0 || v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
