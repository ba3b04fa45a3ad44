// Package agent moves the king across the map and derives the camera from
// its position.
package agent

import "github.com/go-gl/mathgl/mgl64"

// ArrivalTolerance is the distance at which a target counts as reached.
const ArrivalTolerance = 1.0

// Mode selects which terrain the mover may stand on.
type Mode int

const (
	ModeLand Mode = iota
	ModeBoat
)

func (m Mode) String() string {
	if m == ModeBoat {
		return "boat"
	}
	return "land"
}

// State is Idle or Moving.
type State int

const (
	Idle State = iota
	Moving
)

func (s State) String() string {
	if s == Moving {
		return "moving"
	}
	return "idle"
}

// Event reports what happened during one Update.
type Event int

const (
	EventNone Event = iota
	EventArrived
	EventBlocked
	EventModeChanged
)

func (e Event) String() string {
	switch e {
	case EventArrived:
		return "arrived"
	case EventBlocked:
		return "blocked"
	case EventModeChanged:
		return "mode changed"
	default:
		return "none"
	}
}

// Terrain is the land/water oracle the mover validates steps against.
type Terrain interface {
	IsLand(p mgl64.Vec2) bool
	IsWater(p mgl64.Vec2) bool
	InBounds(p mgl64.Vec2) bool
}

// Docks reports whether a point is inside a port's interaction radius.
type Docks interface {
	DockAt(p mgl64.Vec2) bool
}

// Mover walks or sails in a straight line toward a target, stopping on the
// first step that would leave legal terrain.
type Mover struct {
	pos       mgl64.Vec2
	target    mgl64.Vec2
	hasTarget bool
	speed     float64
	mode      Mode
	state     State

	terrain Terrain
	docks   Docks

	// settled is cleared whenever the mover stops and set again once the
	// following idle update has evaluated the dock toggle.
	settled bool
}

// NewMover places a land-mode mover at pos. docks may be nil.
func NewMover(pos mgl64.Vec2, speed float64, t Terrain, docks Docks) *Mover {
	return &Mover{
		pos:     pos,
		speed:   speed,
		terrain: t,
		docks:   docks,
		settled: true,
	}
}

func (m *Mover) Pos() mgl64.Vec2 { return m.pos }
func (m *Mover) Mode() Mode      { return m.mode }
func (m *Mover) State() State    { return m.state }
func (m *Mover) Speed() float64  { return m.speed }
func (m *Mover) Moving() bool    { return m.state == Moving }

// Target returns the current target, if any.
func (m *Mover) Target() (mgl64.Vec2, bool) { return m.target, m.hasTarget }

// SetTarget replaces any pending target. Targets within ArrivalTolerance
// leave the mover idle. Legality is checked per step, not here.
func (m *Mover) SetTarget(p mgl64.Vec2) {
	if p.Sub(m.pos).Len() <= ArrivalTolerance {
		m.hasTarget = false
		m.state = Idle
		return
	}
	m.target = p
	m.hasTarget = true
	m.state = Moving
}

// Stop cancels the current target.
func (m *Mover) Stop() {
	if m.state == Moving {
		m.halt()
	}
}

// Update advances the mover by dt seconds.
func (m *Mover) Update(dt float64) Event {
	if m.state == Moving {
		return m.step(dt)
	}
	if m.settled {
		return EventNone
	}
	m.settled = true
	if m.docks != nil && m.docks.DockAt(m.pos) {
		if m.mode == ModeLand {
			m.mode = ModeBoat
		} else {
			m.mode = ModeLand
		}
		return EventModeChanged
	}
	return EventNone
}

func (m *Mover) step(dt float64) Event {
	to := m.target.Sub(m.pos)
	d := to.Len()
	if d <= ArrivalTolerance {
		if m.Legal(m.target) {
			m.pos = m.target
		}
		m.halt()
		return EventArrived
	}
	stride := m.speed * dt
	if stride <= 0 {
		return EventNone
	}
	arrived := stride >= d
	next := m.target
	if !arrived {
		k := stride / d
		next = mgl64.Vec2{m.pos.X() + float64(to.X()*k), m.pos.Y() + float64(to.Y()*k)}
	}
	if !m.Legal(next) {
		m.halt()
		return EventBlocked
	}
	m.pos = next
	if arrived {
		m.halt()
		return EventArrived
	}
	return EventNone
}

func (m *Mover) halt() {
	m.hasTarget = false
	m.state = Idle
	m.settled = false
}

// Legal reports whether the mover could stand at p in its current mode.
// Dock zones are legal in both modes.
func (m *Mover) Legal(p mgl64.Vec2) bool {
	if !m.terrain.InBounds(p) {
		return false
	}
	if m.docks != nil && m.docks.DockAt(p) {
		return true
	}
	if m.mode == ModeBoat {
		return m.terrain.IsWater(p)
	}
	return m.terrain.IsLand(p)
}
