// Package game holds the scenes of the feudal map: the explorable world
// and the placeholder screens it opens.
package game

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"feudal-map/internal/agent"
	"feudal-map/internal/core"
	"feudal-map/internal/worldgen"
	pcore "feudal-map/pkg/core"
)

const (
	// ArrivalRadius is how close the idle king must be to open a castle.
	ArrivalRadius = 20.0
	// EncounterInterval is the number of seconds of travel between rolls.
	EncounterInterval = 4.0
	// EncounterChance is the probability that a roll starts a battle.
	EncounterChance = 0.12
)

// WorldMap is the explorable map scene.
type WorldMap struct {
	nav    core.Navigator
	logger *slog.Logger

	cfg      worldgen.Config
	spawn    worldgen.Spawn
	viewport mgl64.Vec2

	world  *worldgen.World
	king   *agent.Mover
	camera agent.Camera

	selected  int
	encounter *pcore.RNG
	travel    float64
	lastEvent agent.Event
}

// NewWorldMap generates a world and places the king on it.
func NewWorldMap(nav core.Navigator, cfg worldgen.Config, spawn worldgen.Spawn, viewport mgl64.Vec2, logger *slog.Logger) (*WorldMap, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := &WorldMap{
		nav:      nav,
		logger:   logger,
		cfg:      cfg,
		spawn:    spawn,
		viewport: viewport,
	}
	if err := m.regenerate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *WorldMap) regenerate() error {
	w, err := worldgen.Generate(m.cfg, m.spawn, m.logger)
	if err != nil {
		return fmt.Errorf("generate world: %w", err)
	}
	m.world = w
	pos, speed := w.King()
	m.king = agent.NewMover(pos, speed, w.Oracle, w)
	m.camera = agent.NewCamera(m.viewport, w.Size())
	m.selected = -1
	m.encounter = pcore.NewStream(m.cfg.Seed, pcore.StreamEncounters)
	m.travel = 0
	m.lastEvent = agent.EventNone
	m.logger.Info("world ready",
		"seed", m.cfg.Seed,
		"islets", len(w.Islets()),
		"ports", len(w.Ports()),
		"castles", len(w.Castles()),
	)
	return nil
}

func (m *WorldMap) Name() string { return "world map" }
func (m *WorldMap) Enter()       {}
func (m *WorldMap) Exit()        {}

// ChildClosed clears the castle selection once its screen closes so the
// same castle is not reopened while the king stands on it.
func (m *WorldMap) ChildClosed(child core.Scene) {
	if p, ok := child.(*Placeholder); ok && p.Kind() == CastleView {
		m.selected = -1
	}
}

// World returns the generated world.
func (m *WorldMap) World() *worldgen.World { return m.world }

// King returns the king's mover.
func (m *WorldMap) King() *agent.Mover { return m.king }

// Offset returns the camera offset for the current frame.
func (m *WorldMap) Offset() mgl64.Vec2 { return m.camera.Offset(m.king.Pos()) }

// Selected returns the index of the selected castle, or -1.
func (m *WorldMap) Selected() int { return m.selected }

// LastEvent returns the mover event of the latest update.
func (m *WorldMap) LastEvent() agent.Event { return m.lastEvent }

// Click handles a left click at a world coordinate: castles are selected
// and walked to, anything else is a plain move order.
func (m *WorldMap) Click(p mgl64.Vec2) {
	if i := m.world.CastleAt(p); i >= 0 {
		m.selected = i
		m.king.SetTarget(m.world.Castles()[i].Pos)
		return
	}
	m.selected = -1
	m.king.SetTarget(p)
}

// ClickScreen converts a screen position with the current camera.
func (m *WorldMap) ClickScreen(p mgl64.Vec2) {
	m.Click(agent.ScreenToWorld(p, m.Offset()))
}

// TravelTo walks to a castle by (fuzzy) name.
func (m *WorldMap) TravelTo(name string) bool {
	c, ok := m.world.CastleByName(name)
	if !ok {
		return false
	}
	m.Click(c.Pos)
	return true
}

// CancelTravel stops the king in place and drops the selection.
func (m *WorldMap) CancelTravel() {
	m.king.Stop()
	m.selected = -1
}

// Quit closes the map, which ends the session.
func (m *WorldMap) Quit() { m.nav.Pop() }

// Update advances the king, opens castles on arrival and rolls for
// encounters while travelling.
func (m *WorldMap) Update(dt float64) error {
	ev := m.king.Update(dt)
	m.lastEvent = ev
	switch ev {
	case agent.EventModeChanged:
		m.logger.Debug("king changed mode", "mode", m.king.Mode().String(), "pos", m.king.Pos())
	case agent.EventBlocked:
		m.logger.Debug("king blocked", "pos", m.king.Pos(), "mode", m.king.Mode().String())
	}

	if m.selected >= 0 && !m.king.Moving() {
		c := m.world.Castles()[m.selected]
		if m.king.Pos().Sub(c.Pos).Len() <= ArrivalRadius {
			m.nav.Push(NewCastleView(m.nav, c.Name, m.selected))
			return nil
		}
	}

	if m.king.Moving() {
		m.travel += dt
		if m.travel >= EncounterInterval {
			m.travel = 0
			if m.encounter.Chance(EncounterChance) {
				m.logger.Debug("encounter", "pos", m.king.Pos())
				m.nav.Push(NewBattleView(m.nav))
			}
		}
	}
	return nil
}

// Parameters exposes world and king state to the HUD.
func (m *WorldMap) Parameters() core.ParameterSnapshot {
	snap := m.world.Parameters()
	pos := m.king.Pos()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "King",
		Params: []core.Parameter{
			{Key: "king_mode", Label: "Mode", Type: core.ParamTypeText, Value: m.king.Mode().String()},
			{Key: "king_state", Label: "State", Type: core.ParamTypeText, Value: m.king.State().String()},
			{Key: "king_x", Label: "X", Type: core.ParamTypeInt, Value: strconv.Itoa(int(pos.X()))},
			{Key: "king_y", Label: "Y", Type: core.ParamTypeInt, Value: strconv.Itoa(int(pos.Y()))},
		},
	})
	return snap
}

// ParameterControls lists the HUD-adjustable generation parameters.
func (m *WorldMap) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "seed", Label: "Seed", Step: 1},
		{Key: "islet_count", Label: "Islets", Step: 1, Min: 0, Max: 20, HasMin: true, HasMax: true},
		{Key: "port_count", Label: "Ports", Step: 1, Min: 0, Max: 12, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates a generation parameter and rebuilds the world.
func (m *WorldMap) SetIntParameter(key string, value int) bool {
	next := m.cfg
	switch key {
	case "seed":
		next.Seed = int64(value)
	case "islet_count":
		if value < 0 {
			return false
		}
		next.Islets.Count = value
	case "port_count":
		if value < 0 {
			return false
		}
		next.Ports.MainlandCount = value
	default:
		return false
	}
	prev := m.cfg
	m.cfg = next
	if err := m.regenerate(); err != nil {
		m.logger.Warn("regeneration failed", "key", key, "value", value, "error", err)
		m.cfg = prev
		return false
	}
	return true
}
