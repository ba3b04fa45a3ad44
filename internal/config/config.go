// Package config loads the world file describing the king and castles.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"feudal-map/internal/terrain"
	"feudal-map/internal/worldgen"
)

// ErrNoPath is returned by Load when no file was named.
var ErrNoPath = errors.New("config: no world file path")

// World is the on-disk world description. JSON files parse as well since
// JSON is a subset of YAML.
type World struct {
	King        King        `yaml:"king" json:"king"`
	Castles     []Castle    `yaml:"castles" json:"castles"`
	LandPatches []LandPatch `yaml:"land_patches,omitempty" json:"land_patches,omitempty"`
}

type King struct {
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Speed float64 `yaml:"speed" json:"speed"`
}

type Castle struct {
	Name  string  `yaml:"name" json:"name"`
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Owner string  `yaml:"owner" json:"owner"`
}

// LandPatch is a disc forced to land.
type LandPatch struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	R float64 `yaml:"r" json:"r"`
}

// Default returns the built-in world used when no file is available.
func Default() World {
	return World{
		King: King{X: 1000, Y: 980, Speed: worldgen.DefaultKingSpeed},
		Castles: []Castle{
			{Name: "Château du Nord", X: 640, Y: 320, Owner: "enemy"},
			{Name: "Fort de l'Est", X: 1960, Y: 440, Owner: "enemy"},
			{Name: "Village du Sud", X: 1280, Y: 1420, Owner: "enemy"},
		},
	}
}

// Load reads and validates a world file.
func Load(path string) (*World, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world: %w", err)
	}
	var w World
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parse world: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// LoadOrDefault loads path and falls back to Default on any error. The
// fallback is logged, never fatal.
func LoadOrDefault(path string, logger *slog.Logger) World {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := Load(path)
	if err != nil {
		if !errors.Is(err, ErrNoPath) {
			logger.Warn("world file unusable, using defaults", "path", path, "error", err)
		}
		return Default()
	}
	logger.Info("world file loaded", "path", filepath.Base(path), "castles", len(w.Castles))
	return *w
}

// Validate fills defaults and rejects files that cannot describe a world.
func (w *World) Validate() error {
	if w.King.Speed <= 0 {
		w.King.Speed = worldgen.DefaultKingSpeed
	}
	for i, c := range w.Castles {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("castles[%d].name must be set", i)
		}
		switch c.Owner {
		case "":
			w.Castles[i].Owner = string(worldgen.OwnerEnemy)
		case string(worldgen.OwnerEnemy), string(worldgen.OwnerPlayer):
		default:
			return fmt.Errorf("castles[%d].owner must be 'player' or 'enemy'", i)
		}
	}
	for i, p := range w.LandPatches {
		if p.R <= 0 {
			return fmt.Errorf("land_patches[%d].r must be positive", i)
		}
	}
	return nil
}

// Spawn converts the file into generation input.
func (w World) Spawn() worldgen.Spawn {
	s := worldgen.Spawn{
		King:      mgl64.Vec2{w.King.X, w.King.Y},
		KingSpeed: w.King.Speed,
	}
	for _, c := range w.Castles {
		s.Castles = append(s.Castles, worldgen.Castle{
			Name:  c.Name,
			Pos:   mgl64.Vec2{c.X, c.Y},
			Owner: worldgen.ParseOwner(c.Owner),
		})
	}
	for _, p := range w.LandPatches {
		s.LandPatches = append(s.LandPatches, terrain.Circle{Center: mgl64.Vec2{p.X, p.Y}, Radius: p.R})
	}
	return s
}

// WriteDefault writes the default world to path.
func WriteDefault(path string) error {
	w := Default()
	data, err := yaml.Marshal(&w)
	if err != nil {
		return fmt.Errorf("marshal default world: %w", err)
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create world directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write default world: %w", err)
	}
	return nil
}
