package game

import "feudal-map/internal/core"

// PlaceholderKind distinguishes the stand-in screens pushed by the map.
type PlaceholderKind int

const (
	CastleView PlaceholderKind = iota
	BattleView
)

// Placeholder is a stand-in screen that closes on the first dismiss.
type Placeholder struct {
	nav   core.Navigator
	kind  PlaceholderKind
	title string
	// Castle is the index of the visited castle for CastleView, else -1.
	Castle int

	open bool
}

// NewCastleView returns the screen shown when the king reaches a castle.
func NewCastleView(nav core.Navigator, name string, index int) *Placeholder {
	return &Placeholder{nav: nav, kind: CastleView, title: name, Castle: index}
}

// NewBattleView returns the screen shown for a random encounter.
func NewBattleView(nav core.Navigator) *Placeholder {
	return &Placeholder{nav: nav, kind: BattleView, title: "Ambush!", Castle: -1}
}

func (p *Placeholder) Name() string {
	if p.kind == BattleView {
		return "battle"
	}
	return "castle"
}

func (p *Placeholder) Kind() PlaceholderKind { return p.kind }
func (p *Placeholder) Title() string         { return p.title }
func (p *Placeholder) Open() bool            { return p.open }

func (p *Placeholder) Enter()                 { p.open = true }
func (p *Placeholder) Exit()                  { p.open = false }
func (p *Placeholder) ChildClosed(core.Scene) {}
func (p *Placeholder) Update(float64) error   { return nil }

// Dismiss pops the placeholder off the stack.
func (p *Placeholder) Dismiss() {
	if p.open {
		p.nav.Pop()
	}
}
