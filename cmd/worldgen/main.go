package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"feudal-map/internal/agent"
	"feudal-map/internal/config"
	"feudal-map/internal/core"
	"feudal-map/internal/worldgen"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func (l kvList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

var (
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	label   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Width(18)
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warn    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	box     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("2")).Padding(0, 1)
)

func main() {
	seed := flag.Int64("seed", 1337, "terrain seed")
	worldPath := flag.String("world", "data/world_map.yaml", "world config file")
	pngPath := flag.String("png", "", "write the terrain raster to this PNG file")
	walk := flag.String("walk", "", "simulate the king walking to the named castle")
	maxSeconds := flag.Float64("max-seconds", 120, "walk simulation limit in seconds")
	tps := flag.Int("tps", 60, "walk simulation ticks per second")
	verbose := flag.Bool("v", false, "debug logging")
	var overrides kvList
	flag.Var(&overrides, "set", "generation override in key=value form (repeatable)")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := worldgen.DefaultConfig()
	cfg.Seed = *seed
	cfg.Apply(overrides.Map())
	if *pngPath == "" {
		cfg.RasterCell = 0
	}

	spawn := config.LoadOrDefault(*worldPath, logger).Spawn()
	start := time.Now()
	w, err := worldgen.Generate(cfg, spawn, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, warn.Render(err.Error()))
		os.Exit(1)
	}
	fmt.Println(summary(w, time.Since(start)))

	if *pngPath != "" {
		if err := w.Raster.SavePNG(*pngPath); err != nil {
			fmt.Fprintln(os.Stderr, warn.Render(err.Error()))
			os.Exit(1)
		}
		fmt.Println(dim.Render("raster written to " + *pngPath))
	}

	if *walk != "" {
		if !simulateWalk(w, *walk, core.NewFixedStep(*tps), *maxSeconds) {
			os.Exit(1)
		}
	}
}

func summary(w *worldgen.World, took time.Duration) string {
	cfg := w.Config()
	st := w.Stats()
	var b strings.Builder
	b.WriteString(heading.Render("feudal map") + "\n")
	row := func(k, v string) { b.WriteString(label.Render(k) + v + "\n") }
	row("seed", fmt.Sprint(cfg.Seed))
	row("size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	row("islets", fmt.Sprintf("%d/%d in %d attempts", len(w.Islets()), cfg.Islets.Count, st.Islets.Attempts))
	row("ports", fmt.Sprintf("%d (%d fallback) in %d attempts", len(w.Ports()), st.FallbackPorts, st.PortAttempts))
	king, speed := w.King()
	row("king", fmt.Sprintf("(%.0f, %.0f) speed %.0f", king.X(), king.Y(), speed))
	for _, c := range w.Castles() {
		row("castle", fmt.Sprintf("%s (%.0f, %.0f) %s", c.Name, c.Pos.X(), c.Pos.Y(), c.Owner))
	}
	for _, r := range []worldgen.Repair{worldgen.RepairSnapped, worldgen.RepairPort, worldgen.RepairFailed} {
		if n := st.Repairs[r]; n > 0 {
			row("repair "+r.String(), fmt.Sprint(n))
		}
	}
	row("generated in", took.Round(time.Millisecond).String())
	return box.Render(strings.TrimRight(b.String(), "\n"))
}

// simulateWalk drives a mover toward the castle at a fixed tick rate and
// prints where it stopped.
func simulateWalk(w *worldgen.World, name string, clock *core.FixedStep, maxSeconds float64) bool {
	c, ok := w.CastleByName(name)
	if !ok {
		fmt.Fprintln(os.Stderr, warn.Render(fmt.Sprintf("no castle matches %q", name)))
		return false
	}
	pos, speed := w.King()
	m := agent.NewMover(pos, speed, w.Oracle, w)
	m.SetTarget(c.Pos)
	dt := clock.DT()
	limit := clock.Ticks(time.Duration(maxSeconds * float64(time.Second)))
	ev := agent.EventNone
	ticks := 0
	for ; ticks < limit && m.Moving(); ticks++ {
		ev = m.Update(dt)
	}
	fmt.Println(heading.Render("walk to " + c.Name))
	fmt.Println(label.Render("result") + ev.String())
	fmt.Println(label.Render("stopped at") + fmt.Sprintf("(%.1f, %.1f) after %.2fs", m.Pos().X(), m.Pos().Y(), float64(ticks)*dt))
	fmt.Println(label.Render("distance left") + fmt.Sprintf("%.1f", m.Pos().Sub(c.Pos).Len()))
	return ev == agent.EventArrived
}
