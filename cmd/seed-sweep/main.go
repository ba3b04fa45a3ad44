package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"feudal-map/internal/config"
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
	header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	best   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	plain  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failed = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	cell   = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
)

func main() {
	from := flag.Int64("from", 1, "first seed to evaluate")
	count := flag.Int("count", 64, "number of consecutive seeds")
	top := flag.Int("top", 10, "rows to print")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel world generations")
	worldPath := flag.String("world", "data/world_map.yaml", "world config file")
	var overrides kvList
	flag.Var(&overrides, "set", "generation override in key=value form (repeatable)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	spawn := config.LoadOrDefault(*worldPath, logger).Spawn()
	base := worldgen.FromMap(overrides.Map())

	if *count <= 0 {
		fmt.Fprintln(os.Stderr, "count must be positive")
		os.Exit(2)
	}
	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = *from + int64(i)
	}

	results := worldgen.SweepSeeds(base, spawn, seeds, *workers)
	fmt.Println(header.Render(fmt.Sprintf("seeds %d..%d, %d islets and %d mainland ports wanted",
		*from, *from+int64(*count)-1, base.Islets.Count, base.Ports.MainlandCount)))
	fmt.Println(header.Render(row("seed", "score", "islets", "attempts", "ports", "fallback", "repairs")))
	for i, r := range results {
		if i >= *top {
			break
		}
		if r.Err != nil {
			fmt.Println(failed.Render(fmt.Sprintf("%10d  %v", r.Seed, r.Err)))
			continue
		}
		style := plain
		if i == 0 {
			style = best
		}
		fmt.Println(style.Render(row(
			fmt.Sprint(r.Seed),
			fmt.Sprint(r.Score()),
			fmt.Sprint(r.Islets),
			fmt.Sprint(r.IsletAttempts),
			fmt.Sprint(r.MainlandPorts),
			fmt.Sprint(r.FallbackPorts),
			fmt.Sprint(r.Repairs),
		)))
	}
}

func row(cols ...string) string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = cell.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}
