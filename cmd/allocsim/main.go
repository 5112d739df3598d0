// Command allocsim runs the repeated resource-allocation game and prints
// the round-by-round trace and history charts.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/talgya/allocsim/internal/config"
	"github.com/talgya/allocsim/internal/game"
	"github.com/talgya/allocsim/internal/report"
	"github.com/talgya/allocsim/internal/results"
	"github.com/talgya/allocsim/internal/roster"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment.
	configPath := os.Getenv("ALLOCSIM_CONFIG")
	dbPath := os.Getenv("ALLOCSIM_DB")
	rounds := envIntOrDefault("ALLOCSIM_ROUNDS", 0)

	// ── Configuration ─────────────────────────────────────────────────
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			slog.Error("failed to load config", "path", configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if rounds > 0 {
		cfg.Rounds = rounds
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	params := cfg.Agents
	if len(params) == 0 {
		gen := roster.NewGenerator(cfg.Roster.Seed)
		params = gen.Generate(cfg.Roster.Count)
		slog.Info("roster generated", "count", len(params), "seed", cfg.Roster.Seed)
	}

	// ── Game setup ────────────────────────────────────────────────────
	agents := make([]*game.Agent, 0, len(params))
	names := make([]string, 0, len(params))
	for _, p := range params {
		a, err := game.NewAgent(p)
		if err != nil {
			slog.Error("failed to build agent", "error", err)
			os.Exit(1)
		}
		agents = append(agents, a)
		names = append(names, a.Name)
	}

	pool, err := game.NewResourcePool(cfg.Pool.TotalResources)
	if err != nil {
		slog.Error("failed to build pool", "error", err)
		os.Exit(1)
	}

	g, err := game.NewGame(agents, pool)
	if err != nil {
		slog.Error("failed to build game", "error", err)
		os.Exit(1)
	}

	reporter := report.New(os.Stdout, names)
	g.OnRound = reporter.Round

	slog.Info("game starting",
		"agents", len(agents),
		"pool_total", pool.Total(),
		"rounds", cfg.Rounds,
	)

	// ── Run ───────────────────────────────────────────────────────────
	hist, err := g.Run(cfg.Rounds)
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}

	reporter.Summary(agents)
	fmt.Println()
	fmt.Print(report.RenderChart("Agent Payoff Over Rounds", names, hist.Payoffs, 60, 12))
	fmt.Println()
	fmt.Print(report.RenderChart("Agent Resource Allocations Over Rounds", names, hist.Allocations, 60, 12))

	// ── Record (optional) ─────────────────────────────────────────────
	if dbPath != "" {
		db, err := results.Open(dbPath)
		if err != nil {
			slog.Error("failed to open results db", "path", dbPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()

		runID, err := db.SaveRun(agents, pool.Total(), hist)
		if err != nil {
			slog.Error("failed to record run", "error", err)
			os.Exit(1)
		}
		fmt.Printf("\nRun recorded: %s\n", runID)
	}
}

func envIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("ignoring non-integer env value", "key", key, "value", v)
	}
	return fallback
}
