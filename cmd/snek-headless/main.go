// Command snek-headless steps the simulation with scripted input, prints a
// summary and optionally writes a Parquet trace of every tick.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"snek/internal/cli"
	"snek/internal/game"
	"snek/internal/trace"
)

type report struct {
	seed  uint64
	model game.MoveModel
	ticks int
	dt    float64

	score     int
	length    int
	maxLength int
	boost     int
	state     game.GameState

	boostedTicks  int
	gameOverTick  int
	firstFoodTick int
	events        map[game.EventType]int
}

func main() {
	var (
		ticks     int
		dt        float64
		seed      uint64
		model     string
		boost     bool
		steer     string
		hold      int
		tracePath string
		verbose   bool
	)
	flag.IntVar(&ticks, "ticks", 3600, "ticks to simulate")
	flag.Float64Var(&dt, "dt", 1.0/60, "seconds per tick")
	flag.Uint64Var(&seed, "seed", 42, "RNG seed (0 = wall clock; "+cli.SeedEnv+" overrides)")
	flag.StringVar(&model, "model", "continuous", "movement model: continuous or grid")
	flag.BoolVar(&boost, "boost", false, "hold boost on every tick")
	flag.StringVar(&steer, "steer", "", "steer pattern, e.g. LLUURRDD (U D L R B G .)")
	flag.IntVar(&hold, "hold", 30, "ticks each steer letter is held")
	flag.StringVar(&tracePath, "trace", "", "write a Parquet trace to this path")
	flag.BoolVar(&verbose, "v", false, "log every event to stderr")
	flag.Parse()

	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}
	if dt <= 0 || dt > game.MaxFrameDT {
		fmt.Printf("error: -dt must be in (0, %.2f]\n", game.MaxFrameDT)
		os.Exit(2)
	}

	cfg, err := cli.Config(seed, model)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(2)
	}
	steps, err := game.ParseSteer(steer, hold)
	if err != nil {
		fmt.Println("error: -steer:", err)
		os.Exit(2)
	}

	bus := game.NewEventBus()
	if verbose {
		cli.LogEvents(bus, cli.NewLogger(os.Stderr, true))
	}
	scene, err := game.NewScene(cfg, bus)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	var rec *trace.Recorder
	if tracePath != "" {
		rec = trace.NewRecorder(scene)
	}
	rs := simulate(scene, game.NewScriptedInput(steps, boost), ticks, dt, rec)
	printReport(os.Stdout, rs)

	if rec != nil {
		if err := rec.WriteFile(tracePath); err != nil {
			fmt.Println("error:", err)
			os.Exit(1)
		}
		fmt.Printf("trace: %s (%d rows)\n", tracePath, len(rec.Rows()))
	}
}

// simulate runs scene for ticks steps of dt, feeding it from in. rec may be nil.
func simulate(scene *game.Scene, in game.InputSource, ticks int, dt float64, rec *trace.Recorder) report {
	cfg := scene.Config()
	rs := report{
		seed:          scene.Session.Seed,
		model:         cfg.Model,
		ticks:         ticks,
		dt:            dt,
		gameOverTick:  -1,
		firstFoodTick: -1,
		events:        map[game.EventType]int{},
	}
	scene.Bus().SubscribeAll(func(e game.Event) {
		rs.events[e.Type]++
		switch e.Type {
		case game.EventFoodEaten, game.EventSpecialEaten:
			if rs.firstFoodTick < 0 {
				rs.firstFoodTick = e.Tick
			}
		case game.EventSelfCollision:
			rs.gameOverTick = e.Tick
		}
	})

	for range ticks {
		scene.Step(in.Poll(), dt)
		if rec != nil {
			rec.Capture(scene)
		}
		if scene.Snake.Boosted {
			rs.boostedTicks++
		}
		rs.maxLength = max(rs.maxLength, scene.Snake.Len())
	}

	rs.score = scene.Session.Score
	rs.length = scene.Snake.Len()
	rs.boost = scene.Session.Boost.Reserve
	rs.state = scene.Session.State
	return rs
}

func printReport(w io.Writer, rs report) {
	fmt.Fprintf(w, "=== Headless Snake Report ===\n")
	fmt.Fprintf(w, "seed=%d model=%s ticks=%d dt=%.4f sim_time=%.1fs\n",
		rs.seed, rs.model, rs.ticks, rs.dt, float64(rs.ticks)*rs.dt)
	fmt.Fprintf(w, "final: state=%s score=%d length=%d max_length=%d boost=%d\n",
		rs.state, rs.score, rs.length, rs.maxLength, rs.boost)
	fmt.Fprintf(w, "markers: first_food=%s game_over=%s boosted_ticks=%d\n",
		tickString(rs.firstFoodTick), tickString(rs.gameOverTick), rs.boostedTicks)
	fmt.Fprintf(w, "events: %s\n", joinCounts(rs.events))
}

func tickString(tick int) string {
	if tick < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", tick)
}

func joinCounts(counts map[game.EventType]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for t, n := range counts {
		keys = append(keys, fmt.Sprintf("%s=%d", t, n))
	}
	sort.Strings(keys)
	return strings.Join(keys, " ")
}
