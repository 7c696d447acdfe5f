// Command sim runs the arena headless for a fixed number of ticks and logs
// every gameplay event.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/actionrpg/arena"
	"github.com/milk9111/actionrpg/common"
	"github.com/milk9111/actionrpg/logging"
	"github.com/milk9111/actionrpg/prefabs"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	ticks := flag.Int("ticks", 600, "number of fixed ticks to simulate")
	seed := flag.Uint64("seed", 0, "override the game.yaml seed (0 keeps it)")
	level := flag.String("log-level", "", "override the game.yaml log level")
	format := flag.String("log-format", "", "override the game.yaml log format (console|json)")
	route := flag.String("goto", "", "player waypoints as x,z;x,z;...")
	casts := flag.String("cast", "", "ability casts as tick:slot,tick:slot,...")
	dump := flag.Bool("dump", false, "print the final snapshot as yaml")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefab overrides")
	flag.Parse()

	prefabs.DiskRoot = *prefabDir

	game, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		game.Seed = *seed
	}
	if *level != "" {
		game.Logging.Level = *level
	}
	if *format != "" {
		game.Logging.Format = *format
	}
	logger, err := logging.New(game.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	waypoints, err := parseWaypoints(*route)
	if err != nil {
		logger.Fatal("bad -goto", zap.Error(err))
	}
	schedule, err := parseCasts(*casts)
	if err != nil {
		logger.Fatal("bad -cast", zap.Error(err))
	}

	lib, err := prefabs.LoadLibrary()
	if err != nil {
		logger.Fatal("load library", zap.Error(err))
	}
	a, err := arena.New(game, lib, logger)
	if err != nil {
		logger.Fatal("build arena", zap.Error(err))
	}

	next := 0
	if len(waypoints) > 0 {
		a.MovePlayerTo(waypoints[0])
	}
	counts := map[string]int{}
	for i := 0; i < *ticks; i++ {
		tick := a.World.Tick()
		for _, slot := range schedule[tick] {
			a.UseAbility(slot)
		}
		for _, evt := range a.Step() {
			counts[evt.Type]++
			arena.LogEvent(logger, tick, evt)
		}
		if next < len(waypoints) && playerNear(a, waypoints[next], 0.6) {
			next++
			if next < len(waypoints) {
				a.MovePlayerTo(waypoints[next])
			}
		}
	}

	fields := []zap.Field{zap.Uint64("ticks", a.World.Tick()), zap.Float64("elapsed", a.World.Elapsed())}
	for k, n := range counts {
		fields = append(fields, zap.Int(k, n))
	}
	logger.Info("simulation finished", fields...)

	if *dump {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(a.Snapshot()); err != nil {
			logger.Fatal("dump", zap.Error(err))
		}
		_ = enc.Close()
	}
}

func playerNear(a *arena.Arena, p common.Vec3, tolerance float64) bool {
	for _, actor := range a.Snapshot() {
		if actor.Player {
			return actor.Position.Flat().Distance(p.Flat()) <= tolerance
		}
	}
	return false
}

func parseWaypoints(s string) ([]common.Vec3, error) {
	var out []common.Vec3
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xz := strings.Split(part, ",")
		if len(xz) != 2 {
			return nil, fmt.Errorf("waypoint %q: want x,z", part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xz[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: %w", part, err)
		}
		z, err := strconv.ParseFloat(strings.TrimSpace(xz[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: %w", part, err)
		}
		out = append(out, common.V3(x, 0, z))
	}
	return out, nil
}

func parseCasts(s string) (map[uint64][]int, error) {
	out := map[uint64][]int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tickStr, slotStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("cast %q: want tick:slot", part)
		}
		tick, err := strconv.ParseUint(tickStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cast %q: %w", part, err)
		}
		slot, err := strconv.Atoi(slotStr)
		if err != nil {
			return nil, fmt.Errorf("cast %q: %w", part, err)
		}
		out[tick] = append(out[tick], slot)
	}
	return out, nil
}
