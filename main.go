package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/actionrpg/arena"
	"github.com/milk9111/actionrpg/logging"
	"github.com/milk9111/actionrpg/prefabs"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and the locomotion overlay")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefab overrides before the embedded copies")
	watch := flag.Bool("watch", true, "hot reload prefabs and scripts when hot_reload is set in game.yaml")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	prefabs.DiskRoot = *prefabDir

	game, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		game.Logging.Level = "debug"
	}
	logger, err := logging.New(game.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	lib, err := prefabs.LoadLibrary()
	if err != nil {
		logger.Fatal("load library", zap.Error(err))
	}
	a, err := arena.New(game, lib, logger)
	if err != nil {
		logger.Fatal("build arena", zap.Error(err))
	}

	var watcher *prefabs.Watcher
	if *watch && game.HotReload {
		watcher, err = prefabs.NewWatcher(*prefabDir, *prefabDir+"/scripts")
		if err != nil {
			logger.Warn("hot reload disabled", zap.Error(err))
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("actionrpg arena")
	ebiten.SetTPS(game.TickRate)

	g := NewGame(a, watcher, logger, *debug)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
