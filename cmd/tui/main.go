// Command tui renders the arena in a terminal. Click or use the arrow keys
// to move, 1-5 to cast, q to quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/actionrpg/arena"
	"github.com/milk9111/actionrpg/common"
	"github.com/milk9111/actionrpg/logging"
	"github.com/milk9111/actionrpg/prefabs"
	"go.uber.org/zap"
)

const (
	hudRows   = 4
	feedLines = 3
	stepSize  = 1.5
)

type viewer struct {
	screen tcell.Screen
	arena  *arena.Arena
	log    *zap.Logger

	cols, rows int
	feed       []string
}

func main() {
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefab overrides")
	logPath := flag.String("log", "arena.log", "log file (the terminal is used for drawing)")
	flag.Parse()

	prefabs.DiskRoot = *prefabDir
	game, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	game.Logging.OutputPaths = []string{*logPath}
	game.Logging.Format = "json"
	game.Logging.Development = false
	logger, err := logging.New(game.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	lib, err := prefabs.LoadLibrary()
	if err != nil {
		log.Fatal(err)
	}
	a, err := arena.New(game, lib, logger)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	v := &viewer{screen: screen, arena: a, log: logger}
	v.cols, v.rows = screen.Size()
	v.run(time.Duration(float64(time.Second) * game.TickSeconds()))
}

func (v *viewer) run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case <-ticker.C:
			tickNo := v.arena.World.Tick()
			for _, evt := range v.arena.Step() {
				arena.LogEvent(v.log, tickNo, evt)
				if line := arena.EventText(evt); line != "" {
					v.feed = append(v.feed, line)
				}
			}
			if len(v.feed) > feedLines {
				v.feed = v.feed[len(v.feed)-feedLines:]
			}
			v.draw()
		}
	}
}

// handle applies one terminal event and reports whether to keep running.
func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			v.nudge(0, -stepSize)
		case tcell.KeyDown:
			v.nudge(0, stepSize)
		case tcell.KeyLeft:
			v.nudge(-stepSize, 0)
		case tcell.KeyRight:
			v.nudge(stepSize, 0)
		case tcell.KeyRune:
			r := ev.Rune()
			switch {
			case r == 'q':
				return false
			case r >= '1' && r <= '9':
				v.arena.UseAbility(int(r - '1'))
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if p, ok := v.cellToWorld(x, y); ok {
				v.arena.MovePlayerTo(p)
			}
		}
	case *tcell.EventResize:
		v.cols, v.rows = v.screen.Size()
		v.screen.Sync()
	}
	return true
}

func (v *viewer) nudge(dx, dz float64) {
	for _, actor := range v.arena.Snapshot() {
		if actor.Player {
			v.arena.MovePlayerTo(actor.Position.Add(common.V3(dx, 0, dz)))
			return
		}
	}
}

// cell size in world units; terminal cells are about twice as tall as wide.
func (v *viewer) cellSize() (sx, sz float64) {
	a := v.arena.Game.Arena
	gridCols := max(v.cols-2, 1)
	gridRows := max(v.rows-hudRows-2, 1)
	sx = math.Max(a.Width/float64(gridCols), a.Depth/float64(2*gridRows))
	return sx, sx * 2
}

func (v *viewer) worldToCell(p common.Vec3) (int, int) {
	sx, sz := v.cellSize()
	return 1 + int(p.X/sx), 1 + int(p.Z/sz)
}

func (v *viewer) cellToWorld(x, y int) (common.Vec3, bool) {
	sx, sz := v.cellSize()
	p := common.V3((float64(x)-0.5)*sx, 0, (float64(y)-0.5)*sz)
	a := v.arena.Game.Arena
	return p, p.X >= 0 && p.Z >= 0 && p.X <= a.Width && p.Z <= a.Depth
}

func (v *viewer) draw() {
	s := v.screen
	s.Clear()

	a := v.arena.Game.Arena
	right, bottom := v.worldToCell(common.V3(a.Width, 0, a.Depth))
	border := tcell.StyleDefault.Foreground(tcell.ColorOlive)
	for x := 0; x <= right; x++ {
		s.SetContent(x, 0, '─', nil, border)
		s.SetContent(x, bottom, '─', nil, border)
	}
	for y := 0; y <= bottom; y++ {
		s.SetContent(0, y, '│', nil, border)
		s.SetContent(right, y, '│', nil, border)
	}

	hud := bottom + 1
	for _, actor := range v.arena.Snapshot() {
		x, y := v.worldToCell(actor.Position)
		ch, style := glyph(actor)
		s.SetContent(x, y, ch, nil, style)
		if actor.Player {
			v.text(0, hud, tcell.StyleDefault, fmt.Sprintf("%s  HP %.0f/%.0f  EN %.0f/%.0f  %s",
				actor.Name, actor.HP, actor.MaxHP, actor.Energy, actor.MaxEnergy, actor.Weapon))
		}
	}

	col := 0
	for _, slot := range v.arena.AbilitySlots() {
		label := fmt.Sprintf("[%d]%s ", slot.Slot+1, slot.Name)
		v.text(col, hud+1, tcell.StyleDefault.Foreground(tcell.ColorAqua), label)
		col += len(label)
	}
	for i, line := range v.feed {
		v.text(0, hud+2+i, tcell.StyleDefault.Foreground(tcell.ColorGray), line)
	}
	s.Show()
}

func glyph(actor arena.Actor) (rune, tcell.Style) {
	switch {
	case actor.Pickup:
		return '*', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case !actor.Alive:
		return 'x', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case actor.Player:
		return '@', tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	case actor.Enemy:
		return 'E', tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	return '?', tcell.StyleDefault
}

func (v *viewer) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
