package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/actionrpg/arena"
	"github.com/milk9111/actionrpg/common"
	"github.com/milk9111/actionrpg/prefabs"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
	"gopkg.in/yaml.v3"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	hudHeight   = 96
	arenaMargin = 24
	feedLines   = 6
)

var abilityKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

type Game struct {
	arena   *arena.Arena
	watcher *prefabs.Watcher
	log     *zap.Logger
	debug   bool

	face   ebtext.Face
	feed   []string
	paused bool
	quit   bool
	pause  *ebitenui.UI

	clipboardReady bool
}

func NewGame(a *arena.Arena, watcher *prefabs.Watcher, log *zap.Logger, debug bool) *Game {
	g := &Game{
		arena:   a,
		watcher: watcher,
		log:     log,
		debug:   debug,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
	}
	g.pause = NewPauseUI(g)
	if err := clipboard.Init(); err != nil {
		log.Warn("clipboard unavailable", zap.Error(err))
	} else {
		g.clipboardReady = true
	}
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pause.Update()
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if p, ok := g.screenToWorld(float64(mx), float64(my)); ok {
			g.arena.MovePlayerTo(p)
		}
	}
	for slot, key := range abilityKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.arena.UseAbility(slot)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}

	tick := g.arena.World.Tick()
	for _, evt := range g.arena.Step() {
		arena.LogEvent(g.log, tick, evt)
		if line := arena.EventText(evt); line != "" {
			g.pushFeed(line)
		}
	}
	return nil
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.arena.Reload(name); err != nil {
				g.log.Warn("reload failed", zap.String("file", name), zap.Error(err))
				g.pushFeed("reload failed: " + name)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("watcher", zap.Error(err))
		default:
			return
		}
	}
}

// Reset rebuilds the arena from the current prefabs.
func (g *Game) Reset() {
	lib, err := prefabs.LoadLibrary()
	if err != nil {
		g.log.Warn("reset: load library", zap.Error(err))
		return
	}
	a, err := arena.New(g.arena.Game, lib, g.log)
	if err != nil {
		g.log.Warn("reset", zap.Error(err))
		return
	}
	g.arena = a
	g.feed = nil
	g.paused = false
}

func (g *Game) copySnapshot() {
	if !g.clipboardReady {
		return
	}
	data, err := yaml.Marshal(g.arena.Snapshot())
	if err != nil {
		g.log.Warn("snapshot", zap.Error(err))
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.pushFeed("snapshot copied to clipboard")
}

func (g *Game) pushFeed(line string) {
	g.feed = append(g.feed, line)
	if len(g.feed) > feedLines {
		g.feed = g.feed[len(g.feed)-feedLines:]
	}
}

// scale and origin map arena X/Z to screen pixels, Z pointing down.
func (g *Game) view() (scale, ox, oy float64) {
	arenaSpec := g.arena.Game.Arena
	availW := float64(baseWidth - 2*arenaMargin)
	availH := float64(baseHeight - hudHeight - 2*arenaMargin)
	scale = math.Min(availW/arenaSpec.Width, availH/arenaSpec.Depth)
	ox = (baseWidth - arenaSpec.Width*scale) / 2
	oy = arenaMargin
	return scale, ox, oy
}

func (g *Game) worldToScreen(p common.Vec3) (float32, float32) {
	scale, ox, oy := g.view()
	return float32(ox + p.X*scale), float32(oy + p.Z*scale)
}

func (g *Game) screenToWorld(x, y float64) (common.Vec3, bool) {
	scale, ox, oy := g.view()
	p := common.V3((x-ox)/scale, 0, (y-oy)/scale)
	a := g.arena.Game.Arena
	if p.X < 0 || p.Z < 0 || p.X > a.Width || p.Z > a.Depth {
		return p, false
	}
	return p, true
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	scale, ox, oy := g.view()
	a := g.arena.Game.Arena
	vector.FillRect(screen, float32(ox), float32(oy), float32(a.Width*scale), float32(a.Depth*scale), colornames.Darkolivegreen, false)
	vector.StrokeRect(screen, float32(ox), float32(oy), float32(a.Width*scale), float32(a.Depth*scale), 2, colornames.Khaki, false)

	for _, actor := range g.arena.Snapshot() {
		g.drawActor(screen, actor, scale)
	}
	g.drawHUD(screen)

	if g.paused {
		g.pause.Draw(screen)
	}
}

func (g *Game) drawActor(screen *ebiten.Image, actor arena.Actor, scale float64) {
	x, y := g.worldToScreen(actor.Position)
	r := float32(math.Max(actor.Radius, 0.2) * scale)

	if actor.Pickup {
		vector.StrokeCircle(screen, x, y, r, 2, colornames.Gold, true)
		g.drawText(screen, actor.Name, float64(x)-float64(r), float64(y+r)+2, colornames.Gold)
		return
	}

	var body color.Color = colornames.Lightgray
	switch {
	case !actor.Alive:
		body = colornames.Dimgray
	case actor.Player:
		body = colornames.Cornflowerblue
	case actor.Enemy:
		body = colornames.Indianred
	}
	vector.FillCircle(screen, x, y, r, body, true)

	heading := common.YawForward(actor.Yaw).Scale(float64(r) * 1.6)
	vector.StrokeLine(screen, x, y, x+float32(heading.X), y+float32(heading.Z), 2, colornames.White, true)

	if actor.MaxHP > 0 && actor.Alive {
		w := r * 2
		frac := float32(actor.HP / actor.MaxHP)
		vector.FillRect(screen, x-r, y-r-8, w, 4, colornames.Maroon, false)
		vector.FillRect(screen, x-r, y-r-8, w*frac, 4, colornames.Limegreen, false)
	}
	if g.debug && actor.Moving {
		g.drawText(screen, fmt.Sprintf("f%.2f t%.2f", actor.Forward, actor.Turn), float64(x+r)+4, float64(y)-6, colornames.Lightyellow)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	top := float64(baseHeight - hudHeight)
	vector.FillRect(screen, 0, float32(top), baseWidth, hudHeight, color.NRGBA{A: 200}, false)

	for _, actor := range g.arena.Snapshot() {
		if !actor.Player {
			continue
		}
		status := fmt.Sprintf("%s  HP %.0f/%.0f  Energy %.0f/%.0f  Weapon %s", actor.Name, actor.HP, actor.MaxHP, actor.Energy, actor.MaxEnergy, actor.Weapon)
		if !actor.Alive {
			status += "  (dead - Esc to reset)"
		}
		g.drawText(screen, status, 12, top+8, colornames.White)
	}

	x := 12.0
	for _, slot := range g.arena.AbilitySlots() {
		label := fmt.Sprintf("[%d] %s (%.0f)", slot.Slot+1, slot.Name, slot.Cost)
		g.drawText(screen, label, x, top+28, colornames.Lightskyblue)
		x += float64(len(label)*7 + 16)
	}
	g.drawText(screen, "click: move   1-5: abilities   C: copy snapshot   Esc: pause", 12, top+48, colornames.Gray)

	for i, line := range g.feed {
		g.drawText(screen, line, baseWidth/2, top+8+float64(i)*13, colornames.Wheat)
	}
	if g.debug {
		g.drawText(screen, fmt.Sprintf("tick %d  fps %.1f", g.arena.World.Tick(), ebiten.ActualFPS()), baseWidth-140, 4, colornames.White)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, g.face, op)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
