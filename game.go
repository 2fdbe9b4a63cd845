package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/jetsquare/common"
	"github.com/milk9111/jetsquare/prefabs"
	"github.com/milk9111/jetsquare/sim"
	"golang.design/x/clipboard"
)

// maxFrameDelta caps the wall-clock step after stalls such as a window drag.
const maxFrameDelta = 0.25

type GameOptions struct {
	Profile string
	Debug   bool
	Watch   bool
	Mute    bool
}

type Game struct {
	frames int

	sim      *sim.Simulation
	profiles *prefabs.ProfilesSpec
	square   *prefabs.SquareSpec
	palette  Palette

	input   *Input
	sounds  *Sounds
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI

	clipboardReady bool
	debug          bool
	paused         bool
	quit           bool
	last           time.Time
	notice         string
}

func NewGame(opts GameOptions) (*Game, error) {
	profiles, err := prefabs.LoadProfilesSpec()
	if err != nil {
		return nil, err
	}
	profile, err := profiles.Profile(opts.Profile)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	square, err := prefabs.LoadSquareSpec()
	if err != nil {
		return nil, err
	}
	keys, err := prefabs.LoadKeysSpec()
	if err != nil {
		return nil, err
	}
	input, err := NewInput(keys)
	if err != nil {
		return nil, err
	}
	simulation, err := sim.New(square, profile)
	if err != nil {
		return nil, err
	}

	g := &Game{
		sim:      simulation,
		profiles: profiles,
		square:   square,
		palette:  NewPalette(square.Palette),
		input:    input,
		debug:    opts.Debug,
	}

	if !opts.Mute {
		if g.sounds, err = loadSounds(); err != nil {
			log.Printf("sound disabled: %v", err)
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}

	if opts.Watch {
		if !prefabs.HasDiskDir() {
			log.Printf("watch: no %s/ directory next to the working dir, hot reload off", prefabs.DiskDir)
		} else if g.watcher, err = prefabs.NewWatcher(prefabs.DiskDir); err != nil {
			log.Printf("watch: %v", err)
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func loadSounds() (*Sounds, error) {
	spec, err := prefabs.LoadSoundsSpec()
	if err != nil {
		return nil, err
	}
	return NewSounds(spec)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.quit || g.input.QuitPressed() {
		return ebiten.Termination
	}

	g.pollWatcher()

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = min(now.Sub(g.last).Seconds(), maxFrameDelta)
	}
	g.last = now

	if g.input.PausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.input.ResetPressed() {
		g.reset()
	}
	if slot, ok := g.input.ProfilePressed(); ok {
		if names := g.profiles.Names(); slot < len(names) {
			g.switchProfile(names[slot])
		}
	}
	if g.input.CopyPressed() {
		g.copySnapshot()
	}

	g.sim.Update(g.input.Held(), dt)
	g.sounds.Play(g.sim.Events())
	return nil
}

func (g *Game) reset() {
	if err := g.sim.Reset(); err != nil {
		log.Printf("reset: %v", err)
	}
}

func (g *Game) switchProfile(name string) {
	profile, err := g.profiles.Profile(name)
	if err != nil {
		log.Printf("switch profile: %v", err)
		return
	}
	if err := g.sim.SetProfile(profile); err != nil {
		log.Printf("switch profile: %v", err)
		return
	}
	g.notice = "profile " + name
	log.Printf("physics profile %q", name)
}

func (g *Game) copySnapshot() {
	if !g.clipboardReady {
		g.notice = "clipboard unavailable"
		return
	}
	data, err := g.sim.Snapshot().YAML()
	if err != nil {
		log.Printf("copy snapshot: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.notice = "snapshot copied"
}

// pollWatcher applies any prefab files changed on disk since the last frame.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

// reload re-reads one prefab file. A removed disk file falls back to the
// embedded copy.
func (g *Game) reload(change prefabs.Change) {
	name := change.Name
	if t, ok := prefabs.ModTime(name); ok && !change.Removed {
		log.Printf("reload %s (modified %s)", name, t.Format(time.TimeOnly))
	} else {
		log.Printf("reload %s (embedded)", name)
	}

	switch name {
	case "profiles.yaml":
		profiles, err := prefabs.LoadProfilesSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.profiles = profiles
		current := g.sim.Profile().Name
		if _, err := profiles.Profile(current); errors.Is(err, prefabs.ErrUnknownProfile) {
			current = ""
		}
		profile, err := profiles.Profile(current)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		if err := g.sim.SetProfile(profile); err != nil {
			log.Printf("reload %s: %v", name, err)
		}
		g.pauseUI = NewPauseUI(g)
	case "square.yaml":
		square, err := prefabs.LoadSquareSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		simulation, err := sim.New(square, g.sim.Profile())
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.square, g.sim = square, simulation
		g.palette = NewPalette(square.Palette)
	case "keys.yaml":
		keys, err := prefabs.LoadKeysSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		input, err := NewInput(keys)
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.input = input
	case "sounds.yaml":
		sounds, err := loadSounds()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			return
		}
		g.sounds = sounds
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	DrawScene(screen, g.sim.RenderParams(), g.palette)

	if g.debug {
		snap := g.sim.Snapshot()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"FPS: %.1f  frames: %d\nprofile: %s\npos: (%.1f, %.1f)  vel: (%.2f, %.2f)\nsize: %.0f  meter: %.2f  overheated: %v\n%s",
			ebiten.ActualFPS(), g.frames,
			snap.Profile,
			snap.X, snap.Y, snap.VX, snap.VY,
			snap.Size, snap.Meter, snap.Overheated,
			g.notice,
		), 60, 10)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}
