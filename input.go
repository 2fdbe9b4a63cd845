package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jetsquare/ecs/component"
	"github.com/milk9111/jetsquare/prefabs"
)

var profileKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Input polls the keyboard and turns it into the simulation's key snapshot
// plus the game-level commands.
type Input struct {
	bindings [][]ebiten.Key
	quit     ebiten.Key
	pause    ebiten.Key
	reset    ebiten.Key
	copy     ebiten.Key
}

func NewInput(spec *prefabs.KeysSpec) (*Input, error) {
	if spec == nil {
		return nil, fmt.Errorf("input: nil keys spec")
	}

	in := &Input{bindings: make([][]ebiten.Key, len(component.AllKeys()))}
	for name, physical := range spec.Bindings {
		logical, ok := component.ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("input: unknown logical key %q", name)
		}
		for _, p := range physical {
			k, err := parseKey(p)
			if err != nil {
				return nil, err
			}
			in.bindings[logical] = append(in.bindings[logical], k)
		}
	}

	commands := []struct {
		name string
		dst  *ebiten.Key
	}{
		{spec.Quit, &in.quit},
		{spec.Pause, &in.pause},
		{spec.Reset, &in.reset},
		{spec.Copy, &in.copy},
	}
	for _, c := range commands {
		k, err := parseKey(c.name)
		if err != nil {
			return nil, err
		}
		*c.dst = k
	}
	return in, nil
}

func parseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("input: key %q: %w", name, err)
	}
	return k, nil
}

// Held snapshots the logical keys currently down.
func (i *Input) Held() component.HeldKeys {
	var held component.HeldKeys
	for _, logical := range component.AllKeys() {
		for _, k := range i.bindings[logical] {
			if ebiten.IsKeyPressed(k) {
				held = held.With(logical)
				break
			}
		}
	}
	return held
}

func (i *Input) QuitPressed() bool  { return inpututil.IsKeyJustPressed(i.quit) }
func (i *Input) PausePressed() bool { return inpututil.IsKeyJustPressed(i.pause) }
func (i *Input) ResetPressed() bool { return inpututil.IsKeyJustPressed(i.reset) }
func (i *Input) CopyPressed() bool  { return inpututil.IsKeyJustPressed(i.copy) }

// ProfilePressed reports the zero-based profile slot of a number key pressed
// this frame.
func (i *Input) ProfilePressed() (int, bool) {
	for slot, k := range profileKeys {
		if inpututil.IsKeyJustPressed(k) {
			return slot, true
		}
	}
	return 0, false
}
