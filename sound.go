package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/jetsquare/assets"
	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/prefabs"
)

// Sounds plays a synthesized cue per simulation event type.
type Sounds struct {
	players map[ecs.EventType]*audio.Player
}

var toneEvents = map[string]ecs.EventType{
	"overheated": ecs.EventOverheated,
	"cooled":     ecs.EventCooled,
	"bounce":     ecs.EventBounce,
}

func NewSounds(spec *prefabs.SoundsSpec) (*Sounds, error) {
	if spec == nil {
		return nil, fmt.Errorf("sounds: nil spec")
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(spec.SampleRate)
	}

	s := &Sounds{
		players: make(map[ecs.EventType]*audio.Player, len(spec.Tones)),
	}
	for name, tone := range spec.Tones {
		evt, ok := toneEvents[name]
		if !ok {
			return nil, fmt.Errorf("sounds: tone %q has no matching event", name)
		}
		s.players[evt] = ctx.NewPlayerFromBytes(assets.Synthesize(ctx.SampleRate(), tone))
	}
	return s, nil
}

// Play starts the cue of every event type present in events, once per type.
func (s *Sounds) Play(events []ecs.Event) {
	if s == nil {
		return
	}

	started := make(map[ecs.EventType]bool, len(events))
	for _, evt := range events {
		if started[evt.Type] {
			continue
		}
		started[evt.Type] = true

		player := s.players[evt.Type]
		if player == nil {
			continue
		}
		if err := player.Rewind(); err != nil {
			continue
		}
		player.Play()
	}
}
