// Command trace runs the simulation headless with a fixed key pattern and
// prints the square's state as a YAML stream, one document per sample.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/milk9111/jetsquare/ecs/component"
	"github.com/milk9111/jetsquare/prefabs"
	"github.com/milk9111/jetsquare/sim"
	"gopkg.in/yaml.v3"
)

type options struct {
	Profile string
	Frames  int
	Every   int
	DT      float64
	Keys    string
}

type sample struct {
	Frame  int          `yaml:"frame"`
	State  sim.Snapshot `yaml:"state"`
	Events []string     `yaml:"events,omitempty"`
}

func main() {
	var opts options
	flag.StringVar(&opts.Profile, "profile", "", "physics profile name (default from profiles.yaml)")
	flag.IntVar(&opts.Frames, "frames", 120, "number of updates to run")
	flag.IntVar(&opts.Every, "every", 10, "print every n-th frame")
	flag.Float64Var(&opts.DT, "dt", 1.0/60, "seconds per update")
	flag.StringVar(&opts.Keys, "keys", "", "comma separated logical keys held every frame (up,down,left,right,grow,shrink)")
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}

func parseKeys(list string) (component.HeldKeys, error) {
	var held component.HeldKeys
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, ok := component.ParseKey(name)
		if !ok {
			return 0, fmt.Errorf("trace: unknown key %q", name)
		}
		held = held.With(k)
	}
	return held, nil
}

func run(out io.Writer, opts options) error {
	if opts.Frames < 0 || opts.DT < 0 {
		return fmt.Errorf("trace: frames and dt must not be negative")
	}
	if opts.Every <= 0 {
		opts.Every = 1
	}

	held, err := parseKeys(opts.Keys)
	if err != nil {
		return err
	}
	profiles, err := prefabs.LoadProfilesSpec()
	if err != nil {
		return err
	}
	profile, err := profiles.Profile(opts.Profile)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	square, err := prefabs.LoadSquareSpec()
	if err != nil {
		return err
	}
	s, err := sim.New(square, profile)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	defer enc.Close()

	var pending []string
	for frame := 1; frame <= opts.Frames; frame++ {
		s.Update(held, opts.DT)
		for _, evt := range s.Events() {
			pending = append(pending, evt.String())
		}
		if frame%opts.Every != 0 && frame != opts.Frames {
			continue
		}
		if err := enc.Encode(sample{Frame: frame, State: s.Snapshot(), Events: pending}); err != nil {
			return fmt.Errorf("trace: encode frame %d: %w", frame, err)
		}
		pending = nil
	}
	return nil
}
