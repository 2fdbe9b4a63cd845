package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/jetsquare/ecs/component"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownProfile = errors.New("prefabs: unknown profile")
	ErrInvalidProfile = errors.New("prefabs: invalid profile")
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ProfileSpec is one physics variant as written in profiles.yaml.
type ProfileSpec struct {
	ReferenceFPS      float64 `yaml:"reference_fps"`
	Gravity           float64 `yaml:"gravity"`
	BounceFactor      float64 `yaml:"bounce_factor"`
	Friction          float64 `yaml:"friction"`
	ContactMargin     float64 `yaml:"contact_margin"`
	Ceiling           bool    `yaml:"ceiling"`
	HorizontalStep    float64 `yaml:"horizontal_step"`
	VerticalStep      float64 `yaml:"vertical_step"`
	ThrustImpulse     float64 `yaml:"thrust_impulse"`
	ThrustCost        float64 `yaml:"thrust_cost"`
	RegenRate         float64 `yaml:"regen_rate"`
	OverheatRegenRate float64 `yaml:"overheat_regen_rate"`
	Resizable         bool    `yaml:"resizable"`
	MinSize           float64 `yaml:"min_size"`
	MaxSize           float64 `yaml:"max_size"`
	BaselineSize      float64 `yaml:"baseline_size"`
	SizeStep          float64 `yaml:"size_step"`
	WeightCoefficient float64 `yaml:"weight_coefficient"`
}

// Validate checks the ranges the simulation relies on.
func (p ProfileSpec) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(p.ReferenceFPS > 0, "reference_fps must be positive, got %v", p.ReferenceFPS)
	check(p.BounceFactor > 0 && p.BounceFactor < 1, "bounce_factor must be in (0,1), got %v", p.BounceFactor)
	check(p.Friction >= 0 && p.Friction < 1, "friction must be in [0,1), got %v", p.Friction)
	check(p.ContactMargin >= 0, "contact_margin must not be negative, got %v", p.ContactMargin)
	check(p.ThrustCost >= 0, "thrust_cost must not be negative, got %v", p.ThrustCost)
	check(p.RegenRate >= 0, "regen_rate must not be negative, got %v", p.RegenRate)
	check(p.OverheatRegenRate >= 0, "overheat_regen_rate must not be negative, got %v", p.OverheatRegenRate)
	check(p.MinSize > 0, "min_size must be positive, got %v", p.MinSize)
	check(p.MinSize <= p.BaselineSize && p.BaselineSize <= p.MaxSize,
		"baseline_size %v must be within [%v, %v]", p.BaselineSize, p.MinSize, p.MaxSize)
	check(p.SizeStep >= 0, "size_step must not be negative, got %v", p.SizeStep)
	check(1+(p.BaselineSize-p.MaxSize)*p.WeightCoefficient >= 0,
		"weight_coefficient %v makes the largest square weigh less than nothing", p.WeightCoefficient)
	check(p.RegenRate > 0 || p.OverheatRegenRate > 0 || p.ThrustCost == 0,
		"a profile that spends the meter must regenerate it")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, strings.Join(problems, "; "))
	}
	return nil
}

func (p ProfileSpec) Component(name string) component.PhysicsProfile {
	return component.PhysicsProfile{
		Name:              name,
		ReferenceFPS:      p.ReferenceFPS,
		Gravity:           p.Gravity,
		BounceFactor:      p.BounceFactor,
		Friction:          p.Friction,
		ContactMargin:     p.ContactMargin,
		Ceiling:           p.Ceiling,
		HorizontalStep:    p.HorizontalStep,
		VerticalStep:      p.VerticalStep,
		ThrustImpulse:     p.ThrustImpulse,
		ThrustCost:        p.ThrustCost,
		RegenRate:         p.RegenRate,
		OverheatRegenRate: p.OverheatRegenRate,
		Resizable:         p.Resizable,
		MinSize:           p.MinSize,
		MaxSize:           p.MaxSize,
		BaselineSize:      p.BaselineSize,
		SizeStep:          p.SizeStep,
		WeightCoefficient: p.WeightCoefficient,
	}
}

// ProfilesSpec is the root of profiles.yaml.
type ProfilesSpec struct {
	Default  string                 `yaml:"default"`
	Order    []string               `yaml:"order"`
	Profiles map[string]ProfileSpec `yaml:"profiles"`
}

func LoadProfilesSpec() (*ProfilesSpec, error) {
	spec, err := LoadSpec[ProfilesSpec]("profiles.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: profiles.yaml: %w", err)
	}
	return &spec, nil
}

func (s *ProfilesSpec) Validate() error {
	if len(s.Profiles) == 0 {
		return fmt.Errorf("%w: no profiles defined", ErrInvalidProfile)
	}
	for _, name := range s.Names() {
		if err := s.Profiles[name].Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	if _, ok := s.Profiles[s.Default]; !ok {
		return fmt.Errorf("default %q: %w", s.Default, ErrUnknownProfile)
	}
	for _, name := range s.Order {
		if _, ok := s.Profiles[name]; !ok {
			return fmt.Errorf("order entry %q: %w", name, ErrUnknownProfile)
		}
	}
	return nil
}

// Names lists profiles in the configured order, then any unlisted ones
// alphabetically.
func (s *ProfilesSpec) Names() []string {
	seen := make(map[string]bool, len(s.Profiles))
	names := make([]string, 0, len(s.Profiles))
	for _, name := range s.Order {
		if _, ok := s.Profiles[name]; ok && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	var rest []string
	for name := range s.Profiles {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// Profile resolves a profile by name; an empty name picks the default.
func (s *ProfilesSpec) Profile(name string) (component.PhysicsProfile, error) {
	if name == "" {
		name = s.Default
	}
	p, ok := s.Profiles[name]
	if !ok {
		return component.PhysicsProfile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p.Component(name), nil
}

// SquareSpec is the spawn description in square.yaml.
type SquareSpec struct {
	Name     string       `yaml:"name"`
	Size     float64      `yaml:"size"`
	Velocity VectorSpec   `yaml:"velocity"`
	Meter    float64      `yaml:"meter"`
	MeterBar MeterBarSpec `yaml:"meter_bar"`
	Palette  PaletteSpec  `yaml:"palette"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type MeterBarSpec struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	LowThreshold float64 `yaml:"low_threshold"`
}

func (m MeterBarSpec) Component() component.MeterBar {
	return component.MeterBar{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height, LowThreshold: m.LowThreshold}
}

type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Square     *YAMLColor `yaml:"square"`
	Healthy    *YAMLColor `yaml:"healthy"`
	Low        *YAMLColor `yaml:"low"`
	Overheated *YAMLColor `yaml:"overheated"`
}

func LoadSquareSpec() (*SquareSpec, error) {
	spec, err := LoadSpec[SquareSpec]("square.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Size <= 0 {
		return nil, fmt.Errorf("prefabs: square.yaml: size must be positive, got %v", spec.Size)
	}
	spec.Meter = math.Min(math.Max(spec.Meter, 0), 1)
	return &spec, nil
}

// KeysSpec maps logical keys to physical key names understood by the
// windowing layer.
type KeysSpec struct {
	Quit     string              `yaml:"quit"`
	Pause    string              `yaml:"pause"`
	Reset    string              `yaml:"reset"`
	Copy     string              `yaml:"copy"`
	Bindings map[string][]string `yaml:"bindings"`
}

func LoadKeysSpec() (*KeysSpec, error) {
	spec, err := LoadSpec[KeysSpec]("keys.yaml")
	if err != nil {
		return nil, err
	}
	for name := range spec.Bindings {
		if _, ok := component.ParseKey(name); !ok {
			return nil, fmt.Errorf("prefabs: keys.yaml: unknown logical key %q", name)
		}
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}
	a := uint8(0xff)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed colour, or fallback when the entry was omitted.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

// ToneSpec is a single swept sine cue.
type ToneSpec struct {
	Frequency    float64 `yaml:"frequency"`
	EndFrequency float64 `yaml:"end_frequency"`
	Duration     float64 `yaml:"duration"`
	Attack       float64 `yaml:"attack"`
	Volume       float64 `yaml:"volume"`
}

type SoundsSpec struct {
	SampleRate int                 `yaml:"sample_rate"`
	Tones      map[string]ToneSpec `yaml:"tones"`
}

func LoadSoundsSpec() (*SoundsSpec, error) {
	spec, err := LoadSpec[SoundsSpec]("sounds.yaml")
	if err != nil {
		return nil, err
	}
	if spec.SampleRate <= 0 {
		return nil, fmt.Errorf("prefabs: sounds.yaml: sample_rate must be positive, got %d", spec.SampleRate)
	}
	for name, tone := range spec.Tones {
		if tone.Duration <= 0 || tone.Frequency <= 0 {
			return nil, fmt.Errorf("prefabs: sounds.yaml: tone %q needs a positive frequency and duration", name)
		}
		if tone.Attack < 0 || tone.Attack > tone.Duration {
			return nil, fmt.Errorf("prefabs: sounds.yaml: tone %q attack %v outside [0, %v]", name, tone.Attack, tone.Duration)
		}
	}
	return &spec, nil
}
