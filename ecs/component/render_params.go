package component

import "github.com/jakecoffman/cp"

// BarCategory is the colour class of the meter bar.
type BarCategory uint8

const (
	BarHealthy BarCategory = iota
	BarLow
	BarOverheated
)

func (c BarCategory) String() string {
	switch c {
	case BarHealthy:
		return "healthy"
	case BarLow:
		return "low"
	case BarOverheated:
		return "overheated"
	default:
		return "unknown"
	}
}

// MeterBar configures where the boost meter is drawn.
type MeterBar struct {
	X            float64
	Y            float64
	Width        float64
	Height       float64
	LowThreshold float64
}

var MeterBarComponent = NewComponent[MeterBar]()

// Category picks the bar colour class. Overheat overrides the meter level.
func (b MeterBar) Category(j Jetpack) BarCategory {
	if j.Overheated() {
		return BarOverheated
	}
	if j.Meter >= b.LowThreshold {
		return BarHealthy
	}
	return BarLow
}

// FillHeight is proportional to the spent part of the meter.
func (b MeterBar) FillHeight(j Jetpack) float64 {
	return cp.Clamp01(1-j.Meter) * b.Height
}

type SquareParams struct {
	X    float64
	Y    float64
	Size float64
}

type BarParams struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	FillHeight float64
	Category   BarCategory
}

// RenderParams is everything a renderer needs for one frame.
type RenderParams struct {
	Square SquareParams
	Bar    BarParams
}

var RenderParamsComponent = NewComponent[RenderParams]()
