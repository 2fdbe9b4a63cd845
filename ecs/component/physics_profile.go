package component

// PhysicsProfile is one named set of simulation constants. Velocities are in
// pixels per reference frame; Gravity is in pixels per reference frame per
// second; the thrust cost and regen rates are meter units per second.
type PhysicsProfile struct {
	Name string

	ReferenceFPS  float64
	Gravity       float64
	BounceFactor  float64
	Friction      float64
	ContactMargin float64
	// Ceiling makes the top edge bounce and apply friction like the floor.
	Ceiling bool

	HorizontalStep float64
	VerticalStep   float64

	ThrustImpulse     float64
	ThrustCost        float64
	RegenRate         float64
	OverheatRegenRate float64

	Resizable         bool
	MinSize           float64
	MaxSize           float64
	BaselineSize      float64
	SizeStep          float64
	WeightCoefficient float64
}

var PhysicsProfileComponent = NewComponent[PhysicsProfile]()

// Frames converts elapsed seconds into reference frames.
func (p PhysicsProfile) Frames(dt float64) float64 {
	if dt <= 0 || p.ReferenceFPS <= 0 {
		return 0
	}
	return dt * p.ReferenceFPS
}

// WeightFactor scales the thrust impulse: smaller squares are lighter and
// climb faster. The factor never drops below zero.
func (p PhysicsProfile) WeightFactor(size float64) float64 {
	f := 1 + (p.BaselineSize-size)*p.WeightCoefficient
	if f < 0 {
		return 0
	}
	return f
}
