package common

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	// ReferenceFPS is the frame rate velocities are expressed against.
	ReferenceFPS = 60
)
