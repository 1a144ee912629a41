package solar

import (
	"fmt"
)

// Threshold selects the sun-below-horizon angle that defines a
// rise or set event. Official is the visible sunrise/sunset; the
// twilight variants are successively deeper angles used to define
// dusk and dawn phases.
// https://en.wikipedia.org/wiki/Twilight
type Threshold int

const (
	Official Threshold = iota
	Civil
	Nautical
	Astronomical
)

// Degrees returns the threshold's zenith angle in degrees.
func (t Threshold) Degrees() float64 {
	switch t {
	case Official:
		return 90.833
	case Civil:
		return 96.0
	case Nautical:
		return 102.0
	case Astronomical:
		return 108.0
	default:
		return 90.833
	}
}

func (t Threshold) String() string {
	switch t {
	case Official:
		return "official"
	case Civil:
		return "civil"
	case Nautical:
		return "nautical"
	case Astronomical:
		return "astronomical"
	default:
		return fmt.Sprintf("Threshold(%d)", int(t))
	}
}
