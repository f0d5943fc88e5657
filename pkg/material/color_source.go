package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Solid provides a uniform colour
type Solid struct {
	Color core.Color
}

func (s Solid) colorAt(core.Tuple) core.Color {
	return s.Color
}

func (s Solid) String() string { return "solid" }
