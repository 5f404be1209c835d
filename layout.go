package breadth

import "github.com/edwinsyarief/breadth/wide"

// Spatial is the set of per-entity spatial representations a Store can pack:
// a plain position vector or a column-major transform matrix.
type Spatial interface {
	wide.Vec3 | wide.Mat4
}

// layout describes how a spatial value maps onto block components and which
// components the integrator advances by velocity.
type layout struct {
	name        string
	width       int // scalar components per lane
	translation int // first of the three components moved by velocity
}

var (
	positionLayout  = layout{name: "position", width: wide.Vec3Width, translation: 0}
	transformLayout = layout{name: "transform", width: wide.Mat4Width, translation: wide.TranslationOffset}
)

func layoutOf[V Spatial]() layout {
	var v V
	switch any(v).(type) {
	case wide.Mat4:
		return transformLayout
	default:
		return positionLayout
	}
}

// scalars exposes v as a flat slice of its components.
func scalars[V Spatial](v *V) []float32 {
	switch p := any(v).(type) {
	case *wide.Mat4:
		return p[:]
	case *wide.Vec3:
		return p[:]
	}
	panic("breadth: unsupported spatial type")
}
