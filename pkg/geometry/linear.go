package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// LinearIntersector tests every primitive for every ray
type LinearIntersector struct {
	primitives []Primitive
}

// NewLinearIntersector wraps primitives without reordering them
func NewLinearIntersector(primitives []Primitive) *LinearIntersector {
	return &LinearIntersector{primitives: primitives}
}

// Intersect returns the closest hit along ray
func (l *LinearIntersector) Intersect(ray core.Ray) (IntersectInfo, bool) {
	var info IntersectInfo
	hit := false
	for i := range l.primitives {
		if l.primitives[i].Intersect(ray, &info) {
			hit = true
			ray.TMax = info.T
		}
	}
	return info, hit
}
