package grid

// Correct returns x corrected against the axis bounds [left, right]
// according to topo. Bounded axes reflect about the wall they crossed,
// scaled by the restitution coefficient: 1 is a perfect mirror, 0 clamps
// the coordinate to the wall. Periodic axes wrap to the opposite side.
//
// Exactly one correction is applied per call, so a single step may never
// carry a coordinate further than one domain width past a periodic
// bound. Restitution is not range-checked here.
func Correct(topo Topology, x, left, right, restitution float64) float64 {
	switch topo {
	case Bounded:
		if x > right {
			return right - (x-right)*restitution
		}
		if x < left {
			return left + (left-x)*restitution
		}
	case Periodic:
		if x > right {
			return left + (x - right)
		}
		if x < left {
			return right - (left - x)
		}
	}
	return x
}
