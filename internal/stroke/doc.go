// Package stroke converts flattened polylines into fillable outline polygons.
//
// Stroke expansion builds two parallel offset polylines:
//   - Forward: offset to one side of the tangent by width/2
//   - Backward: offset to the other side by width/2
//
// For an open polyline the outline is the forward side, the end cap, the
// reversed backward side and the start cap. A closed polyline yields two
// loops with opposite orientation (the outer and inner edges of the ring).
//
// Joins are inserted at every interior vertex: miter (falling back to bevel
// beyond the miter limit), round, or bevel. Overlaps and self-intersections
// of the outline are left in place; the nonzero fill rule resolves them.
//
// # Usage
//
//	e := stroke.NewExpander(stroke.Style{
//	    Width:      2,
//	    Cap:        stroke.CapRound,
//	    Join:       stroke.JoinMiter,
//	    MiterLimit: 10,
//	})
//	polys := e.Expand(points, false)
package stroke
