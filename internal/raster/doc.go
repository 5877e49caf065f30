// Package raster computes per-pixel coverage of polygons.
//
// Coverage is exact: every edge deposits its signed area into a per-row
// accumulation buffer, and a prefix sum over each row yields the winding
// weighted coverage of every pixel. The nonzero and even-odd fill rules are
// applied to the accumulated value.
//
// Edges are clipped to an integer rectangle before accumulation. Geometry
// left of the clip still contributes to the pixels it covers; geometry to the
// right does not.
package raster
